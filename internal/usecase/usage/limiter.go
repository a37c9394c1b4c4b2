package usage

import (
	"context"
	"fmt"
	"time"

	"tosraider/internal/domain/entity"
	"tosraider/internal/domain/repository"
)

// MaxCallsPerDay returns the daily analysis quota for a plan. The tiers are
// fixed; anything else falls back to the free tier.
func MaxCallsPerDay(plan entity.PlanType) int {
	switch plan {
	case entity.PlanElite:
		return 100
	case entity.PlanPro:
		return 30
	default:
		return 5
	}
}

// Limiter gates analysis runs on the per-user daily counter. The counter is
// read before any work and bumped once per completed run. There is no
// automatic daily reset of calls_today.
type Limiter struct {
	usageRepo repository.UsageRepository
}

func NewLimiter(usageRepo repository.UsageRepository) *Limiter {
	return &Limiter{usageRepo: usageRepo}
}

// Check fails with entity.ErrQuotaExceeded once the user's counter has
// reached the plan ceiling. A missing usage row is an internal error, not a
// quota condition.
func (l *Limiter) Check(ctx context.Context, userID string) error {
	usage, err := l.usageRepo.FindByUserID(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to check usage limits: %w", err)
	}
	if usage == nil {
		return fmt.Errorf("no usage record for user %s", userID)
	}

	if usage.CallsToday >= MaxCallsPerDay(usage.Plan) {
		return entity.ErrQuotaExceeded
	}
	return nil
}

// Record counts one completed analysis run.
func (l *Limiter) Record(ctx context.Context, userID string) error {
	return l.usageRepo.IncrementCalls(ctx, userID, time.Now())
}

// Status returns the usage row together with the computed daily ceiling.
func (l *Limiter) Status(ctx context.Context, userID string) (*entity.APIUsage, int, error) {
	usage, err := l.usageRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if usage == nil {
		return nil, 0, fmt.Errorf("no usage record for user %s", userID)
	}
	return usage, MaxCallsPerDay(usage.Plan), nil
}
