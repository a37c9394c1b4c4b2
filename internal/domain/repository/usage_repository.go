package repository

import (
	"context"
	"time"

	"tosraider/internal/domain/entity"
)

type UsageRepository interface {
	Create(ctx context.Context, usage *entity.APIUsage) error
	FindByUserID(ctx context.Context, userID string) (*entity.APIUsage, error)
	// IncrementCalls bumps calls_today by one and stamps last_call.
	IncrementCalls(ctx context.Context, userID string, at time.Time) error
}
