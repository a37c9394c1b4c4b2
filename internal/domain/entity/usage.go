package entity

import "time"

type PlanType string

const (
	PlanFree  PlanType = "free"
	PlanPro   PlanType = "pro"
	PlanElite PlanType = "elite"
)

// APIUsage tracks a user's daily call counter. One row per user, created at
// signup. There is no automatic midnight reset of CallsToday; the counter only
// moves when an analysis run completes.
type APIUsage struct {
	ID         string     `db:"id" json:"id"`
	UserID     string     `db:"user_id" json:"user_id"`
	Plan       PlanType   `db:"plan" json:"plan"`
	CallsToday int        `db:"calls_today" json:"calls_today"`
	LastCall   *time.Time `db:"last_call" json:"last_call"`
}
