package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"tosraider/internal/domain/entity"
	"tosraider/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type usageRepository struct {
	db *sqlx.DB
}

func NewUsageRepository(db *sqlx.DB) repository.UsageRepository {
	return &usageRepository{db: db}
}

// create usage row (one per user, at signup)
func (r *usageRepository) Create(ctx context.Context, usage *entity.APIUsage) error {
	usage.ID = uuid.New().String()

	query := `INSERT INTO user_api_usage (id, user_id, plan, calls_today, last_call)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecContext(ctx, query, usage.ID, usage.UserID, usage.Plan, usage.CallsToday, usage.LastCall)
	return err
}

// find usage row by user id
func (r *usageRepository) FindByUserID(ctx context.Context, userID string) (*entity.APIUsage, error) {
	var usage entity.APIUsage
	query := `SELECT * FROM user_api_usage WHERE user_id = $1`
	err := r.db.GetContext(ctx, &usage, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &usage, nil
}

// bump calls_today and stamp last_call
func (r *usageRepository) IncrementCalls(ctx context.Context, userID string, at time.Time) error {
	query := `UPDATE user_api_usage SET calls_today = calls_today + 1, last_call = $1 WHERE user_id = $2`
	_, err := r.db.ExecContext(ctx, query, at, userID)
	return err
}
