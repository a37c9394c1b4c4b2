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

type actionRepository struct {
	db *sqlx.DB
}

func NewActionRepository(db *sqlx.DB) repository.ActionRepository {
	return &actionRepository{db: db}
}

// Create inserts an action. The unique index on (clause_id, action_type)
// makes concurrent duplicate requests collapse onto one row: the losing
// insert hits ON CONFLICT DO NOTHING and reports inserted=false.
func (r *actionRepository) Create(ctx context.Context, action *entity.LoopholeAction) (bool, error) {
	action.ID = uuid.New().String()
	action.CreatedAt = time.Now()

	query := `
		INSERT INTO loophole_actions (id, clause_id, action_type, email_template, legal_reference, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (clause_id, action_type) DO NOTHING
		RETURNING id
	`
	var id string
	err := r.db.QueryRowContext(ctx, query,
		action.ID,
		action.ClauseID,
		action.ActionType,
		action.EmailTemplate,
		action.LegalReference,
		action.Status,
		action.CreatedAt,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// find action for a (clause, action type) pair
func (r *actionRepository) FindByClauseAndType(ctx context.Context, clauseID string, actionType entity.ActionType) (*entity.LoopholeAction, error) {
	var action entity.LoopholeAction
	query := `SELECT * FROM loophole_actions WHERE clause_id = $1 AND action_type = $2`
	err := r.db.GetContext(ctx, &action, query, clauseID, actionType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &action, nil
}

// list actions for a clause
func (r *actionRepository) ListByClauseID(ctx context.Context, clauseID string) ([]entity.LoopholeAction, error) {
	var actions []entity.LoopholeAction
	query := `SELECT * FROM loophole_actions WHERE clause_id = $1 ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &actions, query, clauseID); err != nil {
		return nil, err
	}
	return actions, nil
}
