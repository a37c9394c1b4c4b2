package repository

import (
	"context"

	"tosraider/internal/domain/entity"
)

type ActionRepository interface {
	// Create inserts the action, skipping the insert when a row for the same
	// (clause_id, action_type) pair already exists. It reports whether a row
	// was actually inserted.
	Create(ctx context.Context, action *entity.LoopholeAction) (bool, error)
	FindByClauseAndType(ctx context.Context, clauseID string, actionType entity.ActionType) (*entity.LoopholeAction, error)
	ListByClauseID(ctx context.Context, clauseID string) ([]entity.LoopholeAction, error)
}
