package repository

import (
	"context"

	"tosraider/internal/domain/entity"
)

type ClauseRepository interface {
	Create(ctx context.Context, clause *entity.Clause) error
	// FindByIDWithOwner joins the clause with its parent document to expose
	// the company name and owning user id.
	FindByIDWithOwner(ctx context.Context, id string) (*entity.ClauseWithOwner, error)
	// ListByDocumentID returns clauses ordered by risk level, highest first.
	ListByDocumentID(ctx context.Context, documentID string) ([]entity.Clause, error)
}
