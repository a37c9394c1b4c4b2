package repository

import (
	"context"

	"tosraider/internal/domain/entity"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	FindByID(ctx context.Context, id string) (*entity.Document, error)
	FindByIDAndUserID(ctx context.Context, id, userID string) (*entity.Document, error)
	ListByUserID(ctx context.Context, userID string) ([]entity.Document, error)
	UpdateStatus(ctx context.Context, id string, status entity.DocumentStatus) error
}
