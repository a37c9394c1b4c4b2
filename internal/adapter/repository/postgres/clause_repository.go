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

type clauseRepository struct {
	db *sqlx.DB
}

func NewClauseRepository(db *sqlx.DB) repository.ClauseRepository {
	return &clauseRepository{db: db}
}

// create clause
func (r *clauseRepository) Create(ctx context.Context, clause *entity.Clause) error {
	clause.ID = uuid.New().String()
	clause.CreatedAt = time.Now()

	query := `
		INSERT INTO clauses (id, document_id, text, category, risk_level, enforceable, loophole_summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.ExecContext(ctx, query,
		clause.ID,
		clause.DocumentID,
		clause.Text,
		clause.Category,
		clause.RiskLevel,
		clause.Enforceable,
		clause.LoopholeSummary,
		clause.CreatedAt,
	)
	return err
}

// find clause joined with its parent document
func (r *clauseRepository) FindByIDWithOwner(ctx context.Context, id string) (*entity.ClauseWithOwner, error) {
	var clause entity.ClauseWithOwner
	query := `
		SELECT c.*, d.company_name AS company_name, d.user_id AS owner_id
		FROM clauses c
		INNER JOIN tos_documents d ON c.document_id = d.id
		WHERE c.id = $1
	`
	err := r.db.GetContext(ctx, &clause, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &clause, nil
}

// list clauses for a document, riskiest first (enum ordering: low < medium < high)
func (r *clauseRepository) ListByDocumentID(ctx context.Context, documentID string) ([]entity.Clause, error) {
	var clauses []entity.Clause
	query := `SELECT * FROM clauses WHERE document_id = $1 ORDER BY risk_level DESC, created_at ASC`
	if err := r.db.SelectContext(ctx, &clauses, query, documentID); err != nil {
		return nil, err
	}
	return clauses, nil
}
