package action

import (
	"context"
	"fmt"
	"log"

	"tosraider/internal/domain/entity"
	"tosraider/internal/domain/repository"
)

// ActionGenerator is the pair of LLM calls behind one action: the email
// draft (essential) and the legal references (best effort).
type ActionGenerator interface {
	GenerateActionEmail(ctx context.Context, actionType entity.ActionType, companyName, clauseText string) (string, error)
	GenerateLegalReferences(ctx context.Context, actionType entity.ActionType, clauseText string) (string, error)
}

type ActionUsecase struct {
	clauseRepo repository.ClauseRepository
	actionRepo repository.ActionRepository
	generator  ActionGenerator
}

func NewActionUsecase(
	clauseRepo repository.ClauseRepository,
	actionRepo repository.ActionRepository,
	generator ActionGenerator,
) *ActionUsecase {
	return &ActionUsecase{
		clauseRepo: clauseRepo,
		actionRepo: actionRepo,
		generator:  generator,
	}
}

// GenerateAction produces the remediation artifact for one (clause, action
// type) pair. A pair that already has an action returns it unchanged with no
// model calls. The email draft is the essential artifact: if it cannot be
// generated nothing is persisted. Missing legal references degrade to NULL.
func (uc *ActionUsecase) GenerateAction(
	ctx context.Context,
	userID string,
	clauseID string,
	actionType entity.ActionType,
) (*entity.LoopholeAction, error) {
	clause, err := uc.clauseRepo.FindByIDWithOwner(ctx, clauseID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch clause: %w", err)
	}
	if clause == nil {
		return nil, entity.ErrNotFound
	}

	if clause.OwnerID != userID {
		return nil, entity.ErrForbidden
	}

	// idempotent short-circuit
	existing, err := uc.actionRepo.FindByClauseAndType(ctx, clauseID, actionType)
	if err != nil {
		return nil, fmt.Errorf("failed to look up existing action: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	emailTemplate, err := uc.generator.GenerateActionEmail(ctx, actionType, clause.CompanyName, clause.Text)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	var legalReference *string
	if refs, err := uc.generator.GenerateLegalReferences(ctx, actionType, clause.Text); err != nil {
		log.Printf("clause %s: legal reference generation failed: %v", clauseID, err)
	} else if refs != "" {
		legalReference = &refs
	}

	act := &entity.LoopholeAction{
		ClauseID:       clauseID,
		ActionType:     actionType,
		EmailTemplate:  emailTemplate,
		LegalReference: legalReference,
		Status:         "draft",
	}

	inserted, err := uc.actionRepo.Create(ctx, act)
	if err != nil {
		return nil, fmt.Errorf("failed to create action: %w", err)
	}
	if !inserted {
		// a concurrent request won the unique index; hand back its row
		return uc.actionRepo.FindByClauseAndType(ctx, clauseID, actionType)
	}

	return act, nil
}

// ListActions returns all actions generated for one of the caller's clauses.
func (uc *ActionUsecase) ListActions(ctx context.Context, userID, clauseID string) ([]entity.LoopholeAction, error) {
	clause, err := uc.clauseRepo.FindByIDWithOwner(ctx, clauseID)
	if err != nil {
		return nil, err
	}
	if clause == nil {
		return nil, entity.ErrNotFound
	}
	if clause.OwnerID != userID {
		return nil, entity.ErrForbidden
	}

	return uc.actionRepo.ListByClauseID(ctx, clauseID)
}
