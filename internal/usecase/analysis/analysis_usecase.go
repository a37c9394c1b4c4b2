package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log"

	"tosraider/internal/domain/entity"
	"tosraider/internal/domain/repository"
)

// ClauseAnalyzer is the LLM call for one chunk, returning the raw reply.
type ClauseAnalyzer interface {
	AnalyzeClause(ctx context.Context, clauseText string) (string, error)
}

// QuotaGate guards an analysis run against the caller's daily limit.
type QuotaGate interface {
	Check(ctx context.Context, userID string) error
	Record(ctx context.Context, userID string) error
}

type AnalysisUsecase struct {
	docRepo     repository.DocumentRepository
	clauseRepo  repository.ClauseRepository
	limiter     QuotaGate
	analyzer    ClauseAnalyzer
	maxClauses  int
	minChunkLen int
}

func NewAnalysisUsecase(
	docRepo repository.DocumentRepository,
	clauseRepo repository.ClauseRepository,
	limiter QuotaGate,
	analyzer ClauseAnalyzer,
	maxClauses, minChunkLen int,
) *AnalysisUsecase {
	return &AnalysisUsecase{
		docRepo:     docRepo,
		clauseRepo:  clauseRepo,
		limiter:     limiter,
		analyzer:    analyzer,
		maxClauses:  maxClauses,
		minChunkLen: minChunkLen,
	}
}

// AnalyzeDocument runs the full ingestion pipeline for one submission:
// quota check, document insert, blank-line chunking, one LLM call per chunk
// processed strictly in order, then the status flip and the usage bump.
// Returns the document and the number of clauses actually persisted.
func (uc *AnalysisUsecase) AnalyzeDocument(
	ctx context.Context,
	userID string,
	companyName string,
	rawText string,
	url *string,
) (*entity.Document, int, error) {
	// quota first, before any expensive work
	if err := uc.limiter.Check(ctx, userID); err != nil {
		return nil, 0, err
	}

	if companyName == "" || rawText == "" {
		return nil, 0, fmt.Errorf("%w: company_name and raw_text are required", entity.ErrInvalidInput)
	}

	// content fingerprint for version tracking; identical resubmissions
	// still create a fresh document
	sum := sha256.Sum256([]byte(rawText))

	doc := &entity.Document{
		UserID:      userID,
		CompanyName: companyName,
		RawText:     rawText,
		URL:         url,
		VersionHash: hex.EncodeToString(sum[:]),
		Status:      entity.StatusProcessing,
	}
	if err := uc.docRepo.Create(ctx, doc); err != nil {
		return nil, 0, fmt.Errorf("failed to create document: %w", err)
	}

	chunks := SplitChunks(rawText, uc.minChunkLen)
	log.Printf("document %s: %d candidate chunks", doc.ID, len(chunks))

	saved := 0
	for _, chunkText := range chunks {
		// hard cap on persisted clauses, bounding API cost per request;
		// failed chunks do not consume it
		if saved >= uc.maxClauses {
			break
		}

		clause, err := uc.analyzeChunk(ctx, doc.ID, chunkText)
		if err != nil {
			// a bad chunk never aborts the batch
			log.Printf("document %s: skipping chunk: %v", doc.ID, err)
			continue
		}

		if err := uc.clauseRepo.Create(ctx, clause); err != nil {
			log.Printf("document %s: failed to insert clause: %v", doc.ID, err)
			continue
		}
		saved++
	}

	if err := uc.docRepo.UpdateStatus(ctx, doc.ID, entity.StatusAnalyzed); err != nil {
		log.Printf("document %s: failed to update status: %v", doc.ID, err)
	}
	doc.Status = entity.StatusAnalyzed

	if err := uc.limiter.Record(ctx, userID); err != nil {
		log.Printf("document %s: failed to record usage: %v", doc.ID, err)
	}

	return doc, saved, nil
}

// analyzeChunk runs one chunk through the model and shapes the reply into a
// clause, without persisting it.
func (uc *AnalysisUsecase) analyzeChunk(ctx context.Context, documentID, chunkText string) (*entity.Clause, error) {
	reply, err := uc.analyzer.AnalyzeClause(ctx, chunkText)
	if err != nil {
		return nil, fmt.Errorf("analysis call failed: %w", err)
	}

	parsed, err := ParseClauseAnalysis(reply)
	if err != nil {
		return nil, fmt.Errorf("unparsable analysis reply: %w", err)
	}

	return &entity.Clause{
		DocumentID:      documentID,
		Text:            chunkText,
		Category:        parsed.Category,
		RiskLevel:       entity.RiskLevel(parsed.RiskLevel),
		Enforceable:     parsed.Enforceable,
		LoopholeSummary: parsed.LoopholeSummary,
	}, nil
}

// ListDocuments returns the caller's documents, newest first.
func (uc *AnalysisUsecase) ListDocuments(ctx context.Context, userID string) ([]entity.Document, error) {
	return uc.docRepo.ListByUserID(ctx, userID)
}

// GetDocument returns one of the caller's documents with its clauses ordered
// riskiest first.
func (uc *AnalysisUsecase) GetDocument(ctx context.Context, documentID, userID string) (*entity.Document, []entity.Clause, error) {
	doc, err := uc.docRepo.FindByIDAndUserID(ctx, documentID, userID)
	if err != nil {
		return nil, nil, err
	}
	if doc == nil {
		return nil, nil, entity.ErrNotFound
	}

	clauses, err := uc.clauseRepo.ListByDocumentID(ctx, documentID)
	if err != nil {
		return nil, nil, err
	}
	return doc, clauses, nil
}
