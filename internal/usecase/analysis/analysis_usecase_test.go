package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"tosraider/internal/domain/entity"

	"github.com/stretchr/testify/require"
)

type fakeDocumentRepo struct {
	docs     []*entity.Document
	statuses map[string]entity.DocumentStatus
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{statuses: map[string]entity.DocumentStatus{}}
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc *entity.Document) error {
	doc.ID = fmt.Sprintf("doc-%d", len(r.docs)+1)
	r.docs = append(r.docs, doc)
	r.statuses[doc.ID] = doc.Status
	return nil
}

func (r *fakeDocumentRepo) FindByID(_ context.Context, id string) (*entity.Document, error) {
	for _, d := range r.docs {
		if d.ID == id {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDocumentRepo) FindByIDAndUserID(_ context.Context, id, userID string) (*entity.Document, error) {
	for _, d := range r.docs {
		if d.ID == id && d.UserID == userID {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDocumentRepo) ListByUserID(_ context.Context, userID string) ([]entity.Document, error) {
	var out []entity.Document
	for _, d := range r.docs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) UpdateStatus(_ context.Context, id string, status entity.DocumentStatus) error {
	r.statuses[id] = status
	return nil
}

type fakeClauseRepo struct {
	clauses []*entity.Clause
}

func (r *fakeClauseRepo) Create(_ context.Context, clause *entity.Clause) error {
	clause.ID = fmt.Sprintf("clause-%d", len(r.clauses)+1)
	r.clauses = append(r.clauses, clause)
	return nil
}

func (r *fakeClauseRepo) FindByIDWithOwner(_ context.Context, id string) (*entity.ClauseWithOwner, error) {
	return nil, nil
}

func (r *fakeClauseRepo) ListByDocumentID(_ context.Context, documentID string) ([]entity.Clause, error) {
	var out []entity.Clause
	for _, c := range r.clauses {
		if c.DocumentID == documentID {
			out = append(out, *c)
		}
	}
	return out, nil
}

type fakeLimiter struct {
	checkErr error
	recorded int
}

func (l *fakeLimiter) Check(_ context.Context, _ string) error { return l.checkErr }
func (l *fakeLimiter) Record(_ context.Context, _ string) error {
	l.recorded++
	return nil
}

// fakeAnalyzer replies per call index; out of replies it repeats the last one.
type fakeAnalyzer struct {
	replies []string
	errs    []error
	calls   int
}

func (a *fakeAnalyzer) AnalyzeClause(_ context.Context, _ string) (string, error) {
	i := a.calls
	a.calls++
	if i < len(a.errs) && a.errs[i] != nil {
		return "", a.errs[i]
	}
	if len(a.replies) == 0 {
		return `{"category": "data usage", "risk_level": "medium"}`, nil
	}
	if i >= len(a.replies) {
		i = len(a.replies) - 1
	}
	return a.replies[i], nil
}

func paragraphs(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "Paragraph %d with enough text to qualify as a clause.\n\n", i+1)
	}
	return b.String()
}

func newTestUsecase(docRepo *fakeDocumentRepo, clauseRepo *fakeClauseRepo, limiter *fakeLimiter, analyzer *fakeAnalyzer) *AnalysisUsecase {
	return NewAnalysisUsecase(docRepo, clauseRepo, limiter, analyzer, 10, 10)
}

func TestAnalyzeDocumentCapsAtTenClauses(t *testing.T) {
	docRepo := newFakeDocumentRepo()
	clauseRepo := &fakeClauseRepo{}
	limiter := &fakeLimiter{}
	analyzer := &fakeAnalyzer{}
	uc := newTestUsecase(docRepo, clauseRepo, limiter, analyzer)

	doc, count, err := uc.AnalyzeDocument(context.Background(), "user-1", "Acme", paragraphs(12), nil)
	require.NoError(t, err)
	require.Equal(t, 10, count)
	require.Len(t, clauseRepo.clauses, 10)
	require.Equal(t, entity.StatusAnalyzed, docRepo.statuses[doc.ID])
	// the loop stops before calling the model for chunks past the cap
	require.Equal(t, 10, analyzer.calls)
	require.Equal(t, 1, limiter.recorded)
}

func TestAnalyzeDocumentQuotaExceeded(t *testing.T) {
	docRepo := newFakeDocumentRepo()
	clauseRepo := &fakeClauseRepo{}
	limiter := &fakeLimiter{checkErr: entity.ErrQuotaExceeded}
	uc := newTestUsecase(docRepo, clauseRepo, limiter, &fakeAnalyzer{})

	_, _, err := uc.AnalyzeDocument(context.Background(), "user-1", "Acme", paragraphs(2), nil)
	require.ErrorIs(t, err, entity.ErrQuotaExceeded)
	require.Empty(t, docRepo.docs, "no document should be created past the quota gate")
	require.Zero(t, limiter.recorded)
}

func TestAnalyzeDocumentMissingFields(t *testing.T) {
	docRepo := newFakeDocumentRepo()
	uc := newTestUsecase(docRepo, &fakeClauseRepo{}, &fakeLimiter{}, &fakeAnalyzer{})

	_, _, err := uc.AnalyzeDocument(context.Background(), "user-1", "", "hello", nil)
	require.ErrorIs(t, err, entity.ErrInvalidInput)
	require.Empty(t, docRepo.docs)

	_, _, err = uc.AnalyzeDocument(context.Background(), "user-1", "Acme", "", nil)
	require.ErrorIs(t, err, entity.ErrInvalidInput)
	require.Empty(t, docRepo.docs)
}

func TestAnalyzeDocumentSkipsUnparsableChunks(t *testing.T) {
	docRepo := newFakeDocumentRepo()
	clauseRepo := &fakeClauseRepo{}
	limiter := &fakeLimiter{}
	analyzer := &fakeAnalyzer{replies: []string{
		`{"category": "arbitration", "risk_level": "high"}`,
		"Sorry, I cannot analyze this clause.",
		`{"category": "privacy", "risk_level": "low"}`,
	}}
	uc := newTestUsecase(docRepo, clauseRepo, limiter, analyzer)

	doc, count, err := uc.AnalyzeDocument(context.Background(), "user-1", "Acme", paragraphs(3), nil)
	require.NoError(t, err, "a bad chunk must not fail the request")
	require.Equal(t, 2, count)
	require.Len(t, clauseRepo.clauses, 2)
	require.Equal(t, entity.StatusAnalyzed, docRepo.statuses[doc.ID])
}

func TestAnalyzeDocumentSkipsFailedModelCalls(t *testing.T) {
	docRepo := newFakeDocumentRepo()
	clauseRepo := &fakeClauseRepo{}
	analyzer := &fakeAnalyzer{
		replies: []string{
			`{"category": "billing", "risk_level": "medium"}`,
			`{"category": "billing", "risk_level": "medium"}`,
		},
		errs: []error{errors.New("upstream timeout"), nil},
	}
	uc := newTestUsecase(docRepo, clauseRepo, &fakeLimiter{}, analyzer)

	_, count, err := uc.AnalyzeDocument(context.Background(), "user-1", "Acme", paragraphs(2), nil)
	require.NoError(t, err)
	require.Equal(t, 1, count)
}

func TestAnalyzeDocumentZeroClausesStillAnalyzed(t *testing.T) {
	docRepo := newFakeDocumentRepo()
	clauseRepo := &fakeClauseRepo{}
	limiter := &fakeLimiter{}
	analyzer := &fakeAnalyzer{replies: []string{"no json here at all"}}
	uc := newTestUsecase(docRepo, clauseRepo, limiter, analyzer)

	doc, count, err := uc.AnalyzeDocument(context.Background(), "user-1", "Acme", paragraphs(2), nil)
	require.NoError(t, err)
	require.Zero(t, count)
	require.Equal(t, entity.StatusAnalyzed, docRepo.statuses[doc.ID])
	require.Equal(t, 1, limiter.recorded, "usage counts the run, not the clauses")
}

func TestAnalyzeDocumentNoDeduplication(t *testing.T) {
	docRepo := newFakeDocumentRepo()
	uc := newTestUsecase(docRepo, &fakeClauseRepo{}, &fakeLimiter{}, &fakeAnalyzer{})

	text := paragraphs(1)
	first, _, err := uc.AnalyzeDocument(context.Background(), "user-1", "Acme", text, nil)
	require.NoError(t, err)
	second, _, err := uc.AnalyzeDocument(context.Background(), "user-1", "Acme", text, nil)
	require.NoError(t, err)

	require.NotEqual(t, first.ID, second.ID, "identical text still creates a fresh document")
	require.Equal(t, first.VersionHash, second.VersionHash)
}

func TestAnalyzeDocumentFailedInsertsDoNotConsumeCap(t *testing.T) {
	docRepo := newFakeDocumentRepo()
	clauseRepo := &fakeClauseRepo{}
	// first two replies unparsable, rest fine
	analyzer := &fakeAnalyzer{replies: []string{
		"not json", "still not json",
		`{"category": "data usage", "risk_level": "low"}`,
	}}
	uc := newTestUsecase(docRepo, clauseRepo, &fakeLimiter{}, analyzer)

	_, count, err := uc.AnalyzeDocument(context.Background(), "user-1", "Acme", paragraphs(12), nil)
	require.NoError(t, err)
	require.Equal(t, 10, count, "cap counts persisted clauses, not attempts")
	require.Equal(t, 12, analyzer.calls)
}
