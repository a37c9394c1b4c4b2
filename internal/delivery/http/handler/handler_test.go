package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tosraider/internal/delivery/http/middleware"
	"tosraider/internal/domain/entity"
	"tosraider/internal/usecase/action"
	"tosraider/internal/usecase/analysis"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	pkgjwt "tosraider/pkg/jwt"
)

const testSecret = "test-secret"

// in-memory fakes backing the real usecases

type memDocumentRepo struct {
	docs map[string]*entity.Document
}

func newMemDocumentRepo() *memDocumentRepo {
	return &memDocumentRepo{docs: map[string]*entity.Document{}}
}

func (r *memDocumentRepo) Create(_ context.Context, doc *entity.Document) error {
	doc.ID = fmt.Sprintf("doc-%d", len(r.docs)+1)
	r.docs[doc.ID] = doc
	return nil
}

func (r *memDocumentRepo) FindByID(_ context.Context, id string) (*entity.Document, error) {
	return r.docs[id], nil
}

func (r *memDocumentRepo) FindByIDAndUserID(_ context.Context, id, userID string) (*entity.Document, error) {
	if d, ok := r.docs[id]; ok && d.UserID == userID {
		return d, nil
	}
	return nil, nil
}

func (r *memDocumentRepo) ListByUserID(_ context.Context, userID string) ([]entity.Document, error) {
	var out []entity.Document
	for _, d := range r.docs {
		if d.UserID == userID {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *memDocumentRepo) UpdateStatus(_ context.Context, id string, status entity.DocumentStatus) error {
	if d, ok := r.docs[id]; ok {
		d.Status = status
	}
	return nil
}

type memClauseRepo struct {
	clauses map[string]*entity.ClauseWithOwner
}

func newMemClauseRepo() *memClauseRepo {
	return &memClauseRepo{clauses: map[string]*entity.ClauseWithOwner{}}
}

func (r *memClauseRepo) Create(_ context.Context, clause *entity.Clause) error {
	clause.ID = fmt.Sprintf("clause-%d", len(r.clauses)+1)
	r.clauses[clause.ID] = &entity.ClauseWithOwner{Clause: *clause}
	return nil
}

func (r *memClauseRepo) FindByIDWithOwner(_ context.Context, id string) (*entity.ClauseWithOwner, error) {
	return r.clauses[id], nil
}

func (r *memClauseRepo) ListByDocumentID(_ context.Context, documentID string) ([]entity.Clause, error) {
	var out []entity.Clause
	for _, c := range r.clauses {
		if c.DocumentID == documentID {
			out = append(out, c.Clause)
		}
	}
	return out, nil
}

type memActionRepo struct {
	actions map[string]*entity.LoopholeAction
}

func newMemActionRepo() *memActionRepo {
	return &memActionRepo{actions: map[string]*entity.LoopholeAction{}}
}

func (r *memActionRepo) key(clauseID string, actionType entity.ActionType) string {
	return clauseID + "/" + string(actionType)
}

func (r *memActionRepo) Create(_ context.Context, a *entity.LoopholeAction) (bool, error) {
	k := r.key(a.ClauseID, a.ActionType)
	if _, exists := r.actions[k]; exists {
		return false, nil
	}
	a.ID = fmt.Sprintf("action-%d", len(r.actions)+1)
	r.actions[k] = a
	return true, nil
}

func (r *memActionRepo) FindByClauseAndType(_ context.Context, clauseID string, actionType entity.ActionType) (*entity.LoopholeAction, error) {
	return r.actions[r.key(clauseID, actionType)], nil
}

func (r *memActionRepo) ListByClauseID(_ context.Context, clauseID string) ([]entity.LoopholeAction, error) {
	var out []entity.LoopholeAction
	for _, a := range r.actions {
		if a.ClauseID == clauseID {
			out = append(out, *a)
		}
	}
	return out, nil
}

type stubLimiter struct {
	checkErr error
	recorded int
}

func (l *stubLimiter) Check(_ context.Context, _ string) error { return l.checkErr }
func (l *stubLimiter) Record(_ context.Context, _ string) error {
	l.recorded++
	return nil
}

type stubModel struct {
	analysisReply string
	emailErr      error
}

func (m *stubModel) AnalyzeClause(_ context.Context, _ string) (string, error) {
	if m.analysisReply == "" {
		return `{"category": "data usage", "risk_level": "medium"}`, nil
	}
	return m.analysisReply, nil
}

func (m *stubModel) GenerateActionEmail(_ context.Context, actionType entity.ActionType, companyName, _ string) (string, error) {
	if m.emailErr != nil {
		return "", m.emailErr
	}
	return fmt.Sprintf("Dear %s, please process my %s request.", companyName, actionType), nil
}

func (m *stubModel) GenerateLegalReferences(_ context.Context, _ entity.ActionType, _ string) (string, error) {
	return "GDPR Art. 17", nil
}

type testEnv struct {
	app        *fiber.App
	docRepo    *memDocumentRepo
	clauseRepo *memClauseRepo
	actionRepo *memActionRepo
	limiter    *stubLimiter
	model      *stubModel
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		docRepo:    newMemDocumentRepo(),
		clauseRepo: newMemClauseRepo(),
		actionRepo: newMemActionRepo(),
		limiter:    &stubLimiter{},
		model:      &stubModel{},
	}

	analysisUsecase := analysis.NewAnalysisUsecase(env.docRepo, env.clauseRepo, env.limiter, env.model, 10, 10)
	actionUsecase := action.NewActionUsecase(env.clauseRepo, env.actionRepo, env.model)

	analyzeHandler := NewAnalyzeHandler(analysisUsecase)
	actionHandler := NewActionHandler(actionUsecase)
	docHandler := NewDocumentHandler(analysisUsecase)

	app := fiber.New()
	api := app.Group("/api", middleware.JWTAuth(testSecret))
	api.Post("/tos/analyze", analyzeHandler.Analyze)
	api.Post("/actions/generate", actionHandler.Generate)
	api.Get("/documents", docHandler.List)
	api.Get("/documents/:id", docHandler.GetByID)
	api.Get("/clauses/:id/actions", actionHandler.ListByClause)

	env.app = app
	return env
}

func bearerToken(t *testing.T, userID string) string {
	t.Helper()
	token, err := pkgjwt.GenerateToken(userID, userID+"@example.com", "free", testSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(t *testing.T, app *fiber.App, method, path, auth string, body any) (*http.Response, map[string]json.RawMessage) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	fields := map[string]json.RawMessage{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &fields), "body: %s", raw)
	}
	return resp, fields
}
