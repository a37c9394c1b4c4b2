package dto

import (
	"time"

	"tosraider/internal/domain/entity"
)

type AnalyzeRequest struct {
	CompanyName string  `json:"company_name" example:"Acme Corp"`
	RawText     string  `json:"raw_text" example:"Section 1. You agree that..."`
	URL         *string `json:"url,omitempty" example:"https://acme.example/terms"`
}

type AnalyzeResponse struct {
	Status          string `json:"status" example:"success"`
	DocumentID      string `json:"document_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	ClausesAnalyzed int    `json:"clauses_analyzed" example:"7"`
}

type DocumentInfo struct {
	ID          string    `json:"id"`
	CompanyName string    `json:"company_name"`
	URL         *string   `json:"url"`
	VersionHash string    `json:"version_hash"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewDocumentInfo(doc entity.Document) DocumentInfo {
	return DocumentInfo{
		ID:          doc.ID,
		CompanyName: doc.CompanyName,
		URL:         doc.URL,
		VersionHash: doc.VersionHash,
		Status:      string(doc.Status),
		CreatedAt:   doc.CreatedAt,
	}
}

type ListDocumentsResponse struct {
	Documents []DocumentInfo `json:"documents"`
}

type DocumentDetailResponse struct {
	Document DocumentInfo    `json:"document"`
	RawText  string          `json:"raw_text"`
	Clauses  []entity.Clause `json:"clauses"`
}

type UsageResponse struct {
	Plan       string     `json:"plan" example:"free"`
	CallsToday int        `json:"calls_today" example:"3"`
	MaxCalls   int        `json:"max_calls_per_day" example:"5"`
	LastCall   *time.Time `json:"last_call"`
}
