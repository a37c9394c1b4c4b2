package entity

import "time"

type DocumentStatus string

const (
	StatusPending    DocumentStatus = "pending"
	StatusProcessing DocumentStatus = "processing"
	StatusAnalyzed   DocumentStatus = "analyzed"
	// StatusFailed exists in the schema but is never assigned by the
	// analysis pipeline: a run that produces zero clauses still ends in
	// StatusAnalyzed.
	StatusFailed DocumentStatus = "failed"
)

// Document is one submitted Terms-of-Service text. RawText is immutable once
// stored; only Status changes afterwards.
type Document struct {
	ID          string         `db:"id" json:"id"`
	UserID      string         `db:"user_id" json:"user_id"`
	CompanyName string         `db:"company_name" json:"company_name"`
	RawText     string         `db:"raw_text" json:"raw_text"`
	URL         *string        `db:"url" json:"url"`
	VersionHash string         `db:"version_hash" json:"version_hash"`
	Status      DocumentStatus `db:"status" json:"status"`
	CreatedAt   time.Time      `db:"created_at" json:"created_at"`
}
