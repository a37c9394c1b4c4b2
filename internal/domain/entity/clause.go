package entity

import "time"

type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Valid reports whether r is one of the three known risk levels. The storage
// layer enforces the same closed set via a postgres enum.
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskHigh:
		return true
	}
	return false
}

// Clause is one analyzed segment of a document. Enforceable is nil when the
// model could not decide either way.
type Clause struct {
	ID              string    `db:"id" json:"id"`
	DocumentID      string    `db:"document_id" json:"document_id"`
	Text            string    `db:"text" json:"text"`
	Category        string    `db:"category" json:"category"`
	RiskLevel       RiskLevel `db:"risk_level" json:"risk_level"`
	Enforceable     *bool     `db:"enforceable" json:"enforceable"`
	LoopholeSummary *string   `db:"loophole_summary" json:"loophole_summary"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// ClauseWithOwner is a Clause joined with the company name and owning user of
// its parent document, as needed by the action generator's ownership check.
type ClauseWithOwner struct {
	Clause
	CompanyName string `db:"company_name" json:"company_name"`
	OwnerID     string `db:"owner_id" json:"-"`
}
