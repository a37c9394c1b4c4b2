package entity

import "time"

type ActionType string

const (
	ActionCancel     ActionType = "cancel"
	ActionOptOut     ActionType = "opt-out"
	ActionRefund     ActionType = "refund"
	ActionDeleteData ActionType = "delete-data"
)

func (a ActionType) Valid() bool {
	switch a {
	case ActionCancel, ActionOptOut, ActionRefund, ActionDeleteData:
		return true
	}
	return false
}

// LoopholeAction is a generated remediation artifact for one (clause,
// action type) pair: a drafted email plus optional supporting legal
// references. At most one row exists per pair.
type LoopholeAction struct {
	ID             string     `db:"id" json:"id"`
	ClauseID       string     `db:"clause_id" json:"clause_id"`
	ActionType     ActionType `db:"action_type" json:"action_type"`
	EmailTemplate  string     `db:"email_template" json:"email_template"`
	LegalReference *string    `db:"legal_reference" json:"legal_reference"`
	Status         string     `db:"status" json:"status"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}
