package models

import "time"

// Approval is the database representation of an approval hierarchy instance.
type Approval struct {
	ApprovalID  string `db:"approval_id"`
	QuotationID string `db:"quotation_id"`
	AuditFields
}

// ApprovalStep is one level row of an approval hierarchy.
type ApprovalStep struct {
	StepID     string     `db:"step_id"`
	ApprovalID string     `db:"approval_id"`
	Level      int        `db:"level"`
	Approver   string     `db:"approver"`
	Status     string     `db:"status"`
	ApprovedAt *time.Time `db:"approved_at"`
}
