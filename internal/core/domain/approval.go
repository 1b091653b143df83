package domain

import "time"

// StepStatus is the state of a single approval step.
type StepStatus string

const (
	StepPending  StepStatus = "Pending"
	StepApproved StepStatus = "Approved"
	StepRejected StepStatus = "Rejected"
	StepCanceled StepStatus = "Canceled"
)

// ApprovalStep is one level of an approval hierarchy. Level defines a strict
// ascending precedence; the approver is an email used as a routing key.
type ApprovalStep struct {
	Level      int        `json:"level"`
	Approver   string     `json:"approver"`
	Status     StepStatus `json:"status"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
}

// Approval is the ordered approval hierarchy instance owned by one quotation.
type Approval struct {
	ApprovalID  string         `json:"approvalID"`
	QuotationID string         `json:"quotationID"`
	Steps       []ApprovalStep `json:"approvalHierarchy"`
	AuditFields
}

// FindStep returns the step matching (level, approver), or nil.
func (a *Approval) FindStep(level int, approver string) *ApprovalStep {
	for i := range a.Steps {
		if a.Steps[i].Level == level && a.Steps[i].Approver == approver {
			return &a.Steps[i]
		}
	}
	return nil
}

// AllApproved reports whether every step in the hierarchy is Approved.
func (a *Approval) AllApproved() bool {
	for _, s := range a.Steps {
		if s.Status != StepApproved {
			return false
		}
	}
	return len(a.Steps) > 0
}
