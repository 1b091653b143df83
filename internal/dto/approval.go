package dto

import "github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"

// ApprovalStepRequest is one step of a hierarchy being created explicitly.
type ApprovalStepRequest struct {
	Level    int    `json:"level" binding:"required,min=1"`
	Approver string `json:"approver" binding:"required,email"`
}

// CreateApprovalRequest creates a hierarchy for a quotation, either from an
// explicit step list or from a flow template.
type CreateApprovalRequest struct {
	QuotationID string                `json:"quotationId" binding:"required"`
	Steps       []ApprovalStepRequest `json:"approvalHierarchy" binding:"omitempty,min=1,dive"`
	FlowID      string                `json:"flowId"`
}

// TransitionRequest applies a status change at one (level, approver) step.
type TransitionRequest struct {
	Level    int    `json:"level" binding:"required,min=1"`
	Approver string `json:"approver" binding:"required,email"`
	Status   string `json:"status" binding:"required,oneof=Approved Rejected Canceled"`
}

// UpdateQuotationFlowRequest re-templates a quotation's hierarchy.
type UpdateQuotationFlowRequest struct {
	FlowID string `json:"flowId" binding:"required"`
}

// ApprovalStatusEntry is one row of a status summary.
type ApprovalStatusEntry struct {
	Level    int               `json:"level"`
	Approver string            `json:"approver"`
	Status   domain.StepStatus `json:"status"`
}

// ApprovalStatusResponse summarizes a hierarchy's progress.
type ApprovalStatusResponse struct {
	ApprovalID   string                `json:"approvalID"`
	QuotationID  string                `json:"quotationID"`
	Status       []ApprovalStatusEntry `json:"status"`
	CurrentLevel *int                  `json:"currentLevel,omitempty"`
	Resolved     bool                  `json:"resolved"`
	Blocked      bool                  `json:"blocked"`
}

// TransitionResponse returns the mutated state after a transition.
type TransitionResponse struct {
	Message   string           `json:"message"`
	Quotation domain.Quotation `json:"quotation"`
	Approval  domain.Approval  `json:"approval"`
}
