package dto

// FlowStepRequest is one step of a flow template.
type FlowStepRequest struct {
	Level    int    `json:"level" binding:"required,min=1"`
	Approver string `json:"approver" binding:"required,email"`
}

// CreateFlowRequest creates a named approval flow template.
type CreateFlowRequest struct {
	Name  string            `json:"name" binding:"required"`
	Steps []FlowStepRequest `json:"approvalHierarchy" binding:"required,min=1,dive"`
}

// UpdateFlowRequest rewrites a template's name and steps.
type UpdateFlowRequest struct {
	Name  string            `json:"name" binding:"required"`
	Steps []FlowStepRequest `json:"approvalHierarchy" binding:"required,min=1,dive"`
}
