package domain

// FlowStep is one entry of a reusable approval template.
type FlowStep struct {
	Level    int    `json:"level"`
	Approver string `json:"approver"`
}

// ApproveFlow is a named, reusable ordered list of approval steps, decoupled
// from any specific quotation. Users reference their default flow by ID and
// new hierarchies are instantiated by copying its steps.
type ApproveFlow struct {
	FlowID string     `json:"flowID"`
	Name   string     `json:"name"`
	Steps  []FlowStep `json:"approvalHierarchy"`
	AuditFields
}
