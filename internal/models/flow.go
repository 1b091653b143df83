package models

// ApproveFlow is the database representation of a reusable approval template.
type ApproveFlow struct {
	FlowID string `db:"flow_id"`
	Name   string `db:"name"`
	AuditFields
}

// FlowStep is one level row of an approval template.
type FlowStep struct {
	FlowID   string `db:"flow_id"`
	Level    int    `db:"level"`
	Approver string `db:"approver"`
}
