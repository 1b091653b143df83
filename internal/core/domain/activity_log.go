package domain

import "time"

// LogAction tags an entry in the append-only activity log.
type LogAction string

const (
	ActionCreate     LogAction = "create"
	ActionSaveDraft  LogAction = "save_draft"
	ActionEdit       LogAction = "edit"
	ActionApprove    LogAction = "approve"
	ActionReject     LogAction = "reject"
	ActionCancel     LogAction = "cancel"
	ActionUnlock     LogAction = "unlock"
	ActionDuplicate  LogAction = "duplicate"
	ActionUpdateFlow LogAction = "update_flow"
	ActionDelete     LogAction = "delete"
)

// ActivityLog is an append-only record of an action taken against a quotation.
// Entries are never mutated or deleted.
type ActivityLog struct {
	LogID       string    `json:"logID"`
	QuotationID string    `json:"quotationID"`
	Action      LogAction `json:"action"`
	PerformedBy string    `json:"performedBy"` // username
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}
