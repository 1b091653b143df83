package models

import "time"

// ActivityLog is the database representation of an append-only log entry.
type ActivityLog struct {
	LogID       string    `db:"log_id"`
	QuotationID string    `db:"quotation_id"`
	Action      string    `db:"action"`
	PerformedBy string    `db:"performed_by"`
	Description string    `db:"description"`
	Timestamp   time.Time `db:"timestamp"`
}
