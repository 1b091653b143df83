package repositories

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

// LogAppender appends to the activity log. Entries are never updated or removed.
type LogAppender interface {
	// AppendLog persists one log entry.
	AppendLog(ctx context.Context, entry domain.ActivityLog) error
}

// LogReader defines read operations for the activity log.
type LogReader interface {
	// FindLogsByQuotationID retrieves a quotation's log entries, newest first.
	FindLogsByQuotationID(ctx context.Context, quotationID string) ([]domain.ActivityLog, error)
}

// LogRepositoryFacade combines the activity log interfaces.
type LogRepositoryFacade interface {
	LogAppender
	LogReader
}
