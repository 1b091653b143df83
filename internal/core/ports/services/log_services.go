package services

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

// LogSvcFacade exposes the append-only activity log.
type LogSvcFacade interface {
	// Record appends one entry describing an action against a quotation.
	Record(ctx context.Context, quotationID string, action domain.LogAction, performedBy, description string) error

	// ListByQuotation returns a quotation's history, newest first.
	ListByQuotation(ctx context.Context, quotationID string) ([]domain.ActivityLog, error)
}
