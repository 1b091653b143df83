package repositories

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

// QuotationReader defines read operations for quotation data.
type QuotationReader interface {
	// FindQuotationByID retrieves a quotation and its line items.
	FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error)

	// FindQuotations retrieves a page of quotations ordered by creation time
	// descending, together with the total count.
	FindQuotations(ctx context.Context, limit, offset int) ([]domain.Quotation, int64, error)

	// FindQuotationsByCreator retrieves every quotation created by a username.
	FindQuotationsByCreator(ctx context.Context, username string) ([]domain.Quotation, error)

	// FindQuotationsForApprover retrieves every quotation whose approval
	// hierarchy contains the given approver at any level.
	FindQuotationsForApprover(ctx context.Context, approver string) ([]domain.Quotation, error)

	// FindPendingQuotations retrieves quotations whose document status is
	// Pending, used by the approval digest.
	FindPendingQuotations(ctx context.Context) ([]domain.Quotation, error)
}

// QuotationWriter defines write operations for quotation data.
type QuotationWriter interface {
	// CreateQuotation inserts a quotation with its items, allocating the first
	// free run number (>= runFloor) for the quotation's type. Allocation is
	// serialized per type so concurrent creations never share a number. When
	// hierarchy is non-nil it is inserted in the same transaction and the
	// quotation is linked to it and moved to Pending; a failure anywhere rolls
	// the whole document back. Log entries commit in the same transaction.
	CreateQuotation(ctx context.Context, quotation domain.Quotation, hierarchy *domain.Approval, runFloor int, logEntries []*domain.ActivityLog) (*domain.Quotation, error)

	// UpdateQuotation rewrites a quotation and its items. When reallocateRun is
	// true a fresh run number for the (changed) type is allocated under the
	// same per-type serialization as CreateQuotation.
	UpdateQuotation(ctx context.Context, quotation domain.Quotation, reallocateRun bool, runFloor int, logEntry *domain.ActivityLog) (*domain.Quotation, error)

	// DeleteQuotation removes a quotation and its items; the log entry (which
	// outlives the document) commits in the same transaction.
	DeleteQuotation(ctx context.Context, quotationID string, logEntry *domain.ActivityLog) error
}

// QuotationRepositoryFacade combines all quotation repository interfaces.
type QuotationRepositoryFacade interface {
	QuotationReader
	QuotationWriter
}
