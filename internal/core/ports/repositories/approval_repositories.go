package repositories

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

// TransitionFunc computes a transition over a locked quotation and its
// hierarchy. Whatever it returns is persisted atomically with the log entry.
type TransitionFunc func(q domain.Quotation, a domain.Approval) (domain.Quotation, domain.Approval, *domain.ActivityLog, error)

// ApprovalReader defines read operations for approval hierarchies.
type ApprovalReader interface {
	// FindApprovalByID retrieves a hierarchy with its steps ordered by level.
	FindApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error)

	// FindApprovalByQuotationID retrieves the active hierarchy of a quotation.
	FindApprovalByQuotationID(ctx context.Context, quotationID string) (*domain.Approval, error)
}

// ApprovalWriter defines write operations for approval hierarchies. Every
// method that touches both the hierarchy and its quotation commits them in a
// single transaction; the original system saved them independently, which left
// a partial-failure window this interface deliberately closes.
type ApprovalWriter interface {
	// CreateApproval inserts a hierarchy, links it to its quotation and sets
	// the document status to Pending.
	CreateApproval(ctx context.Context, approval domain.Approval, logEntry *domain.ActivityLog) error

	// ReplaceApproval discards the quotation's current hierarchy and installs
	// the given one, resetting the document status to Pending.
	ReplaceApproval(ctx context.Context, approval domain.Approval, logEntry *domain.ActivityLog) error

	// SaveReset persists a wholesale hierarchy reset together with the
	// quotation's return to Pending.
	SaveReset(ctx context.Context, approval domain.Approval, quotation domain.Quotation, logEntry *domain.ActivityLog) error

	// Transition locks the quotation row, loads the current quotation and
	// hierarchy, invokes fn, and persists the returned state plus log entry in
	// one transaction. The row lock serializes concurrent transitions on the
	// same quotation.
	Transition(ctx context.Context, quotationID string, fn TransitionFunc) error
}

// ApprovalRepositoryFacade combines all approval repository interfaces.
type ApprovalRepositoryFacade interface {
	ApprovalReader
	ApprovalWriter
}
