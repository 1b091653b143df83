package services

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
)

// QuotationSvcFacade exposes quotation document operations.
type QuotationSvcFacade interface {
	// CreateQuotation computes totals, allocates a run number and persists the
	// document; unless saved as draft it also instantiates the creator's
	// approval flow.
	CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest, creatorUsername string) (*domain.Quotation, error)

	// GetQuotation retrieves one quotation with items.
	GetQuotation(ctx context.Context, quotationID string) (*domain.Quotation, error)

	// ListQuotations returns a page of quotations plus pagination metadata.
	ListQuotations(ctx context.Context, page, limit int) (*dto.QuotationListResponse, error)

	// ListQuotationsByCreator returns every quotation created by a username.
	ListQuotationsByCreator(ctx context.Context, username string) ([]domain.Quotation, error)

	// ListQuotationsForApprover returns every quotation whose hierarchy
	// contains the approver.
	ListQuotationsForApprover(ctx context.Context, approver string) ([]domain.Quotation, error)

	// UpdateQuotation recomputes totals and rewrites the document; a type
	// change reallocates the run number.
	UpdateQuotation(ctx context.Context, quotationID string, req dto.UpdateQuotationRequest, actingUsername string) (*domain.Quotation, error)

	// UpdateReason records the reason attached to a cancellation or edit.
	UpdateReason(ctx context.Context, quotationID, reason, actingUsername string) (*domain.Quotation, error)

	// DuplicateQuotation clones a document under a fresh run number with a
	// newly instantiated hierarchy and cleared cancellation fields.
	DuplicateQuotation(ctx context.Context, quotationID, actingUsername string) (*domain.Quotation, error)

	// DeleteQuotation hard-deletes a document, leaving the activity log behind.
	DeleteQuotation(ctx context.Context, quotationID, actingUsername string) error
}
