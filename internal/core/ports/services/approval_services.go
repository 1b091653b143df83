package services

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
)

// ApprovalSvcFacade exposes the approval workflow operations.
type ApprovalSvcFacade interface {
	// CreateApproval instantiates a hierarchy for a quotation from explicit
	// steps or from a flow template, and moves the document to Pending.
	CreateApproval(ctx context.Context, req dto.CreateApprovalRequest, creatorUsername string) (*domain.Approval, error)

	// GetApproval retrieves a hierarchy by its ID.
	GetApproval(ctx context.Context, approvalID string) (*domain.Approval, error)

	// GetApprovalStatus summarizes a hierarchy's progress, re-deriving the
	// current actionable level from the step statuses.
	GetApprovalStatus(ctx context.Context, approvalID string) (*dto.ApprovalStatusResponse, error)

	// Transition applies an approve/reject/cancel at one step on behalf of the
	// authenticated user and fans out notifications after the state committed.
	Transition(ctx context.Context, approvalID string, req dto.TransitionRequest, actingUsername string) (*dto.TransitionResponse, error)

	// ResetApproval unlocks a Canceled or Approved quotation: every step back
	// to Pending, document back to Pending.
	ResetApproval(ctx context.Context, quotationID string, actingUsername string) (*domain.Approval, error)

	// UpdateQuotationFlow replaces a quotation's hierarchy from a flow
	// template, discarding the previous one.
	UpdateQuotationFlow(ctx context.Context, quotationID string, flowID string, actingUsername string) (*domain.Approval, error)
}
