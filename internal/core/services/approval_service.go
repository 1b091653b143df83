package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jakkitOptx/quotation-backend-neon/internal/apperrors"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils/approval"
)

// approvalService orchestrates the approval workflow. The state machine itself
// lives in the approval package; this service adds authorization, persistence
// and notification dispatch around it.
type approvalService struct {
	approvalRepo    portsrepo.ApprovalRepositoryFacade
	quotationRepo   portsrepo.QuotationRepositoryFacade
	flowRepo        portsrepo.FlowRepositoryFacade
	userRepo        portsrepo.UserRepositoryFacade
	notificationSvc portssvc.NotificationSvcFacade
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(approvalRepo portsrepo.ApprovalRepositoryFacade, quotationRepo portsrepo.QuotationRepositoryFacade, flowRepo portsrepo.FlowRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, notificationSvc portssvc.NotificationSvcFacade) portssvc.ApprovalSvcFacade {
	return &approvalService{
		approvalRepo:    approvalRepo,
		quotationRepo:   quotationRepo,
		flowRepo:        flowRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
	}
}

var _ portssvc.ApprovalSvcFacade = (*approvalService)(nil)

func (s *approvalService) CreateApproval(ctx context.Context, req dto.CreateApprovalRequest, creatorUsername string) (*domain.Approval, error) {
	quotation, err := s.quotationRepo.FindQuotationByID(ctx, req.QuotationID)
	if err != nil {
		return nil, err
	}
	if quotation.ApprovalID != "" {
		return nil, apperrors.NewDuplicateError(
			fmt.Sprintf("quotation %s already has hierarchy %s", req.QuotationID, quotation.ApprovalID))
	}

	now := time.Now()
	var hierarchy domain.Approval
	switch {
	case len(req.Steps) > 0:
		steps := make([]domain.ApprovalStep, len(req.Steps))
		for i, sr := range req.Steps {
			steps[i] = domain.ApprovalStep{
				Level:    sr.Level,
				Approver: sr.Approver,
				Status:   domain.StepPending,
			}
		}
		hierarchy = domain.Approval{
			ApprovalID:  uuid.NewString(),
			QuotationID: req.QuotationID,
			Steps:       steps,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     creatorUsername,
				LastUpdatedAt: now,
				LastUpdatedBy: creatorUsername,
			},
		}
	case req.FlowID != "":
		flow, err := s.flowRepo.FindFlowByID(ctx, req.FlowID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve flow %s: %w", req.FlowID, err)
		}
		if len(flow.Steps) == 0 {
			return nil, apperrors.NewValidationError(fmt.Sprintf("flow %s has no steps", req.FlowID))
		}
		hierarchy = approval.InstantiateFromTemplate(req.QuotationID, flow.Steps, creatorUsername, now)
	default:
		return nil, apperrors.NewValidationError("either approvalHierarchy or flowId is required")
	}

	logEntry := &domain.ActivityLog{
		LogID:       uuid.NewString(),
		QuotationID: req.QuotationID,
		Action:      domain.ActionCreate,
		PerformedBy: creatorUsername,
		Description: fmt.Sprintf("Approval hierarchy created for %s", quotation.DocumentCode()),
		Timestamp:   now,
	}
	if err := s.approvalRepo.CreateApproval(ctx, hierarchy, logEntry); err != nil {
		return nil, fmt.Errorf("failed to create approval hierarchy: %w", err)
	}

	if first, state := approval.DeriveCurrentStep(hierarchy.Steps); state == approval.StateActionable {
		s.notificationSvc.Dispatch(ctx, []approval.NotificationIntent{{
			Recipient: first.Approver,
			Title:     "Quotation awaiting your approval",
			Message:   fmt.Sprintf("%s is waiting for your approval at level %d", quotation.DocumentCode(), first.Level),
			Type:      domain.NotificationApproval,
		}}, creatorUsername)
	}

	return &hierarchy, nil
}

func (s *approvalService) GetApproval(ctx context.Context, approvalID string) (*domain.Approval, error) {
	return s.approvalRepo.FindApprovalByID(ctx, approvalID)
}

func (s *approvalService) GetApprovalStatus(ctx context.Context, approvalID string) (*dto.ApprovalStatusResponse, error) {
	hierarchy, err := s.approvalRepo.FindApprovalByID(ctx, approvalID)
	if err != nil {
		return nil, err
	}

	entries := make([]dto.ApprovalStatusEntry, len(hierarchy.Steps))
	for i, step := range hierarchy.Steps {
		entries[i] = dto.ApprovalStatusEntry{
			Level:    step.Level,
			Approver: step.Approver,
			Status:   step.Status,
		}
	}

	resp := &dto.ApprovalStatusResponse{
		ApprovalID:  hierarchy.ApprovalID,
		QuotationID: hierarchy.QuotationID,
		Status:      entries,
	}
	switch current, state := approval.DeriveCurrentStep(hierarchy.Steps); state {
	case approval.StateActionable:
		level := current.Level
		resp.CurrentLevel = &level
	case approval.StateResolved:
		resp.Resolved = true
	case approval.StateBlocked:
		resp.Blocked = true
	}
	return resp, nil
}

func (s *approvalService) Transition(ctx context.Context, approvalID string, req dto.TransitionRequest, actingUsername string) (*dto.TransitionResponse, error) {
	actor, err := s.userRepo.FindUserByUsername(ctx, actingUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve acting user %s: %w", actingUsername, err)
	}
	if err := authorizeTransition(actor, req.Level, req.Approver); err != nil {
		return nil, err
	}

	hierarchy, err := s.approvalRepo.FindApprovalByID(ctx, approvalID)
	if err != nil {
		return nil, err
	}

	var outcome approval.Outcome
	now := time.Now()
	err = s.approvalRepo.Transition(ctx, hierarchy.QuotationID, func(q domain.Quotation, a domain.Approval) (domain.Quotation, domain.Approval, *domain.ActivityLog, error) {
		var applyErr error
		outcome, applyErr = approval.ApplyTransition(q, a, req.Level, req.Approver, domain.StepStatus(req.Status), actingUsername, now)
		if applyErr != nil {
			return q, a, nil, applyErr
		}
		outcome.Approval.LastUpdatedAt = now
		outcome.Approval.LastUpdatedBy = actingUsername
		outcome.Quotation.LastUpdatedAt = now
		outcome.Quotation.LastUpdatedBy = actingUsername
		logEntry := &domain.ActivityLog{
			LogID:       uuid.NewString(),
			QuotationID: q.QuotationID,
			Action:      outcome.LogAction,
			PerformedBy: actingUsername,
			Description: outcome.LogDescription,
			Timestamp:   now,
		}
		return outcome.Quotation, outcome.Approval, logEntry, nil
	})
	if err != nil {
		return nil, err
	}

	// Notifications go out only after the transition committed.
	s.notificationSvc.Dispatch(ctx, outcome.Intents, actingUsername)

	return &dto.TransitionResponse{
		Message:   outcome.LogDescription,
		Quotation: outcome.Quotation,
		Approval:  outcome.Approval,
	}, nil
}

func (s *approvalService) ResetApproval(ctx context.Context, quotationID string, actingUsername string) (*domain.Approval, error) {
	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if !quotation.CanReset() {
		return nil, apperrors.NewInvalidStateError(
			fmt.Sprintf("quotation %s is %s; only Canceled or Approved documents can be unlocked", quotationID, quotation.ApprovalStatus))
	}

	hierarchy, err := s.approvalRepo.FindApprovalByQuotationID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	reset := approval.ResetSteps(*hierarchy)
	reset.LastUpdatedAt = now
	reset.LastUpdatedBy = actingUsername

	unlocked := *quotation
	unlocked.ApprovalStatus = domain.StatusPending
	unlocked.LastUpdatedAt = now
	unlocked.LastUpdatedBy = actingUsername

	logEntry := &domain.ActivityLog{
		LogID:       uuid.NewString(),
		QuotationID: quotationID,
		Action:      domain.ActionUnlock,
		PerformedBy: actingUsername,
		Description: fmt.Sprintf("Unlocked %s back to Pending", quotation.DocumentCode()),
		Timestamp:   now,
	}
	if err := s.approvalRepo.SaveReset(ctx, reset, unlocked, logEntry); err != nil {
		return nil, fmt.Errorf("failed to reset hierarchy for quotation %s: %w", quotationID, err)
	}
	return &reset, nil
}

func (s *approvalService) UpdateQuotationFlow(ctx context.Context, quotationID string, flowID string, actingUsername string) (*domain.Approval, error) {
	quotation, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	flow, err := s.flowRepo.FindFlowByID(ctx, flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve flow %s: %w", flowID, err)
	}
	if len(flow.Steps) == 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("flow %s has no steps", flowID))
	}

	now := time.Now()
	hierarchy := approval.InstantiateFromTemplate(quotationID, flow.Steps, actingUsername, now)
	logEntry := &domain.ActivityLog{
		LogID:       uuid.NewString(),
		QuotationID: quotationID,
		Action:      domain.ActionUpdateFlow,
		PerformedBy: actingUsername,
		Description: fmt.Sprintf("Hierarchy of %s replaced from flow %q", quotation.DocumentCode(), flow.Name),
		Timestamp:   now,
	}
	if err := s.approvalRepo.ReplaceApproval(ctx, hierarchy, logEntry); err != nil {
		return nil, fmt.Errorf("failed to replace hierarchy for quotation %s: %w", quotationID, err)
	}
	return &hierarchy, nil
}

// authorizeTransition checks that the actor may act at the given step. Admins
// may act anywhere; everyone else must be the step's approver and hold an
// authorization level covering the step's level.
func authorizeTransition(actor *domain.User, level int, approver string) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.Username != approver {
		return apperrors.NewForbiddenError(
			fmt.Sprintf("user %s cannot act for approver %s", actor.Username, approver))
	}
	if actor.Level < level {
		return apperrors.NewForbiddenError(
			fmt.Sprintf("user %s (level %d) cannot act at level %d", actor.Username, actor.Level, level))
	}
	return nil
}
