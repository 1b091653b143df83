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
)

// flowService manages reusable approval flow templates.
type flowService struct {
	flowRepo portsrepo.FlowRepositoryFacade
}

// NewFlowService creates a new FlowService.
func NewFlowService(flowRepo portsrepo.FlowRepositoryFacade) portssvc.FlowSvcFacade {
	return &flowService{flowRepo: flowRepo}
}

var _ portssvc.FlowSvcFacade = (*flowService)(nil)

func (s *flowService) CreateFlow(ctx context.Context, req dto.CreateFlowRequest, creatorUsername string) (*domain.ApproveFlow, error) {
	steps, err := flowStepsFromRequests(req.Steps)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	flow := domain.ApproveFlow{
		FlowID: uuid.NewString(),
		Name:   req.Name,
		Steps:  steps,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUsername,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUsername,
		},
	}
	if err := s.flowRepo.SaveFlow(ctx, flow); err != nil {
		return nil, fmt.Errorf("failed to save flow: %w", err)
	}
	return &flow, nil
}

func (s *flowService) GetFlow(ctx context.Context, flowID string) (*domain.ApproveFlow, error) {
	return s.flowRepo.FindFlowByID(ctx, flowID)
}

func (s *flowService) ListFlows(ctx context.Context) ([]domain.ApproveFlow, error) {
	return s.flowRepo.FindFlows(ctx)
}

func (s *flowService) UpdateFlow(ctx context.Context, flowID string, req dto.UpdateFlowRequest, actingUsername string) (*domain.ApproveFlow, error) {
	existing, err := s.flowRepo.FindFlowByID(ctx, flowID)
	if err != nil {
		return nil, err
	}

	steps, err := flowStepsFromRequests(req.Steps)
	if err != nil {
		return nil, err
	}

	updated := *existing
	updated.Name = req.Name
	updated.Steps = steps
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = actingUsername
	if err := s.flowRepo.UpdateFlow(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update flow %s: %w", flowID, err)
	}
	return &updated, nil
}

func (s *flowService) DeleteFlow(ctx context.Context, flowID string) error {
	if _, err := s.flowRepo.FindFlowByID(ctx, flowID); err != nil {
		return err
	}
	return s.flowRepo.DeleteFlow(ctx, flowID)
}

// flowStepsFromRequests validates level uniqueness; duplicate levels would make
// the derived current step ambiguous once instantiated.
func flowStepsFromRequests(reqs []dto.FlowStepRequest) ([]domain.FlowStep, error) {
	seen := make(map[int]bool, len(reqs))
	steps := make([]domain.FlowStep, len(reqs))
	for i, r := range reqs {
		if seen[r.Level] {
			return nil, apperrors.NewValidationError(fmt.Sprintf("duplicate level %d in flow steps", r.Level))
		}
		seen[r.Level] = true
		steps[i] = domain.FlowStep{Level: r.Level, Approver: r.Approver}
	}
	return steps, nil
}
