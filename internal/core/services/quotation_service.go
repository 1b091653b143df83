package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jakkitOptx/quotation-backend-neon/internal/apperrors"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils/approval"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils/money"
)

// quotationService provides quotation document operations. Monetary fields are
// always recomputed here from the submitted line items, never trusted from the
// request.
type quotationService struct {
	quotationRepo portsrepo.QuotationRepositoryFacade
	approvalRepo  portsrepo.ApprovalRepositoryFacade
	flowRepo      portsrepo.FlowRepositoryFacade
	userRepo      portsrepo.UserRepositoryFacade
	runFloor      int
	vatRate       decimal.Decimal
}

// NewQuotationService creates a new QuotationService. runFloor is the lowest
// run number ever allocated; vatRate is a fraction such as 0.07.
func NewQuotationService(quotationRepo portsrepo.QuotationRepositoryFacade, approvalRepo portsrepo.ApprovalRepositoryFacade, flowRepo portsrepo.FlowRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, runFloor int, vatRate decimal.Decimal) portssvc.QuotationSvcFacade {
	return &quotationService{
		quotationRepo: quotationRepo,
		approvalRepo:  approvalRepo,
		flowRepo:      flowRepo,
		userRepo:      userRepo,
		runFloor:      runFloor,
		vatRate:       vatRate,
	}
}

var _ portssvc.QuotationSvcFacade = (*quotationService)(nil)

func (s *quotationService) CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest, creatorUsername string) (*domain.Quotation, error) {
	creator, err := s.userRepo.FindUserByUsername(ctx, creatorUsername)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve creator %s: %w", creatorUsername, err)
	}
	if creator.CompanyCode == "" {
		return nil, apperrors.NewValidationError(fmt.Sprintf("user %s has no company code; cannot build a document code", creatorUsername))
	}

	now := time.Now()
	q := domain.Quotation{
		QuotationID:   uuid.NewString(),
		Title:         req.Title,
		Description:   req.Description,
		Allocation:    req.Allocation,
		Remark:        req.Remark,
		Type:          req.Type,
		CompanyCode:   creator.CompanyCode,
		ClientName:    req.ClientName,
		ClientID:      req.ClientID,
		SalePerson:    req.SalePerson,
		ProductName:   req.ProductName,
		ProjectName:   req.ProjectName,
		Period:        req.Period,
		DocumentDate:  req.DocumentDate,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		CreateBy:      req.CreateBy,
		ProposedBy:    req.ProposedBy,
		CreatedByUser: creator.Username,
		Department:    creator.Department,
		Team:          creator.Team,
		TeamGroup:     creator.TeamGroup,
		CreditTerm:    req.CreditTerm,
		ApprovalStatus: domain.StatusDraft,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creator.Username,
			LastUpdatedAt: now,
			LastUpdatedBy: creator.Username,
		},
	}
	money.ApplyTotals(&q, money.CalculateTotals(itemsFromRequests(req.Items), req.Discount, req.Fee, s.vatRate))

	action := domain.ActionSaveDraft
	if !req.SaveAsDraft {
		action = domain.ActionCreate
	}
	logEntries := []*domain.ActivityLog{{
		LogID:       uuid.NewString(),
		QuotationID: q.QuotationID,
		Action:      action,
		PerformedBy: creator.Username,
		Description: fmt.Sprintf("Created quotation %q", q.Title),
		Timestamp:   now,
	}}

	// The hierarchy is resolved up front and inserted in the same transaction
	// as the document, so nothing is committed when the flow cannot be built.
	var hierarchy *domain.Approval
	if !req.SaveAsDraft {
		flow, err := s.resolveFlow(ctx, req.FlowID, creator)
		if err != nil {
			return nil, err
		}
		h := approval.InstantiateFromTemplate(q.QuotationID, flow.Steps, creator.Username, now)
		hierarchy = &h
		logEntries = append(logEntries, &domain.ActivityLog{
			LogID:       uuid.NewString(),
			QuotationID: q.QuotationID,
			Action:      domain.ActionCreate,
			PerformedBy: creator.Username,
			Description: fmt.Sprintf("Approval hierarchy created from flow %q", flow.Name),
			Timestamp:   now,
		})
	}

	created, err := s.quotationRepo.CreateQuotation(ctx, q, hierarchy, s.runFloor, logEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to create quotation: %w", err)
	}
	return created, nil
}

func (s *quotationService) GetQuotation(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	return s.quotationRepo.FindQuotationByID(ctx, quotationID)
}

func (s *quotationService) ListQuotations(ctx context.Context, page, limit int) (*dto.QuotationListResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	quotations, total, err := s.quotationRepo.FindQuotations(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotations: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return &dto.QuotationListResponse{
		Data:        quotations,
		Total:       total,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}

func (s *quotationService) ListQuotationsByCreator(ctx context.Context, username string) ([]domain.Quotation, error) {
	return s.quotationRepo.FindQuotationsByCreator(ctx, username)
}

func (s *quotationService) ListQuotationsForApprover(ctx context.Context, approver string) ([]domain.Quotation, error) {
	return s.quotationRepo.FindQuotationsForApprover(ctx, approver)
}

func (s *quotationService) UpdateQuotation(ctx context.Context, quotationID string, req dto.UpdateQuotationRequest, actingUsername string) (*domain.Quotation, error) {
	existing, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}
	if existing.ApprovalStatus == domain.StatusApproved || existing.ApprovalStatus == domain.StatusCanceled {
		return nil, apperrors.NewInvalidStateError(
			fmt.Sprintf("quotation %s is %s; unlock it before editing", quotationID, existing.ApprovalStatus))
	}

	now := time.Now()
	reallocateRun := req.Type != existing.Type

	updated := *existing
	updated.Title = req.Title
	updated.Description = req.Description
	updated.Allocation = req.Allocation
	updated.Remark = req.Remark
	updated.Type = req.Type
	updated.ClientName = req.ClientName
	updated.ClientID = req.ClientID
	updated.SalePerson = req.SalePerson
	updated.ProductName = req.ProductName
	updated.ProjectName = req.ProjectName
	updated.Period = req.Period
	updated.DocumentDate = req.DocumentDate
	updated.StartDate = req.StartDate
	updated.EndDate = req.EndDate
	updated.CreateBy = req.CreateBy
	updated.ProposedBy = req.ProposedBy
	updated.CreditTerm = req.CreditTerm
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actingUsername
	money.ApplyTotals(&updated, money.CalculateTotals(itemsFromRequests(req.Items), req.Discount, req.Fee, s.vatRate))

	logEntry := &domain.ActivityLog{
		LogID:       uuid.NewString(),
		QuotationID: quotationID,
		Action:      domain.ActionEdit,
		PerformedBy: actingUsername,
		Description: fmt.Sprintf("Edited %s", existing.DocumentCode()),
		Timestamp:   now,
	}
	result, err := s.quotationRepo.UpdateQuotation(ctx, updated, reallocateRun, s.runFloor, logEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to update quotation %s: %w", quotationID, err)
	}
	return result, nil
}

func (s *quotationService) UpdateReason(ctx context.Context, quotationID, reason, actingUsername string) (*domain.Quotation, error) {
	existing, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated := *existing
	updated.Reason = reason
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = actingUsername

	logEntry := &domain.ActivityLog{
		LogID:       uuid.NewString(),
		QuotationID: quotationID,
		Action:      domain.ActionEdit,
		PerformedBy: actingUsername,
		Description: fmt.Sprintf("Reason updated on %s: %s", existing.DocumentCode(), reason),
		Timestamp:   now,
	}
	result, err := s.quotationRepo.UpdateQuotation(ctx, updated, false, s.runFloor, logEntry)
	if err != nil {
		return nil, fmt.Errorf("failed to update reason on quotation %s: %w", quotationID, err)
	}
	return result, nil
}

// DuplicateQuotation clones a document under a fresh identity. The clone gets
// its own run number, a newly instantiated hierarchy copied from the source's
// steps (all Pending) and no cancellation metadata, whatever state the source
// is in.
func (s *quotationService) DuplicateQuotation(ctx context.Context, quotationID, actingUsername string) (*domain.Quotation, error) {
	source, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	clone := *source
	clone.QuotationID = uuid.NewString()
	clone.RunNumber = 0
	clone.ApprovalID = ""
	clone.ApprovalStatus = domain.StatusDraft
	clone.CancelDate = nil
	clone.Reason = ""
	clone.CanceledBy = ""
	clone.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     actingUsername,
		LastUpdatedAt: now,
		LastUpdatedBy: actingUsername,
	}
	clone.Items = make([]domain.QuotationItem, len(source.Items))
	for i, item := range source.Items {
		item.ItemID = ""
		clone.Items[i] = item
	}

	logEntries := []*domain.ActivityLog{{
		LogID:       uuid.NewString(),
		QuotationID: clone.QuotationID,
		Action:      domain.ActionDuplicate,
		PerformedBy: actingUsername,
		Description: fmt.Sprintf("Duplicated from %s", source.DocumentCode()),
		Timestamp:   now,
	}}

	var hierarchy *domain.Approval
	sourceHierarchy, err := s.approvalRepo.FindApprovalByQuotationID(ctx, quotationID)
	switch {
	case err == nil:
		template := make([]domain.FlowStep, len(sourceHierarchy.Steps))
		for i, step := range sourceHierarchy.Steps {
			template[i] = domain.FlowStep{Level: step.Level, Approver: step.Approver}
		}
		h := approval.InstantiateFromTemplate(clone.QuotationID, template, actingUsername, now)
		hierarchy = &h
		logEntries = append(logEntries, &domain.ActivityLog{
			LogID:       uuid.NewString(),
			QuotationID: clone.QuotationID,
			Action:      domain.ActionCreate,
			PerformedBy: actingUsername,
			Description: "Approval hierarchy copied from duplicated document",
			Timestamp:   now,
		})
	case errors.Is(err, apperrors.ErrNotFound):
		// A draft source has no hierarchy; the clone stays a draft.
	default:
		return nil, fmt.Errorf("failed to load source hierarchy for %s: %w", quotationID, err)
	}

	created, err := s.quotationRepo.CreateQuotation(ctx, clone, hierarchy, s.runFloor, logEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to duplicate quotation %s: %w", quotationID, err)
	}
	return created, nil
}

func (s *quotationService) DeleteQuotation(ctx context.Context, quotationID, actingUsername string) error {
	existing, err := s.quotationRepo.FindQuotationByID(ctx, quotationID)
	if err != nil {
		return err
	}

	logEntry := &domain.ActivityLog{
		LogID:       uuid.NewString(),
		QuotationID: quotationID,
		Action:      domain.ActionDelete,
		PerformedBy: actingUsername,
		Description: fmt.Sprintf("Deleted %s", existing.DocumentCode()),
		Timestamp:   time.Now(),
	}
	if err := s.quotationRepo.DeleteQuotation(ctx, quotationID, logEntry); err != nil {
		return fmt.Errorf("failed to delete quotation %s: %w", quotationID, err)
	}
	return nil
}

// resolveFlow picks the explicit flow when given, otherwise the creator's
// default flow.
func (s *quotationService) resolveFlow(ctx context.Context, flowID string, creator *domain.User) (*domain.ApproveFlow, error) {
	if flowID == "" {
		flowID = creator.FlowID
	}
	if flowID == "" {
		return nil, apperrors.NewValidationError(
			fmt.Sprintf("no flow given and user %s has no default approval flow", creator.Username))
	}
	flow, err := s.flowRepo.FindFlowByID(ctx, flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve flow %s: %w", flowID, err)
	}
	if len(flow.Steps) == 0 {
		return nil, apperrors.NewValidationError(fmt.Sprintf("flow %s has no steps", flowID))
	}
	return flow, nil
}

func itemsFromRequests(reqs []dto.QuotationItemRequest) []domain.QuotationItem {
	items := make([]domain.QuotationItem, len(reqs))
	for i, r := range reqs {
		items[i] = domain.QuotationItem{
			Description: r.Description,
			Unit:        r.Unit,
			UnitPrice:   r.UnitPrice,
		}
	}
	return items
}
