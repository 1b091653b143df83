package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jakkitOptx/quotation-backend-neon/internal/apperrors"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
)

type ApprovalServiceTestSuite struct {
	suite.Suite
	mockApprovalRepo  *MockApprovalRepository
	mockQuotationRepo *MockQuotationRepository
	mockFlowRepo      *MockFlowRepository
	mockUserRepo      *MockUserRepository
	mockNotifications *MockNotificationService
	service           portssvc.ApprovalSvcFacade
}

func (suite *ApprovalServiceTestSuite) SetupTest() {
	suite.mockApprovalRepo = new(MockApprovalRepository)
	suite.mockQuotationRepo = new(MockQuotationRepository)
	suite.mockFlowRepo = new(MockFlowRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockNotifications = new(MockNotificationService)
	suite.service = services.NewApprovalService(
		suite.mockApprovalRepo,
		suite.mockQuotationRepo,
		suite.mockFlowRepo,
		suite.mockUserRepo,
		suite.mockNotifications,
	)
}

func pendingQuotation(quotationID string) *domain.Quotation {
	return &domain.Quotation{
		QuotationID:    quotationID,
		Title:          "Media plan",
		Type:           "M",
		RunNumber:      7,
		CompanyCode:    "OPTX",
		DocumentDate:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CreatedByUser:  "creator@optx.com",
		ApprovalStatus: domain.StatusPending,
	}
}

func twoStepHierarchy(approvalID, quotationID string) domain.Approval {
	return domain.Approval{
		ApprovalID:  approvalID,
		QuotationID: quotationID,
		Steps: []domain.ApprovalStep{
			{Level: 1, Approver: "head@optx.com", Status: domain.StepPending},
			{Level: 2, Approver: "director@optx.com", Status: domain.StepPending},
		},
	}
}

func (suite *ApprovalServiceTestSuite) TestCreateApproval_ExplicitSteps() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	quotation := pendingQuotation(quotationID)
	quotation.ApprovalStatus = domain.StatusDraft
	quotation.ApprovalID = ""

	req := dto.CreateApprovalRequest{
		QuotationID: quotationID,
		Steps: []dto.ApprovalStepRequest{
			{Level: 1, Approver: "head@optx.com"},
			{Level: 2, Approver: "director@optx.com"},
		},
	}

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(quotation, nil).Once()
	suite.mockApprovalRepo.On("CreateApproval", ctx, mock.AnythingOfType("domain.Approval"), mock.AnythingOfType("*domain.ActivityLog")).Return(nil).Once()
	suite.mockNotifications.On("Dispatch", ctx, mock.Anything, "creator@optx.com").Return().Once()

	created, err := suite.service.CreateApproval(ctx, req, "creator@optx.com")

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.ApprovalID)
	suite.Equal(quotationID, created.QuotationID)
	suite.Len(created.Steps, 2)
	for _, step := range created.Steps {
		suite.Equal(domain.StepPending, step.Status)
	}

	suite.mockQuotationRepo.AssertExpectations(suite.T())
	suite.mockApprovalRepo.AssertExpectations(suite.T())
	suite.mockNotifications.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestCreateApproval_AlreadyExists() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	quotation := pendingQuotation(quotationID)
	quotation.ApprovalID = uuid.NewString()

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(quotation, nil).Once()

	created, err := suite.service.CreateApproval(ctx, dto.CreateApprovalRequest{
		QuotationID: quotationID,
		Steps:       []dto.ApprovalStepRequest{{Level: 1, Approver: "head@optx.com"}},
	}, "creator@optx.com")

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockApprovalRepo.AssertNotCalled(suite.T(), "CreateApproval", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestCreateApproval_NoStepsNoFlow() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	quotation := pendingQuotation(quotationID)
	quotation.ApprovalID = ""

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(quotation, nil).Once()

	_, err := suite.service.CreateApproval(ctx, dto.CreateApprovalRequest{QuotationID: quotationID}, "creator@optx.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ApprovalServiceTestSuite) TestTransition_PartialApprovalKeepsPending() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	approvalID := uuid.NewString()
	actor := &domain.User{Username: "head@optx.com", Level: 1, Role: domain.RoleUser}
	hierarchy := twoStepHierarchy(approvalID, quotationID)

	suite.mockApprovalRepo.TxQuotation = *pendingQuotation(quotationID)
	suite.mockApprovalRepo.TxApproval = hierarchy

	suite.mockUserRepo.On("FindUserByUsername", ctx, "head@optx.com").Return(actor, nil).Once()
	suite.mockApprovalRepo.On("FindApprovalByID", ctx, approvalID).Return(&hierarchy, nil).Once()
	suite.mockApprovalRepo.On("Transition", ctx, quotationID, mock.AnythingOfType("repositories.TransitionFunc")).Return(nil).Once()
	suite.mockNotifications.On("Dispatch", ctx, mock.Anything, "head@optx.com").Return().Once()

	resp, err := suite.service.Transition(ctx, approvalID, dto.TransitionRequest{
		Level:    1,
		Approver: "head@optx.com",
		Status:   "Approved",
	}, "head@optx.com")

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Equal(domain.StatusPending, resp.Quotation.ApprovalStatus)
	suite.Equal(domain.StepApproved, resp.Approval.Steps[0].Status)
	suite.Equal(domain.StepPending, resp.Approval.Steps[1].Status)
	suite.mockApprovalRepo.AssertExpectations(suite.T())
	suite.mockNotifications.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestTransition_FinalApprovalApprovesDocument() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	approvalID := uuid.NewString()
	actor := &domain.User{Username: "director@optx.com", Level: 2, Role: domain.RoleUser}
	hierarchy := twoStepHierarchy(approvalID, quotationID)
	hierarchy.Steps[0].Status = domain.StepApproved

	suite.mockApprovalRepo.TxQuotation = *pendingQuotation(quotationID)
	suite.mockApprovalRepo.TxApproval = hierarchy

	suite.mockUserRepo.On("FindUserByUsername", ctx, "director@optx.com").Return(actor, nil).Once()
	suite.mockApprovalRepo.On("FindApprovalByID", ctx, approvalID).Return(&hierarchy, nil).Once()
	suite.mockApprovalRepo.On("Transition", ctx, quotationID, mock.AnythingOfType("repositories.TransitionFunc")).Return(nil).Once()
	suite.mockNotifications.On("Dispatch", ctx, mock.Anything, "director@optx.com").Return().Once()

	resp, err := suite.service.Transition(ctx, approvalID, dto.TransitionRequest{
		Level:    2,
		Approver: "director@optx.com",
		Status:   "Approved",
	}, "director@optx.com")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusApproved, resp.Quotation.ApprovalStatus)
	suite.Equal(domain.StepApproved, resp.Approval.Steps[1].Status)
}

func (suite *ApprovalServiceTestSuite) TestTransition_RejectAtLevelTwoRejectsDocument() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	approvalID := uuid.NewString()
	actor := &domain.User{Username: "director@optx.com", Level: 2, Role: domain.RoleUser}
	hierarchy := twoStepHierarchy(approvalID, quotationID)

	suite.mockApprovalRepo.TxQuotation = *pendingQuotation(quotationID)
	suite.mockApprovalRepo.TxApproval = hierarchy

	suite.mockUserRepo.On("FindUserByUsername", ctx, "director@optx.com").Return(actor, nil).Once()
	suite.mockApprovalRepo.On("FindApprovalByID", ctx, approvalID).Return(&hierarchy, nil).Once()
	suite.mockApprovalRepo.On("Transition", ctx, quotationID, mock.AnythingOfType("repositories.TransitionFunc")).Return(nil).Once()
	suite.mockNotifications.On("Dispatch", ctx, mock.Anything, "director@optx.com").Return().Once()

	resp, err := suite.service.Transition(ctx, approvalID, dto.TransitionRequest{
		Level:    2,
		Approver: "director@optx.com",
		Status:   "Rejected",
	}, "director@optx.com")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRejected, resp.Quotation.ApprovalStatus)
}

func (suite *ApprovalServiceTestSuite) TestTransition_LevelOneRejectKeepsDocumentPending() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	approvalID := uuid.NewString()
	actor := &domain.User{Username: "head@optx.com", Level: 1, Role: domain.RoleUser}
	hierarchy := twoStepHierarchy(approvalID, quotationID)

	suite.mockApprovalRepo.TxQuotation = *pendingQuotation(quotationID)
	suite.mockApprovalRepo.TxApproval = hierarchy

	suite.mockUserRepo.On("FindUserByUsername", ctx, "head@optx.com").Return(actor, nil).Once()
	suite.mockApprovalRepo.On("FindApprovalByID", ctx, approvalID).Return(&hierarchy, nil).Once()
	suite.mockApprovalRepo.On("Transition", ctx, quotationID, mock.AnythingOfType("repositories.TransitionFunc")).Return(nil).Once()
	suite.mockNotifications.On("Dispatch", ctx, mock.Anything, "head@optx.com").Return().Once()

	resp, err := suite.service.Transition(ctx, approvalID, dto.TransitionRequest{
		Level:    1,
		Approver: "head@optx.com",
		Status:   "Rejected",
	}, "head@optx.com")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, resp.Quotation.ApprovalStatus)
	suite.Equal(domain.StepRejected, resp.Approval.Steps[0].Status)
}

func (suite *ApprovalServiceTestSuite) TestTransition_ForbiddenForOtherApprover() {
	ctx := context.Background()
	approvalID := uuid.NewString()
	actor := &domain.User{Username: "someone@optx.com", Level: 5, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "someone@optx.com").Return(actor, nil).Once()

	_, err := suite.service.Transition(ctx, approvalID, dto.TransitionRequest{
		Level:    1,
		Approver: "head@optx.com",
		Status:   "Approved",
	}, "someone@optx.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockApprovalRepo.AssertNotCalled(suite.T(), "Transition", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestTransition_ForbiddenBelowStepLevel() {
	ctx := context.Background()
	approvalID := uuid.NewString()
	actor := &domain.User{Username: "director@optx.com", Level: 1, Role: domain.RoleUser}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "director@optx.com").Return(actor, nil).Once()

	_, err := suite.service.Transition(ctx, approvalID, dto.TransitionRequest{
		Level:    2,
		Approver: "director@optx.com",
		Status:   "Approved",
	}, "director@optx.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *ApprovalServiceTestSuite) TestTransition_AdminMayActForAnyone() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	approvalID := uuid.NewString()
	admin := &domain.User{Username: "admin@optx.com", Level: 1, Role: domain.RoleAdmin}
	hierarchy := twoStepHierarchy(approvalID, quotationID)

	suite.mockApprovalRepo.TxQuotation = *pendingQuotation(quotationID)
	suite.mockApprovalRepo.TxApproval = hierarchy

	suite.mockUserRepo.On("FindUserByUsername", ctx, "admin@optx.com").Return(admin, nil).Once()
	suite.mockApprovalRepo.On("FindApprovalByID", ctx, approvalID).Return(&hierarchy, nil).Once()
	suite.mockApprovalRepo.On("Transition", ctx, quotationID, mock.AnythingOfType("repositories.TransitionFunc")).Return(nil).Once()
	suite.mockNotifications.On("Dispatch", ctx, mock.Anything, "admin@optx.com").Return().Once()

	resp, err := suite.service.Transition(ctx, approvalID, dto.TransitionRequest{
		Level:    2,
		Approver: "director@optx.com",
		Status:   "Canceled",
	}, "admin@optx.com")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCanceled, resp.Quotation.ApprovalStatus)
	suite.Equal("director@optx.com", resp.Quotation.CanceledBy)
	suite.NotNil(resp.Quotation.CancelDate)
}

func (suite *ApprovalServiceTestSuite) TestTransition_NotPendingDocument() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	approvalID := uuid.NewString()
	actor := &domain.User{Username: "head@optx.com", Level: 1, Role: domain.RoleUser}
	hierarchy := twoStepHierarchy(approvalID, quotationID)

	locked := *pendingQuotation(quotationID)
	locked.ApprovalStatus = domain.StatusApproved
	suite.mockApprovalRepo.TxQuotation = locked
	suite.mockApprovalRepo.TxApproval = hierarchy

	suite.mockUserRepo.On("FindUserByUsername", ctx, "head@optx.com").Return(actor, nil).Once()
	suite.mockApprovalRepo.On("FindApprovalByID", ctx, approvalID).Return(&hierarchy, nil).Once()
	suite.mockApprovalRepo.On("Transition", ctx, quotationID, mock.AnythingOfType("repositories.TransitionFunc")).Return(nil).Once()

	_, err := suite.service.Transition(ctx, approvalID, dto.TransitionRequest{
		Level:    1,
		Approver: "head@optx.com",
		Status:   "Approved",
	}, "head@optx.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockNotifications.AssertNotCalled(suite.T(), "Dispatch", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestResetApproval_Success() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	approvalID := uuid.NewString()

	canceled := pendingQuotation(quotationID)
	canceled.ApprovalStatus = domain.StatusCanceled
	hierarchy := twoStepHierarchy(approvalID, quotationID)
	hierarchy.Steps[0].Status = domain.StepApproved
	hierarchy.Steps[1].Status = domain.StepCanceled

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(canceled, nil).Once()
	suite.mockApprovalRepo.On("FindApprovalByQuotationID", ctx, quotationID).Return(&hierarchy, nil).Once()
	suite.mockApprovalRepo.On("SaveReset", ctx, mock.AnythingOfType("domain.Approval"), mock.AnythingOfType("domain.Quotation"), mock.AnythingOfType("*domain.ActivityLog")).
		Run(func(args mock.Arguments) {
			unlocked := args.Get(2).(domain.Quotation)
			suite.Equal(domain.StatusPending, unlocked.ApprovalStatus)
		}).Return(nil).Once()

	reset, err := suite.service.ResetApproval(ctx, quotationID, "admin@optx.com")

	suite.Require().NoError(err)
	suite.Require().NotNil(reset)
	for _, step := range reset.Steps {
		suite.Equal(domain.StepPending, step.Status)
		suite.Nil(step.ApprovedAt)
	}
	suite.mockApprovalRepo.AssertExpectations(suite.T())
}

func (suite *ApprovalServiceTestSuite) TestResetApproval_PendingDocumentRejected() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	quotation := pendingQuotation(quotationID)

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(quotation, nil).Once()

	_, err := suite.service.ResetApproval(ctx, quotationID, "admin@optx.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockApprovalRepo.AssertNotCalled(suite.T(), "SaveReset", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ApprovalServiceTestSuite) TestUpdateQuotationFlow_ReplacesHierarchy() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	flowID := uuid.NewString()
	quotation := pendingQuotation(quotationID)
	flow := &domain.ApproveFlow{
		FlowID: flowID,
		Name:   "Finance review",
		Steps: []domain.FlowStep{
			{Level: 1, Approver: "finance@optx.com"},
			{Level: 2, Approver: "cfo@optx.com"},
		},
	}

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(quotation, nil).Once()
	suite.mockFlowRepo.On("FindFlowByID", ctx, flowID).Return(flow, nil).Once()
	suite.mockApprovalRepo.On("ReplaceApproval", ctx, mock.AnythingOfType("domain.Approval"), mock.AnythingOfType("*domain.ActivityLog")).Return(nil).Once()

	replaced, err := suite.service.UpdateQuotationFlow(ctx, quotationID, flowID, "admin@optx.com")

	suite.Require().NoError(err)
	suite.Require().NotNil(replaced)
	suite.Len(replaced.Steps, 2)
	suite.Equal("finance@optx.com", replaced.Steps[0].Approver)
	suite.Equal(domain.StepPending, replaced.Steps[0].Status)
	suite.mockApprovalRepo.AssertExpectations(suite.T())
}

func TestApprovalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApprovalServiceTestSuite))
}
