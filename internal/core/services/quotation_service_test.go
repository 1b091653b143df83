package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jakkitOptx/quotation-backend-neon/internal/apperrors"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
)

type QuotationServiceTestSuite struct {
	suite.Suite
	mockQuotationRepo *MockQuotationRepository
	mockApprovalRepo  *MockApprovalRepository
	mockFlowRepo      *MockFlowRepository
	mockUserRepo      *MockUserRepository
	service           portssvc.QuotationSvcFacade
}

func (suite *QuotationServiceTestSuite) SetupTest() {
	suite.mockQuotationRepo = new(MockQuotationRepository)
	suite.mockApprovalRepo = new(MockApprovalRepository)
	suite.mockFlowRepo = new(MockFlowRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewQuotationService(
		suite.mockQuotationRepo,
		suite.mockApprovalRepo,
		suite.mockFlowRepo,
		suite.mockUserRepo,
		1,
		decimal.NewFromFloat(0.07),
	)
}

func testCreator() *domain.User {
	return &domain.User{
		UserID:      uuid.NewString(),
		Username:    "creator@optx.com",
		Level:       1,
		CompanyCode: "OPTX",
		Department:  "Media",
		Team:        "Buying",
		TeamGroup:   "Digital",
		FlowID:      "flow-default",
	}
}

func createRequest() dto.CreateQuotationRequest {
	return dto.CreateQuotationRequest{
		Title:        "Q2 media plan",
		Type:         "M",
		ClientName:   "Acme Co",
		ClientID:     uuid.NewString(),
		SalePerson:   "sales@optx.com",
		ProductName:  "Display",
		ProjectName:  "Spring push",
		Period:       "Apr-Jun",
		DocumentDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		StartDate:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		CreateBy:     "creator@optx.com",
		ProposedBy:   "creator@optx.com",
		Items: []dto.QuotationItemRequest{
			{Description: "Banner package", Unit: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500)},
			{Description: "Video spots", Unit: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(1000)},
		},
		Discount: decimal.Zero,
		Fee:      decimal.Zero,
	}
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_DraftComputesTotals() {
	ctx := context.Background()
	req := createRequest()
	req.SaveAsDraft = true

	suite.mockUserRepo.On("FindUserByUsername", ctx, "creator@optx.com").Return(testCreator(), nil).Once()
	suite.mockQuotationRepo.On("CreateQuotation", ctx, mock.AnythingOfType("domain.Quotation"), (*domain.Approval)(nil), 1, mock.AnythingOfType("[]*domain.ActivityLog")).Return(nil, nil).Once()

	created, err := suite.service.CreateQuotation(ctx, req, "creator@optx.com")

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(domain.StatusDraft, created.ApprovalStatus)
	suite.Equal("OPTX", created.CompanyCode)
	suite.Equal("Media", created.Department)
	suite.True(created.Amount.Equal(decimal.NewFromInt(2000)), "amount = %s", created.Amount)
	suite.True(created.VAT.Equal(decimal.NewFromInt(140)), "vat = %s", created.VAT)
	suite.True(created.NetAmount.Equal(decimal.NewFromInt(2140)), "net = %s", created.NetAmount)

	// Drafts never get a hierarchy
	suite.mockApprovalRepo.AssertNotCalled(suite.T(), "CreateApproval", mock.Anything, mock.Anything, mock.Anything)
	suite.mockQuotationRepo.AssertExpectations(suite.T())
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_DefaultFlowBuildsHierarchy() {
	ctx := context.Background()
	req := createRequest()

	flow := &domain.ApproveFlow{
		FlowID: "flow-default",
		Name:   "Standard",
		Steps: []domain.FlowStep{
			{Level: 1, Approver: "head@optx.com"},
			{Level: 2, Approver: "director@optx.com"},
		},
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "creator@optx.com").Return(testCreator(), nil).Once()
	suite.mockFlowRepo.On("FindFlowByID", ctx, "flow-default").Return(flow, nil).Once()
	// Document and hierarchy go to the repository in one call, one transaction.
	suite.mockQuotationRepo.On("CreateQuotation", ctx, mock.AnythingOfType("domain.Quotation"), mock.AnythingOfType("*domain.Approval"), 1, mock.AnythingOfType("[]*domain.ActivityLog")).
		Run(func(args mock.Arguments) {
			hierarchy := args.Get(2).(*domain.Approval)
			suite.Require().NotNil(hierarchy)
			suite.Require().Len(hierarchy.Steps, 2)
			suite.Equal("head@optx.com", hierarchy.Steps[0].Approver)
			suite.Equal(domain.StepPending, hierarchy.Steps[0].Status)
			logs := args.Get(4).([]*domain.ActivityLog)
			suite.Len(logs, 2)
		}).Return(nil, nil).Once()

	created, err := suite.service.CreateQuotation(ctx, req, "creator@optx.com")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, created.ApprovalStatus)
	suite.NotEmpty(created.ApprovalID)
	suite.mockFlowRepo.AssertExpectations(suite.T())
	suite.mockQuotationRepo.AssertExpectations(suite.T())
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_NoCompanyCode() {
	ctx := context.Background()
	creator := testCreator()
	creator.CompanyCode = ""

	suite.mockUserRepo.On("FindUserByUsername", ctx, "creator@optx.com").Return(creator, nil).Once()

	_, err := suite.service.CreateQuotation(ctx, createRequest(), "creator@optx.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockQuotationRepo.AssertNotCalled(suite.T(), "CreateQuotation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_NoFlowAnywhere() {
	ctx := context.Background()
	creator := testCreator()
	creator.FlowID = ""

	suite.mockUserRepo.On("FindUserByUsername", ctx, "creator@optx.com").Return(creator, nil).Once()

	_, err := suite.service.CreateQuotation(ctx, createRequest(), "creator@optx.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	// Flow resolution failed, so no document may reach the database.
	suite.mockQuotationRepo.AssertNotCalled(suite.T(), "CreateQuotation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuotationServiceTestSuite) TestCreateQuotation_MissingFlowCreatesNothing() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "creator@optx.com").Return(testCreator(), nil).Once()
	suite.mockFlowRepo.On("FindFlowByID", ctx, "flow-default").Return(nil, apperrors.NewNotFoundError("flow not found")).Once()

	_, err := suite.service.CreateQuotation(ctx, createRequest(), "creator@optx.com")

	suite.Require().Error(err)
	suite.mockQuotationRepo.AssertNotCalled(suite.T(), "CreateQuotation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuotationServiceTestSuite) TestUpdateQuotation_ApprovedDocumentLocked() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	existing := &domain.Quotation{
		QuotationID:    quotationID,
		Type:           "M",
		ApprovalStatus: domain.StatusApproved,
	}

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(existing, nil).Once()

	_, err := suite.service.UpdateQuotation(ctx, quotationID, dto.UpdateQuotationRequest{Type: "M"}, "creator@optx.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInvalidState)
	suite.mockQuotationRepo.AssertNotCalled(suite.T(), "UpdateQuotation", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuotationServiceTestSuite) TestUpdateQuotation_TypeChangeReallocatesRun() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	existing := &domain.Quotation{
		QuotationID:    quotationID,
		Type:           "M",
		RunNumber:      12,
		CompanyCode:    "OPTX",
		ApprovalStatus: domain.StatusPending,
	}

	req := dto.UpdateQuotationRequest{
		Title:        "Retitled",
		Type:         "Q",
		ClientName:   "Acme Co",
		ClientID:     uuid.NewString(),
		SalePerson:   "sales@optx.com",
		ProductName:  "Display",
		ProjectName:  "Spring push",
		Period:       "Apr-Jun",
		DocumentDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		StartDate:    time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:      time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		CreateBy:     "creator@optx.com",
		ProposedBy:   "creator@optx.com",
		Items: []dto.QuotationItemRequest{
			{Description: "Banner package", Unit: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(100)},
		},
	}

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(existing, nil).Once()
	suite.mockQuotationRepo.On("UpdateQuotation", ctx, mock.AnythingOfType("domain.Quotation"), true, 1, mock.AnythingOfType("*domain.ActivityLog")).Return(nil, nil).Once()

	updated, err := suite.service.UpdateQuotation(ctx, quotationID, req, "creator@optx.com")

	suite.Require().NoError(err)
	suite.Equal("Q", updated.Type)
	suite.mockQuotationRepo.AssertExpectations(suite.T())
}

func (suite *QuotationServiceTestSuite) TestDuplicateQuotation_ResetsStateAndCopiesHierarchy() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	cancelDate := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	source := &domain.Quotation{
		QuotationID:    quotationID,
		Title:          "Original",
		Type:           "M",
		RunNumber:      12,
		CompanyCode:    "OPTX",
		DocumentDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
		ApprovalStatus: domain.StatusCanceled,
		ApprovalID:     uuid.NewString(),
		CancelDate:     &cancelDate,
		Reason:         "budget cut",
		CanceledBy:     "director@optx.com",
		Items: []domain.QuotationItem{
			{ItemID: uuid.NewString(), Description: "Banner package", Unit: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(500)},
		},
	}
	sourceHierarchy := twoStepHierarchy(source.ApprovalID, quotationID)
	sourceHierarchy.Steps[0].Status = domain.StepApproved
	sourceHierarchy.Steps[1].Status = domain.StepCanceled

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(source, nil).Once()
	suite.mockApprovalRepo.On("FindApprovalByQuotationID", ctx, quotationID).Return(&sourceHierarchy, nil).Once()
	suite.mockQuotationRepo.On("CreateQuotation", ctx, mock.AnythingOfType("domain.Quotation"), mock.AnythingOfType("*domain.Approval"), 1, mock.AnythingOfType("[]*domain.ActivityLog")).
		Run(func(args mock.Arguments) {
			clone := args.Get(1).(domain.Quotation)
			suite.NotEqual(quotationID, clone.QuotationID)
			suite.Zero(clone.RunNumber)
			suite.Equal(domain.StatusDraft, clone.ApprovalStatus)
			suite.Empty(clone.ApprovalID)
			suite.Nil(clone.CancelDate)
			suite.Empty(clone.Reason)
			suite.Empty(clone.CanceledBy)
			suite.Require().Len(clone.Items, 1)
			suite.Empty(clone.Items[0].ItemID)

			hierarchy := args.Get(2).(*domain.Approval)
			suite.Require().NotNil(hierarchy)
			suite.Require().Len(hierarchy.Steps, 2)
			for _, step := range hierarchy.Steps {
				suite.Equal(domain.StepPending, step.Status)
			}
		}).Return(nil, nil).Once()

	clone, err := suite.service.DuplicateQuotation(ctx, quotationID, "creator@optx.com")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, clone.ApprovalStatus)
	suite.NotEmpty(clone.ApprovalID)
	suite.mockQuotationRepo.AssertExpectations(suite.T())
	suite.mockApprovalRepo.AssertExpectations(suite.T())
}

func (suite *QuotationServiceTestSuite) TestDuplicateQuotation_SourceWithoutHierarchy() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	source := &domain.Quotation{
		QuotationID:    quotationID,
		Type:           "M",
		CompanyCode:    "OPTX",
		ApprovalStatus: domain.StatusDraft,
	}

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(source, nil).Once()
	suite.mockApprovalRepo.On("FindApprovalByQuotationID", ctx, quotationID).Return(nil, apperrors.NewNotFoundError("no hierarchy")).Once()
	suite.mockQuotationRepo.On("CreateQuotation", ctx, mock.AnythingOfType("domain.Quotation"), (*domain.Approval)(nil), 1, mock.AnythingOfType("[]*domain.ActivityLog")).Return(nil, nil).Once()

	clone, err := suite.service.DuplicateQuotation(ctx, quotationID, "creator@optx.com")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, clone.ApprovalStatus)
	suite.mockQuotationRepo.AssertExpectations(suite.T())
}

func (suite *QuotationServiceTestSuite) TestListQuotations_Pagination() {
	ctx := context.Background()
	quotations := []domain.Quotation{{QuotationID: uuid.NewString()}}

	// page and limit out of range fall back to defaults
	suite.mockQuotationRepo.On("FindQuotations", ctx, 20, 0).Return(quotations, int64(45), nil).Once()

	resp, err := suite.service.ListQuotations(ctx, 0, 500)

	suite.Require().NoError(err)
	suite.Equal(1, resp.CurrentPage)
	suite.Equal(int64(45), resp.Total)
	suite.Equal(3, resp.TotalPages)
	suite.Len(resp.Data, 1)
}

func (suite *QuotationServiceTestSuite) TestDeleteQuotation_Success() {
	ctx := context.Background()
	quotationID := uuid.NewString()
	existing := &domain.Quotation{QuotationID: quotationID, Type: "M", CompanyCode: "OPTX"}

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(existing, nil).Once()
	suite.mockQuotationRepo.On("DeleteQuotation", ctx, quotationID, mock.AnythingOfType("*domain.ActivityLog")).Return(nil).Once()

	err := suite.service.DeleteQuotation(ctx, quotationID, "creator@optx.com")

	suite.Require().NoError(err)
	suite.mockQuotationRepo.AssertExpectations(suite.T())
}

func (suite *QuotationServiceTestSuite) TestDeleteQuotation_NotFound() {
	ctx := context.Background()
	quotationID := uuid.NewString()

	suite.mockQuotationRepo.On("FindQuotationByID", ctx, quotationID).Return(nil, apperrors.NewNotFoundError("no such quotation")).Once()

	err := suite.service.DeleteQuotation(ctx, quotationID, "creator@optx.com")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestQuotationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuotationServiceTestSuite))
}
