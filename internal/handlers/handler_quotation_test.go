package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/jakkitOptx/quotation-backend-neon/internal/apperrors"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
	"github.com/jakkitOptx/quotation-backend-neon/internal/handlers"
	"github.com/jakkitOptx/quotation-backend-neon/internal/platform/config"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils"
)

// --- Mock QuotationService ---
type MockQuotationService struct {
	mock.Mock
}

func (m *MockQuotationService) CreateQuotation(ctx context.Context, req dto.CreateQuotationRequest, creatorUsername string) (*domain.Quotation, error) {
	args := m.Called(ctx, req, creatorUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationService) GetQuotation(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	args := m.Called(ctx, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationService) ListQuotations(ctx context.Context, page, limit int) (*dto.QuotationListResponse, error) {
	args := m.Called(ctx, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.QuotationListResponse), args.Error(1)
}
func (m *MockQuotationService) ListQuotationsByCreator(ctx context.Context, username string) ([]domain.Quotation, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quotation), args.Error(1)
}
func (m *MockQuotationService) ListQuotationsForApprover(ctx context.Context, approver string) ([]domain.Quotation, error) {
	args := m.Called(ctx, approver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quotation), args.Error(1)
}
func (m *MockQuotationService) UpdateQuotation(ctx context.Context, quotationID string, req dto.UpdateQuotationRequest, actingUsername string) (*domain.Quotation, error) {
	args := m.Called(ctx, quotationID, req, actingUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationService) UpdateReason(ctx context.Context, quotationID, reason, actingUsername string) (*domain.Quotation, error) {
	args := m.Called(ctx, quotationID, reason, actingUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationService) DuplicateQuotation(ctx context.Context, quotationID, actingUsername string) (*domain.Quotation, error) {
	args := m.Called(ctx, quotationID, actingUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}
func (m *MockQuotationService) DeleteQuotation(ctx context.Context, quotationID, actingUsername string) error {
	args := m.Called(ctx, quotationID, actingUsername)
	return args.Error(0)
}

var _ portssvc.QuotationSvcFacade = (*MockQuotationService)(nil)

// --- Test Suite ---

type QuotationHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockQuotationService
	token       string
}

func (suite *QuotationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		JWTSecret:    "test-secret",
		IsProduction: true, // skip swagger wiring
	}
	suite.mockService = new(MockQuotationService)
	services := &portssvc.ServiceContainer{Quotation: suite.mockService}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services)

	token, err := utils.GenerateJWT("creator@optx.com", "test-secret", time.Hour, "test")
	suite.Require().NoError(err)
	suite.token = token
}

func (suite *QuotationHandlerTestSuite) doRequest(method, path string, body []byte, authed bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+suite.token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *QuotationHandlerTestSuite) TestGetQuotation_Success() {
	quotationID := uuid.NewString()
	quotation := &domain.Quotation{QuotationID: quotationID, Title: "Media plan"}

	suite.mockService.On("GetQuotation", mock.Anything, quotationID).Return(quotation, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/quotations/"+quotationID, nil, true)

	suite.Equal(http.StatusOK, w.Code)
	var got domain.Quotation
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(quotationID, got.QuotationID)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *QuotationHandlerTestSuite) TestGetQuotation_NotFound() {
	quotationID := uuid.NewString()

	suite.mockService.On("GetQuotation", mock.Anything, quotationID).
		Return(nil, apperrors.NewNotFoundError("no such quotation")).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/quotations/"+quotationID, nil, true)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *QuotationHandlerTestSuite) TestGetQuotation_MissingToken() {
	w := suite.doRequest(http.MethodGet, "/api/v1/quotations/"+uuid.NewString(), nil, false)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetQuotation", mock.Anything, mock.Anything)
}

func (suite *QuotationHandlerTestSuite) TestCreateQuotation_InvalidBody() {
	w := suite.doRequest(http.MethodPost, "/api/v1/quotations", []byte(`{"title":`), true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateQuotation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuotationHandlerTestSuite) TestCreateQuotation_RejectsBadDocumentType() {
	body := []byte(`{
		"title": "Q2 media plan",
		"type": "m1",
		"client": "Acme Co",
		"clientId": "c-1",
		"salePerson": "sales@optx.com",
		"productName": "Display",
		"projectName": "Spring push",
		"period": "Apr-Jun",
		"documentDate": "2026-04-01T00:00:00Z",
		"startDate": "2026-04-01T00:00:00Z",
		"endDate": "2026-06-30T00:00:00Z",
		"createBy": "creator@optx.com",
		"proposedBy": "creator@optx.com",
		"items": [{"description": "Banner", "unit": 1, "unitPrice": 100}]
	}`)

	w := suite.doRequest(http.MethodPost, "/api/v1/quotations", body, true)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "CreateQuotation", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuotationHandlerTestSuite) TestDeleteQuotation_Success() {
	quotationID := uuid.NewString()

	suite.mockService.On("DeleteQuotation", mock.Anything, quotationID, "creator@optx.com").Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/quotations/"+quotationID, nil, true)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func TestQuotationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(QuotationHandlerTestSuite))
}
