package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils/approval"
)

// MockQuotationRepository is a mock type for the QuotationRepositoryFacade interface
type MockQuotationRepository struct {
	mock.Mock
}

func (m *MockQuotationRepository) FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	args := m.Called(ctx, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) FindQuotations(ctx context.Context, limit, offset int) ([]domain.Quotation, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Quotation), args.Get(1).(int64), args.Error(2)
}

func (m *MockQuotationRepository) FindQuotationsByCreator(ctx context.Context, username string) ([]domain.Quotation, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) FindQuotationsForApprover(ctx context.Context, approver string) ([]domain.Quotation, error) {
	args := m.Called(ctx, approver)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) FindPendingQuotations(ctx context.Context) ([]domain.Quotation, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) CreateQuotation(ctx context.Context, quotation domain.Quotation, hierarchy *domain.Approval, runFloor int, logEntries []*domain.ActivityLog) (*domain.Quotation, error) {
	args := m.Called(ctx, quotation, hierarchy, runFloor, logEntries)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	if args.Get(0) == nil {
		// echo the input back, as the real repository does after insert
		created := quotation
		if hierarchy != nil {
			created.ApprovalID = hierarchy.ApprovalID
			created.ApprovalStatus = domain.StatusPending
		}
		return &created, nil
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) UpdateQuotation(ctx context.Context, quotation domain.Quotation, reallocateRun bool, runFloor int, logEntry *domain.ActivityLog) (*domain.Quotation, error) {
	args := m.Called(ctx, quotation, reallocateRun, runFloor, logEntry)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	if args.Get(0) == nil {
		updated := quotation
		return &updated, nil
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepository) DeleteQuotation(ctx context.Context, quotationID string, logEntry *domain.ActivityLog) error {
	args := m.Called(ctx, quotationID, logEntry)
	return args.Error(0)
}

// MockApprovalRepository is a mock type for the ApprovalRepositoryFacade
// interface. Transition runs the given callback against TxQuotation and
// TxApproval, matching the real repository's locked-row contract.
type MockApprovalRepository struct {
	mock.Mock
	TxQuotation domain.Quotation
	TxApproval  domain.Approval
}

func (m *MockApprovalRepository) FindApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error) {
	args := m.Called(ctx, approvalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}

func (m *MockApprovalRepository) FindApprovalByQuotationID(ctx context.Context, quotationID string) (*domain.Approval, error) {
	args := m.Called(ctx, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Approval), args.Error(1)
}

func (m *MockApprovalRepository) CreateApproval(ctx context.Context, hierarchy domain.Approval, logEntry *domain.ActivityLog) error {
	args := m.Called(ctx, hierarchy, logEntry)
	return args.Error(0)
}

func (m *MockApprovalRepository) ReplaceApproval(ctx context.Context, hierarchy domain.Approval, logEntry *domain.ActivityLog) error {
	args := m.Called(ctx, hierarchy, logEntry)
	return args.Error(0)
}

func (m *MockApprovalRepository) SaveReset(ctx context.Context, hierarchy domain.Approval, quotation domain.Quotation, logEntry *domain.ActivityLog) error {
	args := m.Called(ctx, hierarchy, quotation, logEntry)
	return args.Error(0)
}

func (m *MockApprovalRepository) Transition(ctx context.Context, quotationID string, fn portsrepo.TransitionFunc) error {
	args := m.Called(ctx, quotationID, fn)
	if args.Error(0) != nil {
		return args.Error(0)
	}
	_, _, _, err := fn(m.TxQuotation, m.TxApproval)
	return err
}

// MockFlowRepository is a mock type for the FlowRepositoryFacade interface
type MockFlowRepository struct {
	mock.Mock
}

func (m *MockFlowRepository) FindFlowByID(ctx context.Context, flowID string) (*domain.ApproveFlow, error) {
	args := m.Called(ctx, flowID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApproveFlow), args.Error(1)
}

func (m *MockFlowRepository) FindFlows(ctx context.Context) ([]domain.ApproveFlow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApproveFlow), args.Error(1)
}

func (m *MockFlowRepository) SaveFlow(ctx context.Context, flow domain.ApproveFlow) error {
	args := m.Called(ctx, flow)
	return args.Error(0)
}

func (m *MockFlowRepository) UpdateFlow(ctx context.Context, flow domain.ApproveFlow) error {
	args := m.Called(ctx, flow)
	return args.Error(0)
}

func (m *MockFlowRepository) DeleteFlow(ctx context.Context, flowID string) error {
	args := m.Called(ctx, flowID)
	return args.Error(0)
}

// MockUserRepository is a mock type for the UserRepositoryFacade interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// MockNotificationService is a mock type for the NotificationSvcFacade interface
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Dispatch(ctx context.Context, intents []approval.NotificationIntent, createdBy string) {
	m.Called(ctx, intents, createdBy)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, username string, limit, offset int) ([]domain.Notification, error) {
	args := m.Called(ctx, username, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationService) CountUnread(ctx context.Context, username string) (int64, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, notificationID, username string) error {
	args := m.Called(ctx, notificationID, username)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllRead(ctx context.Context, username string) error {
	args := m.Called(ctx, username)
	return args.Error(0)
}
