package services

import (
	"github.com/shopspring/decimal"

	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.Mailer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	vatRate := decimal.NewFromFloat(cfg.VATRate)

	// Notification service first since the approval service dispatches through it.
	container.Notification = NewNotificationService(repos.NotificationRepo, mailer)

	container.User = NewUserService(repos.UserRepo)
	container.Quotation = NewQuotationService(repos.QuotationRepo, repos.ApprovalRepo, repos.FlowRepo, repos.UserRepo, cfg.RunNumberFloor, vatRate)
	container.Approval = NewApprovalService(repos.ApprovalRepo, repos.QuotationRepo, repos.FlowRepo, repos.UserRepo, container.Notification)
	container.Flow = NewFlowService(repos.FlowRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.Log = NewLogService(repos.LogRepo)
	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Digest = NewDigestService(repos.QuotationRepo, repos.ApprovalRepo, mailer)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.QuotationSvcFacade    = (*quotationService)(nil)
	_ portssvc.ApprovalSvcFacade     = (*approvalService)(nil)
	_ portssvc.NotificationSvcFacade = (*notificationService)(nil)
)
