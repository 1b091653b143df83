package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	QuotationRepo    QuotationRepositoryFacade
	ApprovalRepo     ApprovalRepositoryFacade
	FlowRepo         FlowRepositoryFacade
	UserRepo         UserRepositoryFacade
	ClientRepo       ClientRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
	LogRepo          LogRepositoryFacade
}
