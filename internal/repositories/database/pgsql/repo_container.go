package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
)

// NewRepositoryProvider creates and initializes all repositories backed by the
// given connection pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		QuotationRepo:    newPgxQuotationRepository(pool),
		ApprovalRepo:     newPgxApprovalRepository(pool),
		FlowRepo:         newPgxFlowRepository(pool),
		UserRepo:         newPgxUserRepository(pool),
		ClientRepo:       newPgxClientRepository(pool),
		NotificationRepo: newPgxNotificationRepository(pool),
		LogRepo:          newPgxLogRepository(pool),
	}
}
