package repositories

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

// ClientReader defines read operations for client data.
type ClientReader interface {
	// FindClientByID retrieves a client by ID.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// FindClients retrieves a paginated list of clients.
	FindClients(ctx context.Context, limit, offset int) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient persists a new client.
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient updates an existing client.
	UpdateClient(ctx context.Context, client domain.Client) error

	// DeleteClient removes a client.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client repository interfaces.
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
