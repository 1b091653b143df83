package services

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
)

// ClientSvcFacade exposes customer CRUD.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUsername string) (*domain.Client, error)
	GetClient(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, actingUsername string) (*domain.Client, error)
	DeleteClient(ctx context.Context, clientID string) error
}
