package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
)

// clientService provides customer CRUD.
type clientService struct {
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates a new ClientService.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade) portssvc.ClientSvcFacade {
	return &clientService{clientRepo: clientRepo}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorUsername string) (*domain.Client, error) {
	now := time.Now()
	client := domain.Client{
		ClientID:                uuid.NewString(),
		CustomerName:            req.CustomerName,
		CompanyBaseName:         req.CompanyBaseName,
		Address:                 req.Address,
		TaxIdentificationNumber: req.TaxIdentificationNumber,
		ContactPhoneNumber:      req.ContactPhoneNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUsername,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUsername,
		},
	}
	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	return &client, nil
}

func (s *clientService) GetClient(ctx context.Context, clientID string) (*domain.Client, error) {
	return s.clientRepo.FindClientByID(ctx, clientID)
}

func (s *clientService) ListClients(ctx context.Context, limit, offset int) ([]domain.Client, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.clientRepo.FindClients(ctx, limit, offset)
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, actingUsername string) (*domain.Client, error) {
	existing, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	updated := *existing
	if req.CustomerName != nil {
		updated.CustomerName = *req.CustomerName
	}
	if req.CompanyBaseName != nil {
		updated.CompanyBaseName = *req.CompanyBaseName
	}
	if req.Address != nil {
		updated.Address = *req.Address
	}
	if req.TaxIdentificationNumber != nil {
		updated.TaxIdentificationNumber = *req.TaxIdentificationNumber
	}
	if req.ContactPhoneNumber != nil {
		updated.ContactPhoneNumber = *req.ContactPhoneNumber
	}
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = actingUsername

	if err := s.clientRepo.UpdateClient(ctx, updated); err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", clientID, err)
	}
	return &updated, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if _, err := s.clientRepo.FindClientByID(ctx, clientID); err != nil {
		return err
	}
	return s.clientRepo.DeleteClient(ctx, clientID)
}
