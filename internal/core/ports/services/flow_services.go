package services

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	"github.com/jakkitOptx/quotation-backend-neon/internal/dto"
)

// FlowSvcFacade exposes approval flow template operations.
type FlowSvcFacade interface {
	CreateFlow(ctx context.Context, req dto.CreateFlowRequest, creatorUsername string) (*domain.ApproveFlow, error)
	GetFlow(ctx context.Context, flowID string) (*domain.ApproveFlow, error)
	ListFlows(ctx context.Context) ([]domain.ApproveFlow, error)
	UpdateFlow(ctx context.Context, flowID string, req dto.UpdateFlowRequest, actingUsername string) (*domain.ApproveFlow, error)
	DeleteFlow(ctx context.Context, flowID string) error
}
