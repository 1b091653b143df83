package repositories

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

// FlowReader defines read operations for approval flow templates.
type FlowReader interface {
	// FindFlowByID retrieves a template with its steps ordered by level.
	FindFlowByID(ctx context.Context, flowID string) (*domain.ApproveFlow, error)

	// FindFlows retrieves all templates.
	FindFlows(ctx context.Context) ([]domain.ApproveFlow, error)
}

// FlowWriter defines write operations for approval flow templates.
type FlowWriter interface {
	// SaveFlow persists a new template with its steps.
	SaveFlow(ctx context.Context, flow domain.ApproveFlow) error

	// UpdateFlow rewrites a template and its steps.
	UpdateFlow(ctx context.Context, flow domain.ApproveFlow) error

	// DeleteFlow removes a template.
	DeleteFlow(ctx context.Context, flowID string) error
}

// FlowRepositoryFacade combines all flow repository interfaces.
type FlowRepositoryFacade interface {
	FlowReader
	FlowWriter
}
