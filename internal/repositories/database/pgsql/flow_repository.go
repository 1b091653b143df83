package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakkitOptx/quotation-backend-neon/internal/apperrors"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	"github.com/jakkitOptx/quotation-backend-neon/internal/models"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils/mapping"
)

type PgxFlowRepository struct {
	BaseRepository
}

// newPgxFlowRepository creates a new repository for approval flow templates.
func newPgxFlowRepository(pool *pgxpool.Pool) portsrepo.FlowRepositoryFacade {
	return &PgxFlowRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FlowRepositoryFacade = (*PgxFlowRepository)(nil)

func (r *PgxFlowRepository) FindFlowByID(ctx context.Context, flowID string) (*domain.ApproveFlow, error) {
	query := `
		SELECT flow_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM approve_flows
		WHERE flow_id = $1;`
	var m models.ApproveFlow
	err := r.Pool.QueryRow(ctx, query, flowID).Scan(
		&m.FlowID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("flow %s not found", flowID))
		}
		return nil, fmt.Errorf("failed to find flow %s: %w", flowID, err)
	}

	steps, err := r.findSteps(ctx, flowID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainFlow(m, steps)
	return &d, nil
}

func (r *PgxFlowRepository) FindFlows(ctx context.Context) ([]domain.ApproveFlow, error) {
	query := `
		SELECT flow_id, name, created_at, created_by, last_updated_at, last_updated_by
		FROM approve_flows
		ORDER BY name;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query flows: %w", err)
	}
	defer rows.Close()

	flowModels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ApproveFlow, error) {
		var m models.ApproveFlow
		err := row.Scan(&m.FlowID, &m.Name, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect flows: %w", err)
	}

	flows := make([]domain.ApproveFlow, 0, len(flowModels))
	for _, m := range flowModels {
		steps, err := r.findSteps(ctx, m.FlowID)
		if err != nil {
			return nil, err
		}
		flows = append(flows, mapping.ToDomainFlow(m, steps))
	}
	return flows, nil
}

func (r *PgxFlowRepository) findSteps(ctx context.Context, flowID string) ([]models.FlowStep, error) {
	query := `SELECT flow_id, level, approver FROM flow_steps WHERE flow_id = $1 ORDER BY level;`
	rows, err := r.Pool.Query(ctx, query, flowID)
	if err != nil {
		return nil, fmt.Errorf("failed to query steps for flow %s: %w", flowID, err)
	}
	defer rows.Close()

	steps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.FlowStep, error) {
		var s models.FlowStep
		err := row.Scan(&s.FlowID, &s.Level, &s.Approver)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect steps for flow %s: %w", flowID, err)
	}
	return steps, nil
}

func (r *PgxFlowRepository) SaveFlow(ctx context.Context, flow domain.ApproveFlow) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertFlow(ctx, tx, flow); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxFlowRepository) UpdateFlow(ctx context.Context, flow domain.ApproveFlow) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	m, _ := mapping.ToModelFlow(flow)
	query := `
		UPDATE approve_flows
		SET name = $2, last_updated_at = $3, last_updated_by = $4
		WHERE flow_id = $1;`
	tag, err := tx.Exec(ctx, query, m.FlowID, m.Name, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update flow %s: %w", flow.FlowID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("flow %s not found", flow.FlowID))
	}

	if _, err := tx.Exec(ctx, `DELETE FROM flow_steps WHERE flow_id = $1;`, flow.FlowID); err != nil {
		return fmt.Errorf("failed to clear steps of flow %s: %w", flow.FlowID, err)
	}
	if err := insertFlowSteps(ctx, tx, flow); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

func (r *PgxFlowRepository) DeleteFlow(ctx context.Context, flowID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM flow_steps WHERE flow_id = $1;`, flowID); err != nil {
		return fmt.Errorf("failed to delete steps of flow %s: %w", flowID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM approve_flows WHERE flow_id = $1;`, flowID)
	if err != nil {
		return fmt.Errorf("failed to delete flow %s: %w", flowID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("flow %s not found", flowID))
	}
	return r.Commit(ctx, tx)
}

func insertFlow(ctx context.Context, tx pgx.Tx, flow domain.ApproveFlow) error {
	m, _ := mapping.ToModelFlow(flow)
	query := `
		INSERT INTO approve_flows (flow_id, name, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);`
	if _, err := tx.Exec(ctx, query, m.FlowID, m.Name, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
		return fmt.Errorf("failed to insert flow %s: %w", flow.FlowID, err)
	}
	return insertFlowSteps(ctx, tx, flow)
}

func insertFlowSteps(ctx context.Context, tx pgx.Tx, flow domain.ApproveFlow) error {
	_, steps := mapping.ToModelFlow(flow)
	if len(steps) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `INSERT INTO flow_steps (flow_id, level, approver) VALUES ($1, $2, $3);`
	for _, s := range steps {
		batch.Queue(query, s.FlowID, s.Level, s.Approver)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range steps {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert step for flow %s: %w", flow.FlowID, err)
		}
	}
	return nil
}
