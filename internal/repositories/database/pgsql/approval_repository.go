package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakkitOptx/quotation-backend-neon/internal/apperrors"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	"github.com/jakkitOptx/quotation-backend-neon/internal/models"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils/mapping"
)

type PgxApprovalRepository struct {
	BaseRepository
}

// newPgxApprovalRepository creates a new repository for approval hierarchies.
func newPgxApprovalRepository(pool *pgxpool.Pool) portsrepo.ApprovalRepositoryFacade {
	return &PgxApprovalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ApprovalRepositoryFacade = (*PgxApprovalRepository)(nil)

func (r *PgxApprovalRepository) FindApprovalByID(ctx context.Context, approvalID string) (*domain.Approval, error) {
	return r.findApproval(ctx, r.Pool, `WHERE approval_id = $1`, approvalID)
}

func (r *PgxApprovalRepository) FindApprovalByQuotationID(ctx context.Context, quotationID string) (*domain.Approval, error) {
	return r.findApproval(ctx, r.Pool, `WHERE quotation_id = $1`, quotationID)
}

func (r *PgxApprovalRepository) findApproval(ctx context.Context, q querier, where string, arg any) (*domain.Approval, error) {
	query := `
		SELECT approval_id, quotation_id, created_at, created_by, last_updated_at, last_updated_by
		FROM approvals ` + where + `;`
	rows, err := q.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query approval: %w", err)
	}
	m, err := pgx.CollectOneRow(rows, func(row pgx.CollectableRow) (models.Approval, error) {
		var a models.Approval
		err := row.Scan(&a.ApprovalID, &a.QuotationID, &a.CreatedAt, &a.CreatedBy, &a.LastUpdatedAt, &a.LastUpdatedBy)
		return a, err
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("approval hierarchy not found")
		}
		return nil, fmt.Errorf("failed to scan approval: %w", err)
	}

	steps, err := r.findSteps(ctx, q, m.ApprovalID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainApproval(m, steps)
	return &d, nil
}

func (r *PgxApprovalRepository) findSteps(ctx context.Context, q querier, approvalID string) ([]models.ApprovalStep, error) {
	query := `
		SELECT step_id, approval_id, level, approver, status, approved_at
		FROM approval_steps
		WHERE approval_id = $1
		ORDER BY level;`
	rows, err := q.Query(ctx, query, approvalID)
	if err != nil {
		return nil, fmt.Errorf("failed to query steps for approval %s: %w", approvalID, err)
	}
	defer rows.Close()

	steps, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ApprovalStep, error) {
		var s models.ApprovalStep
		err := row.Scan(&s.StepID, &s.ApprovalID, &s.Level, &s.Approver, &s.Status, &s.ApprovedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect steps for approval %s: %w", approvalID, err)
	}
	return steps, nil
}

func (r *PgxApprovalRepository) CreateApproval(ctx context.Context, approval domain.Approval, logEntry *domain.ActivityLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := insertApproval(ctx, tx, approval); err != nil {
		return err
	}
	if err := linkQuotation(ctx, tx, approval); err != nil {
		return err
	}
	if err := insertActivityLog(ctx, tx, logEntry); err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxApprovalRepository) ReplaceApproval(ctx context.Context, approval domain.Approval, logEntry *domain.ActivityLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	// Discard the quotation's previous hierarchy before installing the new one.
	if _, err := tx.Exec(ctx, `DELETE FROM approval_steps WHERE approval_id IN (SELECT approval_id FROM approvals WHERE quotation_id = $1);`, approval.QuotationID); err != nil {
		return fmt.Errorf("failed to delete previous steps for quotation %s: %w", approval.QuotationID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM approvals WHERE quotation_id = $1;`, approval.QuotationID); err != nil {
		return fmt.Errorf("failed to delete previous hierarchy for quotation %s: %w", approval.QuotationID, err)
	}

	if err := insertApproval(ctx, tx, approval); err != nil {
		return err
	}
	if err := linkQuotation(ctx, tx, approval); err != nil {
		return err
	}
	if err := insertActivityLog(ctx, tx, logEntry); err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return r.Commit(ctx, tx)
}

func (r *PgxApprovalRepository) SaveReset(ctx context.Context, approval domain.Approval, quotation domain.Quotation, logEntry *domain.ActivityLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := updateSteps(ctx, tx, approval); err != nil {
		return err
	}
	if err := updateApprovalAudit(ctx, tx, approval); err != nil {
		return err
	}
	if err := updateQuotationState(ctx, tx, quotation); err != nil {
		return err
	}
	if err := insertActivityLog(ctx, tx, logEntry); err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return r.Commit(ctx, tx)
}

// Transition locks the quotation row, loads current state, applies fn and
// persists whatever it returns, all in one transaction. The FOR UPDATE lock
// serializes concurrent transitions on the same quotation; each caller sees
// the state the previous one committed.
func (r *PgxApprovalRepository) Transition(ctx context.Context, quotationID string, fn portsrepo.TransitionFunc) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE quotation_id = $1 FOR UPDATE;`
	m, err := scanQuotation(tx.QueryRow(ctx, query, quotationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError(fmt.Sprintf("quotation %s not found", quotationID))
		}
		return fmt.Errorf("failed to lock quotation %s: %w", quotationID, err)
	}

	items, err := (&PgxQuotationRepository{BaseRepository: r.BaseRepository}).findItems(ctx, tx, quotationID)
	if err != nil {
		return err
	}
	quotation := mapping.ToDomainQuotation(m, items)

	hierarchy, err := r.findApproval(ctx, tx, `WHERE quotation_id = $1`, quotationID)
	if err != nil {
		return err
	}

	newQuotation, newApproval, logEntry, err := fn(quotation, *hierarchy)
	if err != nil {
		return err
	}

	if err := updateSteps(ctx, tx, newApproval); err != nil {
		return err
	}
	if err := updateApprovalAudit(ctx, tx, newApproval); err != nil {
		return err
	}
	if err := updateQuotationState(ctx, tx, newQuotation); err != nil {
		return err
	}
	if err := insertActivityLog(ctx, tx, logEntry); err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return r.Commit(ctx, tx)
}

func insertApproval(ctx context.Context, tx pgx.Tx, approval domain.Approval) error {
	m, steps := mapping.ToModelApproval(approval)
	query := `
		INSERT INTO approvals (approval_id, quotation_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6);`
	if _, err := tx.Exec(ctx, query, m.ApprovalID, m.QuotationID, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
		return fmt.Errorf("failed to insert approval %s: %w", m.ApprovalID, err)
	}

	batch := &pgx.Batch{}
	stepQuery := `
		INSERT INTO approval_steps (step_id, approval_id, level, approver, status, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6);`
	for _, s := range steps {
		if s.StepID == "" {
			s.StepID = uuid.NewString()
		}
		batch.Queue(stepQuery, s.StepID, s.ApprovalID, s.Level, s.Approver, s.Status, s.ApprovedAt)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range steps {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert step for approval %s: %w", m.ApprovalID, err)
		}
	}
	return nil
}

// linkQuotation points the quotation at its hierarchy and moves it to Pending.
func linkQuotation(ctx context.Context, tx pgx.Tx, approval domain.Approval) error {
	query := `
		UPDATE quotations
		SET approval_id = $2, approval_status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE quotation_id = $1;`
	tag, err := tx.Exec(ctx, query, approval.QuotationID, approval.ApprovalID, string(domain.StatusPending), approval.LastUpdatedAt, approval.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to link quotation %s to approval: %w", approval.QuotationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("quotation %s not found", approval.QuotationID))
	}
	return nil
}

func updateSteps(ctx context.Context, tx pgx.Tx, approval domain.Approval) error {
	query := `
		UPDATE approval_steps
		SET status = $3, approved_at = $4
		WHERE approval_id = $1 AND level = $2 AND approver = $5;`
	for _, s := range approval.Steps {
		tag, err := tx.Exec(ctx, query, approval.ApprovalID, s.Level, string(s.Status), s.ApprovedAt, s.Approver)
		if err != nil {
			return fmt.Errorf("failed to update step level %d of approval %s: %w", s.Level, approval.ApprovalID, err)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.NewNotFoundError(fmt.Sprintf("step level %d approver %s not found on approval %s", s.Level, s.Approver, approval.ApprovalID))
		}
	}
	return nil
}

func updateApprovalAudit(ctx context.Context, tx pgx.Tx, approval domain.Approval) error {
	query := `UPDATE approvals SET last_updated_at = $2, last_updated_by = $3 WHERE approval_id = $1;`
	if _, err := tx.Exec(ctx, query, approval.ApprovalID, approval.LastUpdatedAt, approval.LastUpdatedBy); err != nil {
		return fmt.Errorf("failed to update approval %s: %w", approval.ApprovalID, err)
	}
	return nil
}

// updateQuotationState persists the document-level outcome of a transition or
// reset: status, cancellation metadata and audit columns.
func updateQuotationState(ctx context.Context, tx pgx.Tx, quotation domain.Quotation) error {
	m := mapping.ToModelQuotation(quotation)
	query := `
		UPDATE quotations
		SET approval_status = $2, cancel_date = $3, reason = $4, canceled_by = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE quotation_id = $1;`
	tag, err := tx.Exec(ctx, query, m.QuotationID, m.ApprovalStatus, m.CancelDate, m.Reason, m.CanceledBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update quotation %s state: %w", m.QuotationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("quotation %s not found", m.QuotationID))
	}
	return nil
}
