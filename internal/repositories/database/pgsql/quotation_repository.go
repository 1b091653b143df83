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

const quotationColumns = `
	quotation_id, title, description, allocation, remark, type, run_number, company_code,
	client_name, client_id, sale_person, product_name, project_name, period,
	document_date, start_date, end_date, create_by, proposed_by, created_by_user,
	department, team, team_group, credit_term,
	amount, discount, fee, cal_fee, total_before_fee, total, amount_before_tax, vat, net_amount,
	approval_status, approval_id, cancel_date, reason, canceled_by,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxQuotationRepository struct {
	BaseRepository
}

// newPgxQuotationRepository creates a new repository for quotation documents.
func newPgxQuotationRepository(pool *pgxpool.Pool) portsrepo.QuotationRepositoryFacade {
	return &PgxQuotationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.QuotationRepositoryFacade = (*PgxQuotationRepository)(nil)

func scanQuotation(row pgx.Row) (models.Quotation, error) {
	var m models.Quotation
	err := row.Scan(
		&m.QuotationID, &m.Title, &m.Description, &m.Allocation, &m.Remark, &m.Type, &m.RunNumber, &m.CompanyCode,
		&m.ClientName, &m.ClientID, &m.SalePerson, &m.ProductName, &m.ProjectName, &m.Period,
		&m.DocumentDate, &m.StartDate, &m.EndDate, &m.CreateBy, &m.ProposedBy, &m.CreatedByUser,
		&m.Department, &m.Team, &m.TeamGroup, &m.CreditTerm,
		&m.Amount, &m.Discount, &m.Fee, &m.CalFee, &m.TotalBeforeFee, &m.Total, &m.AmountBeforeTax, &m.VAT, &m.NetAmount,
		&m.ApprovalStatus, &m.ApprovalID, &m.CancelDate, &m.Reason, &m.CanceledBy,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxQuotationRepository) FindQuotationByID(ctx context.Context, quotationID string) (*domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE quotation_id = $1;`
	m, err := scanQuotation(r.Pool.QueryRow(ctx, query, quotationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("quotation %s not found", quotationID))
		}
		return nil, fmt.Errorf("failed to find quotation %s: %w", quotationID, err)
	}

	items, err := r.findItems(ctx, r.Pool, quotationID)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainQuotation(m, items)
	return &d, nil
}

func (r *PgxQuotationRepository) FindQuotations(ctx context.Context, limit, offset int) ([]domain.Quotation, int64, error) {
	var total int64
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM quotations;`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count quotations: %w", err)
	}

	query := `SELECT ` + quotationColumns + ` FROM quotations ORDER BY created_at DESC LIMIT $1 OFFSET $2;`
	quotations, err := r.queryQuotations(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return quotations, total, nil
}

func (r *PgxQuotationRepository) FindQuotationsByCreator(ctx context.Context, username string) ([]domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE created_by_user = $1 ORDER BY created_at DESC;`
	return r.queryQuotations(ctx, query, username)
}

func (r *PgxQuotationRepository) FindQuotationsForApprover(ctx context.Context, approver string) ([]domain.Quotation, error) {
	query := `
		SELECT DISTINCT ` + quotationColumns + `
		FROM quotations
		WHERE approval_id IN (
			SELECT approval_id FROM approval_steps WHERE approver = $1
		)
		ORDER BY created_at DESC;`
	return r.queryQuotations(ctx, query, approver)
}

func (r *PgxQuotationRepository) FindPendingQuotations(ctx context.Context) ([]domain.Quotation, error) {
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE approval_status = 'Pending' ORDER BY created_at;`
	return r.queryQuotations(ctx, query)
}

func (r *PgxQuotationRepository) queryQuotations(ctx context.Context, query string, args ...any) ([]domain.Quotation, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query quotations: %w", err)
	}
	defer rows.Close()

	var result []domain.Quotation
	for rows.Next() {
		m, err := scanQuotation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quotation row: %w", err)
		}
		items, err := r.findItems(ctx, r.Pool, m.QuotationID)
		if err != nil {
			return nil, err
		}
		result = append(result, mapping.ToDomainQuotation(m, items))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate quotation rows: %w", err)
	}
	return result, nil
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (r *PgxQuotationRepository) findItems(ctx context.Context, q querier, quotationID string) ([]models.QuotationItem, error) {
	query := `
		SELECT item_id, quotation_id, position, description, unit, unit_price, amount
		FROM quotation_items
		WHERE quotation_id = $1
		ORDER BY position;`
	rows, err := q.Query(ctx, query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query items for quotation %s: %w", quotationID, err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.QuotationItem, error) {
		var it models.QuotationItem
		err := row.Scan(&it.ItemID, &it.QuotationID, &it.Position, &it.Description, &it.Unit, &it.UnitPrice, &it.Amount)
		return it, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect items for quotation %s: %w", quotationID, err)
	}
	return items, nil
}

// allocateRunNumber finds the first unused run number >= floor for a document
// type. The advisory lock serializes allocation per type for the rest of the
// transaction, so two concurrent creations can never pick the same number.
// Numbers freed by deleted documents are reused.
func allocateRunNumber(ctx context.Context, tx pgx.Tx, docType string, floor int) (int, error) {
	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext('quotation_run_' || $1));`, docType); err != nil {
		return 0, fmt.Errorf("failed to take run number lock for type %s: %w", docType, err)
	}

	rows, err := tx.Query(ctx, `SELECT run_number FROM quotations WHERE type = $1 ORDER BY run_number;`, docType)
	if err != nil {
		return 0, fmt.Errorf("failed to load run numbers for type %s: %w", docType, err)
	}
	defer rows.Close()

	used := map[int]bool{}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return 0, fmt.Errorf("failed to scan run number: %w", err)
		}
		used[n] = true
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to iterate run numbers: %w", err)
	}

	return firstFreeRunNumber(used, floor), nil
}

// firstFreeRunNumber returns the smallest integer >= floor not present in
// used. Gaps left by deleted documents are filled before the sequence grows.
func firstFreeRunNumber(used map[int]bool, floor int) int {
	candidate := floor
	for used[candidate] {
		candidate++
	}
	return candidate
}

func (r *PgxQuotationRepository) CreateQuotation(ctx context.Context, quotation domain.Quotation, hierarchy *domain.Approval, runFloor int, logEntries []*domain.ActivityLog) (*domain.Quotation, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	runNumber, err := allocateRunNumber(ctx, tx, quotation.Type, runFloor)
	if err != nil {
		return nil, err
	}
	quotation.RunNumber = runNumber

	m := mapping.ToModelQuotation(quotation)
	query := `
		INSERT INTO quotations (` + quotationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30, $31, $32, $33, $34, $35, $36, $37, $38,
			$39, $40, $41, $42);`
	_, err = tx.Exec(ctx, query,
		m.QuotationID, m.Title, m.Description, m.Allocation, m.Remark, m.Type, m.RunNumber, m.CompanyCode,
		m.ClientName, m.ClientID, m.SalePerson, m.ProductName, m.ProjectName, m.Period,
		m.DocumentDate, m.StartDate, m.EndDate, m.CreateBy, m.ProposedBy, m.CreatedByUser,
		m.Department, m.Team, m.TeamGroup, m.CreditTerm,
		m.Amount, m.Discount, m.Fee, m.CalFee, m.TotalBeforeFee, m.Total, m.AmountBeforeTax, m.VAT, m.NetAmount,
		m.ApprovalStatus, m.ApprovalID, m.CancelDate, m.Reason, m.CanceledBy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert quotation %s: %w", quotation.QuotationID, err)
	}

	if err := insertItems(ctx, tx, quotation.QuotationID, quotation.Items); err != nil {
		return nil, err
	}

	// The hierarchy commits or rolls back together with the document, so a
	// failed hierarchy insert never leaves an orphaned quotation behind.
	if hierarchy != nil {
		if err := insertApproval(ctx, tx, *hierarchy); err != nil {
			return nil, err
		}
		if err := linkQuotation(ctx, tx, *hierarchy); err != nil {
			return nil, err
		}
		quotation.ApprovalID = hierarchy.ApprovalID
		quotation.ApprovalStatus = domain.StatusPending
	}

	for _, logEntry := range logEntries {
		if err := insertActivityLog(ctx, tx, logEntry); err != nil {
			return nil, fmt.Errorf("failed to insert activity log: %w", err)
		}
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *PgxQuotationRepository) UpdateQuotation(ctx context.Context, quotation domain.Quotation, reallocateRun bool, runFloor int, logEntry *domain.ActivityLog) (*domain.Quotation, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if reallocateRun {
		runNumber, err := allocateRunNumber(ctx, tx, quotation.Type, runFloor)
		if err != nil {
			return nil, err
		}
		quotation.RunNumber = runNumber
	}

	m := mapping.ToModelQuotation(quotation)
	query := `
		UPDATE quotations SET
			title = $2, description = $3, allocation = $4, remark = $5, type = $6, run_number = $7,
			company_code = $8, client_name = $9, client_id = $10, sale_person = $11, product_name = $12,
			project_name = $13, period = $14, document_date = $15, start_date = $16, end_date = $17,
			create_by = $18, proposed_by = $19, credit_term = $20,
			amount = $21, discount = $22, fee = $23, cal_fee = $24, total_before_fee = $25, total = $26,
			amount_before_tax = $27, vat = $28, net_amount = $29,
			approval_status = $30, cancel_date = $31, reason = $32, canceled_by = $33,
			last_updated_at = $34, last_updated_by = $35
		WHERE quotation_id = $1;`
	tag, err := tx.Exec(ctx, query,
		m.QuotationID, m.Title, m.Description, m.Allocation, m.Remark, m.Type, m.RunNumber,
		m.CompanyCode, m.ClientName, m.ClientID, m.SalePerson, m.ProductName,
		m.ProjectName, m.Period, m.DocumentDate, m.StartDate, m.EndDate,
		m.CreateBy, m.ProposedBy, m.CreditTerm,
		m.Amount, m.Discount, m.Fee, m.CalFee, m.TotalBeforeFee, m.Total,
		m.AmountBeforeTax, m.VAT, m.NetAmount,
		m.ApprovalStatus, m.CancelDate, m.Reason, m.CanceledBy,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update quotation %s: %w", quotation.QuotationID, err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("quotation %s not found", quotation.QuotationID))
	}

	if _, err := tx.Exec(ctx, `DELETE FROM quotation_items WHERE quotation_id = $1;`, quotation.QuotationID); err != nil {
		return nil, fmt.Errorf("failed to clear items of quotation %s: %w", quotation.QuotationID, err)
	}
	if err := insertItems(ctx, tx, quotation.QuotationID, quotation.Items); err != nil {
		return nil, err
	}
	if err := insertActivityLog(ctx, tx, logEntry); err != nil {
		return nil, fmt.Errorf("failed to insert activity log: %w", err)
	}
	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return &quotation, nil
}

func (r *PgxQuotationRepository) DeleteQuotation(ctx context.Context, quotationID string, logEntry *domain.ActivityLog) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `DELETE FROM quotation_items WHERE quotation_id = $1;`, quotationID); err != nil {
		return fmt.Errorf("failed to delete items of quotation %s: %w", quotationID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM approval_steps WHERE approval_id IN (SELECT approval_id FROM approvals WHERE quotation_id = $1);`, quotationID); err != nil {
		return fmt.Errorf("failed to delete hierarchy steps of quotation %s: %w", quotationID, err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM approvals WHERE quotation_id = $1;`, quotationID); err != nil {
		return fmt.Errorf("failed to delete hierarchy of quotation %s: %w", quotationID, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM quotations WHERE quotation_id = $1;`, quotationID)
	if err != nil {
		return fmt.Errorf("failed to delete quotation %s: %w", quotationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("quotation %s not found", quotationID))
	}

	// The log entry outlives the document it describes.
	if err := insertActivityLog(ctx, tx, logEntry); err != nil {
		return fmt.Errorf("failed to insert activity log: %w", err)
	}
	return r.Commit(ctx, tx)
}

func insertItems(ctx context.Context, tx pgx.Tx, quotationID string, items []domain.QuotationItem) error {
	if len(items) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO quotation_items (item_id, quotation_id, position, description, unit, unit_price, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7);`
	for _, row := range mapping.ToModelQuotationItems(quotationID, items) {
		if row.ItemID == "" {
			row.ItemID = uuid.NewString()
		}
		batch.Queue(query, row.ItemID, row.QuotationID, row.Position, row.Description, row.Unit, row.UnitPrice, row.Amount)
	}
	results := tx.SendBatch(ctx, batch)
	defer results.Close()
	for range items {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert item for quotation %s: %w", quotationID, err)
		}
	}
	return nil
}
