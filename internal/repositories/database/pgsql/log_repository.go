package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	"github.com/jakkitOptx/quotation-backend-neon/internal/models"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils/mapping"
)

type PgxLogRepository struct {
	BaseRepository
}

// newPgxLogRepository creates a new repository for the activity log.
func newPgxLogRepository(pool *pgxpool.Pool) portsrepo.LogRepositoryFacade {
	return &PgxLogRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LogRepositoryFacade = (*PgxLogRepository)(nil)

func (r *PgxLogRepository) AppendLog(ctx context.Context, entry domain.ActivityLog) error {
	m := mapping.ToModelActivityLog(entry)
	query := `
		INSERT INTO activity_logs (log_id, quotation_id, action, performed_by, description, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6);`
	if _, err := r.Pool.Exec(ctx, query, m.LogID, m.QuotationID, m.Action, m.PerformedBy, m.Description, m.Timestamp); err != nil {
		return fmt.Errorf("failed to append activity log: %w", err)
	}
	return nil
}

func (r *PgxLogRepository) FindLogsByQuotationID(ctx context.Context, quotationID string) ([]domain.ActivityLog, error) {
	query := `
		SELECT log_id, quotation_id, action, performed_by, description, timestamp
		FROM activity_logs
		WHERE quotation_id = $1
		ORDER BY timestamp DESC;`
	rows, err := r.Pool.Query(ctx, query, quotationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query logs for quotation %s: %w", quotationID, err)
	}
	defer rows.Close()

	logModels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ActivityLog, error) {
		var m models.ActivityLog
		err := row.Scan(&m.LogID, &m.QuotationID, &m.Action, &m.PerformedBy, &m.Description, &m.Timestamp)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect logs for quotation %s: %w", quotationID, err)
	}

	logs := make([]domain.ActivityLog, len(logModels))
	for i, m := range logModels {
		logs[i] = mapping.ToDomainActivityLog(m)
	}
	return logs, nil
}
