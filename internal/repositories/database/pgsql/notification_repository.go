package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakkitOptx/quotation-backend-neon/internal/apperrors"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	"github.com/jakkitOptx/quotation-backend-neon/internal/models"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils/mapping"
)

type PgxNotificationRepository struct {
	BaseRepository
}

// newPgxNotificationRepository creates a new repository for notifications.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func (r *PgxNotificationRepository) FindNotificationsByUser(ctx context.Context, username string, limit, offset int) ([]domain.Notification, error) {
	query := `
		SELECT notification_id, username, title, message, link, type, is_read, created_by, created_at
		FROM notifications
		WHERE username = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;`
	rows, err := r.Pool.Query(ctx, query, username, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications for %s: %w", username, err)
	}
	defer rows.Close()

	notificationModels, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Notification, error) {
		var m models.Notification
		err := row.Scan(&m.NotificationID, &m.Username, &m.Title, &m.Message, &m.Link, &m.Type, &m.IsRead, &m.CreatedBy, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect notifications for %s: %w", username, err)
	}

	notifications := make([]domain.Notification, len(notificationModels))
	for i, m := range notificationModels {
		notifications[i] = mapping.ToDomainNotification(m)
	}
	return notifications, nil
}

func (r *PgxNotificationRepository) CountUnread(ctx context.Context, username string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM notifications WHERE username = $1 AND is_read = FALSE;`, username).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications for %s: %w", username, err)
	}
	return count, nil
}

func (r *PgxNotificationRepository) SaveNotifications(ctx context.Context, notifications []domain.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	query := `
		INSERT INTO notifications (notification_id, username, title, message, link, type, is_read, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`
	for _, n := range notifications {
		m := mapping.ToModelNotification(n)
		batch.Queue(query, m.NotificationID, m.Username, m.Title, m.Message, m.Link, m.Type, m.IsRead, m.CreatedBy, m.CreatedAt)
	}
	results := r.Pool.SendBatch(ctx, batch)
	defer results.Close()
	for range notifications {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert notification: %w", err)
		}
	}
	return nil
}

func (r *PgxNotificationRepository) MarkRead(ctx context.Context, notificationID, username string) error {
	query := `UPDATE notifications SET is_read = TRUE WHERE notification_id = $1 AND username = $2;`
	tag, err := r.Pool.Exec(ctx, query, notificationID, username)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("notification %s not found for %s", notificationID, username))
	}
	return nil
}

func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, username string) error {
	_, err := r.Pool.Exec(ctx, `UPDATE notifications SET is_read = TRUE WHERE username = $1 AND is_read = FALSE;`, username)
	if err != nil {
		return fmt.Errorf("failed to mark notifications read for %s: %w", username, err)
	}
	return nil
}
