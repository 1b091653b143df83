package repositories

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

// NotificationReader defines read operations for notifications.
type NotificationReader interface {
	// FindNotificationsByUser retrieves a user's notifications, newest first.
	FindNotificationsByUser(ctx context.Context, username string, limit, offset int) ([]domain.Notification, error)

	// CountUnread returns the number of unread notifications for a user.
	CountUnread(ctx context.Context, username string) (int64, error)
}

// NotificationWriter defines write operations for notifications.
type NotificationWriter interface {
	// SaveNotifications persists a batch of notifications.
	SaveNotifications(ctx context.Context, notifications []domain.Notification) error

	// MarkRead marks one notification read for its recipient.
	MarkRead(ctx context.Context, notificationID, username string) error

	// MarkAllRead marks every notification of a recipient read.
	MarkAllRead(ctx context.Context, username string) error
}

// NotificationRepositoryFacade combines all notification repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
