package services

import (
	"context"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils/approval"
)

// NotificationSvcFacade stores and dispatches notifications. Dispatch is
// best-effort: failures are logged and never abort the transition that
// produced the intents.
type NotificationSvcFacade interface {
	// Dispatch persists notification intents as in-app rows and forwards an
	// email copy to each recipient when a mailer is configured.
	Dispatch(ctx context.Context, intents []approval.NotificationIntent, createdBy string)

	// ListNotifications returns a user's notifications, newest first.
	ListNotifications(ctx context.Context, username string, limit, offset int) ([]domain.Notification, error)

	// CountUnread returns a user's unread notification count.
	CountUnread(ctx context.Context, username string) (int64, error)

	// MarkRead marks one notification read.
	MarkRead(ctx context.Context, notificationID, username string) error

	// MarkAllRead marks every notification of a user read.
	MarkAllRead(ctx context.Context, username string) error
}

// Mailer delivers email copies of notifications and digests. Implementations
// must be safe for concurrent use.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}
