package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/middleware"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils/approval"
)

// notificationService stores in-app notifications and forwards email copies.
// Everything here is best-effort: a failed dispatch is logged, never returned,
// so a committed transition can never be rolled back by a notification problem.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
	mailer           portssvc.Mailer // nil disables email copies
}

// NewNotificationService creates a new NotificationService. mailer may be nil
// when SMTP is not configured.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade, mailer portssvc.Mailer) portssvc.NotificationSvcFacade {
	return &notificationService{
		notificationRepo: notificationRepo,
		mailer:           mailer,
	}
}

var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

func (s *notificationService) Dispatch(ctx context.Context, intents []approval.NotificationIntent, createdBy string) {
	if len(intents) == 0 {
		return
	}
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	rows := make([]domain.Notification, len(intents))
	for i, intent := range intents {
		rows[i] = domain.Notification{
			NotificationID: uuid.NewString(),
			User:           intent.Recipient,
			Title:          intent.Title,
			Message:        intent.Message,
			Type:           intent.Type,
			CreatedBy:      createdBy,
			CreatedAt:      now,
		}
	}
	if err := s.notificationRepo.SaveNotifications(ctx, rows); err != nil {
		logger.Error("failed to save notifications", slog.Int("count", len(rows)), slog.String("error", err.Error()))
	}

	if s.mailer == nil {
		return
	}
	for _, intent := range intents {
		body := fmt.Sprintf("<p>%s</p>", intent.Message)
		if err := s.mailer.Send(intent.Recipient, intent.Title, body); err != nil {
			logger.Warn("failed to send notification email",
				slog.String("recipient", intent.Recipient), slog.String("error", err.Error()))
		}
	}
}

func (s *notificationService) ListNotifications(ctx context.Context, username string, limit, offset int) ([]domain.Notification, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.notificationRepo.FindNotificationsByUser(ctx, username, limit, offset)
}

func (s *notificationService) CountUnread(ctx context.Context, username string) (int64, error) {
	return s.notificationRepo.CountUnread(ctx, username)
}

func (s *notificationService) MarkRead(ctx context.Context, notificationID, username string) error {
	return s.notificationRepo.MarkRead(ctx, notificationID, username)
}

func (s *notificationService) MarkAllRead(ctx context.Context, username string) error {
	return s.notificationRepo.MarkAllRead(ctx, username)
}
