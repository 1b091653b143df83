package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
)

// logService exposes the append-only activity log. Most entries are written by
// the repositories inside the same transaction as the state they describe;
// Record exists for the few actions with no other persistent effect.
type logService struct {
	logRepo portsrepo.LogRepositoryFacade
}

// NewLogService creates a new LogService.
func NewLogService(logRepo portsrepo.LogRepositoryFacade) portssvc.LogSvcFacade {
	return &logService{logRepo: logRepo}
}

var _ portssvc.LogSvcFacade = (*logService)(nil)

func (s *logService) Record(ctx context.Context, quotationID string, action domain.LogAction, performedBy, description string) error {
	return s.logRepo.AppendLog(ctx, domain.ActivityLog{
		LogID:       uuid.NewString(),
		QuotationID: quotationID,
		Action:      action,
		PerformedBy: performedBy,
		Description: description,
		Timestamp:   time.Now(),
	})
}

func (s *logService) ListByQuotation(ctx context.Context, quotationID string) ([]domain.ActivityLog, error) {
	return s.logRepo.FindLogsByQuotationID(ctx, quotationID)
}
