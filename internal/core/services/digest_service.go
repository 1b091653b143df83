package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	portsrepo "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/repositories"
	portssvc "github.com/jakkitOptx/quotation-backend-neon/internal/core/ports/services"
	"github.com/jakkitOptx/quotation-backend-neon/internal/middleware"
	"github.com/jakkitOptx/quotation-backend-neon/internal/utils/approval"
)

// digestService emails each approver a summary of the pending quotations that
// are currently waiting on them. Triggered by an external scheduler hitting
// the cron endpoint.
type digestService struct {
	quotationRepo portsrepo.QuotationRepositoryFacade
	approvalRepo  portsrepo.ApprovalRepositoryFacade
	mailer        portssvc.Mailer
}

// NewDigestService creates a new DigestService. mailer may be nil when SMTP is
// not configured, in which case the digest is a no-op.
func NewDigestService(quotationRepo portsrepo.QuotationRepositoryFacade, approvalRepo portsrepo.ApprovalRepositoryFacade, mailer portssvc.Mailer) portssvc.DigestSvcFacade {
	return &digestService{
		quotationRepo: quotationRepo,
		approvalRepo:  approvalRepo,
		mailer:        mailer,
	}
}

var _ portssvc.DigestSvcFacade = (*digestService)(nil)

func (s *digestService) SendDailyDigest(ctx context.Context) (int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if s.mailer == nil {
		logger.Info("digest skipped, no mailer configured")
		return 0, nil
	}

	pending, err := s.quotationRepo.FindPendingQuotations(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load pending quotations: %w", err)
	}

	// Group document codes by the approver whose action each document waits on.
	waiting := map[string][]string{}
	for _, q := range pending {
		hierarchy, err := s.approvalRepo.FindApprovalByQuotationID(ctx, q.QuotationID)
		if err != nil {
			logger.Warn("digest skipping quotation without hierarchy",
				slog.String("quotation_id", q.QuotationID), slog.String("error", err.Error()))
			continue
		}
		if current, state := approval.DeriveCurrentStep(hierarchy.Steps); state == approval.StateActionable {
			waiting[current.Approver] = append(waiting[current.Approver], q.DocumentCode())
		}
	}

	sent := 0
	for approver, codes := range waiting {
		var b strings.Builder
		fmt.Fprintf(&b, "<p>You have %d quotation(s) waiting for your approval:</p><ul>", len(codes))
		for _, code := range codes {
			fmt.Fprintf(&b, "<li>%s</li>", code)
		}
		b.WriteString("</ul>")

		if err := s.mailer.Send(approver, "Quotations awaiting your approval", b.String()); err != nil {
			logger.Warn("failed to send digest email",
				slog.String("recipient", approver), slog.String("error", err.Error()))
			continue
		}
		sent++
	}

	logger.Info("approval digest sent", slog.Int("recipients", sent), slog.Int("pending_quotations", len(pending)))
	return sent, nil
}
