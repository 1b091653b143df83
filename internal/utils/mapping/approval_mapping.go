package mapping

import (
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	"github.com/jakkitOptx/quotation-backend-neon/internal/models"
)

// ToDomainApproval converts an approval row and its step rows (already ordered
// by level) to the domain type.
func ToDomainApproval(m models.Approval, steps []models.ApprovalStep) domain.Approval {
	d := domain.Approval{
		ApprovalID:  m.ApprovalID,
		QuotationID: m.QuotationID,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	d.Steps = make([]domain.ApprovalStep, len(steps))
	for i, s := range steps {
		d.Steps[i] = domain.ApprovalStep{
			Level:      s.Level,
			Approver:   s.Approver,
			Status:     domain.StepStatus(s.Status),
			ApprovedAt: s.ApprovedAt,
		}
	}
	return d
}

// ToModelApproval converts a domain approval to its database rows.
func ToModelApproval(d domain.Approval) (models.Approval, []models.ApprovalStep) {
	m := models.Approval{
		ApprovalID:  d.ApprovalID,
		QuotationID: d.QuotationID,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	steps := make([]models.ApprovalStep, len(d.Steps))
	for i, s := range d.Steps {
		steps[i] = models.ApprovalStep{
			ApprovalID: d.ApprovalID,
			Level:      s.Level,
			Approver:   s.Approver,
			Status:     string(s.Status),
			ApprovedAt: s.ApprovedAt,
		}
	}
	return m, steps
}
