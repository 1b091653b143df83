package mapping

import (
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
	"github.com/jakkitOptx/quotation-backend-neon/internal/models"
)

// ToDomainFlow converts a flow row and its step rows to the domain type.
func ToDomainFlow(m models.ApproveFlow, steps []models.FlowStep) domain.ApproveFlow {
	d := domain.ApproveFlow{
		FlowID:      m.FlowID,
		Name:        m.Name,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
	d.Steps = make([]domain.FlowStep, len(steps))
	for i, s := range steps {
		d.Steps[i] = domain.FlowStep{Level: s.Level, Approver: s.Approver}
	}
	return d
}

// ToModelFlow converts a domain flow to its database rows.
func ToModelFlow(d domain.ApproveFlow) (models.ApproveFlow, []models.FlowStep) {
	m := models.ApproveFlow{
		FlowID:      d.FlowID,
		Name:        d.Name,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
	steps := make([]models.FlowStep, len(d.Steps))
	for i, s := range d.Steps {
		steps[i] = models.FlowStep{FlowID: d.FlowID, Level: s.Level, Approver: s.Approver}
	}
	return m, steps
}
