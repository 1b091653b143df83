package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

func TestFormatDocumentCode(t *testing.T) {
	assert.Equal(t, "OPTX(M)-2026-001", domain.FormatDocumentCode("OPTX", "M", 2026, 1))
	assert.Equal(t, "NEON(QT)-2025-042", domain.FormatDocumentCode("NEON", "QT", 2025, 42))
	assert.Equal(t, "OPTX(M)-2026-120", domain.FormatDocumentCode("OPTX", "M", 2026, 120))
}

func TestQuotation_DocumentCode(t *testing.T) {
	q := domain.Quotation{
		CompanyCode:  "OPTX",
		Type:         "M",
		RunNumber:    7,
		DocumentDate: time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, "OPTX(M)-2026-007", q.DocumentCode())
}

func TestQuotation_CanTransition(t *testing.T) {
	tests := []struct {
		status domain.ApprovalStatus
		want   bool
	}{
		{domain.StatusDraft, false},
		{domain.StatusPending, true},
		{domain.StatusApproved, false},
		{domain.StatusRejected, false},
		{domain.StatusCanceled, false},
	}
	for _, tt := range tests {
		q := domain.Quotation{ApprovalStatus: tt.status}
		assert.Equal(t, tt.want, q.CanTransition(), "status %s", tt.status)
	}
}

func TestQuotation_CanReset(t *testing.T) {
	tests := []struct {
		status domain.ApprovalStatus
		want   bool
	}{
		{domain.StatusDraft, false},
		{domain.StatusPending, false},
		{domain.StatusApproved, true},
		{domain.StatusRejected, false},
		{domain.StatusCanceled, true},
	}
	for _, tt := range tests {
		q := domain.Quotation{ApprovalStatus: tt.status}
		assert.Equal(t, tt.want, q.CanReset(), "status %s", tt.status)
	}
}

func TestApproval_AllApproved(t *testing.T) {
	a := domain.Approval{Steps: []domain.ApprovalStep{
		{Level: 1, Status: domain.StepApproved},
		{Level: 2, Status: domain.StepPending},
	}}
	assert.False(t, a.AllApproved())

	a.Steps[1].Status = domain.StepApproved
	assert.True(t, a.AllApproved())
}
