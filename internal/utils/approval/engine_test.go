package approval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakkitOptx/quotation-backend-neon/internal/apperrors"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

func step(level int, approver string, status domain.StepStatus) domain.ApprovalStep {
	return domain.ApprovalStep{Level: level, Approver: approver, Status: status}
}

func pendingQuotation() domain.Quotation {
	return domain.Quotation{
		QuotationID:    "q-1",
		Type:           "M",
		RunNumber:      2,
		CompanyCode:    "OPTX",
		DocumentDate:   time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		CreatedByUser:  "creator@optx.co",
		ApprovalStatus: domain.StatusPending,
	}
}

func TestDeriveCurrentStep(t *testing.T) {
	t.Run("first pending level is actionable", func(t *testing.T) {
		steps := []domain.ApprovalStep{
			step(1, "a@x.co", domain.StepPending),
			step(2, "b@x.co", domain.StepPending),
		}
		cur, state := DeriveCurrentStep(steps)
		require.Equal(t, StateActionable, state)
		assert.Equal(t, 1, cur.Level)
		assert.Equal(t, "a@x.co", cur.Approver)
	})

	t.Run("advances past approved predecessors with level gaps", func(t *testing.T) {
		steps := []domain.ApprovalStep{
			step(1, "a@x.co", domain.StepApproved),
			step(3, "c@x.co", domain.StepPending),
			step(5, "e@x.co", domain.StepPending),
		}
		cur, state := DeriveCurrentStep(steps)
		require.Equal(t, StateActionable, state)
		assert.Equal(t, 3, cur.Level)
	})

	t.Run("resolved when nothing is pending", func(t *testing.T) {
		steps := []domain.ApprovalStep{
			step(1, "a@x.co", domain.StepApproved),
			step(2, "b@x.co", domain.StepApproved),
		}
		cur, state := DeriveCurrentStep(steps)
		assert.Nil(t, cur)
		assert.Equal(t, StateResolved, state)
	})

	t.Run("blocked when a rejected predecessor precedes every pending step", func(t *testing.T) {
		steps := []domain.ApprovalStep{
			step(1, "a@x.co", domain.StepRejected),
			step(2, "b@x.co", domain.StepPending),
		}
		cur, state := DeriveCurrentStep(steps)
		assert.Nil(t, cur)
		assert.Equal(t, StateBlocked, state)
	})

	t.Run("idempotent without mutation", func(t *testing.T) {
		steps := []domain.ApprovalStep{
			step(1, "a@x.co", domain.StepApproved),
			step(2, "b@x.co", domain.StepPending),
		}
		first, s1 := DeriveCurrentStep(steps)
		second, s2 := DeriveCurrentStep(steps)
		assert.Equal(t, s1, s2)
		assert.Equal(t, first.Level, second.Level)
		assert.Equal(t, first.Approver, second.Approver)
	})
}

func TestApplyTransitionPartialApproval(t *testing.T) {
	q := pendingQuotation()
	a := domain.Approval{
		ApprovalID:  "ap-1",
		QuotationID: q.QuotationID,
		Steps: []domain.ApprovalStep{
			step(1, "a@x.co", domain.StepPending),
			step(2, "b@x.co", domain.StepPending),
		},
	}

	now := time.Now().UTC()
	out, err := ApplyTransition(q, a, 1, "a@x.co", domain.StepApproved, "a@x.co", now)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, out.DocumentStatus)
	assert.Equal(t, domain.StatusPending, out.Quotation.ApprovalStatus)

	got := out.Approval.FindStep(1, "a@x.co")
	require.NotNil(t, got)
	assert.Equal(t, domain.StepApproved, got.Status)
	require.NotNil(t, got.ApprovedAt)
	assert.Equal(t, now, *got.ApprovedAt)

	cur, state := DeriveCurrentStep(out.Approval.Steps)
	require.Equal(t, StateActionable, state)
	assert.Equal(t, 2, cur.Level)
	assert.Equal(t, "b@x.co", cur.Approver)

	// Next approver and creator are notified; no previous approver exists.
	require.Len(t, out.Intents, 2)
	assert.Equal(t, "b@x.co", out.Intents[0].Recipient)
	assert.Equal(t, "creator@optx.co", out.Intents[1].Recipient)
	assert.Contains(t, out.Intents[1].Message, "not yet complete")

	// Original inputs are untouched.
	assert.Equal(t, domain.StepPending, a.Steps[0].Status)
}

func TestApplyTransitionMiddleApprovalNotifiesPrevious(t *testing.T) {
	q := pendingQuotation()
	a := domain.Approval{
		QuotationID: q.QuotationID,
		Steps: []domain.ApprovalStep{
			step(1, "a@x.co", domain.StepApproved),
			step(2, "b@x.co", domain.StepPending),
			step(3, "c@x.co", domain.StepPending),
		},
	}

	out, err := ApplyTransition(q, a, 2, "b@x.co", domain.StepApproved, "b@x.co", time.Now().UTC())
	require.NoError(t, err)
	require.Len(t, out.Intents, 3)
	assert.Equal(t, "c@x.co", out.Intents[0].Recipient) // next
	assert.Equal(t, "creator@optx.co", out.Intents[1].Recipient)
	assert.Equal(t, "a@x.co", out.Intents[2].Recipient) // previous in sequence
}

func TestApplyTransitionFullApproval(t *testing.T) {
	q := pendingQuotation()
	a := domain.Approval{
		QuotationID: q.QuotationID,
		Steps: []domain.ApprovalStep{
			step(1, "a@x.co", domain.StepApproved),
			step(2, "b@x.co", domain.StepPending),
		},
	}

	out, err := ApplyTransition(q, a, 2, "b@x.co", domain.StepApproved, "b@x.co", time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusApproved, out.DocumentStatus)
	assert.Equal(t, domain.StatusApproved, out.Quotation.ApprovalStatus)
	assert.Equal(t, "OPTX(M)-2025-002 is fully approved.", out.LogDescription)

	// Exactly one notification, to the creator only.
	require.Len(t, out.Intents, 1)
	assert.Equal(t, "creator@optx.co", out.Intents[0].Recipient)
}

func TestApplyTransitionCancelAtLevelTwoIgnoresLowerPending(t *testing.T) {
	q := pendingQuotation()
	a := domain.Approval{
		QuotationID: q.QuotationID,
		Steps: []domain.ApprovalStep{
			step(1, "a@x.co", domain.StepPending),
			step(2, "b@x.co", domain.StepPending),
		},
	}

	now := time.Now().UTC()
	out, err := ApplyTransition(q, a, 2, "b@x.co", domain.StepCanceled, "b@x.co", now)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCanceled, out.DocumentStatus)
	require.NotNil(t, out.Quotation.CancelDate)
	assert.Equal(t, "b@x.co", out.Quotation.CanceledBy)
	require.Len(t, out.Intents, 1)
	assert.Equal(t, "creator@optx.co", out.Intents[0].Recipient)
}

func TestApplyTransitionLevelOneRejectDoesNotShortCircuit(t *testing.T) {
	q := pendingQuotation()
	a := domain.Approval{
		QuotationID: q.QuotationID,
		Steps: []domain.ApprovalStep{
			step(1, "a@x.co", domain.StepPending),
			step(2, "b@x.co", domain.StepPending),
		},
	}

	out, err := ApplyTransition(q, a, 1, "a@x.co", domain.StepRejected, "a@x.co", time.Now().UTC())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, out.Quotation.ApprovalStatus)
	assert.Equal(t, domain.StepRejected, out.Approval.FindStep(1, "a@x.co").Status)
	assert.Empty(t, out.Intents)

	// The hierarchy is now blocked for everyone above.
	_, state := DeriveCurrentStep(out.Approval.Steps)
	assert.Equal(t, StateBlocked, state)
}

func TestApplyTransitionErrors(t *testing.T) {
	q := pendingQuotation()
	a := domain.Approval{
		QuotationID: q.QuotationID,
		Steps:       []domain.ApprovalStep{step(1, "a@x.co", domain.StepPending)},
	}

	t.Run("unknown step", func(t *testing.T) {
		_, err := ApplyTransition(q, a, 4, "nobody@x.co", domain.StepApproved, "nobody@x.co", time.Now())
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("non-pending document", func(t *testing.T) {
		approved := q
		approved.ApprovalStatus = domain.StatusApproved
		_, err := ApplyTransition(approved, a, 1, "a@x.co", domain.StepApproved, "a@x.co", time.Now())
		assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	})

	t.Run("bogus target status", func(t *testing.T) {
		_, err := ApplyTransition(q, a, 1, "a@x.co", domain.StepStatus("Banana"), "a@x.co", time.Now())
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestResetSteps(t *testing.T) {
	ts := time.Now().UTC()
	a := domain.Approval{
		Steps: []domain.ApprovalStep{
			{Level: 1, Approver: "a@x.co", Status: domain.StepApproved, ApprovedAt: &ts},
			{Level: 2, Approver: "b@x.co", Status: domain.StepCanceled, ApprovedAt: &ts},
		},
	}

	reset := ResetSteps(a)
	for _, s := range reset.Steps {
		assert.Equal(t, domain.StepPending, s.Status)
		assert.Nil(t, s.ApprovedAt)
	}
	// Input untouched.
	assert.Equal(t, domain.StepApproved, a.Steps[0].Status)
}

func TestInstantiateFromTemplate(t *testing.T) {
	flowSteps := []domain.FlowStep{
		{Level: 1, Approver: "head@optx.co"},
		{Level: 2, Approver: "md@optx.co"},
	}

	now := time.Now().UTC()
	a := InstantiateFromTemplate("q-9", flowSteps, "creator@optx.co", now)

	assert.NotEmpty(t, a.ApprovalID)
	assert.Equal(t, "q-9", a.QuotationID)
	require.Len(t, a.Steps, 2)
	for i, s := range a.Steps {
		assert.Equal(t, flowSteps[i].Level, s.Level)
		assert.Equal(t, flowSteps[i].Approver, s.Approver)
		assert.Equal(t, domain.StepPending, s.Status)
		assert.Nil(t, s.ApprovedAt)
	}
}

func TestFormatDocumentCode(t *testing.T) {
	assert.Equal(t, "OPTX(M)-2025-002", domain.FormatDocumentCode("OPTX", "M", 2025, 2))
	assert.Equal(t, "NW-QT(S)-2024-117", domain.FormatDocumentCode("NW-QT", "S", 2024, 117))
}
