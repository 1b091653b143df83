// Package approval holds the pure approval-workflow state machine. Nothing in
// here performs I/O: callers load the quotation and its hierarchy, invoke a
// function, persist the results and dispatch the returned notification intents.
package approval

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jakkitOptx/quotation-backend-neon/internal/apperrors"
	"github.com/jakkitOptx/quotation-backend-neon/internal/core/domain"
)

// FlowState describes what DeriveCurrentStep found.
type FlowState int

const (
	// StateActionable means exactly one step is currently actionable.
	StateActionable FlowState = iota
	// StateResolved means no step is Pending; whether the flow completed or was
	// terminated depends on the step statuses (AllApproved vs a terminal step).
	StateResolved
	// StateBlocked means Pending steps exist but a non-Approved predecessor
	// blocks every one of them.
	StateBlocked
)

// DeriveCurrentStep re-computes the current actionable step from the step
// statuses alone. The hierarchy never stores a "current level"; the
// statuses are the only source of truth.
//
// The candidate levels are the levels of Pending steps in ascending order; the
// first candidate whose lower levels are all Approved is the actionable one.
func DeriveCurrentStep(steps []domain.ApprovalStep) (*domain.ApprovalStep, FlowState) {
	candidates := make([]int, 0, len(steps))
	for _, s := range steps {
		if s.Status == domain.StepPending {
			candidates = append(candidates, s.Level)
		}
	}
	if len(candidates) == 0 {
		return nil, StateResolved
	}
	sort.Ints(candidates)

	for _, level := range candidates {
		if allLowerApproved(steps, level) {
			for i := range steps {
				if steps[i].Level == level && steps[i].Status == domain.StepPending {
					return &steps[i], StateActionable
				}
			}
		}
	}
	return nil, StateBlocked
}

func allLowerApproved(steps []domain.ApprovalStep, level int) bool {
	for _, s := range steps {
		if s.Level < level && s.Status != domain.StepApproved {
			return false
		}
	}
	return true
}

// NotificationIntent is a notification the caller should dispatch after the
// transition has been committed. The engine only produces data.
type NotificationIntent struct {
	Recipient string
	Title     string
	Message   string
	Type      domain.NotificationType
}

// Outcome is the result of applying one transition.
type Outcome struct {
	Quotation      domain.Quotation
	Approval       domain.Approval
	DocumentStatus domain.ApprovalStatus
	LogAction      domain.LogAction
	LogDescription string
	Intents        []NotificationIntent
}

// ApplyTransition validates and applies a status change for the step matching
// (level, approver), then derives the resulting document-level status and the
// notifications to send. Inputs are copied; the caller persists the returned
// quotation and approval together.
//
// Document-level precedence:
//  1. Canceled at level >= 2 cancels the whole document.
//  2. Rejected at level >= 2 rejects the whole document.
//  3. Approved completes the document only once every step is Approved.
//
// Level-1 cancellations and rejections record the step status but never
// short-circuit the document.
func ApplyTransition(q domain.Quotation, a domain.Approval, level int, approver string, target domain.StepStatus, actedBy string, now time.Time) (Outcome, error) {
	switch target {
	case domain.StepApproved, domain.StepRejected, domain.StepCanceled:
	default:
		return Outcome{}, apperrors.NewValidationError(fmt.Sprintf("unsupported target status %q", target))
	}

	if !q.CanTransition() {
		return Outcome{}, apperrors.NewInvalidStateError(
			fmt.Sprintf("quotation %s is %s; only Pending quotations accept approval transitions", q.QuotationID, q.ApprovalStatus))
	}

	a.Steps = append([]domain.ApprovalStep(nil), a.Steps...)
	step := a.FindStep(level, approver)
	if step == nil {
		return Outcome{}, apperrors.NewNotFoundError(fmt.Sprintf("no approver %s at level %d", approver, level))
	}

	step.Status = target
	ts := now
	step.ApprovedAt = &ts

	code := q.DocumentCode()
	out := Outcome{DocumentStatus: q.ApprovalStatus}

	switch {
	case target == domain.StepCanceled && level >= 2:
		q.ApprovalStatus = domain.StatusCanceled
		q.CancelDate = &ts
		q.CanceledBy = approver
		out.DocumentStatus = domain.StatusCanceled
		out.LogAction = domain.ActionCancel
		out.LogDescription = fmt.Sprintf("Canceled %s by %s", code, actedBy)
		out.Intents = append(out.Intents, NotificationIntent{
			Recipient: q.CreatedByUser,
			Title:     "Quotation canceled",
			Message:   fmt.Sprintf("%s was canceled by %s", code, approver),
			Type:      domain.NotificationApproval,
		})

	case target == domain.StepRejected && level >= 2:
		q.ApprovalStatus = domain.StatusRejected
		out.DocumentStatus = domain.StatusRejected
		out.LogAction = domain.ActionReject
		out.LogDescription = fmt.Sprintf("%s rejected by %s", code, actedBy)
		out.Intents = append(out.Intents, NotificationIntent{
			Recipient: q.CreatedByUser,
			Title:     "Quotation rejected",
			Message:   fmt.Sprintf("%s was rejected by %s", code, approver),
			Type:      domain.NotificationApproval,
		})

	case target == domain.StepApproved:
		if a.AllApproved() {
			q.ApprovalStatus = domain.StatusApproved
			out.DocumentStatus = domain.StatusApproved
			out.LogAction = domain.ActionApprove
			out.LogDescription = fmt.Sprintf("%s is fully approved.", code)
			out.Intents = append(out.Intents, NotificationIntent{
				Recipient: q.CreatedByUser,
				Title:     "Quotation fully approved",
				Message:   fmt.Sprintf("%s has been approved by every level", code),
				Type:      domain.NotificationApproval,
			})
		} else {
			out.DocumentStatus = domain.StatusPending
			out.LogAction = domain.ActionApprove
			out.LogDescription = fmt.Sprintf("%s approved by %s", code, actedBy)
			out.Intents = append(out.Intents, partialApprovalIntents(q, a, level, approver, code)...)
		}

	default:
		// Level-1 cancel/reject: the step keeps its terminal status but the
		// document stays Pending and no one is notified.
		out.DocumentStatus = q.ApprovalStatus
		if target == domain.StepCanceled {
			out.LogAction = domain.ActionCancel
		} else {
			out.LogAction = domain.ActionReject
		}
		out.LogDescription = fmt.Sprintf("%s level %d marked %s by %s", code, level, target, actedBy)
	}

	out.Quotation = q
	out.Approval = a
	return out, nil
}

// partialApprovalIntents notifies the next actionable approver, the creator,
// and the approver one position earlier in the sequence if there is one.
func partialApprovalIntents(q domain.Quotation, a domain.Approval, level int, approver, code string) []NotificationIntent {
	intents := []NotificationIntent{}

	if next, state := DeriveCurrentStep(a.Steps); state == StateActionable {
		intents = append(intents, NotificationIntent{
			Recipient: next.Approver,
			Title:     "Quotation awaiting your approval",
			Message:   fmt.Sprintf("%s is waiting for your approval at level %d", code, next.Level),
			Type:      domain.NotificationApproval,
		})
	}

	intents = append(intents, NotificationIntent{
		Recipient: q.CreatedByUser,
		Title:     "Quotation approval progress",
		Message:   fmt.Sprintf("%s approved by %s, not yet complete", code, approver),
		Type:      domain.NotificationApproval,
	})

	if prev := previousStep(a.Steps, level, approver); prev != nil {
		intents = append(intents, NotificationIntent{
			Recipient: prev.Approver,
			Title:     "Quotation approval progress",
			Message:   fmt.Sprintf("%s advanced past level %d", code, level),
			Type:      domain.NotificationInfo,
		})
	}

	return intents
}

// previousStep returns the step one position before the matched one in
// sequence order, or nil when the matched step is first.
func previousStep(steps []domain.ApprovalStep, level int, approver string) *domain.ApprovalStep {
	ordered := append([]domain.ApprovalStep(nil), steps...)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Level < ordered[j].Level })
	for i := range ordered {
		if ordered[i].Level == level && ordered[i].Approver == approver {
			if i == 0 {
				return nil
			}
			return &ordered[i-1]
		}
	}
	return nil
}

// ResetSteps returns a copy of the hierarchy with every step back to Pending
// and timestamps cleared. The caller checks the quotation is resettable.
func ResetSteps(a domain.Approval) domain.Approval {
	steps := make([]domain.ApprovalStep, len(a.Steps))
	for i, s := range a.Steps {
		s.Status = domain.StepPending
		s.ApprovedAt = nil
		steps[i] = s
	}
	a.Steps = steps
	return a
}

// InstantiateFromTemplate builds a fresh hierarchy for a quotation from a
// flow's steps, all forced to Pending.
func InstantiateFromTemplate(quotationID string, flowSteps []domain.FlowStep, createdBy string, now time.Time) domain.Approval {
	steps := make([]domain.ApprovalStep, len(flowSteps))
	for i, fs := range flowSteps {
		steps[i] = domain.ApprovalStep{
			Level:    fs.Level,
			Approver: fs.Approver,
			Status:   domain.StepPending,
		}
	}
	return domain.Approval{
		ApprovalID:  uuid.NewString(),
		QuotationID: quotationID,
		Steps:       steps,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     createdBy,
			LastUpdatedAt: now,
			LastUpdatedBy: createdBy,
		},
	}
}
