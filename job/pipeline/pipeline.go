// Package pipeline governs job lifecycle status changes and the derived
// completion timestamp. Statuses may be corrected freely (any status to
// any status); the pipeline fixes only the side effects of entering and
// leaving Completed.
package pipeline

import (
	"time"

	"github.com/pkg/errors"
	"github.com/qmuntal/stateless"

	"github.com/monsalvellc/RoofingLeadApp/job/domain"
)

const (
	triggerAdvance = "advance"
	triggerStay    = "stay"
)

// Result is the status state produced by a transition: the new status and
// the completion timestamp to persist with it, atomically.
type Result struct {
	Status      domain.Status
	CompletedAt *time.Time
}

// Transition moves a job from current to target at the given time.
// Entering Completed stamps CompletedAt; leaving it clears the stamp;
// re-applying Completed keeps the prior stamp so repeated saves are
// idempotent. prior is the job's current CompletedAt value.
func Transition(current, target domain.Status, prior *time.Time, at time.Time) (Result, error) {
	if !Valid(current) {
		return Result{}, errors.Wrapf(ErrUnknownStatus, "%q", current)
	}

	if !Valid(target) {
		return Result{}, errors.Wrapf(ErrUnknownStatus, "%q", target)
	}

	machine := stateless.NewStateMachine(current)

	for _, status := range domain.Statuses {
		cfg := machine.Configure(status)
		cfg.PermitReentry(triggerStay)

		for _, next := range domain.Statuses {
			if next != status {
				cfg.Permit(triggerKey(status, next), next)
			}
		}
	}

	trigger := triggerStay
	if current != target {
		trigger = triggerKey(current, target)
	}

	if err := machine.Fire(trigger); err != nil {
		return Result{}, errors.Wrapf(err, "status transition (%s -> %s) failed", current, target)
	}

	status := machine.MustState().(domain.Status)

	return Result{
		Status:      status,
		CompletedAt: completedAt(current, target, prior, at),
	}, nil
}

func triggerKey(from, to domain.Status) string {
	return triggerAdvance + ":" + string(from) + ">" + string(to)
}

func completedAt(current, target domain.Status, prior *time.Time, at time.Time) *time.Time {
	if target != domain.StatusCompleted {
		return nil
	}

	// Re-applying Completed keeps the original completion time.
	if current == domain.StatusCompleted && prior != nil {
		return prior
	}

	stamped := at
	return &stamped
}

// Valid reports whether s is a member of the canonical status set.
func Valid(s domain.Status) bool {
	for _, status := range domain.Statuses {
		if status == s {
			return true
		}
	}

	return false
}

// Index returns the status position in canonical pipeline order, or -1.
func Index(s domain.Status) int {
	for i, status := range domain.Statuses {
		if status == s {
			return i
		}
	}

	return -1
}

// Color returns the display color hex for a status. These used to be
// duplicated per screen; list views and detail headers both read them
// from here now.
func Color(s domain.Status) string {
	switch s {
	case domain.StatusLead:
		return "#9E9E9E"
	case domain.StatusRetail:
		return "#607D8B"
	case domain.StatusInspected:
		return "#03A9F4"
	case domain.StatusClaimFiled:
		return "#3F51B5"
	case domain.StatusMetWithAdjuster:
		return "#673AB7"
	case domain.StatusPartialApproval:
		return "#FF9800"
	case domain.StatusFullApproval:
		return "#8BC34A"
	case domain.StatusProduction:
		return "#FFC107"
	case domain.StatusPendingPayment:
		return "#FF5722"
	case domain.StatusDelinquentPayment:
		return "#F44336"
	case domain.StatusCompleted:
		return "#4CAF50"
	}

	return "#9E9E9E"
}
