package claim

import (
	"fmt"

	"claims-backoffice/internal/domain/apperr"
)

type Policy string

const (
	// PolicyPermissive accepts any canonical status from any other.
	PolicyPermissive Policy = "permissive"
	// PolicyStrict only accepts moves listed in the transition table.
	PolicyStrict Policy = "strict"
)

func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyPermissive, PolicyStrict:
		return Policy(s), nil
	}
	return "", fmt.Errorf("unknown transition policy %q", s)
}

// allowedNext lists the forward moves of the pipeline. The intake stages
// are sub-stages of triage and may move between each other.
var allowedNext = func() map[Status][]Status {
	m := map[Status][]Status{}
	for _, s := range intake {
		var next []Status
		for _, o := range intake {
			if o != s {
				next = append(next, o)
			}
		}
		m[s] = append(next, StatusAccepted, StatusRejected)
	}
	m[StatusAccepted] = []Status{StatusInProgressServices, StatusInProgressRepairs, StatusRejected}
	m[StatusRejected] = []Status{StatusPendingTriage, StatusClosed}
	m[StatusInProgressServices] = []Status{StatusInProgressRepairs, StatusPendingOffboarding, StatusPendingOffboardingNonCooperative}
	m[StatusInProgressRepairs] = []Status{StatusInProgressServices, StatusPendingOffboarding, StatusPendingOffboardingNonCooperative}
	m[StatusPendingOffboarding] = []Status{StatusPendingOffboardingNonCooperative, StatusPaymentPackPreparation}
	m[StatusPendingOffboardingNonCooperative] = []Status{StatusPendingOffboarding, StatusPaymentPackPreparation}
	m[StatusPaymentPackPreparation] = []Status{StatusAwaitingFinalPayment}
	m[StatusAwaitingFinalPayment] = []Status{StatusClosed}
	m[StatusClosed] = nil
	return m
}()

type Workflow struct{ policy Policy }

func NewWorkflow(p Policy) *Workflow {
	if p == "" {
		p = PolicyPermissive
	}
	return &Workflow{policy: p}
}

func (w *Workflow) Policy() Policy { return w.policy }

// Allowed reports whether the table lists from -> to. Staying put is always allowed.
func Allowed(from, to Status) bool {
	if from == to {
		return true
	}
	return contains(allowedNext[from], to)
}

// Transition validates a status change under the workflow policy.
func (w *Workflow) Transition(from, to Status) error {
	if !to.Valid() {
		return apperr.Invalid("status", fmt.Sprintf("unknown claim status %q", to))
	}
	if w.policy == PolicyPermissive {
		return nil
	}
	if !Allowed(from, to) {
		return fmt.Errorf("%w: %s -> %s", apperr.ErrInvalidTransition, from, to)
	}
	return nil
}

// Next lists the statuses reachable from s in one move.
func (w *Workflow) Next(from Status) []Status {
	if w.policy == PolicyPermissive {
		out := make([]Status, 0, len(all)-1)
		for _, s := range all {
			if s != from {
				out = append(out, s)
			}
		}
		return out
	}
	return append([]Status(nil), allowedNext[from]...)
}
