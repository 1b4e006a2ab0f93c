package claim

import (
	"fmt"

	"claims-backoffice/internal/domain/apperr"
)

// Status is the single canonical claim stage. The intake stages are the
// values a claim can be filed with; the lifecycle stages drive it from
// acceptance to closure. PENDING_TRIAGE belongs to both.
type Status string

const (
	StatusPendingTriage            Status = "PENDING_TRIAGE"
	StatusPendingFinancial         Status = "PENDING_FINANCIAL"
	StatusPendingLiveClaims        Status = "PENDING_LIVE_CLAIMS"
	StatusPendingOSDocs            Status = "PENDING_OS_DOCS"
	StatusPendingPaymentPackReview Status = "PENDING_PAYMENT_PACK_REVIEW"
	StatusPendingSentToTP          Status = "PENDING_SENT_TO_TP"
	StatusPendingSentToSols        Status = "PENDING_SENT_TO_SOLS"
	StatusPendingIssued            Status = "PENDING_ISSUED"

	StatusAccepted                         Status = "ACCEPTED"
	StatusRejected                         Status = "REJECTED"
	StatusInProgressServices               Status = "IN_PROGRESS_SERVICES"
	StatusInProgressRepairs                Status = "IN_PROGRESS_REPAIRS"
	StatusPendingOffboarding               Status = "PENDING_OFFBOARDING"
	StatusPendingOffboardingNonCooperative Status = "PENDING_OFFBOARDING_NONCOOPERATIVE"
	StatusPaymentPackPreparation           Status = "PAYMENT_PACK_PREPARATION"
	StatusAwaitingFinalPayment             Status = "AWAITING_FINAL_PAYMENT"
	StatusClosed                           Status = "CLOSED"
)

// DefaultStatus is applied when a claim is filed without one.
const DefaultStatus = StatusPendingTriage

var intake = []Status{
	StatusPendingTriage,
	StatusPendingFinancial,
	StatusPendingLiveClaims,
	StatusPendingOSDocs,
	StatusPendingPaymentPackReview,
	StatusPendingSentToTP,
	StatusPendingSentToSols,
	StatusPendingIssued,
}

var lifecycle = []Status{
	StatusPendingTriage,
	StatusAccepted,
	StatusRejected,
	StatusInProgressServices,
	StatusInProgressRepairs,
	StatusPendingOffboarding,
	StatusPendingOffboardingNonCooperative,
	StatusPaymentPackPreparation,
	StatusAwaitingFinalPayment,
	StatusClosed,
}

var all = func() []Status {
	seen := map[Status]bool{}
	var out []Status
	for _, s := range append(append([]Status(nil), intake...), lifecycle...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}()

func IntakeStatuses() []Status    { return append([]Status(nil), intake...) }
func LifecycleStatuses() []Status { return append([]Status(nil), lifecycle...) }
func Statuses() []Status          { return append([]Status(nil), all...) }

func (s Status) Valid() bool { return contains(all, s) }

func (s Status) IsIntake() bool { return contains(intake, s) }

func (s Status) IsTerminal() bool { return s == StatusClosed }

func contains(list []Status, s Status) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ParseStatus rejects anything outside the canonical set.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.Valid() {
		return "", apperr.Invalid("status", fmt.Sprintf("unknown claim status %q", raw))
	}
	return s, nil
}

// IntakeStatus resolves the status a new claim is filed with.
func IntakeStatus(raw string) (Status, error) {
	if raw == "" {
		return DefaultStatus, nil
	}
	s := Status(raw)
	if !s.IsIntake() {
		return "", apperr.Invalid("status", fmt.Sprintf("%q is not an intake stage", raw))
	}
	return s, nil
}
