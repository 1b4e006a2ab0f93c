package claim

import (
	"time"

	domain "claims-backoffice/internal/domain/claim"
)

// ClaimInput carries every editable field of a claim. Create and Update
// both take the full record.
type ClaimInput struct {
	Type   string
	Status string

	ClientName    string
	ClientEmail   string
	ClientPhone   string
	ClientAddress string
	ClientDOB     *time.Time

	AccidentDate        *time.Time
	AccidentLocation    string
	AccidentDescription string
	VehicleRegistration string

	ThirdPartyName                string
	ThirdPartyInsurer             string
	ThirdPartyPolicyNumber        string
	ThirdPartyVehicleRegistration string
	ThirdPartyPhone               string

	PartnerID *string
}

type ListClaimsInput struct {
	Status    string
	Type      string
	UserID    string
	PartnerID string
}

type TransitionsDTO struct {
	Current domain.Status   `json:"current"`
	Policy  domain.Policy   `json:"policy"`
	Next    []domain.Status `json:"next"`
}

// TransitionObserver is told about every persisted status change.
type TransitionObserver interface {
	ObserveTransition(from, to domain.Status)
}

type noopObserver struct{}

func (noopObserver) ObserveTransition(domain.Status, domain.Status) {}
