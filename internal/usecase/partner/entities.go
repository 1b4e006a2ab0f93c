package partner

import (
	domain "claims-backoffice/internal/domain/partner"
)

type PartnerInput struct {
	Type        string
	Name        string
	ContactName string
	Email       string
	Phone       string
	Address     string

	VehicleRecoveryID     *string
	VehicleStorageID      *string
	ReplacementHireID     *string
	VehicleRepairsID      *string
	IndependentEngineerID *string
	VehicleInspectionID   *string
}

// LinkedPartner is the summary shown for a resolved service-category link.
type LinkedPartner struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Type domain.Type `json:"type"`
}

// PartnerDTO is a partner with its links resolved, keyed by link field.
type PartnerDTO struct {
	domain.Partner
	Linked map[string]LinkedPartner `json:"linked"`
}
