package partner

import (
	"strings"
	"time"
)

type Type string

const (
	TypeDirect     Type = "DIRECT"
	TypeBroker     Type = "BROKER"
	TypeInsurer    Type = "INSURER"
	TypeBodyshop   Type = "BODYSHOP"
	TypeDealership Type = "DEALERSHIP"
	TypeFleet      Type = "FLEET"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDirect, TypeBroker, TypeInsurer, TypeBodyshop, TypeDealership, TypeFleet:
		return true
	}
	return false
}

// Table: partners
type Partner struct {
	ID          string `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	Type        Type   `gorm:"column:type;size:16;not null;index" json:"type"`
	Name        string `gorm:"column:name;size:200;not null" json:"name"`
	ContactName string `gorm:"column:contact_name;size:200" json:"contactName"`
	Email       string `gorm:"column:email;size:320" json:"email"`
	Phone       string `gorm:"column:phone;size:40" json:"phone"`
	Address     string `gorm:"column:address;type:text" json:"address"`

	// outsourced service categories, each another partner
	VehicleRecoveryID     *string `gorm:"column:vehicle_recovery_id;type:char(32);index" json:"vehicleRecoveryId"`
	VehicleStorageID      *string `gorm:"column:vehicle_storage_id;type:char(32);index" json:"vehicleStorageId"`
	ReplacementHireID     *string `gorm:"column:replacement_hire_id;type:char(32);index" json:"replacementHireId"`
	VehicleRepairsID      *string `gorm:"column:vehicle_repairs_id;type:char(32);index" json:"vehicleRepairsId"`
	IndependentEngineerID *string `gorm:"column:independent_engineer_id;type:char(32);index" json:"independentEngineerId"`
	VehicleInspectionID   *string `gorm:"column:vehicle_inspection_id;type:char(32);index" json:"vehicleInspectionId"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Partner) TableName() string { return "partners" }

// LinkColumns are the self-referencing columns, in display order.
var LinkColumns = []string{
	"vehicle_recovery_id",
	"vehicle_storage_id",
	"replacement_hire_id",
	"vehicle_repairs_id",
	"independent_engineer_id",
	"vehicle_inspection_id",
}

// Link pairs a service category with the partner it points at.
type Link struct {
	Field     string
	PartnerID string
}

// Links returns the non-nil service-category links, keyed by JSON field name.
func (p *Partner) Links() []Link {
	var out []Link
	add := func(field string, id *string) {
		if id != nil {
			out = append(out, Link{Field: field, PartnerID: *id})
		}
	}
	add("vehicleRecoveryId", p.VehicleRecoveryID)
	add("vehicleStorageId", p.VehicleStorageID)
	add("replacementHireId", p.ReplacementHireID)
	add("vehicleRepairsId", p.VehicleRepairsID)
	add("independentEngineerId", p.IndependentEngineerID)
	add("vehicleInspectionId", p.VehicleInspectionID)
	return out
}

// NormalizeLink treats nil and blank ids as absent.
func NormalizeLink(id *string) *string {
	if id == nil {
		return nil
	}
	v := strings.TrimSpace(*id)
	if v == "" {
		return nil
	}
	return &v
}
