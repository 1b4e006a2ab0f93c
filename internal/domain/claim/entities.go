package claim

import (
	"time"
)

type Type string

const (
	TypeFault    Type = "FAULT"
	TypeNonFault Type = "NON_FAULT"
)

func (t Type) Valid() bool { return t == TypeFault || t == TypeNonFault }

// Table: claims
type Claim struct {
	ID     string `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	Type   Type   `gorm:"column:type;size:16;not null" json:"type"`
	Status Status `gorm:"column:status;size:40;not null;index" json:"status"`

	// client
	ClientName    string     `gorm:"column:client_name;size:200;not null" json:"clientName"`
	ClientEmail   string     `gorm:"column:client_email;size:320" json:"clientEmail"`
	ClientPhone   string     `gorm:"column:client_phone;size:40" json:"clientPhone"`
	ClientAddress string     `gorm:"column:client_address;type:text" json:"clientAddress"`
	ClientDOB     *time.Time `gorm:"column:client_dob;type:date" json:"clientDob"`

	// accident
	AccidentDate        *time.Time `gorm:"column:accident_date" json:"accidentDate"`
	AccidentLocation    string     `gorm:"column:accident_location;size:255" json:"accidentLocation"`
	AccidentDescription string     `gorm:"column:accident_description;type:text" json:"accidentDescription"`
	VehicleRegistration string     `gorm:"column:vehicle_registration;size:20" json:"vehicleRegistration"`

	// third party
	ThirdPartyName                string `gorm:"column:third_party_name;size:200" json:"thirdPartyName"`
	ThirdPartyInsurer             string `gorm:"column:third_party_insurer;size:200" json:"thirdPartyInsurer"`
	ThirdPartyPolicyNumber        string `gorm:"column:third_party_policy_number;size:64" json:"thirdPartyPolicyNumber"`
	ThirdPartyVehicleRegistration string `gorm:"column:third_party_vehicle_registration;size:20" json:"thirdPartyVehicleRegistration"`
	ThirdPartyPhone               string `gorm:"column:third_party_phone;size:40" json:"thirdPartyPhone"`

	// optional uploaded document
	FileKey  *string `gorm:"column:file_key;size:512" json:"fileKey"`
	FileName *string `gorm:"column:file_name;size:255" json:"fileName"`

	UserID    string  `gorm:"column:user_id;type:char(32);not null;index" json:"userId"`
	PartnerID *string `gorm:"column:partner_id;type:char(32);index" json:"partnerId"`

	StatusUpdatedAt time.Time `gorm:"column:status_updated_at" json:"statusUpdatedAt"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (Claim) TableName() string { return "claims" }
