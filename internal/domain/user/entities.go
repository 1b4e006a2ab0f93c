package user

import (
	"time"
)

type Role string

const (
	RoleUser    Role = "USER"
	RolePartner Role = "PARTNER"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RolePartner, RoleAdmin:
		return true
	}
	return false
}

// Table: users
type User struct {
	ID    string `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	Name  string `gorm:"column:name;size:200;not null" json:"name"`
	Email string `gorm:"column:email;size:320;not null;uniqueIndex:ux_users_email" json:"email"`
	// Nil for users that only sign in through the identity provider.
	PasswordHash *string   `gorm:"column:password_hash;size:100" json:"-"`
	Role         Role      `gorm:"column:role;size:16;not null;default:USER" json:"role"`
	PartnerID    *string   `gorm:"column:partner_id;type:char(32);index" json:"partnerId"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// HasPassword reports whether credential login is enabled for the user.
func (u *User) HasPassword() bool { return u.PasswordHash != nil && *u.PasswordHash != "" }
