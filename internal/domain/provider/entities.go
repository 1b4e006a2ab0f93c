package provider

import (
	"context"
	"time"
)

type Type string

const (
	TypeInternal Type = "INTERNAL"
	TypeExternal Type = "EXTERNAL"
)

func (t Type) Valid() bool { return t == TypeInternal || t == TypeExternal }

// Table: service_providers
type ServiceProvider struct {
	ID          string    `gorm:"column:id;type:char(32);primaryKey" json:"id"`
	Type        Type      `gorm:"column:type;size:16;not null" json:"type"`
	Name        string    `gorm:"column:name;size:200;not null;index" json:"name"`
	ContactName string    `gorm:"column:contact_name;size:200" json:"contactName"`
	Email       string    `gorm:"column:email;size:320" json:"email"`
	Phone       string    `gorm:"column:phone;size:40" json:"phone"`
	Address     string    `gorm:"column:address;type:text" json:"address"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updatedAt"`
}

func (ServiceProvider) TableName() string { return "service_providers" }

type Repository interface {
	Create(ctx context.Context, p *ServiceProvider) error
	GetByID(ctx context.Context, id string) (*ServiceProvider, error)
	List(ctx context.Context) ([]ServiceProvider, error)
	// Search matches a case-insensitive substring of name or email.
	Search(ctx context.Context, q string, limit int) ([]ServiceProvider, error)
	Save(ctx context.Context, p *ServiceProvider) error
	Delete(ctx context.Context, id string) error
}
