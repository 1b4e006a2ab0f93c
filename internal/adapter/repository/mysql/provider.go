package mysql

import (
	"context"

	providerDomain "claims-backoffice/internal/domain/provider"

	"gorm.io/gorm"
)

type ServiceProviderRepository struct{ db *gorm.DB }

func NewServiceProviderRepository(db *gorm.DB) *ServiceProviderRepository {
	return &ServiceProviderRepository{db: db}
}

func (r *ServiceProviderRepository) Create(ctx context.Context, p *providerDomain.ServiceProvider) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ServiceProviderRepository) GetByID(ctx context.Context, id string) (*providerDomain.ServiceProvider, error) {
	var out providerDomain.ServiceProvider
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, notFound(err, "service provider "+id)
	}
	return &out, nil
}

func (r *ServiceProviderRepository) List(ctx context.Context) ([]providerDomain.ServiceProvider, error) {
	var out []providerDomain.ServiceProvider
	err := r.db.WithContext(ctx).Order("name ASC, id ASC").Find(&out).Error
	return out, err
}

func (r *ServiceProviderRepository) Search(ctx context.Context, q string, limit int) ([]providerDomain.ServiceProvider, error) {
	pattern := likePattern(q)
	var out []providerDomain.ServiceProvider
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? "+likeEscape+" OR LOWER(email) LIKE ? "+likeEscape, pattern, pattern).
		Order("name ASC").
		Limit(clampLimit(limit)).
		Find(&out).Error
	return out, err
}

func (r *ServiceProviderRepository) Save(ctx context.Context, p *providerDomain.ServiceProvider) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ServiceProviderRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&providerDomain.ServiceProvider{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound, "service provider "+id)
	}
	return nil
}
