package provider

import (
	"context"
	"strings"

	"claims-backoffice/internal/domain/apperr"
	domain "claims-backoffice/internal/domain/provider"
	"claims-backoffice/pkg/id"
)

type Usecase struct{ repo domain.Repository }

func NewUsecase(r domain.Repository) *Usecase { return &Usecase{repo: r} }

func apply(p *domain.ServiceProvider, in ProviderInput) error {
	t := domain.Type(strings.ToUpper(in.Type))
	if !t.Valid() {
		return apperr.Invalid("type", "must be INTERNAL or EXTERNAL")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return apperr.Invalid("name", "is required")
	}
	p.Type = t
	p.Name = name
	p.ContactName = strings.TrimSpace(in.ContactName)
	p.Email = strings.TrimSpace(in.Email)
	p.Phone = strings.TrimSpace(in.Phone)
	p.Address = in.Address
	return nil
}

func (u *Usecase) Create(ctx context.Context, in ProviderInput) (*domain.ServiceProvider, error) {
	p := &domain.ServiceProvider{ID: id.NewID32()}
	if err := apply(p, in); err != nil {
		return nil, err
	}
	if err := u.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) Get(ctx context.Context, providerID string) (*domain.ServiceProvider, error) {
	return u.repo.GetByID(ctx, providerID)
}

func (u *Usecase) List(ctx context.Context) ([]domain.ServiceProvider, error) {
	out, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.ServiceProvider{}
	}
	return out, nil
}

// Search with a blank query returns nothing rather than everything.
func (u *Usecase) Search(ctx context.Context, q string, limit int) ([]domain.ServiceProvider, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return []domain.ServiceProvider{}, nil
	}
	out, err := u.repo.Search(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.ServiceProvider{}
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, providerID string, in ProviderInput) (*domain.ServiceProvider, error) {
	p, err := u.repo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	if err := apply(p, in); err != nil {
		return nil, err
	}
	if err := u.repo.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (u *Usecase) Delete(ctx context.Context, providerID string) error {
	return u.repo.Delete(ctx, providerID)
}
