package providermock

import (
	"context"
	"errors"

	domain "claims-backoffice/internal/domain/provider"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("providermock: method not implemented")

// Repo is a function-backed mock of domain.Repository. Unset functions
// return errUnimplemented.
type Repo struct {
	CreateFn  func(ctx context.Context, p *domain.ServiceProvider) error
	GetByIDFn func(ctx context.Context, id string) (*domain.ServiceProvider, error)
	ListFn    func(ctx context.Context) ([]domain.ServiceProvider, error)
	SearchFn  func(ctx context.Context, q string, limit int) ([]domain.ServiceProvider, error)
	SaveFn    func(ctx context.Context, p *domain.ServiceProvider) error
	DeleteFn  func(ctx context.Context, id string) error
}

func (m *Repo) Create(ctx context.Context, p *domain.ServiceProvider) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.ServiceProvider, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.ServiceProvider, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}

func (m *Repo) Search(ctx context.Context, q string, limit int) ([]domain.ServiceProvider, error) {
	if m.SearchFn != nil {
		return m.SearchFn(ctx, q, limit)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, p *domain.ServiceProvider) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return errUnimplemented
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return errUnimplemented
}
