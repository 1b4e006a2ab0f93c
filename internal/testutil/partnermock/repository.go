package partnermock

import (
	"context"
	"errors"

	domain "claims-backoffice/internal/domain/partner"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("partnermock: method not implemented")

// Repo is a function-backed mock of domain.Repository. Unset functions
// return errUnimplemented.
type Repo struct {
	CreateFn    func(ctx context.Context, p *domain.Partner) error
	GetByIDFn   func(ctx context.Context, id string) (*domain.Partner, error)
	GetByIDsFn  func(ctx context.Context, ids []string) ([]domain.Partner, error)
	ListFn      func(ctx context.Context, t domain.Type) ([]domain.Partner, error)
	SaveFn      func(ctx context.Context, p *domain.Partner) error
	DeleteFn    func(ctx context.Context, id string) error
	LinkedIDsFn func(ctx context.Context, id string) ([]string, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Partner) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Partner, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDs(ctx context.Context, ids []string) ([]domain.Partner, error) {
	if m.GetByIDsFn != nil {
		return m.GetByIDsFn(ctx, ids)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, t domain.Type) ([]domain.Partner, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, t)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, p *domain.Partner) error {
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

func (m *Repo) LinkedIDs(ctx context.Context, id string) ([]string, error) {
	if m.LinkedIDsFn != nil {
		return m.LinkedIDsFn(ctx, id)
	}
	return nil, errUnimplemented
}
