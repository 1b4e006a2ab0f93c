package casesmock

import (
	"context"
	"errors"

	domain "claims-backoffice/internal/domain/cases"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("casesmock: method not implemented")

// Repo is a function-backed mock of domain.Repository. Unset functions
// return errUnimplemented.
type Repo struct {
	CreateFn     func(ctx context.Context, c *domain.Case) error
	GetByIDFn    func(ctx context.Context, id string) (*domain.Case, error)
	ListFn       func(ctx context.Context, f domain.ListFilter) ([]domain.Case, error)
	SaveFn       func(ctx context.Context, c *domain.Case) error
	NextNumberFn func(ctx context.Context) (int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Case) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Case, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Case, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *domain.Case) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return errUnimplemented
}

func (m *Repo) NextNumber(ctx context.Context) (int64, error) {
	if m.NextNumberFn != nil {
		return m.NextNumberFn(ctx)
	}
	return 0, errUnimplemented
}
