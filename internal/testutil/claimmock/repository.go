package claimmock

import (
	"context"
	"errors"

	domain "claims-backoffice/internal/domain/claim"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("claimmock: method not implemented")

// Repo is a function-backed mock of domain.Repository. Unset functions
// return errUnimplemented.
type Repo struct {
	CreateFn           func(ctx context.Context, c *domain.Claim) error
	GetByIDFn          func(ctx context.Context, id string) (*domain.Claim, error)
	GetByIDForUpdateFn func(ctx context.Context, id string) (*domain.Claim, error)
	ListFn             func(ctx context.Context, f domain.ListFilter) ([]domain.Claim, error)
	SaveFn             func(ctx context.Context, c *domain.Claim) error
	DeleteFn           func(ctx context.Context, id string) error
	CountByStatusFn    func(ctx context.Context) (map[domain.Status]int64, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Claim) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.Claim, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id string) (*domain.Claim, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Claim, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, c *domain.Claim) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, c)
	}
	return errUnimplemented
}

func (m *Repo) Delete(ctx context.Context, id string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return errUnimplemented
}

func (m *Repo) CountByStatus(ctx context.Context) (map[domain.Status]int64, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx)
	}
	return nil, errUnimplemented
}
