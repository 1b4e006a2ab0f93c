package uowmock

import (
	"context"
	"errors"

	"claims-backoffice/internal/domain/claim"
	"claims-backoffice/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn      func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinClaimTxFn func(ctx context.Context, claimID string, fn func(r uow.Repos, c *claim.Claim) error) error
}

// Convenience fluent setters
func New() *UoW { return &UoW{} }
func (m *UoW) WithWithinTx(fn func(context.Context, func(uow.Repos) error) error) *UoW {
	m.WithinTxFn = fn
	return m
}
func (m *UoW) WithWithinClaimTx(fn func(context.Context, string, func(uow.Repos, *claim.Claim) error) error) *UoW {
	m.WithinClaimTxFn = fn
	return m
}
func (m *UoW) Reset() { *m = UoW{} }

// Passthrough runs every body directly against repos. The claim tx loads its
// claim through repos.Claims.GetByIDForUpdate like the real one.
func Passthrough(repos uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(_ context.Context, fn func(uow.Repos) error) error { return fn(repos) },
		WithinClaimTxFn: func(ctx context.Context, claimID string, fn func(uow.Repos, *claim.Claim) error) error {
			c, err := repos.Claims.GetByIDForUpdate(ctx, claimID)
			if err != nil {
				return err
			}
			return fn(repos, c)
		},
	}
}

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}
func (m *UoW) WithinClaimTx(ctx context.Context, claimID string, fn func(r uow.Repos, c *claim.Claim) error) error {
	if m.WithinClaimTxFn != nil {
		return m.WithinClaimTxFn(ctx, claimID, fn)
	}
	return errUnimplemented
}
