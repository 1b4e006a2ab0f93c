package uow

import (
	"context"

	"claims-backoffice/internal/domain/cases"
	"claims-backoffice/internal/domain/claim"
	"claims-backoffice/internal/domain/financial"
	"claims-backoffice/internal/domain/offboarding"
	"claims-backoffice/internal/domain/partner"
)

// Repos are bound to one transaction.
type Repos struct {
	Cases       cases.Repository
	Claims      claim.Repository
	Partners    partner.Repository
	Financial   financial.Repository
	Offboarding offboarding.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// lock the claim row first, then pass it in
	WithinClaimTx(ctx context.Context, claimID string, fn func(r Repos, c *claim.Claim) error) error
}
