package mysql

import (
	"context"

	"claims-backoffice/internal/domain/claim"
	"claims-backoffice/internal/domain/uow"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Cases:       &CaseRepository{db: tx},
		Claims:      &ClaimRepository{db: tx},
		Partners:    &PartnerRepository{db: tx},
		Financial:   &FinancialRepository{db: tx},
		Offboarding: &OffboardingRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinClaimTx(ctx context.Context, claimID string, fn func(r uow.Repos, c *claim.Claim) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the claim row up-front so concurrent edits of its steps serialize
		c, err := r.Claims.GetByIDForUpdate(ctx, claimID)
		if err != nil {
			return err
		}
		return fn(r, c)
	})
}
