package mysql

import (
	"context"
	"errors"
	"testing"

	"claims-backoffice/internal/domain/apperr"
	claimDomain "claims-backoffice/internal/domain/claim"
	"claims-backoffice/internal/domain/uow"
	"claims-backoffice/internal/testutil/testdb"
)

func TestGormUoW_WithinClaimTx_LoadsClaimAndCommits(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	claims := NewClaimRepository(db)
	c := makeClaim("u1", claimDomain.StatusPendingTriage)
	if err := claims.Create(ctx, c); err != nil {
		t.Fatalf("Create: %v", err)
	}

	u := NewGormUoW(db)
	err := u.WithinClaimTx(ctx, c.ID, func(r uow.Repos, locked *claimDomain.Claim) error {
		if locked.ID != c.ID {
			t.Fatalf("locked wrong claim %s", locked.ID)
		}
		step, err := r.Financial.EnsureStep(ctx, locked.ID)
		if err != nil {
			return err
		}
		step.Notes = "opened"
		return r.Financial.SaveStep(ctx, step)
	})
	if err != nil {
		t.Fatalf("WithinClaimTx: %v", err)
	}
	step, err := NewFinancialRepository(db).GetStepByClaimID(ctx, c.ID)
	if err != nil || step.Notes != "opened" {
		t.Fatalf("commit not visible: %v %+v", err, step)
	}
}

func TestGormUoW_WithinClaimTx_MissingClaim(t *testing.T) {
	u := NewGormUoW(testdb.Open(t))
	called := false
	err := u.WithinClaimTx(context.Background(), "nope", func(uow.Repos, *claimDomain.Claim) error {
		called = true
		return nil
	})
	if !errors.Is(err, apperr.ErrNotFound) || called {
		t.Fatalf("want not found without calling fn, got %v called=%v", err, called)
	}
}

func TestGormUoW_WithinTx_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := testdb.Open(t)
	u := NewGormUoW(db)
	sentinel := errors.New("stop")

	c := makeClaim("u1", claimDomain.StatusPendingTriage)
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Claims.Create(ctx, c); err != nil {
			return err
		}
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("want sentinel, got %v", err)
	}
	if _, err := NewClaimRepository(db).GetByID(ctx, c.ID); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("rolled back row visible: %v", err)
	}
}
