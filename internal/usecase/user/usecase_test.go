package user

import (
	"context"
	"errors"
	"testing"

	"claims-backoffice/internal/domain/apperr"
	"claims-backoffice/internal/domain/partner"
	domain "claims-backoffice/internal/domain/user"
	"claims-backoffice/internal/testutil/partnermock"
	"claims-backoffice/internal/testutil/usermock"

	"golang.org/x/crypto/bcrypt"
)

func memRepo() *usermock.Repo {
	byID := map[string]*domain.User{}
	return &usermock.Repo{
		CreateFn: func(_ context.Context, u *domain.User) error { byID[u.ID] = u; return nil },
		SaveFn:   func(_ context.Context, u *domain.User) error { byID[u.ID] = u; return nil },
		GetByIDFn: func(_ context.Context, id string) (*domain.User, error) {
			if u, ok := byID[id]; ok {
				cp := *u
				return &cp, nil
			}
			return nil, apperr.ErrNotFound
		},
		GetByEmailFn: func(_ context.Context, email string) (*domain.User, error) {
			for _, u := range byID {
				if u.Email == email {
					return u, nil
				}
			}
			return nil, apperr.ErrNotFound
		},
	}
}

const knownPartner = "0123456789abcdef0123456789abcdef"

// partners resolves only knownPartner.
func partners() *partnermock.Repo {
	return &partnermock.Repo{
		GetByIDFn: func(_ context.Context, id string) (*partner.Partner, error) {
			if id == knownPartner {
				return &partner.Partner{ID: id}, nil
			}
			return nil, apperr.ErrNotFound
		},
	}
}

func TestCreate_HashesPassword(t *testing.T) {
	uc := NewUsecase(memRepo(), partners()).WithCost(bcrypt.MinCost)
	u, err := uc.Create(context.Background(), CreateUserInput{Name: "Ann", Email: " Ann@Example.com ", Password: "correct horse"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.Email != "ann@example.com" || u.Role != domain.RoleUser {
		t.Fatalf("unexpected user %+v", u)
	}
	if !u.HasPassword() || bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte("correct horse")) != nil {
		t.Fatalf("password not hashed")
	}
}

func TestCreate_WithoutPasswordAndConflicts(t *testing.T) {
	uc := NewUsecase(memRepo(), partners()).WithCost(bcrypt.MinCost)
	ctx := context.Background()

	u, err := uc.Create(ctx, CreateUserInput{Name: "Sso", Email: "sso@example.com", Role: "partner"})
	if err != nil || u.HasPassword() || u.Role != domain.RolePartner {
		t.Fatalf("Create sso: %v %+v", err, u)
	}
	if _, err := uc.Create(ctx, CreateUserInput{Name: "Dup", Email: "SSO@example.com"}); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("want conflict, got %v", err)
	}
	if _, err := uc.Create(ctx, CreateUserInput{Name: "x", Email: "y@z", Password: "short"}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("short password: want validation, got %v", err)
	}
	if _, err := uc.Create(ctx, CreateUserInput{Name: "x", Email: "y@z", Role: "ROOT"}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("bad role: want validation, got %v", err)
	}
}

func TestUpdate_PartialAndOwnEmail(t *testing.T) {
	uc := NewUsecase(memRepo(), partners()).WithCost(bcrypt.MinCost)
	ctx := context.Background()
	a, _ := uc.Create(ctx, CreateUserInput{Name: "A", Email: "a@example.com"})
	_, _ = uc.Create(ctx, CreateUserInput{Name: "B", Email: "b@example.com"})

	same := "A@example.com"
	role := "ADMIN"
	got, err := uc.Update(ctx, a.ID, UpdateUserInput{Email: &same, Role: &role})
	if err != nil || got.Role != domain.RoleAdmin || got.Name != "A" {
		t.Fatalf("Update: %v %+v", err, got)
	}
	taken := "b@example.com"
	if _, err := uc.Update(ctx, a.ID, UpdateUserInput{Email: &taken}); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("want conflict, got %v", err)
	}
	pw := "new password!"
	got, err = uc.Update(ctx, a.ID, UpdateUserInput{Password: &pw})
	if err != nil || !got.HasPassword() {
		t.Fatalf("set password: %v", err)
	}
}

func TestSearchByEmail_Blank(t *testing.T) {
	uc := NewUsecase(&usermock.Repo{}, partners())
	out, err := uc.SearchByEmail(context.Background(), " ", 10)
	if err != nil || out == nil || len(out) != 0 {
		t.Fatalf("blank search: %v %v", out, err)
	}
}

func TestPartnerReferenceMustResolve(t *testing.T) {
	uc := NewUsecase(memRepo(), partners()).WithCost(bcrypt.MinCost)
	ctx := context.Background()

	ghost := "fedcba9876543210fedcba9876543210"
	_, err := uc.Create(ctx, CreateUserInput{Name: "P", Email: "p@example.com", PartnerID: &ghost})
	if fields := apperr.Fields(err); len(fields) != 1 || fields[0].Field != "partnerId" {
		t.Fatalf("unknown partner on create: %v", err)
	}

	known := knownPartner
	u, err := uc.Create(ctx, CreateUserInput{Name: "P", Email: "p@example.com", PartnerID: &known})
	if err != nil || u.PartnerID == nil || *u.PartnerID != knownPartner {
		t.Fatalf("known partner: %v %+v", err, u)
	}
	if _, err := uc.Update(ctx, u.ID, UpdateUserInput{PartnerID: &ghost}); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("unknown partner on update: %v", err)
	}
	blank := ""
	got, err := uc.Update(ctx, u.ID, UpdateUserInput{PartnerID: &blank})
	if err != nil || got.PartnerID != nil {
		t.Fatalf("clearing partner: %v %+v", err, got)
	}
}
