package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"claims-backoffice/internal/domain/apperr"
	"claims-backoffice/internal/domain/partner"
	domain "claims-backoffice/internal/domain/user"
	"claims-backoffice/pkg/id"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 8

type Usecase struct {
	repo     domain.Repository
	partners partner.Getter
	cost     int
}

func NewUsecase(r domain.Repository, partners partner.Getter) *Usecase {
	return &Usecase{repo: r, partners: partners, cost: bcrypt.DefaultCost}
}

// WithCost overrides the bcrypt cost; tests use bcrypt.MinCost.
func (u *Usecase) WithCost(cost int) *Usecase {
	u.cost = cost
	return u
}

func (u *Usecase) hash(password string) (*string, error) {
	if len(password) < minPasswordLen {
		return nil, apperr.Invalid("password", fmt.Sprintf("must be at least %d characters", minPasswordLen))
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), u.cost)
	if err != nil {
		return nil, err
	}
	h := string(b)
	return &h, nil
}

func parseRole(raw string) (domain.Role, error) {
	if raw == "" {
		return domain.RoleUser, nil
	}
	r := domain.Role(strings.ToUpper(raw))
	if !r.Valid() {
		return "", apperr.Invalid("role", "must be one of USER, PARTNER, ADMIN")
	}
	return r, nil
}

func normalizeEmail(raw string) (string, error) {
	e := strings.ToLower(strings.TrimSpace(raw))
	if e == "" || !strings.Contains(e, "@") {
		return "", apperr.Invalid("email", "must be a valid email address")
	}
	return e, nil
}

func (u *Usecase) ensureEmailFree(ctx context.Context, email, selfID string) error {
	existing, err := u.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if existing.ID != selfID {
			return fmt.Errorf("email %s already registered: %w", email, apperr.ErrConflict)
		}
		return nil
	case errors.Is(err, apperr.ErrNotFound):
		return nil
	}
	return err
}

func blankToNil(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}

// Create registers a user. Without a password the user can only sign in
// through an identity provider.
func (u *Usecase) Create(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperr.Invalid("name", "is required")
	}
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return nil, err
	}
	role, err := parseRole(in.Role)
	if err != nil {
		return nil, err
	}
	if err := u.ensureEmailFree(ctx, email, ""); err != nil {
		return nil, err
	}
	usr := &domain.User{ID: id.NewID32(), Name: name, Email: email, Role: role, PartnerID: blankToNil(in.PartnerID)}
	if err := partner.CheckRef(ctx, u.partners, "partnerId", usr.PartnerID); err != nil {
		return nil, err
	}
	if in.Password != "" {
		if usr.PasswordHash, err = u.hash(in.Password); err != nil {
			return nil, err
		}
	}
	if err := u.repo.Create(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) Get(ctx context.Context, userID string) (*domain.User, error) {
	return u.repo.GetByID(ctx, userID)
}

func (u *Usecase) List(ctx context.Context) ([]domain.User, error) {
	out, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.User{}
	}
	return out, nil
}

func (u *Usecase) SearchByEmail(ctx context.Context, fragment string, limit int) ([]domain.User, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return []domain.User{}, nil
	}
	out, err := u.repo.SearchByEmail(ctx, fragment, limit)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.User{}
	}
	return out, nil
}

func (u *Usecase) Update(ctx context.Context, userID string, in UpdateUserInput) (*domain.User, error) {
	usr, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, apperr.Invalid("name", "must not be blank")
		}
		usr.Name = name
	}
	if in.Email != nil {
		email, err := normalizeEmail(*in.Email)
		if err != nil {
			return nil, err
		}
		if err := u.ensureEmailFree(ctx, email, usr.ID); err != nil {
			return nil, err
		}
		usr.Email = email
	}
	if in.Role != nil {
		if usr.Role, err = parseRole(*in.Role); err != nil {
			return nil, err
		}
	}
	if in.PartnerID != nil {
		usr.PartnerID = blankToNil(in.PartnerID)
		if err := partner.CheckRef(ctx, u.partners, "partnerId", usr.PartnerID); err != nil {
			return nil, err
		}
	}
	if in.Password != nil && *in.Password != "" {
		if usr.PasswordHash, err = u.hash(*in.Password); err != nil {
			return nil, err
		}
	}
	if err := u.repo.Save(ctx, usr); err != nil {
		return nil, err
	}
	return usr, nil
}

func (u *Usecase) Delete(ctx context.Context, userID string) error {
	return u.repo.Delete(ctx, userID)
}
