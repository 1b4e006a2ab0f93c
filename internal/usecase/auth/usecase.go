package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"claims-backoffice/internal/domain/apperr"
	"claims-backoffice/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = fmt.Errorf("invalid email or password: %w", apperr.ErrUnauthenticated)

type Usecase struct {
	users   user.Repository
	revoked Revoker
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
}

func NewUsecase(users user.Repository, revoked Revoker, secret string, ttl time.Duration) *Usecase {
	return &Usecase{
		users:   users,
		revoked: revoked,
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Login checks email and password and issues a session token. Users without
// a password hash cannot use credential login.
func (u *Usecase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	usr, err := u.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, errBadCredentials
		}
		return nil, err
	}
	if !usr.HasPassword() {
		return nil, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*usr.PasswordHash), []byte(password)); err != nil {
		return nil, errBadCredentials
	}
	token, exp, err := u.issue(usr)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, ExpiresAt: exp, User: usr}, nil
}

func (u *Usecase) issue(usr *user.User) (string, time.Time, error) {
	now := u.now()
	exp := now.Add(u.ttl)
	claims := Claims{
		Email: usr.Email,
		Role:  usr.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   usr.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(u.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, exp, nil
}

// Authenticate validates a token and rejects revoked ones.
func (u *Usecase) Authenticate(ctx context.Context, token string) (*Principal, error) {
	if token == "" {
		return nil, apperr.ErrUnauthenticated
	}
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return u.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(u.now), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, apperr.ErrUnauthenticated
	}
	revoked, err := u.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("check revocation: %w", err)
	}
	if revoked {
		return nil, fmt.Errorf("session signed out: %w", apperr.ErrUnauthenticated)
	}
	return &Principal{
		UserID:    claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Logout revokes the session token until it would have expired anyway.
func (u *Usecase) Logout(ctx context.Context, p *Principal) error {
	if p == nil {
		return nil
	}
	return u.revoked.Revoke(ctx, p.TokenID, p.ExpiresAt.Sub(u.now()))
}

// Session returns the principal together with the current user record.
func (u *Usecase) Session(ctx context.Context, p *Principal) (*SessionDTO, error) {
	if p == nil {
		return nil, apperr.ErrUnauthenticated
	}
	usr, err := u.users.GetByID(ctx, p.UserID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("session user gone: %w", apperr.ErrUnauthenticated)
		}
		return nil, err
	}
	return &SessionDTO{Principal: p, User: usr}, nil
}

func (u *Usecase) TTL() time.Duration { return u.ttl }
