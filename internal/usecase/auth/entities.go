package auth

import (
	"context"
	"time"

	"claims-backoffice/internal/domain/user"

	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated caller carried by a session token.
type Principal struct {
	UserID    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      user.Role `json:"role"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (p *Principal) IsAdmin() bool { return p != nil && p.Role == user.RoleAdmin }

// Claims is the JWT payload. Subject holds the user id.
type Claims struct {
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
	jwt.RegisteredClaims
}

type LoginResult struct {
	Token     string     `json:"token"`
	ExpiresAt time.Time  `json:"expiresAt"`
	User      *user.User `json:"user"`
}

type SessionDTO struct {
	Principal *Principal `json:"session"`
	User      *user.User `json:"user"`
}

// Revoker remembers signed-out token ids.
type Revoker interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
