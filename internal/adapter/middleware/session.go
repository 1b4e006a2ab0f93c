package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"claims-backoffice/internal/domain/apperr"
	"claims-backoffice/internal/domain/user"
	"claims-backoffice/internal/usecase/auth"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const principalKey = "principal"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Principal, error)
}

// TokensFrom returns the candidate session tokens in the order they are
// tried: the cookie first, then an Authorization: Bearer header.
func TokensFrom(c echo.Context, cookieName string) []string {
	var out []string
	if ck, err := c.Cookie(cookieName); err == nil && ck.Value != "" {
		out = append(out, ck.Value)
	}
	h := c.Request().Header.Get(echo.HeaderAuthorization)
	if len(h) > 7 && strings.EqualFold(h[:7], "bearer ") {
		if tok := strings.TrimSpace(h[7:]); tok != "" && (len(out) == 0 || out[0] != tok) {
			out = append(out, tok)
		}
	}
	return out
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
}

// RequireSession rejects requests without a valid, unrevoked token and puts
// the principal on the context. A stale cookie does not shadow a valid
// bearer token. Failures other than a rejected token answer 500.
func RequireSession(a Authenticator, cookieName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			for _, tok := range TokensFrom(c, cookieName) {
				p, err := a.Authenticate(c.Request().Context(), tok)
				if err == nil {
					SetPrincipal(c, p)
					return next(c)
				}
				if !errors.Is(err, apperr.ErrUnauthenticated) {
					logrus.WithError(err).WithField("route", c.Path()).Error("authenticate session")
					return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
				}
			}
			return unauthorized(c)
		}
	}
}

// RequireRole must run after RequireSession.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p := PrincipalFrom(c)
			if p == nil {
				return unauthorized(c)
			}
			for _, r := range roles {
				if p.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}

func SetPrincipal(c echo.Context, p *auth.Principal) { c.Set(principalKey, p) }

// PrincipalFrom returns nil outside a session.
func PrincipalFrom(c echo.Context) *auth.Principal {
	p, _ := c.Get(principalKey).(*auth.Principal)
	return p
}
