package http

import (
	"net/http"
	"time"

	"claims-backoffice/internal/adapter/middleware"
	"claims-backoffice/internal/usecase/auth"

	"github.com/labstack/echo/v4"
)

type CookieConfig struct {
	Name   string
	Secure bool
}

type AuthHandler struct {
	uc     *auth.Usecase
	cookie CookieConfig
}

func NewAuthHandler(uc *auth.Usecase, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie}
}

type loginReq struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	ck := &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	}
	if value == "" {
		ck.MaxAge = -1
	}
	return ck
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}
	c.SetCookie(h.sessionCookie(out.Token, out.ExpiresAt))
	return c.JSON(http.StatusOK, out)
}

func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.uc.Logout(c.Request().Context(), middleware.PrincipalFrom(c)); err != nil {
		return fail(c, err)
	}
	c.SetCookie(h.sessionCookie("", time.Unix(0, 0)))
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Session(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Session(c.Request().Context(), p)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
