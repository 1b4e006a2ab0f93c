package http

import (
	"net/http"

	"claims-backoffice/internal/usecase/provider"

	"github.com/labstack/echo/v4"
)

type ProviderHandler struct{ uc *provider.Usecase }

func NewProviderHandler(uc *provider.Usecase) *ProviderHandler { return &ProviderHandler{uc: uc} }

type providerReq struct {
	Type        string `json:"type"        validate:"required,providertype"`
	Name        string `json:"name"        validate:"required,max=200"`
	ContactName string `json:"contactName" validate:"max=200"`
	Email       string `json:"email"       validate:"omitempty,email,max=320"`
	Phone       string `json:"phone"       validate:"max=40"`
	Address     string `json:"address"`
}

func (h *ProviderHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProviderHandler) Search(c echo.Context) error {
	out, err := h.uc.Search(c.Request().Context(), c.QueryParam("q"), queryLimit(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProviderHandler) Create(c echo.Context) error {
	var req providerReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.Request().Context(), provider.ProviderInput(req))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ProviderHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProviderHandler) Update(c echo.Context) error {
	var req providerReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), provider.ProviderInput(req))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProviderHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
