package http

import (
	"net/http"

	"claims-backoffice/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *user.Usecase }

func NewUserHandler(uc *user.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type createUserReq struct {
	Name      string  `json:"name"      validate:"required,max=200"`
	Email     string  `json:"email"     validate:"required,email,max=320"`
	Password  string  `json:"password"  validate:"omitempty,min=8,max=72"`
	Role      string  `json:"role"      validate:"omitempty,userrole"`
	PartnerID *string `json:"partnerId"`
}

type updateUserReq struct {
	Name      *string `json:"name"      validate:"omitempty,max=200"`
	Email     *string `json:"email"     validate:"omitempty,email,max=320"`
	Password  *string `json:"password"  validate:"omitempty,min=8,max=72"`
	Role      *string `json:"role"      validate:"omitempty,userrole"`
	PartnerID *string `json:"partnerId"`
}

func (h *UserHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Search matches on an email fragment, ?email=&limit=.
func (h *UserHandler) Search(c echo.Context) error {
	out, err := h.uc.SearchByEmail(c.Request().Context(), c.QueryParam("email"), queryLimit(c))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.Request().Context(), user.CreateUserInput(req))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *UserHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), user.UpdateUserInput(req))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
