package http

import (
	"net/http"

	"claims-backoffice/internal/usecase/partner"

	"github.com/labstack/echo/v4"
)

type PartnerHandler struct{ uc *partner.Usecase }

func NewPartnerHandler(uc *partner.Usecase) *PartnerHandler { return &PartnerHandler{uc: uc} }

type partnerReq struct {
	Type        string `json:"type"        validate:"required,partnertype"`
	Name        string `json:"name"        validate:"required,max=200"`
	ContactName string `json:"contactName" validate:"max=200"`
	Email       string `json:"email"       validate:"omitempty,email,max=320"`
	Phone       string `json:"phone"       validate:"max=40"`
	Address     string `json:"address"`

	VehicleRecoveryID     *string `json:"vehicleRecoveryId"`
	VehicleStorageID      *string `json:"vehicleStorageId"`
	ReplacementHireID     *string `json:"replacementHireId"`
	VehicleRepairsID      *string `json:"vehicleRepairsId"`
	IndependentEngineerID *string `json:"independentEngineerId"`
	VehicleInspectionID   *string `json:"vehicleInspectionId"`
}

func (r partnerReq) input() partner.PartnerInput {
	return partner.PartnerInput(r)
}

func (h *PartnerHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PartnerHandler) Create(c echo.Context) error {
	var req partnerReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.Request().Context(), req.input())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// Get returns the partner with its linked partners resolved by role.
func (h *PartnerHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PartnerHandler) Update(c echo.Context) error {
	var req partnerReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), req.input())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PartnerHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
