package http

import (
	"net/http"

	"claims-backoffice/internal/usecase/claim"

	"github.com/labstack/echo/v4"
)

type ClaimHandler struct {
	uc        *claim.Usecase
	maxUpload int64
}

func NewClaimHandler(uc *claim.Usecase, maxUpload int64) *ClaimHandler {
	return &ClaimHandler{uc: uc, maxUpload: maxUpload}
}

type claimReq struct {
	Type   string `json:"type"   validate:"required,claimtype"`
	Status string `json:"status" validate:"omitempty,claimstatus"`

	ClientName    string  `json:"clientName"    validate:"required,max=200"`
	ClientEmail   string  `json:"clientEmail"   validate:"omitempty,email,max=320"`
	ClientPhone   string  `json:"clientPhone"   validate:"max=40"`
	ClientAddress string  `json:"clientAddress"`
	ClientDOB     *string `json:"clientDob"`

	AccidentDate        *string `json:"accidentDate"`
	AccidentLocation    string  `json:"accidentLocation"    validate:"max=255"`
	AccidentDescription string  `json:"accidentDescription"`
	VehicleRegistration string  `json:"vehicleRegistration" validate:"max=20"`

	ThirdPartyName                string `json:"thirdPartyName"                validate:"max=200"`
	ThirdPartyInsurer             string `json:"thirdPartyInsurer"             validate:"max=200"`
	ThirdPartyPolicyNumber        string `json:"thirdPartyPolicyNumber"        validate:"max=64"`
	ThirdPartyVehicleRegistration string `json:"thirdPartyVehicleRegistration" validate:"max=20"`
	ThirdPartyPhone               string `json:"thirdPartyPhone"               validate:"max=40"`

	PartnerID *string `json:"partnerId"`
}

type claimStatusReq struct {
	Status string `json:"status" validate:"required,claimstatus"`
}

func (r claimReq) input() (claim.ClaimInput, error) {
	dob, errDOB := parseDate("clientDob", r.ClientDOB)
	acc, errAcc := parseDate("accidentDate", r.AccidentDate)
	if err := joinErrs(errDOB, errAcc); err != nil {
		return claim.ClaimInput{}, err
	}
	return claim.ClaimInput{
		Type:                          r.Type,
		Status:                        r.Status,
		ClientName:                    r.ClientName,
		ClientEmail:                   r.ClientEmail,
		ClientPhone:                   r.ClientPhone,
		ClientAddress:                 r.ClientAddress,
		ClientDOB:                     dob,
		AccidentDate:                  acc,
		AccidentLocation:              r.AccidentLocation,
		AccidentDescription:           r.AccidentDescription,
		VehicleRegistration:           r.VehicleRegistration,
		ThirdPartyName:                r.ThirdPartyName,
		ThirdPartyInsurer:             r.ThirdPartyInsurer,
		ThirdPartyPolicyNumber:        r.ThirdPartyPolicyNumber,
		ThirdPartyVehicleRegistration: r.ThirdPartyVehicleRegistration,
		ThirdPartyPhone:               r.ThirdPartyPhone,
		PartnerID:                     r.PartnerID,
	}, nil
}

func (h *ClaimHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), claim.ListClaimsInput{
		Status:    c.QueryParam("status"),
		Type:      c.QueryParam("type"),
		UserID:    c.QueryParam("userId"),
		PartnerID: c.QueryParam("partnerId"),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClaimHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return fail(c, err)
	}
	var req claimReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	in, err := req.input()
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.Request().Context(), p.UserID, in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ClaimHandler) Stats(c echo.Context) error {
	out, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClaimHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClaimHandler) Update(c echo.Context) error {
	var req claimReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	in, err := req.input()
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClaimHandler) UpdateStatus(c echo.Context) error {
	var req claimStatusReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClaimHandler) Transitions(c echo.Context) error {
	out, err := h.uc.Transitions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClaimHandler) Delete(c echo.Context) error {
	if err := h.uc.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ClaimHandler) Upload(c echo.Context) error {
	f, err := readFile(c, "file", h.maxUpload)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.AttachFile(c.Request().Context(), c.Param("id"), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ClaimHandler) File(c echo.Context) error {
	key, err := fileKey(c)
	if err != nil {
		return fail(c, err)
	}
	obj, err := h.uc.GetFile(c.Request().Context(), c.Param("id"), key)
	if err != nil {
		return fail(c, err)
	}
	return serveObject(c, key, obj)
}
