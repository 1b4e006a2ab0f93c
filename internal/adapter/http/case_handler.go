package http

import (
	"net/http"

	"claims-backoffice/internal/usecase/cases"

	"github.com/labstack/echo/v4"
)

type CaseHandler struct{ uc *cases.Usecase }

func NewCaseHandler(uc *cases.Usecase) *CaseHandler { return &CaseHandler{uc: uc} }

type createCaseReq struct {
	Title    string `json:"title"    validate:"required,max=255"`
	Client   string `json:"client"   validate:"required,max=255"`
	Priority string `json:"priority" validate:"omitempty,casepriority"`
	// accepted and ignored, new cases always start at INITIAL_ASSESSMENT
	Status     string  `json:"status"`
	AssignedTo *string `json:"assignedTo"`
}

type updateCaseReq struct {
	Title    *string `json:"title"    validate:"omitempty,max=255"`
	Client   *string `json:"client"   validate:"omitempty,max=255"`
	Priority *string `json:"priority" validate:"omitempty,casepriority"`
	Status   *string `json:"status"   validate:"omitempty,casestatus"`
}

type assignCaseReq struct {
	AssignedTo *string `json:"assignedTo"`
}

func (h *CaseHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), cases.ListCasesInput{
		Status:     c.QueryParam("status"),
		AssignedTo: c.QueryParam("assignedTo"),
		CreatedBy:  c.QueryParam("createdBy"),
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CaseHandler) Create(c echo.Context) error {
	p, err := principal(c)
	if err != nil {
		return fail(c, err)
	}
	var req createCaseReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Create(c.Request().Context(), cases.CreateCaseInput{
		Title:      req.Title,
		Client:     req.Client,
		Priority:   req.Priority,
		Status:     req.Status,
		AssignedTo: req.AssignedTo,
		CreatedBy:  p.UserID,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

// Get accepts the opaque id or the C-{n} number.
func (h *CaseHandler) Get(c echo.Context) error {
	out, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CaseHandler) Update(c echo.Context) error {
	var req updateCaseReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Update(c.Request().Context(), c.Param("id"), cases.UpdateCaseInput(req))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CaseHandler) Assign(c echo.Context) error {
	var req assignCaseReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.Assign(c.Request().Context(), c.Param("id"), req.AssignedTo)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
