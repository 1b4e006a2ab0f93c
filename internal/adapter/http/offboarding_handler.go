package http

import (
	"net/http"

	"claims-backoffice/internal/usecase/offboarding"

	"github.com/labstack/echo/v4"
)

type OffboardingHandler struct {
	uc        *offboarding.Usecase
	maxUpload int64
}

func NewOffboardingHandler(uc *offboarding.Usecase, maxUpload int64) *OffboardingHandler {
	return &OffboardingHandler{uc: uc, maxUpload: maxUpload}
}

type documentReq struct {
	IsExcluded *bool `json:"isExcluded" validate:"required"`
}

func (h *OffboardingHandler) Get(c echo.Context) error {
	out, err := h.uc.GetStep(c.Request().Context(), c.Param("id"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OffboardingHandler) Update(c echo.Context) error {
	var req stepReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	at, err := parseDate("completedAt", req.CompletedAt)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.UpdateStep(c.Request().Context(), c.Param("id"), offboarding.StepInput{
		Notes: req.Notes, CompletedAt: at, Completed: req.Completed,
	})
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// Upload stores a document of the given type, replacing any previous one.
func (h *OffboardingHandler) Upload(c echo.Context) error {
	f, err := readFile(c, "file", h.maxUpload)
	if err != nil {
		return fail(c, err)
	}
	out, err := h.uc.UploadDocument(c.Request().Context(), c.Param("id"), c.FormValue("documentType"), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *OffboardingHandler) UpdateDocument(c echo.Context) error {
	var req documentReq
	if err := bind(c, &req); err != nil {
		return fail(c, err)
	}
	out, err := h.uc.SetExcluded(c.Request().Context(), c.Param("id"), c.Param("docId"), *req.IsExcluded)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OffboardingHandler) DeleteDocument(c echo.Context) error {
	if err := h.uc.DeleteDocument(c.Request().Context(), c.Param("id"), c.Param("docId")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *OffboardingHandler) File(c echo.Context) error {
	key, err := fileKey(c)
	if err != nil {
		return fail(c, err)
	}
	obj, err := h.uc.Download(c.Request().Context(), c.Param("id"), key)
	if err != nil {
		return fail(c, err)
	}
	return serveObject(c, key, obj)
}
