package http

import (
	"errors"
	"net/http"

	"claims-backoffice/internal/domain/apperr"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// statusOf maps the apperr taxonomy onto HTTP.
func statusOf(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: apperr.Fields(err)}
	case errors.Is(err, apperr.ErrUnauthenticated):
		return http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"}
	case errors.Is(err, apperr.ErrOwnershipMismatch):
		return http.StatusForbidden, ErrorResponse{Error: "resource does not belong to this claim"}
	case errors.Is(err, apperr.ErrForbidden):
		return http.StatusForbidden, ErrorResponse{Error: "forbidden"}
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: "not found"}
	case errors.Is(err, apperr.ErrInvalidTransition):
		return http.StatusConflict, ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict, ErrorResponse{Error: err.Error()}
	case bodyTooLarge(err):
		return http.StatusRequestEntityTooLarge, ErrorResponse{Error: "request body too large"}
	}
	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

// fail writes err as a JSON error response. Unexpected errors are logged
// and never leak to the client.
func fail(c echo.Context, err error) error {
	code, body := statusOf(err)
	if code == http.StatusInternalServerError {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method":     c.Request().Method,
			"route":      c.Path(),
			"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
		}).Error("unhandled error")
	}
	return c.JSON(code, body)
}

// ErrorHandler is installed as echo's HTTPErrorHandler; it covers errors
// returned instead of written (unknown routes, bind failures, panics).
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg := http.StatusText(he.Code)
		if s, ok := he.Message.(string); ok && he.Code < http.StatusInternalServerError {
			msg = s
		}
		if he.Code >= http.StatusInternalServerError {
			logrus.WithError(err).WithField("route", c.Path()).Error("unhandled error")
			msg = "internal server error"
		}
		_ = c.JSON(he.Code, ErrorResponse{Error: msg})
		return
	}
	_ = fail(c, err)
}
