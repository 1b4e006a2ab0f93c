package http

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// Check is a named dependency check run by /health.
type Check struct {
	Name string
	Ping func(ctx context.Context) error
}

type Handler struct {
	checks  []Check
	timeout time.Duration
}

func NewHandler(checks ...Check) *Handler { return &Handler{checks: checks, timeout: 2 * time.Second} }

type healthResp struct {
	Status string            `json:"status"`
	Time   string            `json:"time"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Health answers 503 when any dependency check fails. Check errors are
// logged, not returned.
func (h *Handler) Health(c echo.Context) error {
	out := healthResp{Status: "ok"}
	code := http.StatusOK
	if len(h.checks) > 0 {
		out.Checks = make(map[string]string, len(h.checks))
	}
	for _, chk := range h.checks {
		ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
		err := chk.Ping(ctx)
		cancel()
		if err != nil {
			logrus.WithError(err).WithField("check", chk.Name).Warn("health check failed")
			out.Checks[chk.Name] = "down"
			out.Status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		out.Checks[chk.Name] = "ok"
	}
	out.Time = time.Now().UTC().Format(time.RFC3339Nano)
	return c.JSON(code, out)
}
