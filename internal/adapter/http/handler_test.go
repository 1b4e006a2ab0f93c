package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func runHealth(t *testing.T, h *Handler) (*httptest.ResponseRecorder, healthResp) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)
	if err := h.Health(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	ct := rec.Header().Get(echo.HeaderContentType)
	if !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		t.Fatalf("expected Content-Type application/json, got %q", ct)
	}
	var body healthResp
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v; raw=%s", err, rec.Body.String())
	}
	return rec, body
}

func TestHealth_OKWithRFC3339NanoUTC(t *testing.T) {
	start := time.Now().UTC()
	rec, body := runHealth(t, NewHandler())

	if rec.Code != http.StatusOK || body.Status != "ok" {
		t.Fatalf("got %d %q", rec.Code, body.Status)
	}
	if body.Checks != nil {
		t.Fatalf("expected no checks, got %v", body.Checks)
	}
	parsed, err := time.Parse(time.RFC3339Nano, body.Time)
	if err != nil {
		t.Fatalf("time not RFC3339Nano: %v (value=%q)", err, body.Time)
	}
	if parsed.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", parsed.Location())
	}
	if parsed.Before(start.Add(-2*time.Second)) || parsed.After(time.Now().UTC().Add(2*time.Second)) {
		t.Fatalf("time not within expected window: %v", parsed)
	}
}

func TestHealth_DegradedWhenCheckFails(t *testing.T) {
	ok := Check{Name: "db", Ping: func(context.Context) error { return nil }}
	down := Check{Name: "redis", Ping: func(context.Context) error { return errors.New("connection refused") }}

	rec, body := runHealth(t, NewHandler(ok, down))

	if rec.Code != http.StatusServiceUnavailable || body.Status != "degraded" {
		t.Fatalf("got %d %q", rec.Code, body.Status)
	}
	if body.Checks["db"] != "ok" || body.Checks["redis"] != "down" {
		t.Fatalf("checks=%v", body.Checks)
	}
	if strings.Contains(rec.Body.String(), "refused") {
		t.Fatalf("check error leaked: %s", rec.Body.String())
	}
}

func TestHealth_CheckGetsDeadline(t *testing.T) {
	var hadDeadline bool
	chk := Check{Name: "db", Ping: func(ctx context.Context) error {
		_, hadDeadline = ctx.Deadline()
		return nil
	}}
	runHealth(t, NewHandler(chk))
	if !hadDeadline {
		t.Fatal("check context has no deadline")
	}
}
