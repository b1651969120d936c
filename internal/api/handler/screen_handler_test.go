package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/portal/internal/api/middleware"
	"github.com/vetclinic/portal/internal/core/authz"
	"github.com/vetclinic/portal/internal/core/domain"
)

func newScreenServer(p *memProvider) *echo.Echo {
	e := newSessionEcho(p, stubAuthenticator{})
	g := authz.MustDefaultGuard()
	h := NewScreenHandler(g)
	e.GET("/pets/*", h.Render, middleware.Guard(g))
	e.GET("/pets", h.Render, middleware.Guard(g))
	return e
}

func TestScreenHandler_RenderNestedPath(t *testing.T) {
	p := newMemProvider()
	seedSession(t, p, domain.Identity{ID: "v-1", Name: "Ana", Role: domain.RoleVeterinarian})
	e := newScreenServer(p)

	rec := doRequest(t, e, http.MethodGet, "/pets/42", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp screenResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Screen != "/pets/42" || resp.Route != "/pets" || resp.State != authz.StateAuthorized {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestScreenHandler_ClientRedirected(t *testing.T) {
	p := newMemProvider()
	seedSession(t, p, domain.Identity{ID: "c-1", Name: "Juan", Role: domain.RoleClient})
	e := newScreenServer(p)

	rec := doRequest(t, e, http.MethodGet, "/pets", "")
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/my-appointments" {
		t.Fatalf("expected /my-appointments, got %q", loc)
	}
}

func TestHealthHandler_Readiness(t *testing.T) {
	e := echo.New()
	h := NewHealthHandler(map[string]HealthCheck{
		"redis":   func(context.Context) error { return nil },
		"mongodb": func(context.Context) error { return errors.New("no reachable servers") },
	})
	e.GET("/health", h.Liveness)
	e.GET("/health/ready", h.Readiness)

	if rec := doRequest(t, e, http.MethodGet, "/health", ""); rec.Code != http.StatusOK {
		t.Fatalf("liveness: expected 200, got %d", rec.Code)
	}

	rec := doRequest(t, e, http.MethodGet, "/health/ready", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("readiness: expected 503, got %d", rec.Code)
	}
	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "degraded" || resp.Dependencies["redis"].Status != "ok" || resp.Dependencies["mongodb"].Status != "unhealthy" {
		t.Fatalf("unexpected readiness: %+v", resp)
	}
}
