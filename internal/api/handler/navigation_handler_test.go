package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/portal/internal/core/authz"
	"github.com/vetclinic/portal/internal/core/domain"
)

func newNavigationServer(p *memProvider) *echo.Echo {
	e := newSessionEcho(p, stubAuthenticator{})
	g := authz.MustDefaultGuard()
	nav := NewNavigationHandler(g)
	access := NewAccessHandler(g)
	e.GET("/v1/navigation/menu", nav.Menu)
	e.GET("/v1/navigation/resolve", nav.Resolve)
	e.GET("/v1/access/features", access.Features)
	e.GET("/v1/access/check", access.Check)
	e.GET("/v1/policy", access.Policy)
	return e
}

func TestNavigationHandler_MenuAnonymousIsEmpty(t *testing.T) {
	e := newNavigationServer(newMemProvider())
	rec := doRequest(t, e, http.MethodGet, "/v1/navigation/menu", "")

	var resp menuResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Entries == nil || len(resp.Entries) != 0 {
		t.Fatalf("expected empty entries, got %+v", resp.Entries)
	}
}

func TestNavigationHandler_MenuClient(t *testing.T) {
	p := newMemProvider()
	seedSession(t, p, domain.Identity{ID: "c-1", Name: "Juan", Role: domain.RoleClient})
	e := newNavigationServer(p)

	rec := doRequest(t, e, http.MethodGet, "/v1/navigation/menu", "")
	var resp menuResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	want := []string{"/my-appointments", "/my-pets", "/my-settings"}
	if len(resp.Entries) != len(want) {
		t.Fatalf("expected %d entries, got %+v", len(want), resp.Entries)
	}
	for i, p := range want {
		if resp.Entries[i].Path != p {
			t.Fatalf("entry %d: expected %s, got %s", i, p, resp.Entries[i].Path)
		}
	}
}

func TestNavigationHandler_Resolve(t *testing.T) {
	p := newMemProvider()
	seedSession(t, p, domain.Identity{ID: "r-1", Name: "Lu", Role: domain.RoleReceptionist})
	e := newNavigationServer(p)

	cases := []struct {
		path     string
		state    authz.State
		redirect string
	}{
		{"/billing/new", authz.StateAuthorized, ""},
		{"/reports/financial", authz.StateForbidden, "/"},
		{"/medical-records", authz.StateForbidden, "/dashboard"},
		{"/", authz.StateAuthorized, "/dashboard"},
	}
	for _, tc := range cases {
		rec := doRequest(t, e, http.MethodGet, "/v1/navigation/resolve?path="+tc.path, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", tc.path, rec.Code)
		}
		var d authz.Decision
		if err := json.Unmarshal(rec.Body.Bytes(), &d); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if d.State != tc.state || d.Redirect != tc.redirect {
			t.Fatalf("%s: expected %s→%q, got %+v", tc.path, tc.state, tc.redirect, d)
		}
	}
}

func TestNavigationHandler_ResolveErrors(t *testing.T) {
	h := NewNavigationHandler(authz.MustDefaultGuard())
	e := echo.New()

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/navigation/resolve", nil), httptest.NewRecorder())
	err := h.Resolve(c)
	if he, ok := err.(*echo.HTTPError); !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}

	c = e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/navigation/resolve?path=/nowhere", nil), httptest.NewRecorder())
	if err := h.Resolve(c); !errors.Is(err, domain.ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestAccessHandler_FeaturesAndCheck(t *testing.T) {
	p := newMemProvider()
	seedSession(t, p, domain.Identity{ID: "a-1", Name: "Root", Role: domain.RoleAdmin})
	e := newNavigationServer(p)

	rec := doRequest(t, e, http.MethodGet, "/v1/access/features", "")
	var fr featuresResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &fr); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if fr.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role %q", fr.Role)
	}
	for _, f := range domain.AllFeatures {
		if !fr.Features[f] {
			t.Fatalf("admin should hold %s", f)
		}
	}

	rec = doRequest(t, e, http.MethodGet, "/v1/access/check?roles=Veterinario,Admin", "")
	var cr checkResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &cr); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !cr.Allowed || len(cr.Roles) != 2 {
		t.Fatalf("unexpected check result: %+v", cr)
	}

	rec = doRequest(t, e, http.MethodGet, "/v1/access/check?roles=", "")
	cr = checkResponse{}
	if err := json.Unmarshal(rec.Body.Bytes(), &cr); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if cr.Allowed {
		t.Fatalf("empty role set must not match")
	}
}

func TestAccessHandler_CheckUnknownRole(t *testing.T) {
	h := NewAccessHandler(authz.MustDefaultGuard())
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/v1/access/check?roles=Janitor", nil), httptest.NewRecorder())
	if err := h.Check(c); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestAccessHandler_Policy(t *testing.T) {
	e := newNavigationServer(newMemProvider())
	rec := doRequest(t, e, http.MethodGet, "/v1/policy", "")

	var resp policyResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.StaffHome != "/dashboard" || resp.ClientHome != "/my-appointments" || resp.Login != "/login" {
		t.Fatalf("unexpected destinations: %+v", resp)
	}
	if len(resp.Routes) != len(authz.Routes()) {
		t.Fatalf("expected %d routes, got %d", len(authz.Routes()), len(resp.Routes))
	}
	if roles := resp.Permissions[domain.FeatureFinancialStats]; len(roles) != 1 || roles[0] != domain.RoleAdmin {
		t.Fatalf("unexpected financial_stats roles: %v", roles)
	}
}
