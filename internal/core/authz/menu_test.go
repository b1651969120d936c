package authz

import (
	"testing"

	"github.com/vetclinic/portal/internal/core/domain"
)

func paths(entries []MenuEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Path
	}
	return out
}

func TestBuildMenu_NoIdentity(t *testing.T) {
	if got := BuildMenu(Anonymous); len(got) != 0 {
		t.Fatalf("expected empty menu, got %v", paths(got))
	}
	if got := BuildMenu(Snapshot{Rehydrating: true}); len(got) != 0 {
		t.Fatalf("expected empty menu while loading, got %v", paths(got))
	}
}

func TestBuildMenu_PerRole(t *testing.T) {
	cases := map[domain.Role][]string{
		domain.RoleAdmin: {
			"/dashboard", "/appointments", "/pets", "/clients", "/medical-records",
			"/products", "/billing", "/reports/financial", "/chat", "/staff", "/settings/clinic",
		},
		domain.RoleVeterinarian: {
			"/dashboard", "/appointments", "/pets", "/clients", "/medical-records", "/chat",
		},
		domain.RoleReceptionist: {
			"/dashboard", "/appointments", "/pets", "/clients", "/products", "/billing", "/chat",
		},
		domain.RoleClient: {
			"/my-appointments", "/my-pets", "/my-settings",
		},
	}

	for role, want := range cases {
		got := paths(MenuFor(role))
		if len(got) != len(want) {
			t.Fatalf("%s: got %v, want %v", role, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("%s: got %v, want %v", role, got, want)
			}
		}
	}
}

func TestBuildMenu_EntriesAreReachable(t *testing.T) {
	g := MustDefaultGuard()

	for _, role := range domain.AllRoles {
		for _, e := range MenuFor(role) {
			d, err := g.Evaluate(e.Path, as(role))
			if err != nil {
				t.Fatalf("%s: menu path %s: %v", role, e.Path, err)
			}
			if d.State != StateAuthorized || d.Redirect != "" {
				t.Errorf("%s sees %s in the menu but the guard says %+v", role, e.Path, d)
			}
		}
	}
}
