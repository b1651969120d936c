package authz

import (
	"testing"

	"github.com/vetclinic/portal/internal/core/domain"
)

func TestFeatureAllowed_Table(t *testing.T) {
	admin, vet, recep, client := domain.RoleAdmin, domain.RoleVeterinarian, domain.RoleReceptionist, domain.RoleClient

	want := map[domain.Feature][]domain.Role{
		domain.FeatureBillingView:      {admin, recep},
		domain.FeatureBillingCreate:    {admin, recep},
		domain.FeatureBillingPayment:   {admin, recep},
		domain.FeatureFinancialStats:   {admin},
		domain.FeatureMedicalDiagnosis: {admin, vet},
		domain.FeatureProductsPricing:  {admin, recep},
	}

	for _, f := range domain.AllFeatures {
		for _, role := range []domain.Role{admin, vet, recep, client} {
			expected := false
			for _, r := range want[f] {
				if r == role {
					expected = true
				}
			}
			if got := FeatureAllowed(f, role); got != expected {
				t.Errorf("FeatureAllowed(%s, %s) = %v, want %v", f, role, got, expected)
			}
		}
	}
}

func TestFeatureAllowed_UnknownFeature(t *testing.T) {
	for _, role := range domain.AllRoles {
		if FeatureAllowed(domain.Feature("teleport"), role) {
			t.Fatalf("unknown feature allowed for %s", role)
		}
	}
}

func TestRoleIn_EmptySetDeniesEveryone(t *testing.T) {
	for _, role := range domain.AllRoles {
		if RoleIn(role, nil) {
			t.Fatalf("empty role set admitted %s", role)
		}
	}
}

func TestRoleIn_InvalidRole(t *testing.T) {
	if RoleIn(domain.Role("Superuser"), []domain.Role{domain.Role("Superuser")}) {
		t.Fatalf("invalid role must never match")
	}
}

func TestPermissionTable_ReturnsCopy(t *testing.T) {
	table := PermissionTable()
	table[domain.FeatureFinancialStats] = append(table[domain.FeatureFinancialStats], domain.RoleClient)

	if FeatureAllowed(domain.FeatureFinancialStats, domain.RoleClient) {
		t.Fatalf("mutating the returned table changed policy")
	}
	if len(PermissionTable()) != len(domain.AllFeatures) {
		t.Fatalf("table must cover every feature")
	}
}

func TestSnapshot_NoIdentity(t *testing.T) {
	if Anonymous.HasPermission(domain.AllRoles...) {
		t.Fatalf("anonymous snapshot must not have any role")
	}
	for _, f := range domain.AllFeatures {
		if Anonymous.HasFeatureAccess(f) {
			t.Fatalf("anonymous snapshot has feature %s", f)
		}
	}
}

func TestSnapshot_HasPermissionEmpty(t *testing.T) {
	for _, role := range domain.AllRoles {
		s := SignedIn(domain.Identity{ID: "1", Role: role})
		if s.HasPermission() {
			t.Fatalf("HasPermission() with no roles returned true for %s", role)
		}
	}
}
