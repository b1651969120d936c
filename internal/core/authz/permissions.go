// Package authz holds the compiled-in access policy of the clinic portal:
// the feature permission table, the route declarations, the route guard
// and the navigation menu derived from them.
package authz

import (
	"slices"

	"github.com/vetclinic/portal/internal/core/domain"
)

// featureRoles is the permission table. It is policy, not data: it is never
// loaded from the backend and never mutated after init.
var featureRoles = map[domain.Feature][]domain.Role{
	domain.FeatureBillingView:      {domain.RoleAdmin, domain.RoleReceptionist},
	domain.FeatureBillingCreate:    {domain.RoleAdmin, domain.RoleReceptionist},
	domain.FeatureBillingPayment:   {domain.RoleAdmin, domain.RoleReceptionist},
	domain.FeatureFinancialStats:   {domain.RoleAdmin},
	domain.FeatureMedicalDiagnosis: {domain.RoleAdmin, domain.RoleVeterinarian},
	domain.FeatureProductsPricing:  {domain.RoleAdmin, domain.RoleReceptionist},
}

// RoleIn reports whether role is a member of allowed. An empty set allows nobody.
func RoleIn(role domain.Role, allowed []domain.Role) bool {
	if !role.Valid() {
		return false
	}
	return slices.Contains(allowed, role)
}

// FeatureAllowed reports whether role may use feature. Unknown features are denied.
func FeatureAllowed(feature domain.Feature, role domain.Role) bool {
	roles, ok := featureRoles[feature]
	if !ok {
		return false
	}
	return RoleIn(role, roles)
}

// FeatureRoles returns a copy of the roles allowed to use feature.
func FeatureRoles(feature domain.Feature) []domain.Role {
	return slices.Clone(featureRoles[feature])
}

// PermissionTable returns a copy of the whole table, keyed by feature.
func PermissionTable() map[domain.Feature][]domain.Role {
	out := make(map[domain.Feature][]domain.Role, len(featureRoles))
	for f, roles := range featureRoles {
		out[f] = slices.Clone(roles)
	}
	return out
}
