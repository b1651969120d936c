package authz

import (
	"slices"

	"github.com/vetclinic/portal/internal/core/domain"
)

// Well-known portal paths.
const (
	PathRoot       = "/"
	PathLogin      = "/login"
	PathStaffHome  = "/dashboard"
	PathClientHome = "/my-appointments"
)

// Route declares who may open a screen. Feature, when set, is checked in
// addition to Roles.
type Route struct {
	Path    string         `json:"path"`
	Roles   []domain.Role  `json:"roles"`
	Feature domain.Feature `json:"feature,omitempty"`
}

var (
	staff          = domain.StaffRoles
	adminVet       = []domain.Role{domain.RoleAdmin, domain.RoleVeterinarian}
	adminReception = []domain.Role{domain.RoleAdmin, domain.RoleReceptionist}
	adminOnly      = []domain.Role{domain.RoleAdmin}
	clientOnly     = []domain.Role{domain.RoleClient}
)

// routes is the route guard declaration table consumed by the router.
var routes = []Route{
	{Path: "/dashboard", Roles: staff},
	{Path: "/appointments", Roles: staff},
	{Path: "/pets", Roles: staff},
	{Path: "/clients", Roles: staff},
	{Path: "/chat", Roles: staff},
	{Path: "/profile", Roles: staff},

	{Path: "/medical-records", Roles: adminVet},
	{Path: "/medical-records/diagnosis", Roles: adminVet, Feature: domain.FeatureMedicalDiagnosis},

	{Path: "/products", Roles: adminReception},
	{Path: "/products/pricing", Roles: adminReception, Feature: domain.FeatureProductsPricing},
	{Path: "/billing", Roles: adminReception, Feature: domain.FeatureBillingView},
	{Path: "/billing/new", Roles: adminReception, Feature: domain.FeatureBillingCreate},
	{Path: "/billing/payments", Roles: adminReception, Feature: domain.FeatureBillingPayment},
	{Path: "/reports/financial", Roles: adminReception, Feature: domain.FeatureFinancialStats},

	{Path: "/staff", Roles: adminOnly},
	{Path: "/settings/clinic", Roles: adminOnly},

	{Path: "/my-appointments", Roles: clientOnly},
	{Path: "/my-pets", Roles: clientOnly},
	{Path: "/my-settings", Roles: clientOnly},
}

// Routes returns a copy of the declaration table.
func Routes() []Route {
	out := make([]Route, len(routes))
	for i, r := range routes {
		r.Roles = slices.Clone(r.Roles)
		out[i] = r
	}
	return out
}
