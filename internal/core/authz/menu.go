package authz

import "github.com/vetclinic/portal/internal/core/domain"

// MenuEntry is one item of the navigation menu.
type MenuEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

type menuItem struct {
	entry   MenuEntry
	roles   []domain.Role
	feature domain.Feature
}

var menu = []menuItem{
	{MenuEntry{"Dashboard", "/dashboard", "layout-dashboard"}, staff, ""},
	{MenuEntry{"Appointments", "/appointments", "calendar"}, staff, ""},
	{MenuEntry{"Pets", "/pets", "paw-print"}, staff, ""},
	{MenuEntry{"Clients", "/clients", "users"}, staff, ""},
	{MenuEntry{"Medical records", "/medical-records", "stethoscope"}, adminVet, ""},
	{MenuEntry{"Products", "/products", "package"}, adminReception, ""},
	{MenuEntry{"Billing", "/billing", "receipt"}, adminReception, domain.FeatureBillingView},
	{MenuEntry{"Financial reports", "/reports/financial", "chart-bar"}, adminOnly, domain.FeatureFinancialStats},
	{MenuEntry{"Chat", "/chat", "message-circle"}, staff, ""},
	{MenuEntry{"Staff", "/staff", "user-cog"}, adminOnly, ""},
	{MenuEntry{"Clinic settings", "/settings/clinic", "settings"}, adminOnly, ""},

	{MenuEntry{"My appointments", "/my-appointments", "calendar"}, clientOnly, ""},
	{MenuEntry{"My pets", "/my-pets", "paw-print"}, clientOnly, ""},
	{MenuEntry{"Settings", "/my-settings", "settings"}, clientOnly, ""},
}

// BuildMenu returns the entries visible to the viewer, in menu order. Without
// an identity (or while loading) the menu is empty.
func BuildMenu(v Viewer) []MenuEntry {
	out := []MenuEntry{}
	if v.Loading() {
		return out
	}
	if _, ok := v.Current(); !ok {
		return out
	}
	for _, item := range menu {
		if !v.HasPermission(item.roles...) {
			continue
		}
		if item.feature != "" && !v.HasFeatureAccess(item.feature) {
			continue
		}
		out = append(out, item.entry)
	}
	return out
}

// MenuFor is BuildMenu for a bare role.
func MenuFor(role domain.Role) []MenuEntry {
	return BuildMenu(SignedIn(domain.Identity{ID: "menu", Role: role}))
}
