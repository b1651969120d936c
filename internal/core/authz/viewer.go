package authz

import "github.com/vetclinic/portal/internal/core/domain"

// Viewer is the read side of an authorization context, as consumed by the
// route guard and the menu builder.
type Viewer interface {
	// Loading is true while the persisted session is still being restored.
	Loading() bool
	// Current returns the active identity, if any.
	Current() (domain.Identity, bool)
	HasPermission(roles ...domain.Role) bool
	HasFeatureAccess(feature domain.Feature) bool
}

// Snapshot is an immutable Viewer over a fixed state.
type Snapshot struct {
	Rehydrating bool
	Identity    *domain.Identity
}

// Anonymous is the settled, logged-out state.
var Anonymous = Snapshot{}

// SignedIn returns a settled snapshot for id.
func SignedIn(id domain.Identity) Snapshot {
	return Snapshot{Identity: &id}
}

func (s Snapshot) Loading() bool { return s.Rehydrating }

func (s Snapshot) Current() (domain.Identity, bool) {
	if s.Identity == nil {
		return domain.Identity{}, false
	}
	return *s.Identity, true
}

func (s Snapshot) HasPermission(roles ...domain.Role) bool {
	if s.Identity == nil {
		return false
	}
	return RoleIn(s.Identity.Role, roles)
}

func (s Snapshot) HasFeatureAccess(feature domain.Feature) bool {
	if s.Identity == nil {
		return false
	}
	return FeatureAllowed(feature, s.Identity.Role)
}
