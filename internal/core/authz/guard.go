package authz

import (
	"fmt"
	"path"
	"strings"

	"github.com/vetclinic/portal/internal/core/domain"
)

// State is the outcome of evaluating a navigation.
type State string

const (
	StateLoading         State = "LOADING"
	StateAuthorized      State = "AUTHORIZED"
	StateUnauthenticated State = "UNAUTHENTICATED"
	StateForbidden       State = "FORBIDDEN"
)

// DenyReason tells a role-level denial from a feature-level one.
type DenyReason string

const (
	ReasonNone    DenyReason = ""
	ReasonRole    DenyReason = "role"
	ReasonFeature DenyReason = "feature"
)

// Decision is the guard verdict for one navigation. A non-empty Redirect
// means the caller must navigate there instead of rendering Path.
type Decision struct {
	Path     string     `json:"path"`
	State    State      `json:"state"`
	Redirect string     `json:"redirect,omitempty"`
	Reason   DenyReason `json:"reason,omitempty"`
}

// Paths are the fixed destinations the guard redirects to.
type Paths struct {
	Root       string
	Login      string
	StaffHome  string
	ClientHome string
}

// DefaultPaths are the portal's standard destinations.
var DefaultPaths = Paths{
	Root:       PathRoot,
	Login:      PathLogin,
	StaffHome:  PathStaffHome,
	ClientHome: PathClientHome,
}

// Guard evaluates navigations against a route declaration table.
type Guard struct {
	paths  Paths
	routes map[string]Route
	order  []Route
}

// NewGuard indexes decls and checks that the table is usable: paths are
// unique, every role set is non-empty and valid, and each role's home is a
// screen that role may open, so a role redirect can never loop.
func NewGuard(decls []Route, paths Paths) (*Guard, error) {
	g := &Guard{
		paths:  paths,
		routes: make(map[string]Route, len(decls)),
		order:  make([]Route, 0, len(decls)),
	}
	for _, r := range decls {
		p := normalize(r.Path)
		if p == paths.Root {
			return nil, fmt.Errorf("authz: %s is resolved by role and cannot be declared", p)
		}
		if _, dup := g.routes[p]; dup {
			return nil, fmt.Errorf("authz: duplicate declaration for %s", p)
		}
		if len(r.Roles) == 0 {
			return nil, fmt.Errorf("authz: %s allows no roles", p)
		}
		for _, role := range r.Roles {
			if !role.Valid() {
				return nil, fmt.Errorf("authz: %s: %w: %q", p, domain.ErrUnknownRole, role)
			}
		}
		if r.Feature != "" {
			if _, err := domain.ParseFeature(string(r.Feature)); err != nil {
				return nil, fmt.Errorf("authz: %s: %w", p, err)
			}
		}
		r.Path = p
		g.routes[p] = r
		g.order = append(g.order, r)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// MustDefaultGuard builds the guard over the compiled-in table.
func MustDefaultGuard() *Guard {
	g, err := NewGuard(routes, DefaultPaths)
	if err != nil {
		panic(err)
	}
	return g
}

// Validate checks that every role lands on a home screen it may open.
func (g *Guard) Validate() error {
	for _, role := range domain.AllRoles {
		home := g.HomeFor(role)
		r, ok := g.routes[home]
		if !ok {
			return fmt.Errorf("authz: home %s for %s is not declared", home, role)
		}
		if !RoleIn(role, r.Roles) {
			return fmt.Errorf("authz: home %s does not admit %s", home, role)
		}
		if r.Feature != "" && !FeatureAllowed(r.Feature, role) {
			return fmt.Errorf("authz: home %s requires %s, which %s lacks", home, r.Feature, role)
		}
	}
	return nil
}

// HomeFor is the role-appropriate default screen.
func (g *Guard) HomeFor(role domain.Role) string {
	if role == domain.RoleClient {
		return g.paths.ClientHome
	}
	return g.paths.StaffHome
}

// Paths returns the guard's fixed destinations.
func (g *Guard) Paths() Paths { return g.paths }

// Routes returns the declarations in table order.
func (g *Guard) Routes() []Route {
	out := make([]Route, len(g.order))
	copy(out, g.order)
	return out
}

// Lookup finds the declaration governing p: the exact path, or the closest
// declared ancestor (so /pets/42 is governed by /pets).
func (g *Guard) Lookup(p string) (Route, bool) {
	p = normalize(p)
	for {
		if r, ok := g.routes[p]; ok {
			return r, true
		}
		if p == "/" {
			return Route{}, false
		}
		p = path.Dir(p)
	}
}

// Evaluate applies the guard rules, in order, to a navigation to p.
func (g *Guard) Evaluate(p string, v Viewer) (Decision, error) {
	p = normalize(p)
	d := Decision{Path: p}

	if p == g.paths.Root {
		return g.resolveRoot(d, v), nil
	}

	r, ok := g.Lookup(p)
	if !ok {
		return d, fmt.Errorf("%w: %s", domain.ErrRouteNotFound, p)
	}

	if v.Loading() {
		d.State = StateLoading
		return d, nil
	}

	id, ok := v.Current()
	if !ok {
		d.State = StateUnauthenticated
		d.Redirect = g.paths.Login
		return d, nil
	}

	if !v.HasPermission(r.Roles...) {
		d.State = StateForbidden
		d.Reason = ReasonRole
		d.Redirect = g.HomeFor(id.Role)
		return d, nil
	}

	if r.Feature != "" && !v.HasFeatureAccess(r.Feature) {
		d.State = StateForbidden
		d.Reason = ReasonFeature
		d.Redirect = g.paths.Root
		return d, nil
	}

	d.State = StateAuthorized
	return d, nil
}

// resolveRoot sends every navigation to the root to a single place chosen by
// role, instead of depending on the order of competing declarations.
func (g *Guard) resolveRoot(d Decision, v Viewer) Decision {
	if v.Loading() {
		d.State = StateLoading
		return d
	}
	id, ok := v.Current()
	if !ok {
		d.State = StateUnauthenticated
		d.Redirect = g.paths.Login
		return d
	}
	d.State = StateAuthorized
	d.Redirect = g.HomeFor(id.Role)
	return d
}

func normalize(p string) string {
	if p == "" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return path.Clean(p)
}
