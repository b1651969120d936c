package domain

import (
	"encoding/json"
	"fmt"
)

// Role is the clinic role carried by an authenticated identity.
// The string values are the ones persisted by the clinic backend.
type Role string

const (
	RoleAdmin        Role = "Admin"
	RoleVeterinarian Role = "Veterinario"
	RoleReceptionist Role = "Recepcionista"
	RoleClient       Role = "Cliente"
)

// AllRoles lists every role in a stable order.
var AllRoles = []Role{RoleAdmin, RoleVeterinarian, RoleReceptionist, RoleClient}

// StaffRoles are the roles that work inside the clinic.
var StaffRoles = []Role{RoleAdmin, RoleVeterinarian, RoleReceptionist}

// ParseRole converts a wire value into a Role. Unknown values are rejected.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
	}
	return r, nil
}

// Valid reports whether r is one of the four clinic roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleVeterinarian, RoleReceptionist, RoleClient:
		return true
	}
	return false
}

// IsStaff reports whether r belongs to clinic staff.
func (r Role) IsStaff() bool {
	return r.Valid() && r != RoleClient
}

func (r Role) String() string { return string(r) }

// UnmarshalJSON rejects roles outside the closed set at parse time.
func (r *Role) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("role: %w", err)
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
