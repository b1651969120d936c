package handler

import (
	"github.com/vetclinic/portal/internal/core/authz"
	"github.com/vetclinic/portal/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error"`
}

// ── Session ──────────────────────────────────────────────────────────────────

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	OK            bool                  `json:"ok"`
	User          *domain.Identity      `json:"user,omitempty"`
	Menu          []authz.MenuEntry     `json:"menu,omitempty"`
	Notifications []domain.Notification `json:"notifications"`
}

type sessionResponse struct {
	User     domain.Identity         `json:"user"`
	Menu     []authz.MenuEntry       `json:"menu"`
	Features map[domain.Feature]bool `json:"features"`
}

// ── Local accounts ───────────────────────────────────────────────────────────

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required,oneof=Admin Veterinario Recepcionista Cliente"`
	ImageURL string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

type tokenRequest struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// ── Navigation & access ──────────────────────────────────────────────────────

type menuResponse struct {
	Entries []authz.MenuEntry `json:"entries"`
}

type featuresResponse struct {
	Role     domain.Role             `json:"role,omitempty"`
	Features map[domain.Feature]bool `json:"features"`
}

type checkResponse struct {
	Roles   []domain.Role `json:"roles"`
	Allowed bool          `json:"allowed"`
}

type policyResponse struct {
	Root        string                           `json:"root"`
	Login       string                           `json:"login"`
	StaffHome   string                           `json:"staffHome"`
	ClientHome  string                           `json:"clientHome"`
	Routes      []authz.Route                    `json:"routes"`
	Permissions map[domain.Feature][]domain.Role `json:"permissions"`
}

type screenResponse struct {
	Screen string      `json:"screen"`
	Route  string      `json:"route"`
	State  authz.State `json:"state"`
}
