package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/portal/internal/api/middleware"
	"github.com/vetclinic/portal/internal/core/authz"
	"github.com/vetclinic/portal/internal/core/domain"
)

// AccessHandler answers permission questions for the current session and
// publishes the compiled-in policy.
type AccessHandler struct {
	guard *authz.Guard
}

func NewAccessHandler(guard *authz.Guard) *AccessHandler {
	return &AccessHandler{guard: guard}
}

// Features reports, for every feature, whether the session may use it.
//
// @Summary      Feature grants
// @Tags         access
// @Produce      json
// @Success      200  {object}  featuresResponse
// @Router       /v1/access/features [get]
func (h *AccessHandler) Features(c echo.Context) error {
	v := middleware.Viewer(c)
	resp := featuresResponse{Features: featureGrants(v)}
	if id, ok := v.Current(); ok {
		resp.Role = id.Role
	}
	return c.JSON(http.StatusOK, resp)
}

// Check reports whether the session's role is one of the given roles.
//
// @Summary      Role check
// @Tags         access
// @Produce      json
// @Param        roles  query     string  true  "Comma-separated roles, e.g. Admin,Recepcionista"
// @Success      200    {object}  checkResponse
// @Failure      400    {object}  errorResponse
// @Router       /v1/access/check [get]
func (h *AccessHandler) Check(c echo.Context) error {
	roles, err := parseRoles(c.QueryParam("roles"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, checkResponse{
		Roles:   roles,
		Allowed: middleware.Viewer(c).HasPermission(roles...),
	})
}

// Policy returns the route declarations and the permission table.
//
// @Summary      Access policy
// @Tags         access
// @Produce      json
// @Success      200  {object}  policyResponse
// @Router       /v1/policy [get]
func (h *AccessHandler) Policy(c echo.Context) error {
	paths := h.guard.Paths()
	return c.JSON(http.StatusOK, policyResponse{
		Root:        paths.Root,
		Login:       paths.Login,
		StaffHome:   paths.StaffHome,
		ClientHome:  paths.ClientHome,
		Routes:      h.guard.Routes(),
		Permissions: authz.PermissionTable(),
	})
}

// parseRoles splits a comma-separated role list. An empty list is valid and
// never matches.
func parseRoles(raw string) ([]domain.Role, error) {
	out := []domain.Role{}
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		r, err := domain.ParseRole(part)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
