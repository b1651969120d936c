package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/portal/internal/core/authz"
	"github.com/vetclinic/portal/internal/core/domain"
)

// RBAC enforces role-based access control on API routes. The role comes from
// the bearer token when Auth ran, otherwise from the portal session.
func RBAC(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := requestRole(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !authz.RoleIn(role, allowedRoles) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// RequireFeature denies the request unless the caller's role holds feature.
func RequireFeature(feature domain.Feature) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := requestRole(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !authz.FeatureAllowed(feature, role) {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

func requestRole(c echo.Context) (domain.Role, bool) {
	if role, ok := c.Get(CtxRole).(domain.Role); ok && role != "" {
		return role, true
	}
	if ac := AuthContext(c); ac != nil {
		if id, ok := ac.Current(); ok {
			return id.Role, true
		}
	}
	return "", false
}
