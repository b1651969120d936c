package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/portal/internal/api/metrics"
	"github.com/vetclinic/portal/internal/api/middleware"
	"github.com/vetclinic/portal/internal/core/authz"
)

// NavigationHandler serves the derived navigation views: the menu and
// route guard decisions the front-end asks for before switching screens.
type NavigationHandler struct {
	guard *authz.Guard
}

func NewNavigationHandler(guard *authz.Guard) *NavigationHandler {
	return &NavigationHandler{guard: guard}
}

// Menu lists the entries visible to the session's identity.
//
// @Summary      Navigation menu
// @Tags         navigation
// @Produce      json
// @Success      200  {object}  menuResponse
// @Router       /v1/navigation/menu [get]
func (h *NavigationHandler) Menu(c echo.Context) error {
	return c.JSON(http.StatusOK, menuResponse{Entries: authz.BuildMenu(middleware.Viewer(c))})
}

// Resolve evaluates the route guard for a path without navigating.
//
// @Summary      Resolve a navigation
// @Tags         navigation
// @Produce      json
// @Param        path  query     string  true  "Portal path, e.g. /billing/new"
// @Success      200   {object}  authz.Decision
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/navigation/resolve [get]
func (h *NavigationHandler) Resolve(c echo.Context) error {
	p := c.QueryParam("path")
	if p == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "path is required")
	}
	d, err := h.guard.Evaluate(p, middleware.Viewer(c))
	if err != nil {
		return err
	}
	metrics.GuardDecisionsTotal.WithLabelValues(string(d.State), string(d.Reason)).Inc()
	return c.JSON(http.StatusOK, d)
}
