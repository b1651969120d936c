package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/portal/internal/api/middleware"
	"github.com/vetclinic/portal/internal/core/authz"
)

// ScreenHandler stands in for the screens behind the guard. The screens
// themselves belong to the front-end; the service only confirms the
// navigation was authorized and which declaration governed it.
type ScreenHandler struct {
	guard *authz.Guard
}

func NewScreenHandler(guard *authz.Guard) *ScreenHandler {
	return &ScreenHandler{guard: guard}
}

// Render answers an authorized screen navigation.
//
// @Summary      Open a screen
// @Tags         screens
// @Produce      json
// @Param        path  path      string  true  "Screen path"
// @Success      200   {object}  screenResponse
// @Success      202   {object}  authz.Decision
// @Failure      302   {string}  string  "Location is /login, the role home, or /"
// @Failure      404   {object}  errorResponse
// @Router       /{path} [get]
func (h *ScreenHandler) Render(c echo.Context) error {
	d, ok := middleware.Decision(c)
	if !ok {
		var err error
		d, err = h.guard.Evaluate(c.Request().URL.Path, middleware.Viewer(c))
		if err != nil {
			return err
		}
	}
	r, _ := h.guard.Lookup(d.Path)
	return c.JSON(http.StatusOK, screenResponse{Screen: d.Path, Route: r.Path, State: d.State})
}
