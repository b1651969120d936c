package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/portal/internal/api/middleware"
	"github.com/vetclinic/portal/internal/core/service"
)

// authContext fetches the per-request AuthContext installed by the Session
// middleware. Its absence is a wiring bug, so it surfaces as a 500.
func authContext(c echo.Context) (*service.AuthContext, error) {
	ac := middleware.AuthContext(c)
	if ac == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session not initialised")
	}
	return ac, nil
}

// bindAndValidate decodes the body into req and runs struct validation:
// malformed JSON is a 400, a well-formed body failing rules is a 422.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
