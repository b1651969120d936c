package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/portal/internal/api/metrics"
	"github.com/vetclinic/portal/internal/api/middleware"
	"github.com/vetclinic/portal/internal/core/authz"
	"github.com/vetclinic/portal/internal/core/domain"
)

const msgSessionEnded = "Your session ended while signing in. Please log in again."

// SessionHandler exposes the authorization context of the browser session:
// login, logout and the current identity.
type SessionHandler struct{}

func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// Login signs the browser session in.
//
// @Summary      Log in
// @Description  Authenticates against the clinic authentication endpoint and stores the identity in the session.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  loginResponse
// @Failure      422   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /auth/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	ac, err := authContext(c)
	if err != nil {
		return err
	}

	start := time.Now()
	ok := ac.Login(c.Request().Context(), req.Username, req.Password)
	metrics.LoginDuration.Observe(time.Since(start).Seconds())

	if ok {
		// A signed-in session never keeps the id the browser arrived with.
		rotated, err := middleware.RotateSession(c)
		if err != nil {
			ac.Logout(c.Request().Context())
			return fmt.Errorf("%w: %v", domain.ErrAuthUnavailable, err)
		}
		if !rotated {
			ok = false
			if f := middleware.Flash(c); f != nil {
				f.Drain()
				f.Notify(c.Request().Context(), domain.Notification{Level: domain.NotifyError, Message: msgSessionEnded})
			}
		}
	}

	resp := loginResponse{OK: ok}
	if ok {
		metrics.LoginsTotal.WithLabelValues("success").Inc()
		snap := ac.Snapshot()
		id, _ := snap.Current()
		resp.User = &id
		resp.Menu = authz.BuildMenu(snap)
	} else {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
	}
	resp.Notifications = drainFlash(c)

	if !ok {
		return c.JSON(http.StatusUnauthorized, resp)
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout clears the session and expires the session cookie. Logging out
// twice is not an error.
//
// @Summary      Log out
// @Tags         session
// @Success      204
// @Router       /auth/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	ac, err := authContext(c)
	if err != nil {
		return err
	}
	ac.Logout(c.Request().Context())
	middleware.ExpireSession(c)
	return c.NoContent(http.StatusNoContent)
}

// Current returns the restored identity with its menu and feature grants.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Failure      401  {object}  errorResponse
// @Router       /auth/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	ac, err := authContext(c)
	if err != nil {
		return err
	}
	snap := ac.Snapshot()
	id, ok := snap.Current()
	if !ok {
		return domain.ErrUnauthenticated
	}
	return c.JSON(http.StatusOK, sessionResponse{
		User:     id,
		Menu:     authz.BuildMenu(snap),
		Features: featureGrants(snap),
	})
}

func drainFlash(c echo.Context) []domain.Notification {
	if f := middleware.Flash(c); f != nil {
		return f.Drain()
	}
	return []domain.Notification{}
}

func featureGrants(v authz.Viewer) map[domain.Feature]bool {
	out := make(map[domain.Feature]bool, len(domain.AllFeatures))
	for _, f := range domain.AllFeatures {
		out[f] = v.HasFeatureAccess(f)
	}
	return out
}
