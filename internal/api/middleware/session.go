package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vetclinic/portal/internal/api/metrics"
	"github.com/vetclinic/portal/internal/core/ports"
	"github.com/vetclinic/portal/internal/core/service"
	"github.com/vetclinic/portal/internal/infrastructure/notify"
)

// SessionCookie carries the opaque browser session id.
const SessionCookie = "vetclinic_sid"

const (
	ctxAuthContext = "auth_context"
	ctxFlash       = "flash"
	ctxSession     = "session"
)

// sessionScope is what RotateSession and ExpireSession need to reissue the
// cookie for the current request.
type sessionScope struct {
	cfg SessionConfig
	sid string
}

// SessionConfig wires the per-request authorization context.
type SessionConfig struct {
	Provider      ports.SessionProvider
	Authenticator ports.Authenticator
	Logger        zerolog.Logger
	TTL           time.Duration
	Secure        bool
}

// Session builds a fresh AuthContext for each request, scoped to the
// browser's session id, rehydrates it from the store before any handler runs
// and tears it down once the response is written.
func Session(cfg SessionConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := sessionID(c, cfg)
			log := cfg.Logger.With().Str("session", shortID(sid)).Logger()

			flash := notify.NewFlash(log)
			ac := service.NewAuthContext(service.AuthContextDeps{
				Authenticator: cfg.Authenticator,
				Sessions:      cfg.Provider.For(sid),
				Notifier:      flash,
				Logger:        log,
			})
			defer ac.Close()

			result := ac.Rehydrate(c.Request().Context())
			metrics.SessionRehydrationsTotal.WithLabelValues(string(result)).Inc()

			c.Set(ctxAuthContext, ac)
			c.Set(ctxFlash, flash)
			c.Set(ctxSession, &sessionScope{cfg: cfg, sid: sid})
			return next(c)
		}
	}
}

// AuthContext returns the request's authorization context, or nil when the
// Session middleware did not run.
func AuthContext(c echo.Context) *service.AuthContext {
	ac, _ := c.Get(ctxAuthContext).(*service.AuthContext)
	return ac
}

// Flash returns the request's notification buffer, or nil.
func Flash(c echo.Context) *notify.Flash {
	f, _ := c.Get(ctxFlash).(*notify.Flash)
	return f
}

// RotateSession moves the signed-in identity to a freshly issued session id
// and sends the new cookie. The id the browser arrived with stops resolving.
// rotated is false when the session was emptied before rotation, for
// instance by a logout racing the login.
func RotateSession(c echo.Context) (rotated bool, err error) {
	scope, ok := c.Get(ctxSession).(*sessionScope)
	if !ok {
		return false, errors.New("session middleware not installed")
	}

	sid := uuid.NewString()
	moved, err := scope.cfg.Provider.Rotate(c.Request().Context(), scope.sid, sid)
	if err != nil || !moved {
		return false, err
	}
	setSessionCookie(c, scope.cfg, sid, int(scope.cfg.TTL.Seconds()))
	scope.sid = sid
	return true, nil
}

// ExpireSession tells the browser to drop its session cookie.
func ExpireSession(c echo.Context) {
	scope, ok := c.Get(ctxSession).(*sessionScope)
	if !ok {
		return
	}
	setSessionCookie(c, scope.cfg, "", -1)
}

func sessionID(c echo.Context, cfg SessionConfig) string {
	if ck, err := c.Cookie(SessionCookie); err == nil {
		if _, err := uuid.Parse(ck.Value); err == nil {
			return ck.Value
		}
	}

	sid := uuid.NewString()
	setSessionCookie(c, cfg, sid, int(cfg.TTL.Seconds()))
	return sid
}

func setSessionCookie(c echo.Context, cfg SessionConfig, sid string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    sid,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   cfg.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func shortID(sid string) string {
	if len(sid) > 8 {
		return sid[:8]
	}
	return sid
}
