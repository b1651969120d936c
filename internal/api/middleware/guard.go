package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vetclinic/portal/internal/api/metrics"
	"github.com/vetclinic/portal/internal/core/authz"
)

const ctxDecision = "guard_decision"

// Guard applies the route guard to screen navigations. Authorized requests
// reach the handler; denials become redirects; while the session is still
// loading the decision is returned as-is so the client shows a spinner.
func Guard(g *authz.Guard) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d, err := g.Evaluate(c.Request().URL.Path, viewer(c))
			if err != nil {
				return err
			}
			metrics.GuardDecisionsTotal.WithLabelValues(string(d.State), string(d.Reason)).Inc()
			c.Set(ctxDecision, d)

			switch {
			case d.State == authz.StateLoading:
				return c.JSON(http.StatusAccepted, d)
			case d.Redirect != "":
				return c.Redirect(http.StatusFound, d.Redirect)
			}
			return next(c)
		}
	}
}

// Decision returns the guard decision recorded for this request.
func Decision(c echo.Context) (authz.Decision, bool) {
	d, ok := c.Get(ctxDecision).(authz.Decision)
	return d, ok
}

// Viewer returns a consistent snapshot of the request's authorization state.
// Without a session the caller is anonymous.
func Viewer(c echo.Context) authz.Snapshot {
	return viewer(c)
}

func viewer(c echo.Context) authz.Snapshot {
	if ac := AuthContext(c); ac != nil {
		return ac.Snapshot()
	}
	return authz.Anonymous
}
