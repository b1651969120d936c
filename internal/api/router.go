package api

import (
	"errors"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/vetclinic/portal/docs"
	"github.com/vetclinic/portal/internal/api/handler"
	"github.com/vetclinic/portal/internal/api/metrics"
	"github.com/vetclinic/portal/internal/api/middleware"
	"github.com/vetclinic/portal/internal/core/authz"
	"github.com/vetclinic/portal/internal/core/domain"
	"github.com/vetclinic/portal/internal/core/ports"
)

// RouterDeps are the collaborators the HTTP surface is assembled from.
type RouterDeps struct {
	Logger        zerolog.Logger
	Guard         *authz.Guard
	Sessions      ports.SessionProvider
	Authenticator ports.Authenticator
	AuthService   ports.AuthService
	JWTSecret     string
	SessionTTL    time.Duration
	CookieSecure  bool
	Checks        map[string]handler.HealthCheck
	// Registry receives the HTTP and portal metrics. A fresh registry is
	// created when nil.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps RouterDeps) (*echo.Echo, error) {
	if deps.Guard == nil || deps.Sessions == nil || deps.Authenticator == nil || deps.AuthService == nil {
		return nil, errors.New("api: guard, sessions, authenticator and auth service are required")
	}

	reg := deps.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}
	if err := metrics.Register(reg); err != nil {
		return nil, err
	}
	promMW, err := echoprometheus.MiddlewareConfig{
		Namespace:  "vetclinic",
		Subsystem:  "http",
		Registerer: reg,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics"
		},
	}.ToMiddleware()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Logger))
	e.Use(promMW)

	// --- Operational endpoints (no session) ---
	health := handler.NewHealthHandler(deps.Checks)
	e.GET("/health", health.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", health.Readiness)     // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Local accounts (bearer token) ---
	accounts := handler.NewAuthHandler(deps.AuthService)
	e.POST("/auth/token", accounts.Token)
	e.POST("/auth/register", accounts.Register,
		middleware.Auth(deps.JWTSecret),
		middleware.RBAC(domain.RoleAdmin),
	)

	// --- Browser session ---
	session := middleware.Session(middleware.SessionConfig{
		Provider:      deps.Sessions,
		Authenticator: deps.Authenticator,
		Logger:        deps.Logger,
		TTL:           deps.SessionTTL,
		Secure:        deps.CookieSecure,
	})

	sessions := handler.NewSessionHandler()
	authGroup := e.Group("/auth", session)
	authGroup.POST("/login", sessions.Login)
	authGroup.POST("/logout", sessions.Logout)
	authGroup.GET("/session", sessions.Current)

	nav := handler.NewNavigationHandler(deps.Guard)
	access := handler.NewAccessHandler(deps.Guard)
	v1 := e.Group("/v1", session)
	v1.GET("/navigation/menu", nav.Menu)
	v1.GET("/navigation/resolve", nav.Resolve)
	v1.GET("/access/features", access.Features)
	v1.GET("/access/check", access.Check)
	v1.GET("/policy", access.Policy)

	// --- Guarded screens ---
	screens := handler.NewScreenHandler(deps.Guard)
	guard := middleware.Guard(deps.Guard)
	e.GET(authz.PathRoot, screens.Render, session, guard)
	for _, r := range deps.Guard.Routes() {
		e.GET(r.Path, screens.Render, session, guard)
		e.GET(r.Path+"/*", screens.Render, session, guard)
	}

	return e, nil
}
