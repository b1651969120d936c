package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vetclinic/portal/internal/api"
	"github.com/vetclinic/portal/internal/api/handler"
	"github.com/vetclinic/portal/internal/core/authz"
	"github.com/vetclinic/portal/internal/core/ports"
	"github.com/vetclinic/portal/internal/core/service"
	"github.com/vetclinic/portal/internal/infrastructure/apiclient"
	"github.com/vetclinic/portal/internal/infrastructure/config"
	mongodb "github.com/vetclinic/portal/internal/infrastructure/db/mongo"
	redisdb "github.com/vetclinic/portal/internal/infrastructure/db/redis"
	"github.com/vetclinic/portal/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP service",
		Long: `Run the portal HTTP service.

Configuration is read from the environment (PORT, JWT_SECRET, AUTH_API_URL,
MONGO_URI, REDIS_ADDR, ...). When AUTH_API_URL is empty, logins are served
from the local user store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Development(),
		Service: "vetclinic-portal",
		Env:     cfg.Env,
	})

	guard, err := authz.NewGuard(authz.Routes(), authz.DefaultPaths)
	if err != nil {
		return err
	}

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		return err
	}
	defer rdb.Close()

	users := mongodb.NewAuthRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		return err
	}
	authService := service.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)

	e, err := api.NewRouter(api.RouterDeps{
		Logger:        logger.Component("http"),
		Guard:         guard,
		Sessions:      redisdb.NewSessionStore(rdb, cfg.Session.TTL),
		Authenticator: authenticator(cfg, authService, log),
		AuthService:   authService,
		JWTSecret:     cfg.JWTSecret,
		SessionTTL:    cfg.Session.TTL,
		CookieSecure:  cfg.Session.CookieSecure,
		Checks: map[string]handler.HealthCheck{
			"mongodb": mongodb.Pinger(db),
			"redis":   redisdb.Pinger(rdb),
		},
	})
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("portal listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(sctx)
}

// authenticator picks the remote clinic API when configured and the local
// user store otherwise.
func authenticator(cfg *config.Config, local ports.AuthService, log zerolog.Logger) ports.Authenticator {
	if cfg.AuthAPI.URL == "" {
		log.Info().Msg("authenticating against the local user store")
		return service.NewLocalAuthenticator(local)
	}
	log.Info().Str("url", cfg.AuthAPI.URL).Msg("authenticating against the clinic API")
	return apiclient.NewAuthenticator(apiclient.Config{
		BaseURL:  cfg.AuthAPI.URL,
		Timeout:  cfg.AuthAPI.Timeout,
		RetryMax: cfg.AuthAPI.RetryMax,
	})
}
