package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET, required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`

	AuthAPI AuthAPIConfig
	Session SessionConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

// AuthAPIConfig points at the clinic REST API. When URL is empty logins are
// served from the local user store.
type AuthAPIConfig struct {
	URL      string        `env:"AUTH_API_URL"`
	Timeout  time.Duration `env:"AUTH_API_TIMEOUT, default=10s"`
	RetryMax int           `env:"AUTH_API_RETRIES, default=2"`
}

type SessionConfig struct {
	TTL          time.Duration `env:"SESSION_TTL,   default=168h"`
	CookieSecure bool          `env:"COOKIE_SECURE, default=false"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=vetclinic"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Development reports whether the service runs in a local environment.
func (c *Config) Development() bool {
	return c.Env == "development" || c.Env == "dev" || c.Env == "local"
}
