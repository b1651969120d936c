package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" || cfg.LogLevel != "info" || !cfg.Development() {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.TokenTTL != 24*time.Hour || cfg.Session.TTL != 168*time.Hour {
		t.Fatalf("unexpected durations: %v %v", cfg.TokenTTL, cfg.Session.TTL)
	}
	if cfg.AuthAPI.URL != "" || cfg.AuthAPI.RetryMax != 2 {
		t.Fatalf("unexpected auth api config: %+v", cfg.AuthAPI)
	}
	if cfg.Mongo.Database != "vetclinic" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected store config: %+v %+v", cfg.Mongo, cfg.Redis)
	}
}

func TestLoad_Overrides(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":    "s",
		"ENV":           "production",
		"AUTH_API_URL":  "https://api.clinic.test",
		"SESSION_TTL":   "1h",
		"COOKIE_SECURE": "true",
		"REDIS_DB":      "3",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Development() {
		t.Fatalf("production must not be development")
	}
	if cfg.AuthAPI.URL != "https://api.clinic.test" || cfg.Session.TTL != time.Hour || !cfg.Session.CookieSecure || cfg.Redis.DB != 3 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoad_RequiresSecret(t *testing.T) {
	if _, err := load(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatalf("expected error without JWT_SECRET")
	}
}
