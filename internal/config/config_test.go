package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_PASSWORD", "pw")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.JWT.UsingDevSecret || cfg.JWT.Secret != DevJWTSecret {
		t.Fatalf("expected dev secret fallback, got %#v", cfg.JWT)
	}
	if cfg.JWT.TTL != 0 {
		t.Fatalf("tokens should not expire by default, got %v", cfg.JWT.TTL)
	}
	if cfg.Database.URL != "postgres://todo:pw@localhost:5432/todo?sslmode=disable" {
		t.Fatalf("unexpected database url %q", cfg.Database.URL)
	}
	if cfg.Address() != "0.0.0.0:8000" {
		t.Fatalf("unexpected address %q", cfg.Address())
	}
	if len(cfg.CORS.AllowedOrigins) != 2 {
		t.Fatalf("unexpected default origins %v", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "7")
	t.Setenv("CACHE_ENABLED", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("ACTIVITY_RETENTION_HOURS", "48")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.JWT.UsingDevSecret || cfg.JWT.TTL != 2*time.Hour {
		t.Fatalf("unexpected jwt config %#v", cfg.JWT)
	}
	if cfg.Context.RequestTimeout != 7*time.Second {
		t.Fatalf("bare seconds should parse, got %v", cfg.Context.RequestTimeout)
	}
	if !cfg.Redis.Enabled {
		t.Fatalf("cache should be enabled")
	}
	if got := cfg.CORS.AllowedOrigins; len(got) != 2 || got[0] != "https://a.example" || got[1] != "https://b.example" {
		t.Fatalf("unexpected origins %v", got)
	}
	if cfg.Activity.Retention != 48*time.Hour {
		t.Fatalf("unexpected retention %v", cfg.Activity.Retention)
	}
	if cfg.IsDevelopment() {
		t.Fatalf("production must not count as development")
	}
}

func TestLoadRejectsNegativeTTL(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_TTL", "-1h")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error")
	}
}
