package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("ACCESS_TOKEN_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("HTTPPort = %s, want 9090", cfg.HTTPPort)
	}
	if cfg.SeedOnStart {
		t.Error("SeedOnStart should be false")
	}
	if cfg.AccessTokenTTL != time.Hour {
		t.Errorf("AccessTokenTTL = %v, want 1h", cfg.AccessTokenTTL)
	}
	if cfg.RefreshTokenTTL != 30*24*time.Hour {
		t.Errorf("RefreshTokenTTL = %v, want default 720h", cfg.RefreshTokenTTL)
	}
}

func TestLoad_RequiredVars(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")
	if _, err := Load(); err == nil {
		t.Error("expected error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("JWT_SECRET", "")
	if _, err := Load(); err == nil {
		t.Error("expected error without JWT_SECRET")
	}
}

func TestGetDuration_BareSeconds(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "30")
	if got := getDuration("HTTP_READ_TIMEOUT", time.Second); got != 30*time.Second {
		t.Errorf("getDuration = %v, want 30s", got)
	}

	t.Setenv("HTTP_READ_TIMEOUT", "oops")
	if got := getDuration("HTTP_READ_TIMEOUT", time.Second); got != time.Second {
		t.Errorf("getDuration fallback = %v, want 1s", got)
	}
}
