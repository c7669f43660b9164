package config

import (
	"testing"

	"github.com/ligasmart/ligasmart/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("LIGASMART_DATA", "/tmp/ligasmart/store.json")
	t.Setenv("LIGASMART_SEED_DEMO", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SERVICE_NAME", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("app env: got %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.ServiceName != "ligasmart" {
		t.Fatalf("service name: got %q", cfg.ServiceName)
	}
	if cfg.SeedDemo {
		t.Fatal("seed demo should default to false")
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("log level: got %v", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("LIGASMART_DATA", "/var/lib/ligasmart/store.json")
	t.Setenv("LIGASMART_SEED_DEMO", "true")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SERVICE_NAME", "ligasmart-staging")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.AppEnv != EnvProd {
		t.Fatalf("app env: got %q", cfg.AppEnv)
	}
	if cfg.DataPath != "/var/lib/ligasmart/store.json" {
		t.Fatalf("data path: got %q", cfg.DataPath)
	}
	if !cfg.SeedDemo {
		t.Fatal("seed demo should be true")
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("log level: got %v", cfg.LogLevel)
	}
	if cfg.ServiceName != "ligasmart-staging" {
		t.Fatalf("service name: got %q", cfg.ServiceName)
	}
}

func TestLoad_Rejections(t *testing.T) {
	t.Setenv("LIGASMART_DATA", "/tmp/ligasmart/store.json")

	t.Run("bad app env", func(t *testing.T) {
		t.Setenv("APP_ENV", "staging")
		if _, err := Load(); err == nil {
			t.Fatal("expected an error for unknown APP_ENV")
		}
	})

	t.Run("bad log level", func(t *testing.T) {
		t.Setenv("APP_ENV", "dev")
		t.Setenv("LOG_LEVEL", "verbose")
		if _, err := Load(); err == nil {
			t.Fatal("expected an error for unknown LOG_LEVEL")
		}
	})
}
