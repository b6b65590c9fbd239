package config

import (
	"strings"
	"testing"
	"time"

	"github.com/pitchside/fantasy-core/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load with defaults failed: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("expected dev env, got %s", cfg.AppEnv)
	}
	if cfg.StorageDriver != StorageMemory {
		t.Fatalf("expected memory storage, got %s", cfg.StorageDriver)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.SquadSize != 11 || cfg.BudgetCap != 1000 || cfg.MaxPerClub != 3 {
		t.Fatalf("unexpected default rules: %+v", cfg)
	}
	if cfg.FreeTransfers != 1 || cfg.TransferPenaltyPoints != 4 {
		t.Fatalf("unexpected default transfer rules: %+v", cfg)
	}
	if cfg.ScoringWorkers != 8 {
		t.Fatalf("expected 8 scoring workers, got %d", cfg.ScoringWorkers)
	}
	if !cfg.CacheEnabled || cfg.CacheTTL != 60*time.Second {
		t.Fatalf("unexpected cache defaults: enabled=%v ttl=%v", cfg.CacheEnabled, cfg.CacheTTL)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("expected info log level, got %v", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("RULES_SQUAD_SIZE", "15")
	t.Setenv("RULES_FREE_TRANSFERS", "2")
	t.Setenv("SCORING_WORKERS", "16")
	t.Setenv("APP_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if cfg.AppEnv != EnvProd || cfg.StorageDriver != StoragePostgres {
		t.Fatalf("unexpected env/storage: %s %s", cfg.AppEnv, cfg.StorageDriver)
	}
	if cfg.SquadSize != 15 || cfg.FreeTransfers != 2 {
		t.Fatalf("unexpected rules overrides: %+v", cfg)
	}
	if cfg.ScoringWorkers != 16 {
		t.Fatalf("expected 16 workers, got %d", cfg.ScoringWorkers)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("expected debug level, got %v", cfg.LogLevel)
	}
}

func TestLoad_InvalidStorageDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "cassandra")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "STORAGE_DRIVER") {
		t.Fatalf("expected storage driver error, got %v", err)
	}
}

func TestLoad_InvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "qa")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "APP_ENV") {
		t.Fatalf("expected app env error, got %v", err)
	}
}

func TestLoad_UptraceRequiresDSN(t *testing.T) {
	t.Setenv("UPTRACE_ENABLED", "true")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "UPTRACE_DSN") {
		t.Fatalf("expected uptrace dsn error, got %v", err)
	}
}

func TestLoad_StatsFeedRequiresBaseURL(t *testing.T) {
	t.Setenv("STATSFEED_ENABLED", "true")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "STATSFEED_BASE_URL") {
		t.Fatalf("expected statsfeed base url error, got %v", err)
	}
}
