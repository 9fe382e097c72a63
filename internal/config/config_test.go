package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != "sqlite" {
		t.Errorf("Expected default driver sqlite, got %s", cfg.Database.Driver)
	}
	if cfg.Database.Path != "tasks.db" {
		t.Errorf("Expected default path tasks.db, got %s", cfg.Database.Path)
	}
	if cfg.Redis.Enabled {
		t.Error("Expected redis disabled by default")
	}
	if cfg.RateLimit.Enabled {
		t.Error("Expected rate limiting disabled by default")
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("Expected read timeout 30s, got %v", cfg.Server.ReadTimeout)
	}
	if len(cfg.CORS.AllowOrigins) != 1 || cfg.CORS.AllowOrigins[0] != "*" {
		t.Errorf("Expected default CORS origins [*], got %v", cfg.CORS.AllowOrigins)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("DB_DRIVER", "postgres")
	os.Setenv("DB_PASSWORD", "secret")
	os.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173, http://example.com")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("DB_DRIVER")
		os.Unsetenv("DB_PASSWORD")
		os.Unsetenv("CORS_ALLOW_ORIGINS")
	}()

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Database.Driver != "postgres" {
		t.Errorf("Expected driver postgres, got %s", cfg.Database.Driver)
	}
	if len(cfg.CORS.AllowOrigins) != 2 || cfg.CORS.AllowOrigins[1] != "http://example.com" {
		t.Errorf("Expected trimmed origin list, got %v", cfg.CORS.AllowOrigins)
	}
}

func TestProductionRequiresPostgresPassword(t *testing.T) {
	os.Setenv("ENVIRONMENT", "production")
	os.Setenv("DB_DRIVER", "postgres")
	defer func() {
		os.Unsetenv("ENVIRONMENT")
		os.Unsetenv("DB_DRIVER")
	}()

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for empty postgres password in production")
	}
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "planner",
		Password: "pw",
		Name:     "planner",
		SSLMode:  "disable",
	}

	expected := "host=db port=5432 user=planner password=pw dbname=planner sslmode=disable"
	if dsn := cfg.DSN(); dsn != expected {
		t.Errorf("Expected DSN %q, got %q", expected, dsn)
	}
}
