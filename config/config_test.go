package config

import (
	"testing"
	"time"
)

func TestLoadRequiresAdminIDs(t *testing.T) {
	t.Setenv("ADMIN_IDS", "")

	if _, err := Load(); err == nil {
		t.Error("Expected error when ADMIN_IDS is unset")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ADMIN_IDS", "5935306519,6356252393")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.AdminIDs) != 2 {
		t.Errorf("Expected 2 admin IDs, got %d", len(cfg.AdminIDs))
	}
	if cfg.UsersFile != "users.txt" {
		t.Errorf("Expected default users file, got %q", cfg.UsersFile)
	}
	if cfg.LogFile != "log.txt" {
		t.Errorf("Expected default log file, got %q", cfg.LogFile)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port, got %q", cfg.Port)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("Expected default timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Errorf("Expected default rate limit, got %d", cfg.RateLimitPerMinute)
	}
}

func TestLoadOverridesAndTrimming(t *testing.T) {
	t.Setenv("ADMIN_IDS", " 1 , 2 ,, ")
	t.Setenv("USERS_FILE", "/var/lib/gatekit/users.txt")
	t.Setenv("PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if len(cfg.AdminIDs) != 2 || cfg.AdminIDs[0] != "1" || cfg.AdminIDs[1] != "2" {
		t.Errorf("Expected trimmed admin IDs [1 2], got %v", cfg.AdminIDs)
	}
	if cfg.UsersFile != "/var/lib/gatekit/users.txt" {
		t.Errorf("Unexpected users file: %q", cfg.UsersFile)
	}
	if cfg.Port != "9090" {
		t.Errorf("Unexpected port: %q", cfg.Port)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("Unexpected timeout: %v", cfg.RequestTimeout)
	}
	if cfg.RateLimitPerMinute != 10 {
		t.Errorf("Unexpected rate limit: %d", cfg.RateLimitPerMinute)
	}
}

func TestLoadIgnoresMalformedOptionalValues(t *testing.T) {
	t.Setenv("ADMIN_IDS", "1")
	t.Setenv("REQUEST_TIMEOUT", "not-a-duration")
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.RequestTimeout != 30*time.Second {
		t.Errorf("Expected fallback timeout, got %v", cfg.RequestTimeout)
	}
	if cfg.RateLimitBurst != 30 {
		t.Errorf("Expected fallback burst, got %d", cfg.RateLimitBurst)
	}
}
