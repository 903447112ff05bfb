package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all process configuration. It is read once at startup
// from environment variables and treated as immutable afterwards.
type Config struct {
	// AdminIDs is the fixed set of administrator identifiers. Membership
	// in this set is the only authorization check for admin operations.
	AdminIDs []string

	// Storage paths
	UsersFile string
	LogFile   string
	AuditDB   string

	// Server
	Port           string
	RequestTimeout time.Duration

	// Rate limiting (requests per minute per client, with burst)
	RateLimitPerMinute int
	RateLimitBurst     int
}

// Load reads the configuration from environment variables.
// ADMIN_IDS is required; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{}

	adminIDs := os.Getenv("ADMIN_IDS")
	if adminIDs == "" {
		return nil, fmt.Errorf("required environment variable ADMIN_IDS is not set")
	}
	for _, id := range strings.Split(adminIDs, ",") {
		id = strings.TrimSpace(id)
		if id != "" {
			cfg.AdminIDs = append(cfg.AdminIDs, id)
		}
	}
	if len(cfg.AdminIDs) == 0 {
		return nil, fmt.Errorf("ADMIN_IDS must contain at least one identifier")
	}

	cfg.UsersFile = getEnvString("USERS_FILE", "users.txt")
	cfg.LogFile = getEnvString("LOG_FILE", "log.txt")
	cfg.AuditDB = getEnvString("AUDIT_DB", "gatekit_audit.db")
	cfg.Port = getEnvString("PORT", "8080")
	cfg.RequestTimeout = getEnvDuration("REQUEST_TIMEOUT", 30*time.Second)
	cfg.RateLimitPerMinute = getEnvInt("RATE_LIMIT_PER_MINUTE", 120)
	cfg.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", 30)

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
