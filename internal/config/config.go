// Package config loads server settings from the environment, after reading
// a .env file when one is present.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage drivers.
const (
	DriverSQLite = "sqlite"
	DriverFile   = "file"
	DriverMemory = "memory"
)

var ErrMissingJWTSecret = errors.New("JWT_SECRET is required when LEUTH_PASSPHRASE is set")

// Config holds the server settings.
type Config struct {
	Port          int
	StorageDriver string
	DBPath        string
	SnapshotPath  string
	Passphrase    string
	JWTSecret     string
	TokenTTL      time.Duration
	LogLevel      string
	LogFormat     string
}

// AuthEnabled reports whether the state API requires a token.
func (c *Config) AuthEnabled() bool {
	return c.Passphrase != ""
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; real environment variables win either way.
	_ = godotenv.Load()

	cfg := &Config{
		StorageDriver: getEnv("STORAGE_DRIVER", DriverSQLite),
		DBPath:        getEnv("DB_PATH", "./data/leuth.db"),
		SnapshotPath:  getEnv("SNAPSHOT_PATH", "./data/leuth.json"),
		Passphrase:    os.Getenv("LEUTH_PASSPHRASE"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return nil, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	switch cfg.StorageDriver {
	case DriverSQLite, DriverFile, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL %q", os.Getenv("TOKEN_TTL"))
	}
	cfg.TokenTTL = ttl

	if cfg.Passphrase != "" && cfg.JWTSecret == "" {
		return nil, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
