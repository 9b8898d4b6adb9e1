// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir          string  // Base directory for the database file (always absolute)
	Port             int     // HTTP listen port
	LogLevel         string  // debug, info, warn, error
	DevMode          bool    // Relaxed CORS, pretty logging
	StartingCash     float64 // Cash endowment for newly created portfolios
	SnapshotSchedule string  // Cron spec for the valuation snapshot job
}

// Load reads configuration from environment variables.
// A .env file in the working directory is honored if present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dataDir := getEnv("MONEYWISE_DATA_DIR", "data")

	absDataDir, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}

	if err := os.MkdirAll(absDataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:          absDataDir,
		Port:             getEnvAsInt("PORT", 8080),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		DevMode:          getEnvAsBool("DEV_MODE", false),
		StartingCash:     getEnvAsFloat("STARTING_CASH", 10000),
		SnapshotSchedule: getEnv("SNAPSHOT_SCHEDULE", "@daily"),
	}

	if cfg.StartingCash < 0 {
		return nil, fmt.Errorf("STARTING_CASH must not be negative, got %v", cfg.StartingCash)
	}

	return cfg, nil
}

// DatabasePath returns the path of the sqlite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "moneywise.db")
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
