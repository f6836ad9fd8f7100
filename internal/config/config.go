package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"spendbook/internal/core"
)

type Config struct {
	// Database
	SQLiteDBPath string

	// Default filter mode for list/summary output
	DefaultFilter core.FilterMode

	// Logging
	LogLevel string
}

func Load() *Config {
	return &Config{
		SQLiteDBPath:  getEnv("SPENDBOOK_DB_PATH", "./data/spendbook.db"),
		DefaultFilter: core.FilterMode(getEnv("SPENDBOOK_FILTER", string(core.All))),
		LogLevel:      getEnv("SPENDBOOK_LOG_LEVEL", "info"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if c.SQLiteDBPath == "" {
		errors = append(errors, "database path cannot be empty")
	} else {
		dir := filepath.Dir(c.SQLiteDBPath)
		if dir != "." && dir != "" {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				if err := os.MkdirAll(dir, 0755); err != nil {
					errors = append(errors, fmt.Sprintf("cannot create database directory '%s': %v", dir, err))
				}
			}
		}
	}

	if !c.DefaultFilter.IsValid() {
		errors = append(errors, fmt.Sprintf("invalid filter '%s': must be one of all, week, month", c.DefaultFilter))
	}

	if _, err := c.SlogLevel(); err != nil {
		errors = append(errors, err.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}
	return nil
}

// SlogLevel maps the configured level name to a slog level.
func (c *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid log level '%s': must be one of debug, info, warn, error", c.LogLevel)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
