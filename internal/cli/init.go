// Package cli provides common initialization for the spendbook command.
package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"spendbook/internal/config"
	"spendbook/internal/storage"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger initializes structured logging at the given level and sets
// it as the default logger.
func SetupLogger(level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *slog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}

// OpenStore opens the SQLite store and reconciles the schema. Exits the
// process when the store cannot be opened; a failed reconciliation is
// logged and the degraded store is returned anyway, so every subsequent
// call reports its own failure instead of crashing the session.
func OpenStore(ctx context.Context, logger *slog.Logger, dbPath string) *storage.SQLite {
	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		logger.Error("Failed to open store", "error", err, "path", dbPath)
		os.Exit(1)
	}
	if err := storage.Reconcile(ctx, store, time.Now()); err != nil {
		logger.Error("Schema reconciliation failed, store unusable this session", "error", err)
	}
	return store
}
