// Package cli provides common process initialization: logging, env file
// loading, config validation and backend selection.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"financas/internal/backend"
	"financas/internal/config"
	applog "financas/internal/log"
)

// SetupLogger initializes structured logging with default settings and
// installs it as the process default.
func SetupLogger() *applog.Logger {
	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// InitBackend creates the configured key-value backend.
// Returns the backend result or exits the process on failure.
func InitBackend(logger *applog.Logger, cfg *config.Config) *backend.Result {
	factory := backend.NewFactory(logger.Logger)
	result, err := factory.CreateKV(backend.Config{
		Type:         backend.Type(cfg.DataBackend),
		SQLiteDBPath: cfg.SQLiteDBPath,
	})
	if err != nil {
		logger.Error("Failed to initialize backend", applog.FieldError, err, "backend", cfg.DataBackend)
		os.Exit(1)
	}
	return result
}
