package backend

import (
	"fmt"
	"log/slog"

	"financas/internal/storage"
)

// Factory creates key-value backends based on configuration.
type Factory interface {
	CreateKV(config Config) (*Result, error)
}

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateKV implements Factory.CreateKV
func (f *DefaultFactory) CreateKV(config Config) (*Result, error) {
	if !config.Type.IsValid() {
		return nil, fmt.Errorf("invalid backend type: %s", config.Type)
	}

	switch config.Type {
	case SQLiteBackend:
		kv, err := storage.NewSQLiteKV(config.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
		return &Result{KV: kv, Cleanup: kv.Close}, nil

	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &Result{KV: storage.NewMemoryKV(), Cleanup: nil}, nil

	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}
