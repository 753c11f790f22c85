package backend

import (
	"financas/internal/store"
)

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result contains the key-value store and an optional cleanup function.
type Result struct {
	KV      store.KV
	Cleanup CleanupFunc
}

// Type selects the persistence backend.
type Type string

const (
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

// String implements fmt.Stringer
func (t Type) String() string {
	return string(t)
}

// IsValid returns true if the backend type is valid
func (t Type) IsValid() bool {
	switch t {
	case SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Config holds configuration for backend creation
type Config struct {
	Type Type

	// SQLite specific
	SQLiteDBPath string
}
