// Package blob defines the key-value blob store the planner persists into.
package blob

import (
	"errors"
	"fmt"

	"github.com/starford/dagaz/internal/apperr"
)

// Well-known keys. The planner owns exactly two pieces of persisted state.
const (
	KeyEvents    = "events"
	KeyWorkEmail = "work_email"
)

// ErrNoKey is returned by Get when the key has never been written.
var ErrNoKey = errors.New("blob: no such key")

// Store is the interface for blob persistence.
// Put must be durable before it returns; a failed Put leaves the prior
// value intact.
type Store interface {
	// Get returns the value stored under key, or ErrNoKey.
	Get(key string) ([]byte, error)
	// Put replaces the value stored under key.
	Put(key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	// Close releases the underlying resource.
	Close() error
}

// Driver names accepted in configuration.
const (
	DriverFile   = "file"
	DriverBolt   = "bolt"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Verify every driver satisfies Store at compile time.
var (
	_ Store = (*FS)(nil)
	_ Store = (*Bolt)(nil)
	_ Store = (*SQLite)(nil)
	_ Store = (*Memory)(nil)
)

// Open creates a Store for the configured driver. A driver that fails
// to open reports ErrStorageUnavailable so callers can degrade.
func Open(driver, path string) (Store, error) {
	var (
		s   Store
		err error
	)
	switch driver {
	case DriverFile:
		s, err = NewFS(path)
	case DriverBolt:
		s, err = NewBolt(path)
	case DriverSQLite:
		s, err = NewSQLite(path)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("blob: unknown driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrStorageUnavailable, err)
	}
	return s, nil
}
