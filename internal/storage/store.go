// Package storage provides abstractions for persistent snapshot storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no snapshot is stored under a key.
var ErrNotFound = errors.New("snapshot not found")

// Store defines the interface for snapshot storage operations.
// A snapshot is an opaque payload addressed by a versioned key
// (e.g., "leuth@app@v1"). This abstraction allows swapping storage backends
// (SQLite, a JSON file, memory) without changing the state store.
type Store interface {
	// LoadSnapshot returns the payload stored under key.
	// Returns ErrNotFound if nothing has been saved yet.
	LoadSnapshot(ctx context.Context, key string) ([]byte, error)

	// SaveSnapshot stores payload under key, replacing any previous value.
	SaveSnapshot(ctx context.Context, key string, payload []byte) error

	// DeleteSnapshot removes the payload under key. Deleting a missing key
	// is not an error.
	DeleteSnapshot(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
