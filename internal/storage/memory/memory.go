// Package memory provides an in-process storage.Store. Snapshots do not
// survive a restart; it backs tests and STORAGE_DRIVER=memory.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/leuth/internal/storage"
)

var _ storage.Store = (*Store)(nil)

// Store keeps snapshots in a map.
type Store struct {
	mu        sync.RWMutex
	snapshots map[string][]byte

	// SaveErr, when set, is returned by every SaveSnapshot call.
	SaveErr error
}

// New returns an empty memory store.
func New() *Store {
	return &Store{snapshots: map[string][]byte{}}
}

func (s *Store) LoadSnapshot(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.snapshots[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), payload...), nil
}

func (s *Store) SaveSnapshot(ctx context.Context, key string, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.snapshots[key] = append([]byte(nil), payload...)
	return nil
}

func (s *Store) DeleteSnapshot(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.snapshots, key)
	return nil
}

func (s *Store) Close() error { return nil }
