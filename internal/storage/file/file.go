// Package file provides a storage.Store that keeps every snapshot in one
// JSON document on disk.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mmynk/leuth/internal/storage"
)

var _ storage.Store = (*FileStore)(nil)

// FileStore persists snapshots as {"<key>": <payload>, ...} in a single file.
// Payloads must be valid JSON. Writes go to a temp file that is renamed over
// the original.
type FileStore struct {
	mu        sync.RWMutex
	path      string
	snapshots map[string]json.RawMessage
}

// Open loads the file at path, creating its directory if needed.
// A missing file starts an empty store.
func Open(path string) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}
	s := &FileStore{path: path, snapshots: map[string]json.RawMessage{}}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *FileStore) load() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read snapshot file: %w", err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, &s.snapshots); err != nil {
		return fmt.Errorf("failed to decode snapshot file: %w", err)
	}
	return nil
}

func (s *FileStore) flushLocked() error {
	data, err := json.MarshalIndent(s.snapshots, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshots: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".leuth-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshots: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync snapshots: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}

// LoadSnapshot returns the payload stored under key.
func (s *FileStore) LoadSnapshot(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	payload, ok := s.snapshots[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), payload...), nil
}

// SaveSnapshot stores payload under key and rewrites the file.
func (s *FileStore) SaveSnapshot(ctx context.Context, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !json.Valid(payload) {
		return fmt.Errorf("snapshot %s: payload is not valid JSON", key)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, had := s.snapshots[key]
	s.snapshots[key] = append(json.RawMessage(nil), payload...)
	if err := s.flushLocked(); err != nil {
		if had {
			s.snapshots[key] = prev
		} else {
			delete(s.snapshots, key)
		}
		return err
	}
	return nil
}

// DeleteSnapshot removes key and rewrites the file.
func (s *FileStore) DeleteSnapshot(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.snapshots[key]; !ok {
		return nil
	}
	delete(s.snapshots, key)
	return s.flushLocked()
}

// Close is a no-op; every write is already on disk.
func (s *FileStore) Close() error { return nil }
