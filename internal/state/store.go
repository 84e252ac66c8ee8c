// Package state holds the application state store: one AppState guarded by a
// lock, the operations that mutate it, the leaderboard computed from it, and
// its persistence as a diff against the demo fixture.
package state

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/leuth/internal/fixture"
	"github.com/mmynk/leuth/internal/models"
	"github.com/mmynk/leuth/internal/storage"
)

// SnapshotKey is the storage key (name and version) of the persisted state.
const SnapshotKey = "leuth@app@v1"

var (
	ErrGroupNotFound         = errors.New("group not found")
	ErrMessageNotFound       = errors.New("message not found")
	ErrGoalNotFound          = errors.New("goal not found")
	ErrFriendRequestNotFound = errors.New("friend request not found")
	ErrNotGroupMember        = errors.New("member is not in the group")
)

// Store is the single source of truth for AppState.
//
// Every mutation runs under the write lock: it clones the current state,
// applies the change to the clone, persists the clone's diff and only then
// swaps it in. A mutation that fails (not found, or a storage error) leaves
// the state untouched. Reads take the read lock and return copies.
type Store struct {
	mu       sync.RWMutex
	state    *models.AppState
	defaults *models.AppState

	storage storage.Store
	now     func() time.Time
	newID   func() string
	logger  *slog.Logger
	onSave  func(bytes int, err error)
}

// Option configures a Store.
type Option func(*Store)

// WithStorage persists the state through st. Without it the store is
// memory-only.
func WithStorage(st storage.Store) Option {
	return func(s *Store) { s.storage = st }
}

// WithClock overrides the time source used for message and request timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides how new message and friend request IDs are made.
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithSaveHook registers fn to be called after every snapshot save attempt
// with the payload size and the save error, if any.
func WithSaveHook(fn func(bytes int, err error)) Option {
	return func(s *Store) { s.onSave = fn }
}

// New creates a Store seeded with the demo fixture. Call Load to restore a
// persisted snapshot on top of it.
func New(opts ...Option) *Store {
	s := &Store{
		state:    fixture.Demo(),
		defaults: fixture.Demo(),
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
		newID:  uuid.NewString,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load restores the persisted snapshot, deep-merged onto the demo fixture.
// A missing snapshot leaves the fixture state in place.
func (s *Store) Load(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}

	payload, err := s.storage.LoadSnapshot(ctx, SnapshotKey)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Info("No persisted state, starting from demo data", "key", SnapshotKey)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	restored, err := Merge(s.defaults, payload)
	if err != nil {
		return fmt.Errorf("failed to restore state: %w", err)
	}

	s.mu.Lock()
	s.state = restored
	s.mu.Unlock()

	s.logger.Info("State restored", "key", SnapshotKey, "bytes", len(payload))
	return nil
}

// update applies fn to a copy of the state and commits it if fn succeeds and
// the copy persists.
func (s *Store) update(ctx context.Context, op string, fn func(st *models.AppState) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state.Clone()
	if err := fn(next); err != nil {
		s.logger.Debug("State update rejected", "op", op, "error", err)
		return err
	}

	if err := s.persistLocked(ctx, next); err != nil {
		s.logger.Error("Failed to persist state", "op", op, "error", err)
		return fmt.Errorf("%s: %w", op, err)
	}

	s.state = next
	s.logger.Debug("State updated", "op", op)
	return nil
}

func (s *Store) persistLocked(ctx context.Context, st *models.AppState) error {
	if s.storage == nil {
		return nil
	}

	payload, err := Partialize(st, s.defaults)
	if err != nil {
		return fmt.Errorf("failed to encode state: %w", err)
	}

	err = s.storage.SaveSnapshot(ctx, SnapshotKey, payload)
	if s.onSave != nil {
		s.onSave(len(payload), err)
	}
	if err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// State returns a copy of the whole state.
func (s *Store) State() *models.AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Me returns the local user.
func (s *Store) Me() models.Member {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Me
}

// Group returns a copy of one group.
func (s *Store) Group(groupID string) (models.Group, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	g, ok := s.state.Groups[groupID]
	if !ok {
		return models.Group{}, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	return g.Clone(), nil
}

// Messages returns a copy of a group's feed in chronological order.
func (s *Store) Messages(groupID string) ([]models.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.state.Groups[groupID]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}
	msgs := s.state.MessagesByGroup[groupID]
	out := make([]models.Message, len(msgs))
	for i, m := range msgs {
		out[i] = m.Clone()
	}
	return out, nil
}

// Goals returns a copy of the goal list. The first goal is the active one.
func (s *Store) Goals() []models.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Goal, len(s.state.Goals))
	for i, g := range s.state.Goals {
		out[i] = g.Clone()
	}
	return out
}

// FriendRequests returns a copy of the friend request list.
func (s *Store) FriendRequests() []models.FriendRequest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.FriendRequest{}, s.state.FriendRequests...)
}
