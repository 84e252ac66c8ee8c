package state

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"sort"
	"testing"

	"github.com/mmynk/leuth/internal/fixture"
	"github.com/mmynk/leuth/internal/models"
	"github.com/mmynk/leuth/internal/storage"
	"github.com/mmynk/leuth/internal/storage/memory"
)

func payloadKeys(t *testing.T, payload []byte) []string {
	t.Helper()
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		t.Fatalf("payload is not a JSON object: %v", err)
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestPartialize(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(st *models.AppState)
		wantKeys []string
	}{
		{
			name:     "unchanged state encodes as empty object",
			mutate:   func(st *models.AppState) {},
			wantKeys: []string{},
		},
		{
			name: "changed goals only",
			mutate: func(st *models.AppState) {
				st.Goals[0].LimitMinutes = 45
			},
			wantKeys: []string{"goals"},
		},
		{
			name: "new message and group change",
			mutate: func(st *models.AppState) {
				g := st.Groups["gym"]
				g.Preset = models.PresetTwoWeeks
				st.Groups["gym"] = g
				st.MessagesByGroup["gym"] = append(st.MessagesByGroup["gym"], models.Message{ID: "x", GroupID: "gym", Kind: models.MessageKindUser})
			},
			wantKeys: []string{"groups", "messagesByGroup"},
		},
		{
			name: "friend requests whenever non-empty",
			mutate: func(st *models.AppState) {
				st.FriendRequests = append(st.FriendRequests, models.FriendRequest{ID: "r", FromID: "1", ToID: "9", Status: models.RequestStatusPending})
			},
			wantKeys: []string{"friendRequests"},
		},
		{
			name: "usage snapshot",
			mutate: func(st *models.AppState) {
				st.UsageToday = st.UsageToday[:1]
			},
			wantKeys: []string{"usageToday"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := fixture.Demo()
			tt.mutate(st)

			payload, err := Partialize(st, fixture.Demo())
			if err != nil {
				t.Fatalf("Partialize failed: %v", err)
			}
			if got := payloadKeys(t, payload); !reflect.DeepEqual(got, tt.wantKeys) {
				t.Errorf("keys: got %v, want %v", got, tt.wantKeys)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	defaults := fixture.Demo()

	t.Run("empty object restores defaults", func(t *testing.T) {
		st, err := Merge(defaults, []byte(`{}`))
		if err != nil {
			t.Fatalf("Merge failed: %v", err)
		}
		if !reflect.DeepEqual(st, fixture.Demo()) {
			t.Error("merged state differs from defaults")
		}
	})

	t.Run("objects merge key by key", func(t *testing.T) {
		st, err := Merge(defaults, []byte(`{"me":{"name":"Renamed"},"groups":{"gym":{"poolEnabled":true,"poolAmount":40}}}`))
		if err != nil {
			t.Fatalf("Merge failed: %v", err)
		}
		if st.Me.Name != "Renamed" || st.Me.ID != "1" || st.Me.Streak != 5 {
			t.Errorf("me not merged field-wise: %+v", st.Me)
		}
		gym := st.Groups["gym"]
		if !gym.PoolEnabled || gym.PoolAmount != 40 || gym.Name != "Gym Buddies" || len(gym.MemberIDs) != 3 {
			t.Errorf("gym not merged field-wise: %+v", gym)
		}
		if !reflect.DeepEqual(st.Groups["friends"], defaults.Groups["friends"]) {
			t.Error("untouched group changed")
		}
	})

	t.Run("arrays replace", func(t *testing.T) {
		st, err := Merge(defaults, []byte(`{"goals":[{"id":"only","name":"Only","period":"weekly","limitMinutes":300}]}`))
		if err != nil {
			t.Fatalf("Merge failed: %v", err)
		}
		if len(st.Goals) != 1 || st.Goals[0].ID != "only" || st.Goals[0].Categories != nil {
			t.Errorf("goals not replaced: %+v", st.Goals)
		}
	})

	t.Run("rejects malformed payloads", func(t *testing.T) {
		for _, payload := range []string{`not json`, `[]`, `"text"`} {
			if _, err := Merge(defaults, []byte(payload)); err == nil {
				t.Errorf("expected error for payload %s", payload)
			}
		}
	})
}

func TestPersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()

	var savedBytes int
	s := newTestStore(t, WithStorage(backend), WithSaveHook(func(bytes int, err error) {
		savedBytes = bytes
	}))

	msg, err := s.SendMessage(ctx, "friends", "hello", "5")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if _, err := s.AddReaction(ctx, "friends", msg.ID, "🔥"); err != nil {
		t.Fatalf("AddReaction failed: %v", err)
	}
	if _, err := s.SendFriendRequest(ctx, "9"); err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	disabled := false
	if err := s.UpdateGroupSettings(ctx, "friends", models.GroupSettings{
		PoolEnabled:   &disabled,
		SelectedGoals: []string{},
	}); err != nil {
		t.Fatalf("UpdateGroupSettings failed: %v", err)
	}
	if savedBytes == 0 {
		t.Error("save hook did not report payload size")
	}

	payload, err := backend.LoadSnapshot(ctx, SnapshotKey)
	if err != nil {
		t.Fatalf("snapshot not saved: %v", err)
	}
	if got := payloadKeys(t, payload); !reflect.DeepEqual(got, []string{"friendRequests", "groups", "messagesByGroup"}) {
		t.Errorf("persisted keys: got %v", got)
	}

	restored := newTestStore(t, WithStorage(backend))
	if err := restored.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	want := s.State()
	got := restored.State()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("restored state differs\n got: %+v\nwant: %+v", got.MessagesByGroup["friends"], want.MessagesByGroup["friends"])
	}
	friends := got.Groups["friends"]
	if friends.SelectedGoals == nil || len(friends.SelectedGoals) != 0 {
		t.Errorf("cleared selectedGoals after restart: got %#v, want []string{}", friends.SelectedGoals)
	}
	if friends.PoolEnabled {
		t.Error("disabled pool re-enabled after restart")
	}
	if !reflect.DeepEqual(got.Goals, fixture.Demo().Goals) {
		t.Error("untouched goals should stay at fixture defaults")
	}
}

func TestLoadWithoutSnapshot(t *testing.T) {
	s := newTestStore(t, WithStorage(memory.New()))
	if err := s.Load(context.Background()); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(s.State(), fixture.Demo()) {
		t.Error("expected demo state when nothing is persisted")
	}
}

func TestResetClearsSnapshot(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	s := newTestStore(t, WithStorage(backend))

	if err := s.DeleteGoal(ctx, "1"); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}
	if err := s.ResetToDemo(ctx); err != nil {
		t.Fatalf("ResetToDemo failed: %v", err)
	}

	if _, err := backend.LoadSnapshot(ctx, SnapshotKey); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected snapshot to be deleted after reset, got %v", err)
	}

	restored := newTestStore(t, WithStorage(backend))
	if err := restored.Load(ctx); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !reflect.DeepEqual(restored.State(), fixture.Demo()) {
		t.Error("expected demo state after reset and restart")
	}
}
