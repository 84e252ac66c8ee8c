package state

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/mmynk/leuth/internal/fixture"
	"github.com/mmynk/leuth/internal/models"
	"github.com/mmynk/leuth/internal/storage/memory"
)

var testNow = fixture.Anchor.Add(time.Minute)

// newTestStore creates a store with a fixed clock, sequential IDs and a
// silent logger.
func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	n := 0
	base := []Option{
		WithClock(func() time.Time { return testNow }),
		WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
	return New(append(base, opts...)...)
}

func lastMessage(t *testing.T, s *Store, groupID string) models.Message {
	t.Helper()
	msgs, err := s.Messages(groupID)
	if err != nil {
		t.Fatalf("Messages(%s) failed: %v", groupID, err)
	}
	if len(msgs) == 0 {
		t.Fatalf("group %s has no messages", groupID)
	}
	return msgs[len(msgs)-1]
}

func TestSetLeader(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.SetLeader(ctx, "friends", "3"); err != nil {
		t.Fatalf("SetLeader failed: %v", err)
	}

	group, err := s.Group("friends")
	if err != nil {
		t.Fatalf("Group failed: %v", err)
	}
	if group.LeaderID != "3" {
		t.Errorf("leaderId: expected 3, got %s", group.LeaderID)
	}

	msg := lastMessage(t, s, "friends")
	if msg.Kind != models.MessageKindSystem {
		t.Errorf("kind: expected system, got %s", msg.Kind)
	}
	if msg.Text != "Sarah M. is now the leader" {
		t.Errorf("text: got %q", msg.Text)
	}
	if msg.AuthorID != "" {
		t.Errorf("system message should have no author, got %s", msg.AuthorID)
	}
	if !msg.CreatedAt.Equal(testNow) {
		t.Errorf("createdAt: expected %v, got %v", testNow, msg.CreatedAt)
	}
}

func TestSetLeader_Rejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	before := s.State()

	if err := s.SetLeader(ctx, "nope", "1"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
	if err := s.SetLeader(ctx, "friends", "9"); !errors.Is(err, ErrNotGroupMember) {
		t.Errorf("expected ErrNotGroupMember, got %v", err)
	}

	if !reflect.DeepEqual(before, s.State()) {
		t.Error("rejected SetLeader changed the state")
	}
}

func TestUpdateGroupSettings(t *testing.T) {
	preset := models.PresetOneMonth
	enabled := true
	disabled := false
	amount := 100.0
	fractional := 75.5
	eur := models.CurrencyEUR

	tests := []struct {
		name     string
		groupID  string
		settings models.GroupSettings
		wantText string
		check    func(t *testing.T, g models.Group)
	}{
		{
			name:     "preset only",
			groupID:  "friends",
			settings: models.GroupSettings{Preset: &preset},
			wantText: "Leader updated settings: Time: 1m",
			check: func(t *testing.T, g models.Group) {
				if g.Preset != models.PresetOneMonth {
					t.Errorf("preset: got %s", g.Preset)
				}
				if g.PoolAmount != 250 || !g.PoolEnabled {
					t.Errorf("pool should be untouched, got %v/%v", g.PoolEnabled, g.PoolAmount)
				}
			},
		},
		{
			name:     "enable pool with amount",
			groupID:  "family",
			settings: models.GroupSettings{PoolEnabled: &enabled, PoolAmount: &amount},
			wantText: "Leader updated settings: Pool: $100",
			check: func(t *testing.T, g models.Group) {
				if !g.PoolEnabled || g.PoolAmount != 100 {
					t.Errorf("pool: got %v/%v", g.PoolEnabled, g.PoolAmount)
				}
			},
		},
		{
			name:     "pool uses resulting currency",
			groupID:  "gym",
			settings: models.GroupSettings{PoolEnabled: &enabled, PoolAmount: &fractional, PoolCurrency: &eur},
			wantText: "Leader updated settings: Pool: €75.5",
		},
		{
			name:     "amount without enabling is not announced",
			groupID:  "work",
			settings: models.GroupSettings{PoolAmount: &amount},
			wantText: "Leader updated settings",
			check: func(t *testing.T, g models.Group) {
				if g.PoolAmount != 100 {
					t.Errorf("amount should still be merged, got %v", g.PoolAmount)
				}
			},
		},
		{
			name:     "disabling pool is not announced",
			groupID:  "friends",
			settings: models.GroupSettings{PoolEnabled: &disabled, PoolAmount: &amount},
			wantText: "Leader updated settings",
		},
		{
			name:    "everything",
			groupID: "friends",
			settings: models.GroupSettings{
				Preset:        &preset,
				PoolEnabled:   &enabled,
				PoolAmount:    &amount,
				SelectedGoals: []string{"Steps", "Screen Time"},
			},
			wantText: "Leader updated settings: Time: 1m; Pool: $100; Goals: Steps, Screen Time",
			check: func(t *testing.T, g models.Group) {
				if !reflect.DeepEqual(g.SelectedGoals, []string{"Steps", "Screen Time"}) {
					t.Errorf("selectedGoals: got %v", g.SelectedGoals)
				}
				if g.Name != "Friends" || g.LeaderID != "2" {
					t.Errorf("unrelated fields changed: %+v", g)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestStore(t)
			if err := s.UpdateGroupSettings(context.Background(), tt.groupID, tt.settings); err != nil {
				t.Fatalf("UpdateGroupSettings failed: %v", err)
			}

			msg := lastMessage(t, s, tt.groupID)
			if msg.Kind != models.MessageKindSystem || msg.Text != tt.wantText {
				t.Errorf("message: got %s %q, want system %q", msg.Kind, msg.Text, tt.wantText)
			}

			if tt.check != nil {
				g, err := s.Group(tt.groupID)
				if err != nil {
					t.Fatalf("Group failed: %v", err)
				}
				tt.check(t, g)
			}
		})
	}
}

func TestUpdateGroupSettings_UnknownGroup(t *testing.T) {
	s := newTestStore(t)
	preset := models.PresetOneWeek
	err := s.UpdateGroupSettings(context.Background(), "nope", models.GroupSettings{Preset: &preset})
	if !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestSaveGoal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("appends new goal", func(t *testing.T) {
		if err := s.SaveGoal(ctx, models.Goal{ID: "x", Name: "Test", Period: models.PeriodDaily, LimitMinutes: 60}); err != nil {
			t.Fatalf("SaveGoal failed: %v", err)
		}
		goals := s.Goals()
		if len(goals) != 2 || goals[1].ID != "x" {
			t.Fatalf("expected x appended after demo goal, got %+v", goals)
		}
	})

	t.Run("replaces in place", func(t *testing.T) {
		if err := s.SaveGoal(ctx, models.Goal{ID: "1", Name: "Tighter", Period: models.PeriodWeekly, LimitMinutes: 30}); err != nil {
			t.Fatalf("SaveGoal failed: %v", err)
		}
		goals := s.Goals()
		if len(goals) != 2 {
			t.Fatalf("expected 2 goals, got %d", len(goals))
		}
		if goals[0].ID != "1" || goals[0].LimitMinutes != 30 || goals[0].Name != "Tighter" {
			t.Errorf("goal 1 not replaced in place: %+v", goals[0])
		}
		if goals[0].Categories != nil {
			t.Errorf("replacement should not keep old categories: %v", goals[0].Categories)
		}
	})

	t.Run("accepts empty name", func(t *testing.T) {
		if err := s.SaveGoal(ctx, models.Goal{ID: "blank", Period: models.PeriodDaily, LimitMinutes: 10}); err != nil {
			t.Fatalf("SaveGoal rejected a goal without a name: %v", err)
		}
	})

	t.Run("caller mutation does not leak", func(t *testing.T) {
		goal := models.Goal{ID: "apps", Name: "Apps", Period: models.PeriodDaily, LimitMinutes: 20, Apps: []string{"tiktok"}}
		if err := s.SaveGoal(ctx, goal); err != nil {
			t.Fatalf("SaveGoal failed: %v", err)
		}
		goal.Apps[0] = "changed"
		goals := s.Goals()
		if goals[len(goals)-1].Apps[0] != "tiktok" {
			t.Error("stored goal shares memory with the caller")
		}
	})
}

func TestDeleteGoal(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.DeleteGoal(ctx, "missing"); !errors.Is(err, ErrGoalNotFound) {
		t.Errorf("expected ErrGoalNotFound, got %v", err)
	}
	if len(s.Goals()) != 1 {
		t.Fatal("failed delete changed the goals")
	}

	if err := s.DeleteGoal(ctx, "1"); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}
	if len(s.Goals()) != 0 {
		t.Errorf("expected no goals, got %+v", s.Goals())
	}
}

func TestSendMessageAndReactions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	msg, err := s.SendMessage(ctx, "friends", "hello", "")
	if err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if msg.AuthorID != "1" || msg.Kind != models.MessageKindUser || msg.GroupID != "friends" {
		t.Errorf("unexpected message: %+v", msg)
	}
	if last := lastMessage(t, s, "friends"); last.ID != msg.ID {
		t.Errorf("message not appended last, last is %s", last.ID)
	}

	updated, err := s.AddReaction(ctx, "friends", msg.ID, "👍")
	if err != nil {
		t.Fatalf("AddReaction failed: %v", err)
	}
	if updated.Reactions["👍"] != 1 {
		t.Errorf("after first reaction: got %d, want 1", updated.Reactions["👍"])
	}

	if _, err := s.AddReaction(ctx, "friends", msg.ID, "👍"); err != nil {
		t.Fatalf("AddReaction failed: %v", err)
	}
	if got := lastMessage(t, s, "friends").Reactions["👍"]; got != 2 {
		t.Errorf("after second reaction: got %d, want 2", got)
	}

	reply, err := s.SendMessage(ctx, "friends", "reply", "does-not-exist")
	if err != nil {
		t.Fatalf("SendMessage with dangling reply failed: %v", err)
	}
	if reply.ReplyToID != "does-not-exist" {
		t.Errorf("replyToId not stored as given: %q", reply.ReplyToID)
	}
	if reply.ID == msg.ID {
		t.Error("message IDs must be unique")
	}
}

func TestMessagingErrors(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SendMessage(ctx, "nope", "hi", ""); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("SendMessage: expected ErrGroupNotFound, got %v", err)
	}
	if _, err := s.AddReaction(ctx, "nope", "1", "🔥"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("AddReaction: expected ErrGroupNotFound, got %v", err)
	}
	if _, err := s.AddReaction(ctx, "friends", "missing", "🔥"); !errors.Is(err, ErrMessageNotFound) {
		t.Errorf("AddReaction: expected ErrMessageNotFound, got %v", err)
	}
	if _, err := s.Messages("nope"); !errors.Is(err, ErrGroupNotFound) {
		t.Errorf("Messages: expected ErrGroupNotFound, got %v", err)
	}
}

func TestFriendRequestLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	before := len(s.FriendRequests())

	req, err := s.SendFriendRequest(ctx, "9")
	if err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	reqs := s.FriendRequests()
	if len(reqs) != before+1 {
		t.Fatalf("expected %d requests, got %d", before+1, len(reqs))
	}
	if reqs[0].FromID != "1" || reqs[0].ToID != "9" || reqs[0].Status != models.RequestStatusPending {
		t.Errorf("unexpected request: %+v", reqs[0])
	}

	if err := s.DeclineFriendRequest(ctx, req.ID); err != nil {
		t.Fatalf("DeclineFriendRequest failed: %v", err)
	}
	if got := len(s.FriendRequests()); got != before {
		t.Errorf("decline should remove the request: got %d, want %d", got, before)
	}

	other, err := s.SendFriendRequest(ctx, "10")
	if err != nil {
		t.Fatalf("SendFriendRequest failed: %v", err)
	}
	accepted, err := s.AcceptFriendRequest(ctx, other.ID)
	if err != nil {
		t.Fatalf("AcceptFriendRequest failed: %v", err)
	}
	if accepted.Status != models.RequestStatusAccepted {
		t.Errorf("status: expected accepted, got %s", accepted.Status)
	}
	if reqs := s.FriendRequests(); len(reqs) != 1 || reqs[0].Status != models.RequestStatusAccepted {
		t.Errorf("accepted request should be kept: %+v", reqs)
	}

	if _, err := s.AcceptFriendRequest(ctx, "missing"); !errors.Is(err, ErrFriendRequestNotFound) {
		t.Errorf("accept: expected ErrFriendRequestNotFound, got %v", err)
	}
	if err := s.DeclineFriendRequest(ctx, "missing"); !errors.Is(err, ErrFriendRequestNotFound) {
		t.Errorf("decline: expected ErrFriendRequestNotFound, got %v", err)
	}
}

func TestUpdateUsage(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	usage := []models.Usage{{AppID: "books", AppName: "Books", Category: "Reading", Minutes: 12}}
	if err := s.UpdateUsage(ctx, usage); err != nil {
		t.Fatalf("UpdateUsage failed: %v", err)
	}
	st := s.State()
	if !reflect.DeepEqual(st.UsageToday, usage) {
		t.Errorf("usageToday not replaced: %+v", st.UsageToday)
	}
	if !reflect.DeepEqual(st.UsageThisWeek, fixture.Demo().UsageThisWeek) {
		t.Error("UpdateUsage must not touch the weekly snapshot")
	}

	if err := s.UpdateWeeklyUsage(ctx, nil); err != nil {
		t.Fatalf("UpdateWeeklyUsage failed: %v", err)
	}
	if got := s.State().UsageThisWeek; got == nil || len(got) != 0 {
		t.Errorf("expected empty weekly usage, got %#v", got)
	}
}

func TestReplaceUsage(t *testing.T) {
	ctx := context.Background()
	today := []models.Usage{{AppID: "books", Minutes: 12}}
	week := []models.Usage{{AppID: "books", Minutes: 80}}

	t.Run("both snapshots in one save", func(t *testing.T) {
		var saves int
		s := newTestStore(t, WithStorage(memory.New()), WithSaveHook(func(bytes int, err error) { saves++ }))

		if err := s.ReplaceUsage(ctx, today, week); err != nil {
			t.Fatalf("ReplaceUsage failed: %v", err)
		}
		st := s.State()
		if !reflect.DeepEqual(st.UsageToday, today) || !reflect.DeepEqual(st.UsageThisWeek, week) {
			t.Errorf("usage not replaced: today=%+v week=%+v", st.UsageToday, st.UsageThisWeek)
		}
		if saves != 1 {
			t.Errorf("expected 1 save, got %d", saves)
		}
	})

	t.Run("nil week keeps weekly snapshot", func(t *testing.T) {
		s := newTestStore(t)
		if err := s.ReplaceUsage(ctx, today, nil); err != nil {
			t.Fatalf("ReplaceUsage failed: %v", err)
		}
		if !reflect.DeepEqual(s.State().UsageThisWeek, fixture.Demo().UsageThisWeek) {
			t.Error("weekly snapshot changed")
		}
	})

	t.Run("failed save changes neither snapshot", func(t *testing.T) {
		backend := memory.New()
		backend.SaveErr = errors.New("disk full")
		s := newTestStore(t, WithStorage(backend))

		before := s.State()
		if err := s.ReplaceUsage(ctx, today, week); err == nil {
			t.Fatal("expected error when storage fails")
		}
		after := s.State()
		if !reflect.DeepEqual(before.UsageToday, after.UsageToday) || !reflect.DeepEqual(before.UsageThisWeek, after.UsageThisWeek) {
			t.Error("failed save left a partial usage update")
		}
	})
}

func TestResetToDemo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if _, err := s.SendMessage(ctx, "friends", "hello", ""); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if err := s.DeleteGoal(ctx, "1"); err != nil {
		t.Fatalf("DeleteGoal failed: %v", err)
	}

	if err := s.ResetToDemo(ctx); err != nil {
		t.Fatalf("ResetToDemo failed: %v", err)
	}
	first := s.State()
	if err := s.ResetToDemo(ctx); err != nil {
		t.Fatalf("ResetToDemo failed: %v", err)
	}
	second := s.State()

	if !reflect.DeepEqual(first, second) {
		t.Error("two resets produced different states")
	}
	if !reflect.DeepEqual(first, fixture.Demo()) {
		t.Error("reset state does not equal the demo fixture")
	}
}

func TestStateReturnsCopies(t *testing.T) {
	s := newTestStore(t)

	st := s.State()
	st.Goals[0].LimitMinutes = 1
	st.MessagesByGroup["friends"][2].Reactions["👍"] = 100
	delete(st.Groups, "gym")

	fresh := s.State()
	if fresh.Goals[0].LimitMinutes != 90 {
		t.Error("goal mutated through State()")
	}
	if fresh.MessagesByGroup["friends"][2].Reactions["👍"] != 3 {
		t.Error("reactions mutated through State()")
	}
	if _, ok := fresh.Groups["gym"]; !ok {
		t.Error("groups mutated through State()")
	}
}

func TestPersistFailureLeavesStateUnchanged(t *testing.T) {
	backend := memory.New()
	backend.SaveErr = errors.New("disk full")

	var saves int
	s := newTestStore(t, WithStorage(backend), WithSaveHook(func(bytes int, err error) {
		saves++
		if err == nil {
			t.Error("save hook should receive the storage error")
		}
	}))

	before := s.State()
	if _, err := s.SendMessage(context.Background(), "friends", "lost", ""); err == nil {
		t.Fatal("expected error when storage fails")
	}
	if !reflect.DeepEqual(before, s.State()) {
		t.Error("failed persist changed the in-memory state")
	}
	if saves != 1 {
		t.Errorf("expected 1 save attempt, got %d", saves)
	}
}

func TestConcurrentMutations(t *testing.T) {
	s := New(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))), WithStorage(memory.New()))
	ctx := context.Background()
	before, _ := s.Messages("friends")

	const writers = 20
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if _, err := s.SendMessage(ctx, "friends", fmt.Sprintf("msg %d", i), ""); err != nil {
				t.Errorf("SendMessage failed: %v", err)
			}
			if _, err := s.Leaderboard("friends", models.LeaderboardToday); err != nil {
				t.Errorf("Leaderboard failed: %v", err)
			}
		}(i)
	}
	wg.Wait()

	after, _ := s.Messages("friends")
	if len(after) != len(before)+writers {
		t.Fatalf("expected %d messages, got %d", len(before)+writers, len(after))
	}
	seen := map[string]bool{}
	for _, m := range after {
		if seen[m.ID] {
			t.Errorf("duplicate message ID %s", m.ID)
		}
		seen[m.ID] = true
	}
}
