package state

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmynk/leuth/internal/models"
)

// SetLeader makes memberID the leader of groupID and posts a system message
// announcing it. The member must belong to the group.
func (s *Store) SetLeader(ctx context.Context, groupID, memberID string) error {
	return s.update(ctx, "set_leader", func(st *models.AppState) error {
		group, ok := st.Groups[groupID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
		}
		if !group.HasMember(memberID) {
			return fmt.Errorf("%w: %s not in %s", ErrNotGroupMember, memberID, groupID)
		}

		group.LeaderID = memberID
		st.Groups[groupID] = group

		name := "Someone"
		if m, ok := st.Member(memberID); ok && m.Name != "" {
			name = m.Name
		}
		s.appendSystemMessage(st, groupID, name+" is now the leader")
		return nil
	})
}

// UpdateGroupSettings merges the provided settings into the group and posts
// one system message summarizing the change.
func (s *Store) UpdateGroupSettings(ctx context.Context, groupID string, settings models.GroupSettings) error {
	return s.update(ctx, "update_group_settings", func(st *models.AppState) error {
		group, ok := st.Groups[groupID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
		}

		settings.Apply(&group)
		st.Groups[groupID] = group

		s.appendSystemMessage(st, groupID, settingsSummary(settings, group.PoolCurrency))
		return nil
	})
}

// settingsSummary renders e.g. "Leader updated settings: Time: 2w; Pool: $250; Goals: Steps".
// The pool is only mentioned when the update enables it with a non-zero amount.
func settingsSummary(settings models.GroupSettings, currency models.Currency) string {
	var parts []string
	if settings.Preset != nil {
		parts = append(parts, "Time: "+string(*settings.Preset))
	}
	if settings.PoolEnabled != nil && *settings.PoolEnabled &&
		settings.PoolAmount != nil && *settings.PoolAmount != 0 {
		amount := strconv.FormatFloat(*settings.PoolAmount, 'f', -1, 64)
		parts = append(parts, "Pool: "+currency.Symbol()+amount)
	}
	if settings.SelectedGoals != nil {
		parts = append(parts, "Goals: "+strings.Join(settings.SelectedGoals, ", "))
	}

	if len(parts) == 0 {
		return "Leader updated settings"
	}
	return "Leader updated settings: " + strings.Join(parts, "; ")
}

// SaveGoal replaces the goal with the same ID in place, or appends it.
// The goal is stored as given; validation is the caller's job.
func (s *Store) SaveGoal(ctx context.Context, goal models.Goal) error {
	return s.update(ctx, "save_goal", func(st *models.AppState) error {
		for i := range st.Goals {
			if st.Goals[i].ID == goal.ID {
				st.Goals[i] = goal.Clone()
				return nil
			}
		}
		st.Goals = append(st.Goals, goal.Clone())
		return nil
	})
}

// DeleteGoal removes the goal with the given ID.
func (s *Store) DeleteGoal(ctx context.Context, goalID string) error {
	return s.update(ctx, "delete_goal", func(st *models.AppState) error {
		for i := range st.Goals {
			if st.Goals[i].ID == goalID {
				st.Goals = append(st.Goals[:i], st.Goals[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrGoalNotFound, goalID)
	})
}

// SendMessage appends a message from the local user to the group's feed.
// replyToID is stored without checking that it exists.
func (s *Store) SendMessage(ctx context.Context, groupID, text, replyToID string) (models.Message, error) {
	var msg models.Message
	err := s.update(ctx, "send_message", func(st *models.AppState) error {
		if _, ok := st.Groups[groupID]; !ok {
			return fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
		}

		msg = models.Message{
			ID:        s.newID(),
			GroupID:   groupID,
			AuthorID:  st.Me.ID,
			Kind:      models.MessageKindUser,
			Text:      text,
			CreatedAt: s.now(),
			ReplyToID: replyToID,
		}
		st.MessagesByGroup[groupID] = append(st.MessagesByGroup[groupID], msg)
		return nil
	})
	return msg, err
}

// AddReaction increments the emoji's count on a message and returns the
// updated message. Counts are not tracked per member, so repeated calls keep
// incrementing.
func (s *Store) AddReaction(ctx context.Context, groupID, messageID, emoji string) (models.Message, error) {
	var updated models.Message
	err := s.update(ctx, "add_reaction", func(st *models.AppState) error {
		if _, ok := st.Groups[groupID]; !ok {
			return fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
		}

		msgs := st.MessagesByGroup[groupID]
		for i := range msgs {
			if msgs[i].ID != messageID {
				continue
			}
			if msgs[i].Reactions == nil {
				msgs[i].Reactions = map[string]int{}
			}
			msgs[i].Reactions[emoji]++
			updated = msgs[i].Clone()
			return nil
		}
		return fmt.Errorf("%w: %s in %s", ErrMessageNotFound, messageID, groupID)
	})
	return updated, err
}

// SendFriendRequest records a pending request from the local user to toID.
func (s *Store) SendFriendRequest(ctx context.Context, toID string) (models.FriendRequest, error) {
	var req models.FriendRequest
	err := s.update(ctx, "send_friend_request", func(st *models.AppState) error {
		req = models.FriendRequest{
			ID:        s.newID(),
			FromID:    st.Me.ID,
			ToID:      toID,
			Status:    models.RequestStatusPending,
			CreatedAt: s.now(),
		}
		st.FriendRequests = append(st.FriendRequests, req)
		return nil
	})
	return req, err
}

// AcceptFriendRequest marks the request accepted. The record is kept.
func (s *Store) AcceptFriendRequest(ctx context.Context, requestID string) (models.FriendRequest, error) {
	var accepted models.FriendRequest
	err := s.update(ctx, "accept_friend_request", func(st *models.AppState) error {
		for i := range st.FriendRequests {
			if st.FriendRequests[i].ID == requestID {
				st.FriendRequests[i].Status = models.RequestStatusAccepted
				accepted = st.FriendRequests[i]
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrFriendRequestNotFound, requestID)
	})
	return accepted, err
}

// DeclineFriendRequest removes the request entirely.
func (s *Store) DeclineFriendRequest(ctx context.Context, requestID string) error {
	return s.update(ctx, "decline_friend_request", func(st *models.AppState) error {
		for i := range st.FriendRequests {
			if st.FriendRequests[i].ID == requestID {
				st.FriendRequests = append(st.FriendRequests[:i], st.FriendRequests[i+1:]...)
				return nil
			}
		}
		return fmt.Errorf("%w: %s", ErrFriendRequestNotFound, requestID)
	})
}

// ResetToDemo discards every change and restores the demo fixture. The
// fixture has an empty diff, so the persisted snapshot is deleted outright.
func (s *Store) ResetToDemo(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storage != nil {
		if err := s.storage.DeleteSnapshot(ctx, SnapshotKey); err != nil {
			s.logger.Error("Failed to clear persisted state", "op", "reset_to_demo", "error", err)
			return fmt.Errorf("reset_to_demo: failed to clear state: %w", err)
		}
	}

	s.state = s.defaults.Clone()
	s.logger.Debug("State updated", "op", "reset_to_demo")
	return nil
}

// UpdateUsage replaces today's usage snapshot wholesale.
func (s *Store) UpdateUsage(ctx context.Context, usage []models.Usage) error {
	return s.update(ctx, "update_usage", func(st *models.AppState) error {
		st.UsageToday = append([]models.Usage{}, usage...)
		return nil
	})
}

// UpdateWeeklyUsage replaces this week's usage snapshot wholesale.
func (s *Store) UpdateWeeklyUsage(ctx context.Context, usage []models.Usage) error {
	return s.update(ctx, "update_weekly_usage", func(st *models.AppState) error {
		st.UsageThisWeek = append([]models.Usage{}, usage...)
		return nil
	})
}

// ReplaceUsage swaps both usage snapshots in one update. A nil week leaves
// this week's snapshot untouched.
func (s *Store) ReplaceUsage(ctx context.Context, today, week []models.Usage) error {
	return s.update(ctx, "replace_usage", func(st *models.AppState) error {
		st.UsageToday = append([]models.Usage{}, today...)
		if week != nil {
			st.UsageThisWeek = append([]models.Usage{}, week...)
		}
		return nil
	})
}

func (s *Store) appendSystemMessage(st *models.AppState, groupID, text string) {
	st.MessagesByGroup[groupID] = append(st.MessagesByGroup[groupID], models.Message{
		ID:        s.newID(),
		GroupID:   groupID,
		Kind:      models.MessageKindSystem,
		Text:      text,
		CreatedAt: s.now(),
	})
}
