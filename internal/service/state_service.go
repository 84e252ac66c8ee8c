package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mmynk/leuth/internal/models"
	"github.com/mmynk/leuth/internal/state"
)

// StateService implements the StateService RPCs on top of a state.Store.
type StateService struct {
	store *state.Store
}

// NewStateService creates a new StateService backed by store.
func NewStateService(store *state.Store) *StateService {
	return &StateService{store: store}
}

// GetState returns the whole application state.
func (s *StateService) GetState(ctx context.Context, req *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error) {
	return connect.NewResponse(&GetStateResponse{State: s.store.State()}), nil
}

// SetLeader makes a group member the leader.
func (s *StateService) SetLeader(ctx context.Context, req *connect.Request[SetLeaderRequest]) (*connect.Response[SetLeaderResponse], error) {
	slog.Info("SetLeader request received",
		"group_id", req.Msg.GroupID,
		"member_id", req.Msg.MemberID,
	)

	if req.Msg.GroupID == "" || req.Msg.MemberID == "" {
		return nil, invalidArgument("group_id and member_id are required")
	}

	if err := s.store.SetLeader(ctx, req.Msg.GroupID, req.Msg.MemberID); err != nil {
		slog.Error("SetLeader failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	group, err := s.store.Group(req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&SetLeaderResponse{Group: group}), nil
}

// UpdateGroupSettings applies a partial settings update to a group.
func (s *StateService) UpdateGroupSettings(ctx context.Context, req *connect.Request[UpdateGroupSettingsRequest]) (*connect.Response[UpdateGroupSettingsResponse], error) {
	slog.Info("UpdateGroupSettings request received", "group_id", req.Msg.GroupID)

	if req.Msg.GroupID == "" {
		return nil, invalidArgument("group_id is required")
	}
	if err := validateSettings(req.Msg.Settings); err != nil {
		return nil, err
	}

	if err := s.store.UpdateGroupSettings(ctx, req.Msg.GroupID, req.Msg.Settings); err != nil {
		slog.Error("UpdateGroupSettings failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	group, err := s.store.Group(req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&UpdateGroupSettingsResponse{Group: group}), nil
}

func validateSettings(settings models.GroupSettings) error {
	if settings.Preset != nil && !settings.Preset.Valid() {
		return invalidArgument("invalid preset %q", *settings.Preset)
	}
	if settings.PoolCurrency != nil && !settings.PoolCurrency.Valid() {
		return invalidArgument("invalid currency %q", *settings.PoolCurrency)
	}
	if settings.PoolAmount != nil && *settings.PoolAmount < 0 {
		return invalidArgument("pool amount cannot be negative")
	}
	return nil
}

// SaveGoal creates or replaces a goal. New goals get a generated ID.
func (s *StateService) SaveGoal(ctx context.Context, req *connect.Request[SaveGoalRequest]) (*connect.Response[SaveGoalResponse], error) {
	goal := req.Msg.Goal
	slog.Info("SaveGoal request received", "goal_id", goal.ID, "name", goal.Name)

	if strings.TrimSpace(goal.Name) == "" {
		return nil, invalidArgument("goal name is required")
	}
	if !goal.Period.Valid() {
		return nil, invalidArgument("invalid period %q", goal.Period)
	}
	if goal.LimitMinutes <= 0 {
		return nil, invalidArgument("limit must be positive, got %d", goal.LimitMinutes)
	}
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}

	if err := s.store.SaveGoal(ctx, goal); err != nil {
		slog.Error("SaveGoal failed", "goal_id", goal.ID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Goal saved", "goal_id", goal.ID)
	return connect.NewResponse(&SaveGoalResponse{Goal: goal, Goals: s.store.Goals()}), nil
}

// DeleteGoal removes a goal by ID.
func (s *StateService) DeleteGoal(ctx context.Context, req *connect.Request[DeleteGoalRequest]) (*connect.Response[DeleteGoalResponse], error) {
	slog.Info("DeleteGoal request received", "goal_id", req.Msg.GoalID)

	if req.Msg.GoalID == "" {
		return nil, invalidArgument("goal_id is required")
	}

	if err := s.store.DeleteGoal(ctx, req.Msg.GoalID); err != nil {
		slog.Error("DeleteGoal failed", "goal_id", req.Msg.GoalID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&DeleteGoalResponse{Goals: s.store.Goals()}), nil
}

// SendMessage posts a chat message from the local user.
func (s *StateService) SendMessage(ctx context.Context, req *connect.Request[SendMessageRequest]) (*connect.Response[SendMessageResponse], error) {
	slog.Info("SendMessage request received", "group_id", req.Msg.GroupID)

	if req.Msg.GroupID == "" {
		return nil, invalidArgument("group_id is required")
	}
	if strings.TrimSpace(req.Msg.Text) == "" {
		return nil, invalidArgument("message text is required")
	}

	msg, err := s.store.SendMessage(ctx, req.Msg.GroupID, req.Msg.Text, req.Msg.ReplyToID)
	if err != nil {
		slog.Error("SendMessage failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&SendMessageResponse{Message: msg}), nil
}

// AddReaction bumps an emoji counter on a message.
func (s *StateService) AddReaction(ctx context.Context, req *connect.Request[AddReactionRequest]) (*connect.Response[AddReactionResponse], error) {
	if req.Msg.GroupID == "" || req.Msg.MessageID == "" {
		return nil, invalidArgument("group_id and message_id are required")
	}
	if req.Msg.Emoji == "" {
		return nil, invalidArgument("emoji is required")
	}

	msg, err := s.store.AddReaction(ctx, req.Msg.GroupID, req.Msg.MessageID, req.Msg.Emoji)
	if err != nil {
		slog.Error("AddReaction failed",
			"group_id", req.Msg.GroupID,
			"message_id", req.Msg.MessageID,
			"error", err,
		)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AddReactionResponse{Message: msg}), nil
}

// SendFriendRequest records a pending request to another member.
func (s *StateService) SendFriendRequest(ctx context.Context, req *connect.Request[SendFriendRequestRequest]) (*connect.Response[SendFriendRequestResponse], error) {
	slog.Info("SendFriendRequest request received", "to_id", req.Msg.ToID)

	if req.Msg.ToID == "" {
		return nil, invalidArgument("to_id is required")
	}

	fr, err := s.store.SendFriendRequest(ctx, req.Msg.ToID)
	if err != nil {
		slog.Error("SendFriendRequest failed", "to_id", req.Msg.ToID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&SendFriendRequestResponse{Request: fr}), nil
}

// AcceptFriendRequest marks a request accepted.
func (s *StateService) AcceptFriendRequest(ctx context.Context, req *connect.Request[AcceptFriendRequestRequest]) (*connect.Response[AcceptFriendRequestResponse], error) {
	if req.Msg.RequestID == "" {
		return nil, invalidArgument("request_id is required")
	}

	fr, err := s.store.AcceptFriendRequest(ctx, req.Msg.RequestID)
	if err != nil {
		slog.Error("AcceptFriendRequest failed", "request_id", req.Msg.RequestID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&AcceptFriendRequestResponse{Request: fr}), nil
}

// DeclineFriendRequest removes a request.
func (s *StateService) DeclineFriendRequest(ctx context.Context, req *connect.Request[DeclineFriendRequestRequest]) (*connect.Response[DeclineFriendRequestResponse], error) {
	if req.Msg.RequestID == "" {
		return nil, invalidArgument("request_id is required")
	}

	if err := s.store.DeclineFriendRequest(ctx, req.Msg.RequestID); err != nil {
		slog.Error("DeclineFriendRequest failed", "request_id", req.Msg.RequestID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&DeclineFriendRequestResponse{}), nil
}

// GetLeaderboard ranks a group's members. An empty period means today.
func (s *StateService) GetLeaderboard(ctx context.Context, req *connect.Request[GetLeaderboardRequest]) (*connect.Response[GetLeaderboardResponse], error) {
	if req.Msg.GroupID == "" {
		return nil, invalidArgument("group_id is required")
	}
	period := req.Msg.Period
	if period == "" {
		period = models.LeaderboardToday
	}
	if !period.Valid() {
		return nil, invalidArgument("invalid period %q", period)
	}

	entries, err := s.store.Leaderboard(req.Msg.GroupID, period)
	if err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&GetLeaderboardResponse{Entries: entries}), nil
}

// GetSummary returns the local user's score for today.
func (s *StateService) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return connect.NewResponse(&GetSummaryResponse{Summary: s.store.Summary()}), nil
}

// ResetToDemo discards all changes and returns the fresh demo state.
func (s *StateService) ResetToDemo(ctx context.Context, req *connect.Request[ResetToDemoRequest]) (*connect.Response[ResetToDemoResponse], error) {
	slog.Info("ResetToDemo request received")

	if err := s.store.ResetToDemo(ctx); err != nil {
		slog.Error("ResetToDemo failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ResetToDemoResponse{State: s.store.State()}), nil
}

// UpdateUsage replaces today's usage snapshot, and this week's when given.
func (s *StateService) UpdateUsage(ctx context.Context, req *connect.Request[UpdateUsageRequest]) (*connect.Response[UpdateUsageResponse], error) {
	if err := validateUsage(req.Msg.Today); err != nil {
		return nil, err
	}
	if err := validateUsage(req.Msg.Week); err != nil {
		return nil, err
	}

	if err := s.store.ReplaceUsage(ctx, req.Msg.Today, req.Msg.Week); err != nil {
		slog.Error("UpdateUsage failed", "error", err)
		return nil, toConnectError(err)
	}

	st := s.store.State()
	return connect.NewResponse(&UpdateUsageResponse{
		TotalTodayMinutes: models.TotalMinutes(st.UsageToday),
		TotalWeekMinutes:  models.TotalMinutes(st.UsageThisWeek),
	}), nil
}

func validateUsage(usage []models.Usage) error {
	for _, u := range usage {
		if u.AppID == "" {
			return invalidArgument("usage entry without app_id")
		}
		if u.Minutes < 0 {
			return invalidArgument("negative minutes for %s", u.AppID)
		}
	}
	return nil
}
