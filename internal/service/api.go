// Package service exposes the state store and token issuing over Connect
// unary RPCs with JSON request and response messages.
package service

import (
	"time"

	"github.com/mmynk/leuth/internal/models"
)

const (
	StateServiceName = "leuth.v1.StateService"
	AuthServiceName  = "leuth.v1.AuthService"
)

// Procedure paths.
const (
	GetStateProcedure             = "/" + StateServiceName + "/GetState"
	SetLeaderProcedure            = "/" + StateServiceName + "/SetLeader"
	UpdateGroupSettingsProcedure  = "/" + StateServiceName + "/UpdateGroupSettings"
	SaveGoalProcedure             = "/" + StateServiceName + "/SaveGoal"
	DeleteGoalProcedure           = "/" + StateServiceName + "/DeleteGoal"
	SendMessageProcedure          = "/" + StateServiceName + "/SendMessage"
	AddReactionProcedure          = "/" + StateServiceName + "/AddReaction"
	SendFriendRequestProcedure    = "/" + StateServiceName + "/SendFriendRequest"
	AcceptFriendRequestProcedure  = "/" + StateServiceName + "/AcceptFriendRequest"
	DeclineFriendRequestProcedure = "/" + StateServiceName + "/DeclineFriendRequest"
	GetLeaderboardProcedure       = "/" + StateServiceName + "/GetLeaderboard"
	GetSummaryProcedure           = "/" + StateServiceName + "/GetSummary"
	ResetToDemoProcedure          = "/" + StateServiceName + "/ResetToDemo"
	UpdateUsageProcedure          = "/" + StateServiceName + "/UpdateUsage"

	IssueTokenProcedure = "/" + AuthServiceName + "/IssueToken"
)

type GetStateRequest struct{}

type GetStateResponse struct {
	State *models.AppState `json:"state"`
}

type SetLeaderRequest struct {
	GroupID  string `json:"groupId"`
	MemberID string `json:"memberId"`
}

type SetLeaderResponse struct {
	Group models.Group `json:"group"`
}

type UpdateGroupSettingsRequest struct {
	GroupID  string               `json:"groupId"`
	Settings models.GroupSettings `json:"settings"`
}

type UpdateGroupSettingsResponse struct {
	Group models.Group `json:"group"`
}

// SaveGoalRequest creates a goal when Goal.ID is empty and replaces the
// goal with that ID otherwise.
type SaveGoalRequest struct {
	Goal models.Goal `json:"goal"`
}

type SaveGoalResponse struct {
	Goal  models.Goal   `json:"goal"`
	Goals []models.Goal `json:"goals"`
}

type DeleteGoalRequest struct {
	GoalID string `json:"goalId"`
}

type DeleteGoalResponse struct {
	Goals []models.Goal `json:"goals"`
}

type SendMessageRequest struct {
	GroupID   string `json:"groupId"`
	Text      string `json:"text"`
	ReplyToID string `json:"replyToId,omitempty"`
}

type SendMessageResponse struct {
	Message models.Message `json:"message"`
}

type AddReactionRequest struct {
	GroupID   string `json:"groupId"`
	MessageID string `json:"messageId"`
	Emoji     string `json:"emoji"`
}

type AddReactionResponse struct {
	Message models.Message `json:"message"`
}

type SendFriendRequestRequest struct {
	ToID string `json:"toId"`
}

type SendFriendRequestResponse struct {
	Request models.FriendRequest `json:"request"`
}

type AcceptFriendRequestRequest struct {
	RequestID string `json:"requestId"`
}

type AcceptFriendRequestResponse struct {
	Request models.FriendRequest `json:"request"`
}

type DeclineFriendRequestRequest struct {
	RequestID string `json:"requestId"`
}

type DeclineFriendRequestResponse struct{}

type GetLeaderboardRequest struct {
	GroupID string                   `json:"groupId"`
	Period  models.LeaderboardPeriod `json:"period"`
}

type GetLeaderboardResponse struct {
	Entries []models.LeaderboardEntry `json:"entries"`
}

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	Summary models.ScoreSummary `json:"summary"`
}

type ResetToDemoRequest struct{}

type ResetToDemoResponse struct {
	State *models.AppState `json:"state"`
}

// UpdateUsageRequest replaces the usage snapshots. A nil Week leaves the
// weekly snapshot untouched.
type UpdateUsageRequest struct {
	Today []models.Usage `json:"today"`
	Week  []models.Usage `json:"week,omitempty"`
}

type UpdateUsageResponse struct {
	TotalTodayMinutes int `json:"totalTodayMinutes"`
	TotalWeekMinutes  int `json:"totalWeekMinutes"`
}

type IssueTokenRequest struct {
	Passphrase string `json:"passphrase"`
	Device     string `json:"device"`
}

type IssueTokenResponse struct {
	Token     string    `json:"token"`
	MemberID  string    `json:"memberId"`
	ExpiresAt time.Time `json:"expiresAt"`
}
