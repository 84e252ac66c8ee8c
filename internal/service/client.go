package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"
)

// StateServiceClient is a typed client for the StateService.
type StateServiceClient struct {
	getState             *connect.Client[GetStateRequest, GetStateResponse]
	setLeader            *connect.Client[SetLeaderRequest, SetLeaderResponse]
	updateGroupSettings  *connect.Client[UpdateGroupSettingsRequest, UpdateGroupSettingsResponse]
	saveGoal             *connect.Client[SaveGoalRequest, SaveGoalResponse]
	deleteGoal           *connect.Client[DeleteGoalRequest, DeleteGoalResponse]
	sendMessage          *connect.Client[SendMessageRequest, SendMessageResponse]
	addReaction          *connect.Client[AddReactionRequest, AddReactionResponse]
	sendFriendRequest    *connect.Client[SendFriendRequestRequest, SendFriendRequestResponse]
	acceptFriendRequest  *connect.Client[AcceptFriendRequestRequest, AcceptFriendRequestResponse]
	declineFriendRequest *connect.Client[DeclineFriendRequestRequest, DeclineFriendRequestResponse]
	getLeaderboard       *connect.Client[GetLeaderboardRequest, GetLeaderboardResponse]
	getSummary           *connect.Client[GetSummaryRequest, GetSummaryResponse]
	resetToDemo          *connect.Client[ResetToDemoRequest, ResetToDemoResponse]
	updateUsage          *connect.Client[UpdateUsageRequest, UpdateUsageResponse]
}

// NewStateServiceClient constructs a client for the StateService at baseURL
// (for example, http://localhost:8080).
func NewStateServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *StateServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &StateServiceClient{
		getState:             connect.NewClient[GetStateRequest, GetStateResponse](httpClient, baseURL+GetStateProcedure, opts...),
		setLeader:            connect.NewClient[SetLeaderRequest, SetLeaderResponse](httpClient, baseURL+SetLeaderProcedure, opts...),
		updateGroupSettings:  connect.NewClient[UpdateGroupSettingsRequest, UpdateGroupSettingsResponse](httpClient, baseURL+UpdateGroupSettingsProcedure, opts...),
		saveGoal:             connect.NewClient[SaveGoalRequest, SaveGoalResponse](httpClient, baseURL+SaveGoalProcedure, opts...),
		deleteGoal:           connect.NewClient[DeleteGoalRequest, DeleteGoalResponse](httpClient, baseURL+DeleteGoalProcedure, opts...),
		sendMessage:          connect.NewClient[SendMessageRequest, SendMessageResponse](httpClient, baseURL+SendMessageProcedure, opts...),
		addReaction:          connect.NewClient[AddReactionRequest, AddReactionResponse](httpClient, baseURL+AddReactionProcedure, opts...),
		sendFriendRequest:    connect.NewClient[SendFriendRequestRequest, SendFriendRequestResponse](httpClient, baseURL+SendFriendRequestProcedure, opts...),
		acceptFriendRequest:  connect.NewClient[AcceptFriendRequestRequest, AcceptFriendRequestResponse](httpClient, baseURL+AcceptFriendRequestProcedure, opts...),
		declineFriendRequest: connect.NewClient[DeclineFriendRequestRequest, DeclineFriendRequestResponse](httpClient, baseURL+DeclineFriendRequestProcedure, opts...),
		getLeaderboard:       connect.NewClient[GetLeaderboardRequest, GetLeaderboardResponse](httpClient, baseURL+GetLeaderboardProcedure, opts...),
		getSummary:           connect.NewClient[GetSummaryRequest, GetSummaryResponse](httpClient, baseURL+GetSummaryProcedure, opts...),
		resetToDemo:          connect.NewClient[ResetToDemoRequest, ResetToDemoResponse](httpClient, baseURL+ResetToDemoProcedure, opts...),
		updateUsage:          connect.NewClient[UpdateUsageRequest, UpdateUsageResponse](httpClient, baseURL+UpdateUsageProcedure, opts...),
	}
}

func (c *StateServiceClient) GetState(ctx context.Context, req *connect.Request[GetStateRequest]) (*connect.Response[GetStateResponse], error) {
	return c.getState.CallUnary(ctx, req)
}

func (c *StateServiceClient) SetLeader(ctx context.Context, req *connect.Request[SetLeaderRequest]) (*connect.Response[SetLeaderResponse], error) {
	return c.setLeader.CallUnary(ctx, req)
}

func (c *StateServiceClient) UpdateGroupSettings(ctx context.Context, req *connect.Request[UpdateGroupSettingsRequest]) (*connect.Response[UpdateGroupSettingsResponse], error) {
	return c.updateGroupSettings.CallUnary(ctx, req)
}

func (c *StateServiceClient) SaveGoal(ctx context.Context, req *connect.Request[SaveGoalRequest]) (*connect.Response[SaveGoalResponse], error) {
	return c.saveGoal.CallUnary(ctx, req)
}

func (c *StateServiceClient) DeleteGoal(ctx context.Context, req *connect.Request[DeleteGoalRequest]) (*connect.Response[DeleteGoalResponse], error) {
	return c.deleteGoal.CallUnary(ctx, req)
}

func (c *StateServiceClient) SendMessage(ctx context.Context, req *connect.Request[SendMessageRequest]) (*connect.Response[SendMessageResponse], error) {
	return c.sendMessage.CallUnary(ctx, req)
}

func (c *StateServiceClient) AddReaction(ctx context.Context, req *connect.Request[AddReactionRequest]) (*connect.Response[AddReactionResponse], error) {
	return c.addReaction.CallUnary(ctx, req)
}

func (c *StateServiceClient) SendFriendRequest(ctx context.Context, req *connect.Request[SendFriendRequestRequest]) (*connect.Response[SendFriendRequestResponse], error) {
	return c.sendFriendRequest.CallUnary(ctx, req)
}

func (c *StateServiceClient) AcceptFriendRequest(ctx context.Context, req *connect.Request[AcceptFriendRequestRequest]) (*connect.Response[AcceptFriendRequestResponse], error) {
	return c.acceptFriendRequest.CallUnary(ctx, req)
}

func (c *StateServiceClient) DeclineFriendRequest(ctx context.Context, req *connect.Request[DeclineFriendRequestRequest]) (*connect.Response[DeclineFriendRequestResponse], error) {
	return c.declineFriendRequest.CallUnary(ctx, req)
}

func (c *StateServiceClient) GetLeaderboard(ctx context.Context, req *connect.Request[GetLeaderboardRequest]) (*connect.Response[GetLeaderboardResponse], error) {
	return c.getLeaderboard.CallUnary(ctx, req)
}

func (c *StateServiceClient) GetSummary(ctx context.Context, req *connect.Request[GetSummaryRequest]) (*connect.Response[GetSummaryResponse], error) {
	return c.getSummary.CallUnary(ctx, req)
}

func (c *StateServiceClient) ResetToDemo(ctx context.Context, req *connect.Request[ResetToDemoRequest]) (*connect.Response[ResetToDemoResponse], error) {
	return c.resetToDemo.CallUnary(ctx, req)
}

func (c *StateServiceClient) UpdateUsage(ctx context.Context, req *connect.Request[UpdateUsageRequest]) (*connect.Response[UpdateUsageResponse], error) {
	return c.updateUsage.CallUnary(ctx, req)
}

// AuthServiceClient is a typed client for the AuthService.
type AuthServiceClient struct {
	issueToken *connect.Client[IssueTokenRequest, IssueTokenResponse]
}

// NewAuthServiceClient constructs a client for the AuthService at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)

	return &AuthServiceClient{
		issueToken: connect.NewClient[IssueTokenRequest, IssueTokenResponse](httpClient, baseURL+IssueTokenProcedure, opts...),
	}
}

func (c *AuthServiceClient) IssueToken(ctx context.Context, req *connect.Request[IssueTokenRequest]) (*connect.Response[IssueTokenResponse], error) {
	return c.issueToken.CallUnary(ctx, req)
}
