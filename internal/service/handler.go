package service

import (
	"net/http"

	"connectrpc.com/connect"
)

// NewStateServiceHandler builds an HTTP handler serving every StateService
// procedure. It returns the path prefix to mount it on.
func NewStateServiceHandler(svc *StateService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(GetStateProcedure, connect.NewUnaryHandler(GetStateProcedure, svc.GetState, opts...))
	mux.Handle(SetLeaderProcedure, connect.NewUnaryHandler(SetLeaderProcedure, svc.SetLeader, opts...))
	mux.Handle(UpdateGroupSettingsProcedure, connect.NewUnaryHandler(UpdateGroupSettingsProcedure, svc.UpdateGroupSettings, opts...))
	mux.Handle(SaveGoalProcedure, connect.NewUnaryHandler(SaveGoalProcedure, svc.SaveGoal, opts...))
	mux.Handle(DeleteGoalProcedure, connect.NewUnaryHandler(DeleteGoalProcedure, svc.DeleteGoal, opts...))
	mux.Handle(SendMessageProcedure, connect.NewUnaryHandler(SendMessageProcedure, svc.SendMessage, opts...))
	mux.Handle(AddReactionProcedure, connect.NewUnaryHandler(AddReactionProcedure, svc.AddReaction, opts...))
	mux.Handle(SendFriendRequestProcedure, connect.NewUnaryHandler(SendFriendRequestProcedure, svc.SendFriendRequest, opts...))
	mux.Handle(AcceptFriendRequestProcedure, connect.NewUnaryHandler(AcceptFriendRequestProcedure, svc.AcceptFriendRequest, opts...))
	mux.Handle(DeclineFriendRequestProcedure, connect.NewUnaryHandler(DeclineFriendRequestProcedure, svc.DeclineFriendRequest, opts...))
	mux.Handle(GetLeaderboardProcedure, connect.NewUnaryHandler(GetLeaderboardProcedure, svc.GetLeaderboard, opts...))
	mux.Handle(GetSummaryProcedure, connect.NewUnaryHandler(GetSummaryProcedure, svc.GetSummary, opts...))
	mux.Handle(ResetToDemoProcedure, connect.NewUnaryHandler(ResetToDemoProcedure, svc.ResetToDemo, opts...))
	mux.Handle(UpdateUsageProcedure, connect.NewUnaryHandler(UpdateUsageProcedure, svc.UpdateUsage, opts...))

	return "/" + StateServiceName + "/", mux
}

// NewAuthServiceHandler builds an HTTP handler serving the AuthService.
func NewAuthServiceHandler(svc *AuthService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)

	mux := http.NewServeMux()
	mux.Handle(IssueTokenProcedure, connect.NewUnaryHandler(IssueTokenProcedure, svc.IssueToken, opts...))

	return "/" + AuthServiceName + "/", mux
}
