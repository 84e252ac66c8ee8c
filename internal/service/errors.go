package service

import (
	"errors"
	"fmt"

	"connectrpc.com/connect"

	"github.com/mmynk/leuth/internal/state"
)

// invalidArgument wraps a request validation failure.
func invalidArgument(format string, args ...any) error {
	return connect.NewError(connect.CodeInvalidArgument, fmt.Errorf(format, args...))
}

// toConnectError maps store errors onto Connect codes.
func toConnectError(err error) error {
	switch {
	case errors.Is(err, state.ErrGroupNotFound),
		errors.Is(err, state.ErrMessageNotFound),
		errors.Is(err, state.ErrGoalNotFound),
		errors.Is(err, state.ErrFriendRequestNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, state.ErrNotGroupMember):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
