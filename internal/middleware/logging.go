package middleware

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor logs every RPC with its procedure, result code and
// duration. Install it inside RequireAuth so that calls also carry the
// member and device from the token.
//
// Client mistakes (invalid argument, not found, ...) log at WARN; internal
// and unknown errors log at ERROR.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()

			resp, err := next(ctx, req)

			attrs := []any{
				"procedure", req.Spec().Procedure,
				"code", codeLabel(err),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if memberID := GetMemberID(ctx); memberID != "" {
				attrs = append(attrs, "member_id", memberID, "device", GetDevice(ctx))
			}

			switch code := connect.CodeOf(err); {
			case err == nil:
				slog.Info("RPC ok", attrs...)
			case code == connect.CodeInternal || code == connect.CodeUnknown:
				slog.Error("RPC failed", append(attrs, "error", err)...)
			default:
				slog.Warn("RPC rejected", append(attrs, "error", err)...)
			}

			return resp, err
		}
	}
}

// codeLabel is the Connect code name of err, or "ok".
func codeLabel(err error) string {
	if err == nil {
		return "ok"
	}
	return connect.CodeOf(err).String()
}
