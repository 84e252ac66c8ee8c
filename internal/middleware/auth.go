package middleware

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/mmynk/leuth/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// MemberIDKey is the context key for the member id carried by the token.
	MemberIDKey contextKey = "member_id"
	// DeviceKey is the context key for the device name carried by the token.
	DeviceKey contextKey = "device"
)

// GetMemberID extracts the member ID from the context.
// Returns empty string if not found.
func GetMemberID(ctx context.Context) string {
	memberID, _ := ctx.Value(MemberIDKey).(string)
	return memberID
}

// GetDevice extracts the device name from the context.
func GetDevice(ctx context.Context) string {
	device, _ := ctx.Value(DeviceKey).(string)
	return device
}

// RequireAuth returns a middleware that validates JWT tokens and requires authentication.
// It extracts the token from the Authorization header, validates it, and adds
// the member ID and device to the request context.
func RequireAuth(jwtManager *auth.JWTManager) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
			}

			scheme, tokenString, ok := strings.Cut(authHeader, " ")
			if !ok || scheme != "Bearer" || tokenString == "" {
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			claims, err := jwtManager.Validate(tokenString)
			if err != nil {
				slog.Warn("Token rejected", "procedure", req.Spec().Procedure, "error", err)
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			ctx = context.WithValue(ctx, MemberIDKey, claims.MemberID)
			ctx = context.WithValue(ctx, DeviceKey, claims.Device)

			return next(ctx, req)
		}
	}
}
