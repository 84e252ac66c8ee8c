package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/leuth/internal/auth"
)

// AuthService implements the AuthService RPC interface.
type AuthService struct {
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
	memberID      func() string
	logger        *slog.Logger
}

// NewAuthService creates a new authentication service. memberID reports the
// local member the issued tokens speak for.
func NewAuthService(authenticator auth.Authenticator, jwtManager *auth.JWTManager, memberID func() string, logger *slog.Logger) *AuthService {
	return &AuthService{
		authenticator: authenticator,
		jwtManager:    jwtManager,
		memberID:      memberID,
		logger:        logger,
	}
}

// IssueToken exchanges the passphrase for a device token.
func (s *AuthService) IssueToken(ctx context.Context, req *connect.Request[IssueTokenRequest]) (*connect.Response[IssueTokenResponse], error) {
	s.logger.Info("IssueToken request", "device", req.Msg.Device)

	if req.Msg.Passphrase == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, auth.ErrInvalidCredentials)
	}

	if err := s.authenticator.Authenticate(ctx, req.Msg.Passphrase); err != nil {
		s.logger.Warn("IssueToken rejected", "device", req.Msg.Device)
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return nil, connect.NewError(connect.CodeUnauthenticated, err)
		}
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	memberID := s.memberID()
	token, expiresAt, err := s.jwtManager.Generate(memberID, req.Msg.Device)
	if err != nil {
		s.logger.Error("Failed to generate token", "member_id", memberID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	s.logger.Info("Token issued", "member_id", memberID, "device", req.Msg.Device)
	return connect.NewResponse(&IssueTokenResponse{
		Token:     token,
		MemberID:  memberID,
		ExpiresAt: expiresAt,
	}), nil
}
