package service

import (
	"context"
	"fmt"

	"github.com/avelichko/videotube-api/internal/domain"
	"github.com/avelichko/videotube-api/internal/dto"
)

// Session is the result of a successful login or refresh: a fresh token
// pair plus the sanitized user it belongs to.
type Session struct {
	User   *dto.UserResponse
	Tokens domain.TokenPair
}

// openSession issues a token pair for the user and persists the refresh
// token value, overwriting whatever was stored before. Single active
// session per account: a concurrent login silently invalidates the
// previous session's refresh token.
func (s *authService) openSession(ctx context.Context, user *domain.User) (*Session, error) {
	accessToken, err := s.jwtManager.IssueAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	refreshToken, err := s.jwtManager.IssueRefreshToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	if err := s.userRepo.UpdateRefreshToken(ctx, user.ID, &refreshToken); err != nil {
		return nil, s.storeErr("failed to persist refresh token", err)
	}

	sanitized := dto.NewUserResponse(user)
	return &Session{
		User: &sanitized,
		Tokens: domain.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
	}, nil
}
