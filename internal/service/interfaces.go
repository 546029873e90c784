package service

import (
	"context"

	"github.com/avelichko/videotube-api/internal/domain"
	"github.com/avelichko/videotube-api/internal/dto"
)

// AuthService owns the credential and session-token lifecycle:
// Anonymous -> Authenticated -> (Refreshed)* -> LoggedOut. It holds no
// state between calls; everything persistent lives in the user store.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*Session, error)
	Refresh(ctx context.Context, refreshToken string) (*Session, error)
	Logout(ctx context.Context, userID string) error
	GetUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error
	UpdateAccount(ctx context.Context, userID string, req *dto.UpdateAccountRequest) (*dto.UserResponse, error)
	ValidateAccessToken(ctx context.Context, token string) (*domain.TokenClaims, error)
}

// ChannelService resolves channel profiles and maintains the
// subscription edges they aggregate over.
type ChannelService interface {
	ResolveProfile(ctx context.Context, channelUsername, viewerID string) (*domain.ChannelProfile, error)
	Subscribe(ctx context.Context, subscriberID, channelUsername string) error
	Unsubscribe(ctx context.Context, subscriberID, channelUsername string) error
}
