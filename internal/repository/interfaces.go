package repository

import (
	"context"

	"github.com/avelichko/videotube-api/internal/domain"
)

// UserRepository is the credential store. It persists user records with
// their one-way-hashed password and the single current refresh token.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByUsernameOrEmail(ctx context.Context, username, email string) (*domain.User, error)
	UpdateDetails(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, userID, passwordHash string) error

	// UpdateRefreshToken overwrites the stored refresh token value.
	// Passing nil clears it (logout). One value per user: a new login or
	// refresh invalidates whatever was stored before.
	UpdateRefreshToken(ctx context.Context, userID string, token *string) error
}

// SubscriptionRepository stores directed subscriber->channel edges and
// answers the aggregate questions the channel profile needs.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscriberID, channelID string) error
	Delete(ctx context.Context, subscriberID, channelID string) error
	CountByChannel(ctx context.Context, channelID string) (int64, error)
	CountBySubscriber(ctx context.Context, subscriberID string) (int64, error)
	Exists(ctx context.Context, subscriberID, channelID string) (bool, error)
}
