package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/avelichko/videotube-api/pkg/database"
	"github.com/google/uuid"
)

// subscriptionRepository implements SubscriptionRepository on PostgreSQL
type subscriptionRepository struct {
	db *database.Postgres
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *database.Postgres) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

// Create inserts a subscriber->channel edge. Edges are not deduplicated
// here; counting queries must tolerate repeated pairs.
func (r *subscriptionRepository) Create(ctx context.Context, subscriberID, channelID string) error {
	query := `
		INSERT INTO subscriptions (id, subscriber_id, channel_id, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.DB.ExecContext(ctx, query, uuid.New().String(), subscriberID, channelID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	return nil
}

// Delete removes all edges for the subscriber/channel pair
func (r *subscriptionRepository) Delete(ctx context.Context, subscriberID, channelID string) error {
	query := `DELETE FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2`

	result, err := r.db.DB.ExecContext(ctx, query, subscriberID, channelID)
	if err != nil {
		return fmt.Errorf("failed to delete subscription: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("subscription not found: %w", ErrNotFound)
	}

	return nil
}

// CountByChannel counts edges pointing at the channel
func (r *subscriptionRepository) CountByChannel(ctx context.Context, channelID string) (int64, error) {
	query := `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`

	var count int64
	if err := r.db.DB.QueryRowContext(ctx, query, channelID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}

	return count, nil
}

// CountBySubscriber counts edges originating from the subscriber
func (r *subscriptionRepository) CountBySubscriber(ctx context.Context, subscriberID string) (int64, error) {
	query := `SELECT COUNT(*) FROM subscriptions WHERE subscriber_id = $1`

	var count int64
	if err := r.db.DB.QueryRowContext(ctx, query, subscriberID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count subscriptions: %w", err)
	}

	return count, nil
}

// Exists reports whether at least one edge for the pair exists
func (r *subscriptionRepository) Exists(ctx context.Context, subscriberID, channelID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM subscriptions WHERE subscriber_id = $1 AND channel_id = $2)`

	var exists bool
	if err := r.db.DB.QueryRowContext(ctx, query, subscriberID, channelID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check subscription: %w", err)
	}

	return exists, nil
}
