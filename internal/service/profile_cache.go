package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avelichko/videotube-api/pkg/database"
	"github.com/redis/go-redis/v9"
)

// ChannelCounts is the viewer-independent aggregate of a channel
// profile. The per-viewer IsSubscribed flag is never cached.
type ChannelCounts struct {
	Subscribers  int64 `json:"subscribers"`
	SubscribedTo int64 `json:"subscribed_to"`
}

// ProfileCache keeps channel aggregates in Redis for a short TTL so hot
// channel pages do not hit the store on every request.
type ProfileCache struct {
	redis *database.Redis
	ttl   time.Duration
}

// NewProfileCache creates a new profile cache
func NewProfileCache(redis *database.Redis, ttl time.Duration) *ProfileCache {
	return &ProfileCache{redis: redis, ttl: ttl}
}

func (c *ProfileCache) key(username string) string {
	return fmt.Sprintf("channel:counts:%s", username)
}

// Get returns the cached counts for a channel, or (nil, nil) on miss.
func (c *ProfileCache) Get(ctx context.Context, username string) (*ChannelCounts, error) {
	data, err := c.redis.Client.Get(ctx, c.key(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read profile cache: %w", err)
	}

	var counts ChannelCounts
	if err := json.Unmarshal(data, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode cached counts: %w", err)
	}

	return &counts, nil
}

// Set stores channel counts under the channel's username
func (c *ProfileCache) Set(ctx context.Context, username string, counts ChannelCounts) error {
	data, err := json.Marshal(counts)
	if err != nil {
		return fmt.Errorf("failed to encode counts: %w", err)
	}

	if err := c.redis.Client.Set(ctx, c.key(username), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write profile cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached counts for a channel
func (c *ProfileCache) Invalidate(ctx context.Context, username string) error {
	if err := c.redis.Client.Del(ctx, c.key(username)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate profile cache: %w", err)
	}
	return nil
}
