package domain

import "time"

// Subscription is a directed edge: SubscriberID follows ChannelID.
// Edges are not deduplicated at this layer; readers must not assume a
// subscriber appears only once for a channel.
type Subscription struct {
	ID           string    `json:"id" db:"id"`
	SubscriberID string    `json:"subscriber_id" db:"subscriber_id"`
	ChannelID    string    `json:"channel_id" db:"channel_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
