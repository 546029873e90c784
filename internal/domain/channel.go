package domain

// ChannelProfile is the read-only aggregate view of a user as a
// subscribable channel, computed relative to an optional viewer.
type ChannelProfile struct {
	FullName                  string  `json:"fullname"`
	Username                  string  `json:"username"`
	Email                     string  `json:"email"`
	AvatarURL                 string  `json:"avatar_url"`
	CoverImageURL             *string `json:"cover_image_url"`
	SubscriberCount           int64   `json:"subscriber_count"`
	ChannelsSubscribedToCount int64   `json:"channels_subscribed_to_count"`
	IsSubscribed              bool    `json:"is_subscribed"`
}
