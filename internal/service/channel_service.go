package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avelichko/videotube-api/internal/apperrors"
	"github.com/avelichko/videotube-api/internal/domain"
	"github.com/avelichko/videotube-api/internal/repository"
	"github.com/avelichko/videotube-api/internal/utils"
)

// channelService implements ChannelService
type channelService struct {
	userRepo repository.UserRepository
	subRepo  repository.SubscriptionRepository
	cache    *ProfileCache
}

// NewChannelService creates a new channel service. The cache may be nil
// to resolve straight from the store on every call.
func NewChannelService(userRepo repository.UserRepository, subRepo repository.SubscriptionRepository, cache *ProfileCache) ChannelService {
	return &channelService{
		userRepo: userRepo,
		subRepo:  subRepo,
		cache:    cache,
	}
}

// ResolveProfile computes the aggregate channel view: subscriber count,
// subscribed-to count, and whether the viewer (if any) subscribes to
// this channel. Pure read; each call sees one consistent snapshot but
// no cross-call consistency is promised.
func (s *channelService) ResolveProfile(ctx context.Context, channelUsername, viewerID string) (*domain.ChannelProfile, error) {
	if strings.TrimSpace(channelUsername) == "" {
		return nil, apperrors.ErrMissingUsername
	}
	username := utils.Normalize(channelUsername)

	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrChannelNotFound
		}
		return nil, s.storeErr("failed to get channel", err)
	}

	counts, err := s.channelCounts(ctx, user)
	if err != nil {
		return nil, err
	}

	profile := &domain.ChannelProfile{
		FullName:                  user.FullName,
		Username:                  user.Username,
		Email:                     user.Email,
		AvatarURL:                 user.AvatarURL,
		CoverImageURL:             user.CoverImageURL,
		SubscriberCount:           counts.Subscribers,
		ChannelsSubscribedToCount: counts.SubscribedTo,
	}

	if viewerID != "" {
		subscribed, err := s.subRepo.Exists(ctx, viewerID, user.ID)
		if err != nil {
			return nil, s.storeErr("failed to check viewer subscription", err)
		}
		profile.IsSubscribed = subscribed
	}

	return profile, nil
}

// channelCounts returns the channel's aggregate counts, consulting the
// cache first. Cache failures fall through to the store.
func (s *channelService) channelCounts(ctx context.Context, user *domain.User) (ChannelCounts, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, user.Username); err == nil && cached != nil {
			return *cached, nil
		}
	}

	subscriberCount, err := s.subRepo.CountByChannel(ctx, user.ID)
	if err != nil {
		return ChannelCounts{}, s.storeErr("failed to count subscribers", err)
	}

	subscribedToCount, err := s.subRepo.CountBySubscriber(ctx, user.ID)
	if err != nil {
		return ChannelCounts{}, s.storeErr("failed to count subscriptions", err)
	}

	counts := ChannelCounts{Subscribers: subscriberCount, SubscribedTo: subscribedToCount}

	if s.cache != nil {
		_ = s.cache.Set(ctx, user.Username, counts)
	}

	return counts, nil
}

// Subscribe adds a subscriber->channel edge and drops the channel's
// cached profile.
func (s *channelService) Subscribe(ctx context.Context, subscriberID, channelUsername string) error {
	channel, err := s.channelByUsername(ctx, channelUsername)
	if err != nil {
		return err
	}

	if channel.ID == subscriberID {
		return apperrors.ErrSelfSubscription
	}

	if err := s.subRepo.Create(ctx, subscriberID, channel.ID); err != nil {
		return s.storeErr("failed to subscribe", err)
	}

	s.invalidateCounts(ctx, subscriberID, channel.Username)

	return nil
}

// Unsubscribe removes the subscriber's edges to the channel. Removing a
// nonexistent subscription is not an error.
func (s *channelService) Unsubscribe(ctx context.Context, subscriberID, channelUsername string) error {
	channel, err := s.channelByUsername(ctx, channelUsername)
	if err != nil {
		return err
	}

	if err := s.subRepo.Delete(ctx, subscriberID, channel.ID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return s.storeErr("failed to unsubscribe", err)
	}

	s.invalidateCounts(ctx, subscriberID, channel.Username)

	return nil
}

// invalidateCounts drops cached aggregates on both ends of the edge:
// the channel's subscriber count and the subscriber's subscribed-to
// count both changed.
func (s *channelService) invalidateCounts(ctx context.Context, subscriberID, channelUsername string) {
	if s.cache == nil {
		return
	}

	_ = s.cache.Invalidate(ctx, channelUsername)

	if subscriber, err := s.userRepo.GetByID(ctx, subscriberID); err == nil {
		_ = s.cache.Invalidate(ctx, subscriber.Username)
	}
}

func (s *channelService) channelByUsername(ctx context.Context, channelUsername string) (*domain.User, error) {
	if strings.TrimSpace(channelUsername) == "" {
		return nil, apperrors.ErrMissingUsername
	}

	channel, err := s.userRepo.GetByUsername(ctx, utils.Normalize(channelUsername))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrChannelNotFound
		}
		return nil, s.storeErr("failed to get channel", err)
	}

	return channel, nil
}

func (s *channelService) storeErr(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, apperrors.ErrStoreUnavailable, err)
}
