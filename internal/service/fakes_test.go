package service

import (
	"context"
	"sync"

	"github.com/avelichko/videotube-api/internal/domain"
	"github.com/avelichko/videotube-api/internal/repository"
	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository for unit tests.
type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // by id
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) clone(u *domain.User) *domain.User {
	c := *u
	if u.RefreshToken != nil {
		v := *u.RefreshToken
		c.RefreshToken = &v
	}
	if u.CoverImageURL != nil {
		v := *u.CoverImageURL
		c.CoverImageURL = &v
	}
	return &c
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return repository.ErrDuplicateUser
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	f.users[user.ID] = f.clone(user)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if u, ok := f.users[id]; ok {
		return f.clone(u), nil
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if u.Username == username {
			return f.clone(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) GetByUsernameOrEmail(_ context.Context, username, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, u := range f.users {
		if (username != "" && u.Username == username) || (email != "" && u.Email == email) {
			return f.clone(u), nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) UpdateDetails(_ context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.users[user.ID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.Email = user.Email
	stored.FullName = user.FullName
	stored.AvatarURL = user.AvatarURL
	stored.CoverImageURL = user.CoverImageURL
	return nil
}

func (f *fakeUserRepo) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	stored.PasswordHash = passwordHash
	return nil
}

func (f *fakeUserRepo) UpdateRefreshToken(_ context.Context, userID string, token *string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	stored, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	if token == nil {
		stored.RefreshToken = nil
	} else {
		v := *token
		stored.RefreshToken = &v
	}
	return nil
}

// fakeSubscriptionRepo is an in-memory SubscriptionRepository. Edges
// are kept as an append-only slice, so duplicates are representable.
type fakeSubscriptionRepo struct {
	mu    sync.Mutex
	edges []domain.Subscription
}

func newFakeSubscriptionRepo() *fakeSubscriptionRepo {
	return &fakeSubscriptionRepo{}
}

func (f *fakeSubscriptionRepo) Create(_ context.Context, subscriberID, channelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.edges = append(f.edges, domain.Subscription{
		ID:           uuid.New().String(),
		SubscriberID: subscriberID,
		ChannelID:    channelID,
	})
	return nil
}

func (f *fakeSubscriptionRepo) Delete(_ context.Context, subscriberID, channelID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := f.edges[:0]
	removed := false
	for _, e := range f.edges {
		if e.SubscriberID == subscriberID && e.ChannelID == channelID {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	f.edges = kept

	if !removed {
		return repository.ErrNotFound
	}
	return nil
}

func (f *fakeSubscriptionRepo) CountByChannel(_ context.Context, channelID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, e := range f.edges {
		if e.ChannelID == channelID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubscriptionRepo) CountBySubscriber(_ context.Context, subscriberID string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var n int64
	for _, e := range f.edges {
		if e.SubscriberID == subscriberID {
			n++
		}
	}
	return n, nil
}

func (f *fakeSubscriptionRepo) Exists(_ context.Context, subscriberID, channelID string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, e := range f.edges {
		if e.SubscriberID == subscriberID && e.ChannelID == channelID {
			return true, nil
		}
	}
	return false, nil
}
