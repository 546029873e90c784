package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelichko/videotube-api/internal/apperrors"
	"github.com/avelichko/videotube-api/internal/domain"
	"github.com/avelichko/videotube-api/internal/dto"
	"github.com/avelichko/videotube-api/internal/repository"
	"github.com/avelichko/videotube-api/internal/utils"
)

// authService implements AuthService
type authService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
	bcryptCost int
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager, bcryptCost int) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new user with a hashed password and returns the
// sanitized record.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	username := utils.Normalize(req.Username)
	email := utils.Normalize(req.Email)

	if !utils.ValidateUsername(username) {
		return nil, fmt.Errorf("invalid username %q: %w", req.Username, apperrors.ErrValidation)
	}
	if !utils.ValidateEmail(email) {
		return nil, fmt.Errorf("invalid email %q: %w", req.Email, apperrors.ErrValidation)
	}
	if !utils.ValidatePassword(req.Password) {
		return nil, fmt.Errorf("password too short: %w", apperrors.ErrValidation)
	}

	_, err := s.userRepo.GetByUsernameOrEmail(ctx, username, email)
	if err == nil {
		return nil, apperrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, s.storeErr("failed to check user existence", err)
	}

	user := &domain.User{
		Username:  username,
		Email:     email,
		FullName:  req.FullName,
		AvatarURL: req.AvatarURL,
	}
	if req.CoverImageURL != "" {
		user.CoverImageURL = &req.CoverImageURL
	}

	if err := user.SetPassword(req.Password, s.bcryptCost); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, s.storeErr("failed to create user", err)
	}

	sanitized := dto.NewUserResponse(user)
	return &sanitized, nil
}

// Login authenticates by username or email and opens a session.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*Session, error) {
	username := utils.Normalize(req.Username)
	email := utils.Normalize(req.Email)

	if username == "" && email == "" {
		return nil, apperrors.ErrMissingCredentials
	}

	user, err := s.userRepo.GetByUsernameOrEmail(ctx, username, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, s.storeErr("failed to get user", err)
	}

	if !user.VerifyPassword(req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.openSession(ctx, user)
}

// Refresh rotates the token pair. The presented refresh token must be
// cryptographically valid AND equal the stored value exactly: once
// rotated or logged out, an old token is permanently rejected even
// while still inside its validity window.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*Session, error) {
	if refreshToken == "" {
		return nil, apperrors.ErrMissingToken
	}

	claims, err := s.jwtManager.Verify(refreshToken, domain.TokenKindRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Valid signature but unknown user: treat as tampered or stale.
			return nil, apperrors.ErrInvalidToken
		}
		return nil, s.storeErr("failed to get user", err)
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return nil, apperrors.ErrTokenReused
	}

	// Read-compare-write: not atomic against a second concurrent refresh
	// for the same session. Accepted; the losing token is rejected on
	// its next use.
	return s.openSession(ctx, user)
}

// Logout clears the stored refresh token. Idempotent: logging out twice
// is not an error.
func (s *authService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, nil); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return s.storeErr("failed to clear refresh token", err)
	}
	return nil
}

// GetUser returns the sanitized view of a user
func (s *authService) GetUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, s.storeErr("failed to get user", err)
	}

	sanitized := dto.NewUserResponse(user)
	return &sanitized, nil
}

// ChangePassword verifies the current password and stores a hash of the
// new one. The hash is produced by SetPassword; nothing here rehashes
// an already-hashed value.
func (s *authService) ChangePassword(ctx context.Context, userID string, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return s.storeErr("failed to get user", err)
	}

	if !user.VerifyPassword(req.OldPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if !utils.ValidatePassword(req.NewPassword) {
		return fmt.Errorf("password too short: %w", apperrors.ErrValidation)
	}

	if err := user.SetPassword(req.NewPassword, s.bcryptCost); err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, user.PasswordHash); err != nil {
		return s.storeErr("failed to update password", err)
	}

	return nil
}

// UpdateAccount updates full name, email and image URLs. Empty request
// fields leave the current values in place.
func (s *authService) UpdateAccount(ctx context.Context, userID string, req *dto.UpdateAccountRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, s.storeErr("failed to get user", err)
	}

	if req.FullName != "" {
		user.FullName = req.FullName
	}
	if req.Email != "" {
		email := utils.Normalize(req.Email)
		if !utils.ValidateEmail(email) {
			return nil, fmt.Errorf("invalid email %q: %w", req.Email, apperrors.ErrValidation)
		}
		user.Email = email
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}
	if req.CoverImageURL != "" {
		cover := req.CoverImageURL
		user.CoverImageURL = &cover
	}

	if err := s.userRepo.UpdateDetails(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, apperrors.ErrUserAlreadyExists
		}
		return nil, s.storeErr("failed to update user", err)
	}

	sanitized := dto.NewUserResponse(user)
	return &sanitized, nil
}

// ValidateAccessToken verifies an access token and returns its claims
func (s *authService) ValidateAccessToken(_ context.Context, token string) (*domain.TokenClaims, error) {
	return s.jwtManager.Verify(token, domain.TokenKindAccess)
}

func (s *authService) storeErr(msg string, err error) error {
	return fmt.Errorf("%s: %w: %w", msg, apperrors.ErrStoreUnavailable, err)
}
