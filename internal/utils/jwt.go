package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/avelichko/videotube-api/internal/apperrors"
	"github.com/avelichko/videotube-api/internal/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTConfig is passed in explicitly at construction; the manager never
// reads the environment itself.
type JWTConfig struct {
	AccessSecret       string
	RefreshSecret      string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

// JWTManager issues and verifies signed access and refresh tokens.
// The two kinds use distinct secrets and validity windows, so a refresh
// token can never be presented where an access token is expected.
type JWTManager struct {
	accessSecret       []byte
	refreshSecret      []byte
	accessTokenExpiry  time.Duration
	refreshTokenExpiry time.Duration
}

// NewJWTManager creates a new JWT manager. An empty secret is a fatal
// misconfiguration.
func NewJWTManager(cfg JWTConfig) (*JWTManager, error) {
	if cfg.AccessSecret == "" || cfg.RefreshSecret == "" {
		return nil, fmt.Errorf("signing secret is empty: %w", apperrors.ErrMisconfiguration)
	}

	return &JWTManager{
		accessSecret:       []byte(cfg.AccessSecret),
		refreshSecret:      []byte(cfg.RefreshSecret),
		accessTokenExpiry:  cfg.AccessTokenExpiry,
		refreshTokenExpiry: cfg.RefreshTokenExpiry,
	}, nil
}

// IssueAccessToken generates a short-lived access token for the user.
func (j *JWTManager) IssueAccessToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"email":    user.Email,
		"kind":     string(domain.TokenKindAccess),
		"exp":      now.Add(j.accessTokenExpiry).Unix(),
		"iat":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.accessSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", apperrors.ErrMisconfiguration)
	}

	return tokenString, nil
}

// IssueRefreshToken generates a long-lived refresh token for the user.
// The jti claim makes consecutive tokens for the same user distinct, so
// rotation always produces a new token string.
func (j *JWTManager) IssueRefreshToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"kind":    string(domain.TokenKindRefresh),
		"exp":     now.Add(j.refreshTokenExpiry).Unix(),
		"iat":     now.Unix(),
		"jti":     uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(j.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", apperrors.ErrMisconfiguration)
	}

	return tokenString, nil
}

// Verify validates a token's signature, kind and expiry and returns its
// claims. Returns apperrors.ErrExpiredToken for an expired token and
// apperrors.ErrInvalidToken for everything else that is wrong with it.
func (j *JWTManager) Verify(tokenString string, kind domain.TokenKind) (*domain.TokenClaims, error) {
	secret := j.accessSecret
	if kind == domain.TokenKindRefresh {
		secret = j.refreshSecret
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("failed to parse token: %w", apperrors.ErrExpiredToken)
		}
		return nil, fmt.Errorf("failed to parse token: %w", apperrors.ErrInvalidToken)
	}

	if !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	if tokenKind, _ := claims["kind"].(string); tokenKind != string(kind) {
		return nil, fmt.Errorf("unexpected token kind: %w", apperrors.ErrInvalidToken)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, fmt.Errorf("missing user_id claim: %w", apperrors.ErrInvalidToken)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, fmt.Errorf("missing exp claim: %w", apperrors.ErrInvalidToken)
	}

	iat, _ := claims["iat"].(float64)

	tokenClaims := &domain.TokenClaims{
		UserID: userID,
		Exp:    int64(exp),
		Iat:    int64(iat),
	}
	tokenClaims.Username, _ = claims["username"].(string)
	tokenClaims.Email, _ = claims["email"].(string)

	if tokenClaims.IsExpired() {
		return nil, apperrors.ErrExpiredToken
	}

	return tokenClaims, nil
}

// AccessTokenExpiry returns the access token lifetime.
func (j *JWTManager) AccessTokenExpiry() time.Duration {
	return j.accessTokenExpiry
}

// RefreshTokenExpiry returns the refresh token lifetime.
func (j *JWTManager) RefreshTokenExpiry() time.Duration {
	return j.refreshTokenExpiry
}
