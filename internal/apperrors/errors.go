package apperrors

import (
	"errors"
	"net/http"
)

// Domain error kinds. Handlers map them to HTTP statuses via StatusCode;
// services wrap them with context using fmt.Errorf and %w.
var (
	ErrValidation         = errors.New("validation failed")
	ErrMissingCredentials = errors.New("username or email is required")
	ErrMissingToken       = errors.New("refresh token is required")
	ErrMissingUsername    = errors.New("username is required")

	ErrInvalidCredentials = errors.New("invalid username/email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token is expired")
	ErrTokenReused        = errors.New("refresh token is superseded or revoked")

	ErrUserNotFound    = errors.New("user not found")
	ErrChannelNotFound = errors.New("channel not found")

	ErrUserAlreadyExists = errors.New("user with this email or username already exists")
	ErrSelfSubscription  = errors.New("cannot subscribe to own channel")

	ErrStoreUnavailable = errors.New("store unavailable")
	ErrMisconfiguration = errors.New("service misconfiguration")
)

// StatusCode returns the HTTP status class for a domain error.
// Unknown errors are treated as internal failures.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrValidation),
		errors.Is(err, ErrMissingCredentials),
		errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrMissingUsername),
		errors.Is(err, ErrSelfSubscription):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrExpiredToken),
		errors.Is(err, ErrTokenReused):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrChannelNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
