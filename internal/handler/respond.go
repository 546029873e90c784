package handler

import (
	"errors"
	"net/http"

	"github.com/avelichko/videotube-api/internal/apperrors"
	"github.com/avelichko/videotube-api/internal/dto"
	"github.com/gin-gonic/gin"
)

// respond writes the success envelope
func respond(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, dto.Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    true,
	})
}

// respondError maps a domain error onto the failure envelope. Clients
// get the sentinel's message, never the wrapped internals; anything
// unrecognized is reported as a plain 500.
func respondError(c *gin.Context, err error) {
	status := apperrors.StatusCode(err)
	c.JSON(status, dto.ErrorResponse{
		StatusCode: status,
		Message:    clientMessage(err),
		Success:    false,
	})
}

// abortError is respondError for middleware
func abortError(c *gin.Context, err error) {
	respondError(c, err)
	c.Abort()
}

var clientSentinels = []error{
	apperrors.ErrValidation,
	apperrors.ErrMissingCredentials,
	apperrors.ErrMissingToken,
	apperrors.ErrMissingUsername,
	apperrors.ErrSelfSubscription,
	apperrors.ErrInvalidCredentials,
	apperrors.ErrTokenReused,
	apperrors.ErrUserNotFound,
	apperrors.ErrChannelNotFound,
	apperrors.ErrUserAlreadyExists,
}

func clientMessage(err error) string {
	// Invalid and expired tokens are deliberately indistinguishable to
	// the caller.
	if errors.Is(err, apperrors.ErrInvalidToken) || errors.Is(err, apperrors.ErrExpiredToken) {
		return "invalid or expired token"
	}

	for _, sentinel := range clientSentinels {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	return http.StatusText(http.StatusInternalServerError)
}
