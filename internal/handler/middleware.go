package handler

import (
	"strings"

	"github.com/avelichko/videotube-api/internal/apperrors"
	"github.com/avelichko/videotube-api/internal/service"
	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware
const (
	ContextUserID   = "user_id"
	ContextUsername = "username"
)

// AuthMiddleware validates the access token and adds the user identity
// to the request context. The token is read from the accessToken cookie
// first, then from the Authorization header as "Bearer <token>".
func AuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractAccessToken(c)
		if token == "" {
			abortError(c, apperrors.ErrInvalidToken)
			return
		}

		claims, err := authService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abortError(c, err)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUsername, claims.Username)

		c.Next()
	}
}

// OptionalAuthMiddleware populates the user identity when a valid
// access token is present but lets anonymous requests through. Used on
// read paths whose result depends on the viewer, like channel profiles.
func OptionalAuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractAccessToken(c); token != "" {
			if claims, err := authService.ValidateAccessToken(c.Request.Context(), token); err == nil {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextUsername, claims.Username)
			}
		}

		c.Next()
	}
}

func extractAccessToken(c *gin.Context) string {
	if token, err := c.Cookie(accessTokenCookie); err == nil && token != "" {
		return token
	}

	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return parts[1]
}
