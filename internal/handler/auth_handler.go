package handler

import (
	"fmt"
	"net/http"

	"github.com/avelichko/videotube-api/internal/apperrors"
	"github.com/avelichko/videotube-api/internal/dto"
	"github.com/avelichko/videotube-api/internal/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration and the session lifecycle
type AuthHandler struct {
	authService service.AuthService
	cookies     *CookieWriter
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService service.AuthService, cookies *CookieWriter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %w", apperrors.ErrValidation, err))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, "user registered successfully", user)
}

// Login handles user login and sets the session cookie pair
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %w", apperrors.ErrValidation, err))
		return
	}

	session, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cookies.SetSession(c, session.Tokens)
	respond(c, http.StatusOK, "logged in successfully", dto.AuthData{
		User:         session.User,
		AccessToken:  session.Tokens.AccessToken,
		RefreshToken: session.Tokens.RefreshToken,
	})
}

// Refresh rotates the token pair. The refresh token is read from the
// cookie, falling back to the request body.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshTokenCookie)
	if err != nil || refreshToken == "" {
		var req dto.RefreshRequest
		// Body is optional; absence surfaces as ErrMissingToken below.
		_ = c.ShouldBindJSON(&req)
		refreshToken = req.RefreshToken
	}

	session, err := h.authService.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cookies.SetSession(c, session.Tokens)
	respond(c, http.StatusOK, "tokens refreshed successfully", dto.AuthData{
		AccessToken:  session.Tokens.AccessToken,
		RefreshToken: session.Tokens.RefreshToken,
	})
}

// Logout invalidates the stored refresh token and clears the cookies
func (h *AuthHandler) Logout(c *gin.Context) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		respondError(c, apperrors.ErrInvalidToken)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	h.cookies.ClearSession(c)
	respond(c, http.StatusOK, "logged out successfully", nil)
}

// GetMe returns the current user's sanitized profile
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		respondError(c, apperrors.ErrInvalidToken)
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "current user fetched successfully", user)
}

// ChangePassword changes the current user's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		respondError(c, apperrors.ErrInvalidToken)
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %w", apperrors.ErrValidation, err))
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, &req); err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "password changed successfully", nil)
}

// UpdateAccount updates the current user's profile details
func (h *AuthHandler) UpdateAccount(c *gin.Context) {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		respondError(c, apperrors.ErrInvalidToken)
		return
	}

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, fmt.Errorf("%w: %w", apperrors.ErrValidation, err))
		return
	}

	user, err := h.authService.UpdateAccount(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, "account updated successfully", user)
}
