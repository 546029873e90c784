package handler

import (
	"time"

	"github.com/avelichko/videotube-api/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	accessTokenCookie  = "accessToken"
	refreshTokenCookie = "refreshToken"
)

// CookieWriter writes the session cookie pair with consistent flags.
// Both cookies are http-only; each cookie always carries its
// correspondingly named token.
type CookieWriter struct {
	secure        bool
	domain        string
	accessMaxAge  int
	refreshMaxAge int
}

// NewCookieWriter creates a cookie writer for the session token pair
func NewCookieWriter(secure bool, domain string, accessExpiry, refreshExpiry time.Duration) *CookieWriter {
	return &CookieWriter{
		secure:        secure,
		domain:        domain,
		accessMaxAge:  int(accessExpiry.Seconds()),
		refreshMaxAge: int(refreshExpiry.Seconds()),
	}
}

// SetSession writes both token cookies
func (w *CookieWriter) SetSession(c *gin.Context, tokens domain.TokenPair) {
	c.SetCookie(accessTokenCookie, tokens.AccessToken, w.accessMaxAge, "/", w.domain, w.secure, true)
	c.SetCookie(refreshTokenCookie, tokens.RefreshToken, w.refreshMaxAge, "/", w.domain, w.secure, true)
}

// ClearSession expires both token cookies
func (w *CookieWriter) ClearSession(c *gin.Context) {
	c.SetCookie(accessTokenCookie, "", -1, "/", w.domain, w.secure, true)
	c.SetCookie(refreshTokenCookie, "", -1, "/", w.domain, w.secure, true)
}
