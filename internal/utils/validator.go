package utils

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	usernameRegex = regexp.MustCompile(`^[a-z0-9_.\-]{3,32}$`)
)

// ValidateEmail validates an email address
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ValidateUsername validates an already-normalized username:
// 3-32 lowercase letters, digits, underscore, dot or dash.
func ValidateUsername(username string) bool {
	return usernameRegex.MatchString(username)
}

// ValidatePassword validates a password: minimum 8 characters.
func ValidatePassword(password string) bool {
	return len(password) >= 8
}

// Normalize lowercases and trims an identifier (username or email).
// Usernames and emails are stored and compared in this form.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
