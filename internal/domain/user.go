package domain

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// User represents a registered account. Username and email are stored
// lowercase and unique. PasswordHash and RefreshToken never leave the
// service boundary.
type User struct {
	ID            string    `json:"id" db:"id"`
	Username      string    `json:"username" db:"username"`
	Email         string    `json:"email" db:"email"`
	FullName      string    `json:"fullname" db:"full_name"`
	PasswordHash  string    `json:"-" db:"password_hash"`
	RefreshToken  *string   `json:"-" db:"refresh_token"`
	AvatarURL     string    `json:"avatar_url" db:"avatar_url"`
	CoverImageURL *string   `json:"cover_image_url" db:"cover_image_url"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}

// SetPassword replaces PasswordHash with a salted bcrypt hash of plain.
// Hashing happens here and only here; callers that change the password
// must go through this method so a stored hash is never hashed twice.
func (u *User) SetPassword(plain string, cost int) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword reports whether plain matches the stored hash.
// bcrypt's comparison is constant-time over the hash output.
func (u *User) VerifyPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}
