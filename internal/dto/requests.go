package dto

// RegisterRequest represents a registration request. Avatar and cover
// image URLs are supplied by the external media-hosting collaborator;
// this service treats them as opaque strings.
type RegisterRequest struct {
	FullName      string `json:"fullname" binding:"required"`
	Username      string `json:"username" binding:"required,min=3,max=32"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	AvatarURL     string `json:"avatar_url" binding:"required,url"`
	CoverImageURL string `json:"cover_image_url" binding:"omitempty,url"`
}

// LoginRequest represents a login request. Either username or email
// must be present.
type LoginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token when it is not sent as a
// cookie.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordRequest represents a password change request
type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

// UpdateAccountRequest updates mutable profile fields. Zero-valued
// fields are left unchanged.
type UpdateAccountRequest struct {
	FullName      string `json:"fullname"`
	Email         string `json:"email" binding:"omitempty,email"`
	AvatarURL     string `json:"avatar_url" binding:"omitempty,url"`
	CoverImageURL string `json:"cover_image_url" binding:"omitempty,url"`
}
