package repository

import "errors"

// Common repository errors
var (
	// ErrNotFound is returned when a record is not found
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUser is returned when a username or email is already taken
	ErrDuplicateUser = errors.New("user with this username or email already exists")
)
