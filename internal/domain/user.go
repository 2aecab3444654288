package domain

import (
	"net/mail"
	"regexp"
	"time"
)

// User is a registered account. PasswordHash never leaves the persistence
// and credential-validation layers.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Public projects the user into its API shape, dropping the hash.
func (u *User) Public() Identity {
	return Identity{ID: u.ID, Username: u.Username, Email: u.Email}
}

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// CreateUserRequest holds parameters for registering a new user.
type CreateUserRequest struct {
	Username string
	Email    string
	Password string
}

// Validate checks that the request is well-formed.
func (r *CreateUserRequest) Validate() error {
	if len(r.Username) < 4 || len(r.Username) > 20 {
		return ErrValidation(CodeValidationFailed, "username must be between 4 and 20 characters")
	}
	if !usernamePattern.MatchString(r.Username) {
		return ErrValidation(CodeValidationFailed, "username must contain only letters, numbers, underscores, dots, and hyphens")
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return ErrValidation(CodeValidationFailed, "email must be a valid address")
	}
	if len(r.Password) < 8 || len(r.Password) > 128 {
		return ErrValidation(CodeValidationFailed, "password must be between 8 and 128 characters")
	}
	return nil
}
