// Package accounts covers dashboard users and their login sessions.
package accounts

import (
	"errors"
	"time"

	"github.com/Brownie-08/Portfolio/internal/pkg/validators"
)

var (
	// ErrInvalidCredentials is returned for an unknown user, a wrong password or a non staff account
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrSessionExpired is returned for unknown or expired session tokens
	ErrSessionExpired = errors.New("session expired")
)

// User is a dashboard account
type User struct {
	ID           string     `json:"id"`
	Username     string     `json:"username" validate:"required,min=3,max=150,alphanum"`
	Email        string     `json:"email" validate:"omitempty,email"`
	PasswordHash string     `json:"-" validate:"required"`
	IsStaff      bool       `json:"is_staff"`
	IsSuperuser  bool       `json:"is_superuser"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Validate checks the user fields
func (u *User) Validate() error {
	return validators.Struct(u)
}

// Session binds a token digest to a user until ExpiresAt
type Session struct {
	TokenDigest string    `json:"token_digest"`
	UserID      string    `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// MinPasswordLength is enforced when accounts are created
const MinPasswordLength = 8
