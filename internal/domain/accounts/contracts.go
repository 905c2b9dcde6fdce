package accounts

import (
	"context"
	"time"
)

// UserRepository stores dashboard accounts
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	Update(ctx context.Context, user *User) error
}

// SessionStore persists login sessions keyed by token digest
type SessionStore interface {
	Save(ctx context.Context, session *Session) error
	Get(ctx context.Context, digest string) (*Session, error)
	Delete(ctx context.Context, digest string) error
	// Purge removes sessions that expired before now and returns how many were dropped
	Purge(ctx context.Context, now time.Time) (int, error)
}

// PasswordHasher hashes and verifies passwords
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// TokenIssuer creates session tokens and the digests stored for them
type TokenIssuer interface {
	NewToken() (string, error)
	Digest(token string) string
}

// AuthService logs users in and out of the dashboard
type AuthService interface {
	// Login verifies credentials and returns a new session token
	Login(ctx context.Context, username, password string) (string, *User, error)
	// Logout discards the session for token
	Logout(ctx context.Context, token string) error
	// Authenticate returns the user owning a live session
	Authenticate(ctx context.Context, token string) (*User, error)
	// EnsureUser creates or updates a staff account with the given password
	EnsureUser(ctx context.Context, username, email, password string, superuser bool) (*User, bool, error)
}
