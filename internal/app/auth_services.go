package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"
)

// authService implements the accounts.AuthService interface
type authService struct {
	users    accounts.UserRepository
	sessions accounts.SessionStore
	hasher   accounts.PasswordHasher
	tokens   accounts.TokenIssuer
	ttl      time.Duration
	now      func() time.Time
	logger   logger.Logger
}

// NewAuthService creates a new authService issuing sessions that live for ttl
func NewAuthService(
	users accounts.UserRepository,
	sessions accounts.SessionStore,
	hasher accounts.PasswordHasher,
	tokens accounts.TokenIssuer,
	ttl time.Duration,
	logger logger.Logger,
) (accounts.AuthService, error) {
	if users == nil || sessions == nil || hasher == nil || tokens == nil {
		return nil, fmt.Errorf("auth service requires users, sessions, hasher and token issuer")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("session ttl must be positive")
	}
	return &authService{
		users:    users,
		sessions: sessions,
		hasher:   hasher,
		tokens:   tokens,
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
		logger:   logger,
	}, nil
}

// Login checks the password of a staff account and opens a session
func (s *authService) Login(ctx context.Context, username, password string) (string, *accounts.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return "", nil, accounts.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !s.hasher.Verify(user.PasswordHash, password) || !user.IsStaff {
		return "", nil, accounts.ErrInvalidCredentials
	}

	token, err := s.tokens.NewToken()
	if err != nil {
		return "", nil, err
	}
	now := s.now()
	session := &accounts.Session{
		TokenDigest: s.tokens.Digest(token),
		UserID:      user.ID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.ttl),
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", nil, err
	}

	user.LastLogin = &now
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Warn("failed to record last login: ", err)
	}
	if _, err := s.sessions.Purge(ctx, now); err != nil {
		s.logger.Warn("failed to purge expired sessions: ", err)
	}

	s.logger.Info("User logged in: ", user.Username)
	return token, user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(ctx, s.tokens.Digest(token))
}

// Authenticate returns the owner of a live session
func (s *authService) Authenticate(ctx context.Context, token string) (*accounts.User, error) {
	if token == "" {
		return nil, accounts.ErrSessionExpired
	}

	digest := s.tokens.Digest(token)
	session, err := s.sessions.Get(ctx, digest)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		if err := s.sessions.Delete(ctx, digest); err != nil {
			s.logger.Warn("failed to delete expired session: ", err)
		}
		return nil, accounts.ErrSessionExpired
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return nil, accounts.ErrSessionExpired
		}
		return nil, err
	}
	if !user.IsStaff {
		return nil, accounts.ErrSessionExpired
	}
	return user, nil
}

// EnsureUser creates the staff account or resets its password and email.
// An existing superuser keeps the flag. The boolean reports whether the account was created.
func (s *authService) EnsureUser(ctx context.Context, username, email, password string, superuser bool) (*accounts.User, bool, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, false, validators.Errorf("username required")
	}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, false, validators.Errorf("%v", err)
	}

	user, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		user.PasswordHash = hash
		if email != "" {
			user.Email = email
		}
		user.IsStaff = true
		user.IsSuperuser = user.IsSuperuser || superuser
		if err := s.users.Update(ctx, user); err != nil {
			return nil, false, err
		}
		s.logger.Info("Updated staff user ", username)
		return user, false, nil
	case !errors.Is(err, content.ErrNotFound):
		return nil, false, err
	}

	user = &accounts.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		IsStaff:      true,
		IsSuperuser:  superuser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, false, err
	}
	s.logger.Info("Created staff user ", username)
	return user, true, nil
}
