package cryptography

import (
	"errors"
	"fmt"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher struct that implements the PasswordHasher interface
type bcryptHasher struct {
	cost   int
	logger logger.Logger
}

// NewBcryptHasher creates a PasswordHasher using cost, or bcrypt.DefaultCost when cost is zero
func NewBcryptHasher(cost int, logger logger.Logger) (accounts.PasswordHasher, error) {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &bcryptHasher{
		cost:   cost,
		logger: logger,
	}, nil
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) < accounts.MinPasswordLength {
		return "", fmt.Errorf("password must be at least %d characters", accounts.MinPasswordLength)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. Malformed hashes are logged and never match.
func (h *bcryptHasher) Verify(hash, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil && !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		h.logger.Warn("password hash could not be compared: ", err)
	}
	return err == nil
}
