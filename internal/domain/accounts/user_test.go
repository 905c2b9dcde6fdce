//go:build unit
// +build unit

package accounts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserValidation(t *testing.T) {
	u := &User{Username: "admin", Email: "admin@example.com", PasswordHash: "$2a$10$hash"}
	assert.NoError(t, u.Validate())

	u.Username = "a b"
	assert.Error(t, u.Validate())

	u.Username = "admin"
	u.PasswordHash = ""
	assert.Error(t, u.Validate())
}

func TestSession_Expired(t *testing.T) {
	now := time.Now()
	s := &Session{ExpiresAt: now.Add(time.Hour)}
	assert.False(t, s.Expired(now))
	assert.True(t, s.Expired(now.Add(time.Hour)))
}
