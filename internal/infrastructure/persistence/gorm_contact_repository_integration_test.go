//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMessage(t *testing.T, tc *TestContext, subject string, createdAt time.Time) *contact.ContactMessage {
	t.Helper()

	msg := &contact.ContactMessage{
		Name:      "Jane Doe",
		Email:     "jane@example.com",
		Subject:   subject,
		Message:   "Hello there, nice portfolio.",
		CreatedAt: createdAt,
	}
	require.NoError(t, tc.ContactRepo.Create(context.Background(), msg))
	return msg
}

func TestContactRepository_FiltersAndBulk(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	now := time.Now().UTC()
	old := createMessage(t, tc, "Old enquiry", now.Add(-30*24*time.Hour))
	recent := createMessage(t, tc, "Project question", now)

	unread, err := tc.ContactRepo.Count(ctx, &contact.MessageQuery{Status: contact.StatusUnread})
	require.NoError(t, err)
	assert.Equal(t, int64(2), unread)

	n, err := tc.ContactRepo.SetRead(ctx, []string{old.ID}, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	read, err := tc.ContactRepo.List(ctx, &contact.MessageQuery{Status: contact.StatusRead})
	require.NoError(t, err)
	require.Len(t, read, 1)
	assert.Equal(t, old.ID, read[0].ID)

	found, err := tc.ContactRepo.List(ctx, &contact.MessageQuery{Search: "PROJECT"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, recent.ID, found[0].ID)

	since, err := tc.ContactRepo.CountSince(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), since)

	deleted, err := tc.ContactRepo.Delete(ctx, []string{old.ID, recent.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = tc.ContactRepo.GetByID(ctx, old.ID)
	assert.True(t, errors.Is(err, content.ErrNotFound))
}

func TestUserRepository_CRUD(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)
	ctx := context.Background()

	user := &accounts.User{Username: "admin", Email: "admin@example.com", PasswordHash: "hash", IsStaff: true}
	require.NoError(t, tc.UserRepo.Create(ctx, user))

	fetched, err := tc.UserRepo.GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, user.ID, fetched.ID)
	assert.True(t, fetched.IsStaff)

	now := time.Now().UTC()
	fetched.LastLogin = &now
	fetched.IsSuperuser = true
	require.NoError(t, tc.UserRepo.Update(ctx, fetched))

	again, err := tc.UserRepo.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, again.IsSuperuser)
	require.NotNil(t, again.LastLogin)

	err = tc.UserRepo.Create(ctx, &accounts.User{Username: "admin", PasswordHash: "other"})
	assert.True(t, errors.Is(err, content.ErrConflict))

	_, err = tc.UserRepo.GetByUsername(ctx, "ghost")
	assert.True(t, errors.Is(err, content.ErrNotFound))
}
