//go:build unit
// +build unit

package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T, path string) BoltStore {
	t.Helper()
	store, err := NewBoltStore(path, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return store
}

func TestBoltStore_SaveGetDelete(t *testing.T) {
	store := setupStore(t, filepath.Join(t.TempDir(), "sessions.db"))
	defer store.Close()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)
	session := &accounts.Session{TokenDigest: "digest", UserID: "user-1", CreatedAt: now, ExpiresAt: now.Add(time.Hour)}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "digest")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.True(t, got.ExpiresAt.Equal(session.ExpiresAt))

	require.NoError(t, store.Delete(ctx, "digest"))
	_, err = store.Get(ctx, "digest")
	assert.ErrorIs(t, err, accounts.ErrSessionExpired)

	assert.Error(t, store.Save(ctx, &accounts.Session{}))
}

func TestBoltStore_Purge(t *testing.T) {
	store := setupStore(t, filepath.Join(t.TempDir(), "sessions.db"))
	defer store.Close()
	ctx := context.Background()

	now := time.Now()
	require.NoError(t, store.Save(ctx, &accounts.Session{TokenDigest: "old", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, store.Save(ctx, &accounts.Session{TokenDigest: "live", ExpiresAt: now.Add(time.Hour)}))

	purged, err := store.Purge(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = store.Get(ctx, "old")
	assert.ErrorIs(t, err, accounts.ErrSessionExpired)
	_, err = store.Get(ctx, "live")
	assert.NoError(t, err)
}

func TestBoltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "sessions.db")
	ctx := context.Background()

	store := setupStore(t, path)
	require.NoError(t, store.Save(ctx, &accounts.Session{TokenDigest: "digest", UserID: "user-1", ExpiresAt: time.Now().Add(time.Hour)}))
	require.NoError(t, store.Close())

	store = setupStore(t, path)
	defer store.Close()
	got, err := store.Get(ctx, "digest")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
}
