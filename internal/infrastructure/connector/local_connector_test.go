//go:build unit
// +build unit

package connector

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocalConnector(t *testing.T) (media.Connector, string) {
	t.Helper()
	root := t.TempDir()
	c, err := NewLocalConnector(&config.StorageSettings{MediaRoot: root, MediaURL: "/media"}, testutil.SetupTestLogger(t))
	require.NoError(t, err)
	return c, root
}

func TestLocalConnector_SaveAndOpen(t *testing.T) {
	c, _ := newTestLocalConnector(t)
	ctx := context.Background()

	ref, err := c.Save(ctx, &media.Upload{
		Filename: "My Resume.PDF",
		Slot:     media.SlotResume,
		Body:     strings.NewReader("resume content"),
	})
	require.NoError(t, err)
	assert.Equal(t, config.LocalStorageBackend, ref.Backend)
	assert.Equal(t, media.KindDocument, ref.Kind)
	assert.Equal(t, "files/my-resume.pdf", ref.Key)
	assert.Equal(t, "/media/files/my-resume.pdf", ref.URL)

	rc, err := c.Open(ctx, ref.Key)
	require.NoError(t, err)
	defer rc.Close()
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "resume content", string(data))

	exists, err := c.Exists(ctx, ref.Key)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalConnector_SaveCollisionGetsSuffix(t *testing.T) {
	c, _ := newTestLocalConnector(t)
	ctx := context.Background()

	upload := func() *media.Ref {
		ref, err := c.Save(ctx, &media.Upload{Filename: "photo.png", Slot: media.SlotProjectImage, Body: bytes.NewReader([]byte("png"))})
		require.NoError(t, err)
		return ref
	}

	first := upload()
	second := upload()
	assert.Equal(t, "projects/photo.png", first.Key)
	assert.NotEqual(t, first.Key, second.Key)
	assert.Regexp(t, `^projects/photo_[0-9a-f]{8}\.png$`, second.Key)
}

func TestLocalConnector_RejectsTraversal(t *testing.T) {
	c, root := newTestLocalConnector(t)
	testutil.CreateTestFile(t, root+"/..", "secret.txt", []byte("secret"))
	ctx := context.Background()

	for _, key := range []string{"../secret.txt", "files/../../secret.txt", "", "a\x00b"} {
		_, err := c.Open(ctx, key)
		assert.ErrorIs(t, err, media.ErrInvalidKey, key)
	}
}

func TestLocalConnector_MissingFile(t *testing.T) {
	c, root := newTestLocalConnector(t)
	testutil.CreateTestFile(t, root, "profile/keep.txt", []byte("x"))
	ctx := context.Background()

	_, err := c.Open(ctx, "files/missing.pdf")
	assert.ErrorIs(t, err, media.ErrNotFound)

	_, err = c.Open(ctx, "profile")
	assert.ErrorIs(t, err, media.ErrNotFound)

	exists, err := c.Exists(ctx, "files/missing.pdf")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalConnector_Delete(t *testing.T) {
	c, root := newTestLocalConnector(t)
	testutil.CreateTestFile(t, root, "blog/cover.jpg", []byte("jpg"))
	ctx := context.Background()

	require.NoError(t, c.Delete(ctx, "blog/cover.jpg"))
	exists, err := c.Exists(ctx, "blog/cover.jpg")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, c.Delete(ctx, "blog/cover.jpg"))
}

func TestLocalConnector_URL(t *testing.T) {
	c, _ := newTestLocalConnector(t)

	u, err := c.URL("profile/me.png", media.KindImage)
	require.NoError(t, err)
	assert.Equal(t, "/media/profile/me.png", u)

	_, err = c.URL("../etc/passwd", media.KindImage)
	assert.ErrorIs(t, err, media.ErrInvalidKey)
}
