//go:build unit
// +build unit

package connector

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/testutil"

	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	uploads   []uploader.UploadParams
	destroyed []uploader.DestroyParams
	destroyOK string
}

func (f *fakeUploader) Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error) {
	f.uploads = append(f.uploads, params)
	return &uploader.UploadResult{PublicID: params.PublicID}, nil
}

func (f *fakeUploader) Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error) {
	f.destroyed = append(f.destroyed, params)
	if params.ResourceType == f.destroyOK {
		return &uploader.DestroyResult{Result: "ok"}, nil
	}
	return &uploader.DestroyResult{Result: "not found"}, nil
}

// fakeDelivery answers 200 for the listed URLs and 404 otherwise
type fakeDelivery struct {
	found    map[string]string
	requests []string
}

func (f *fakeDelivery) Do(req *http.Request) (*http.Response, error) {
	f.requests = append(f.requests, req.Method+" "+req.URL.String())
	body, ok := f.found[req.URL.String()]
	status := http.StatusOK
	if !ok {
		status = http.StatusNotFound
	}
	return &http.Response{StatusCode: status, Body: io.NopCloser(strings.NewReader(body))}, nil
}

func TestCloudinaryConnector_Save(t *testing.T) {
	up := &fakeUploader{}
	c := newCloudinaryConnector("demo", up, &fakeDelivery{}, testutil.SetupTestLogger(t))
	ctx := context.Background()

	ref, err := c.Save(ctx, &media.Upload{Filename: "CV.pdf", Slot: media.SlotResume, Body: strings.NewReader("pdf")})
	require.NoError(t, err)
	require.Len(t, up.uploads, 1)
	assert.Equal(t, "raw", up.uploads[0].ResourceType)
	assert.Equal(t, api.Upload, up.uploads[0].Type)
	require.NotNil(t, up.uploads[0].Overwrite)
	assert.False(t, *up.uploads[0].Overwrite)
	require.NotNil(t, up.uploads[0].UniqueFilename)
	assert.False(t, *up.uploads[0].UniqueFilename)
	assert.Regexp(t, `^files/cv-[0-9a-f]{8}\.pdf$`, ref.Key)
	assert.Equal(t, "https://res.cloudinary.com/demo/raw/upload/"+ref.Key, ref.URL)

	ref, err = c.Save(ctx, &media.Upload{Filename: "me.png", Slot: media.SlotProfileImage, Body: strings.NewReader("png")})
	require.NoError(t, err)
	assert.Equal(t, "image", up.uploads[1].ResourceType)
	assert.Regexp(t, `^profile/me-[0-9a-f]{8}$`, ref.Key)
	assert.Equal(t, media.KindImage, ref.Kind)
}

func TestCloudinaryConnector_ExistsAndOpen(t *testing.T) {
	delivery := &fakeDelivery{found: map[string]string{
		"https://res.cloudinary.com/demo/raw/upload/files/cv.pdf": "pdf bytes",
	}}
	c := newCloudinaryConnector("demo", &fakeUploader{}, delivery, testutil.SetupTestLogger(t))
	ctx := context.Background()

	exists, err := c.Exists(ctx, "files/cv.pdf")
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := c.Open(ctx, "files/cv.pdf")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "pdf bytes", string(data))

	exists, err = c.Exists(ctx, "profile/missing")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = c.Open(ctx, "profile/missing")
	assert.ErrorIs(t, err, media.ErrNotFound)
}

func TestCloudinaryConnector_DeleteTriesBothResourceTypes(t *testing.T) {
	up := &fakeUploader{destroyOK: "raw"}
	c := newCloudinaryConnector("demo", up, &fakeDelivery{}, testutil.SetupTestLogger(t))

	require.NoError(t, c.Delete(context.Background(), "files/cv.pdf"))
	require.Len(t, up.destroyed, 2)
	assert.Equal(t, "image", up.destroyed[0].ResourceType)
	assert.Equal(t, "raw", up.destroyed[1].ResourceType)
}
