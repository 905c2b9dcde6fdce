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

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryS3 keeps objects in a map
type memoryS3 struct {
	objects map[string][]byte
}

func newMemoryS3() *memoryS3 {
	return &memoryS3{objects: map[string][]byte{}}
}

func (m *memoryS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	m.objects[aws.ToString(params.Key)] = data
	return &s3.PutObjectOutput{}, nil
}

func (m *memoryS3) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := m.objects[aws.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (m *memoryS3) HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := m.objects[aws.ToString(params.Key)]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (m *memoryS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(m.objects, aws.ToString(params.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Connector_Lifecycle(t *testing.T) {
	store := newMemoryS3()
	c := newS3Connector(store, config.S3Settings{Bucket: "portfolio", Region: "eu-west-1"}, testutil.SetupTestLogger(t))
	ctx := context.Background()

	ref, err := c.Save(ctx, &media.Upload{Filename: "Cover.JPG", ContentType: "image/jpeg", Slot: media.SlotBlogImage, Body: strings.NewReader("jpg")})
	require.NoError(t, err)
	assert.Equal(t, config.S3StorageBackend, ref.Backend)
	assert.Regexp(t, `^blog/cover-[0-9a-f]{8}\.jpg$`, ref.Key)
	assert.Equal(t, "https://portfolio.s3.eu-west-1.amazonaws.com/"+ref.Key, ref.URL)

	exists, err := c.Exists(ctx, ref.Key)
	require.NoError(t, err)
	assert.True(t, exists)

	rc, err := c.Open(ctx, ref.Key)
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpg", string(data))

	require.NoError(t, c.Delete(ctx, ref.Key))

	exists, err = c.Exists(ctx, ref.Key)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = c.Open(ctx, ref.Key)
	assert.ErrorIs(t, err, media.ErrNotFound)
}

func TestS3Connector_URL(t *testing.T) {
	tests := []struct {
		name     string
		settings config.S3Settings
		expected string
	}{
		{"public base url", config.S3Settings{Bucket: "b", PublicBaseURL: "https://cdn.example.com/"}, "https://cdn.example.com/files/cv.pdf"},
		{"custom endpoint", config.S3Settings{Bucket: "b", Endpoint: "http://localhost:9000"}, "http://localhost:9000/b/files/cv.pdf"},
		{"virtual hosted", config.S3Settings{Bucket: "b"}, "https://b.s3.amazonaws.com/files/cv.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newS3Connector(newMemoryS3(), tt.settings, testutil.SetupTestLogger(t))
			u, err := c.URL("files/cv.pdf", media.KindDocument)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u)
		})
	}
}
