//go:build unit
// +build unit

package httputil

import (
	"mime"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMultipart(t *testing.T) {
	body, contentType, err := EncodeMultipart("file", "cv.pdf", []byte("%PDF-1.4"), map[string]string{"slot": "resume"})
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	form, err := multipart.NewReader(body, params["boundary"]).ReadForm(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"resume"}, form.Value["slot"])
	require.Len(t, form.File["file"], 1)
	assert.Equal(t, "cv.pdf", form.File["file"][0].Filename)
}

func TestSafeNext(t *testing.T) {
	tests := []struct {
		next string
		want string
	}{
		{"/dashboard/projects/", "/dashboard/projects/"},
		{"/dashboard/?page=2", "/dashboard/?page=2"},
		{"", "/dashboard/"},
		{"https://evil.example.com/", "/dashboard/"},
		{"//evil.example.com", "/dashboard/"},
		{"/\\evil.example.com", "/dashboard/"},
		{"dashboard", "/dashboard/"},
	}

	for _, tt := range tests {
		t.Run(tt.next, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeNext(tt.next, "/dashboard/"))
		})
	}
}

func TestAttachmentDisposition(t *testing.T) {
	assert.Equal(t, `attachment; filename="cv.pdf"`, AttachmentDisposition("cv.pdf", false))
	assert.Equal(t, `inline; filename="me.png"`, AttachmentDisposition("me.png", true))
	assert.Equal(t, "attachment", AttachmentDisposition("", false))
}
