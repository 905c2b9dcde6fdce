//go:build unit
// +build unit

package connector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanFileName(t *testing.T) {
	tests := []struct {
		name string
		stem string
		ext  string
	}{
		{"Photo 1.JPG", "photo-1", ".jpg"},
		{"../../etc/passwd", "passwd", ""},
		{`C:\Users\me\CV Final.pdf`, "cv-final", ".pdf"},
		{".png", "file", ".png"},
		{"weird.ext with space", "weird", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stem, ext := cleanFileName(tt.name)
			assert.Equal(t, tt.stem, stem)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestObjectKey(t *testing.T) {
	assert.Regexp(t, `^files/my-cv-[0-9a-f]{8}\.pdf$`, objectKey("files", "My CV.pdf", true))
	assert.Regexp(t, `^projects/shot-[0-9a-f]{8}$`, objectKey("projects", "shot.png", false))
}
