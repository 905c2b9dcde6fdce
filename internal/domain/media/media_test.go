//go:build unit
// +build unit

package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlot(t *testing.T) {
	slot, err := ParseSlot(" Resume ")
	require.NoError(t, err)
	assert.Equal(t, SlotResume, slot)
	assert.Equal(t, KindDocument, slot.Kind())
	assert.Equal(t, "files", slot.Folder())

	_, err = ParseSlot("wallpaper")
	assert.Error(t, err)
}

func TestSlotForKey(t *testing.T) {
	assert.Equal(t, SlotBlogImage, SlotForKey("blog/cover.png", KindImage))
	assert.Equal(t, SlotResume, SlotForKey("files/cv.pdf", KindDocument))
	assert.Equal(t, SlotProjectImage, SlotForKey("cover.png", KindImage))
	assert.Equal(t, SlotResume, SlotForKey("misc/cv.pdf", KindDocument))
}

func TestRef(t *testing.T) {
	assert.True(t, Ref{}.IsZero())
	assert.False(t, Ref{URL: "https://example.com/a.png"}.IsZero())
	assert.Equal(t, "cv.pdf", Ref{Key: "files/cv.pdf"}.Filename())
	assert.Equal(t, "cv.pdf", Ref{Key: "cv.pdf"}.Filename())
}

func TestUpload_Kind(t *testing.T) {
	assert.Equal(t, KindImage, (&Upload{Slot: SlotOGImage}).Kind())
	assert.Equal(t, KindImage, (&Upload{Slot: "unknown"}).Kind())
}
