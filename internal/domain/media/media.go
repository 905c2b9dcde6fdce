package media

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrNotFound is returned when a stored file is missing from its backend
	ErrNotFound = errors.New("media not found")
	// ErrInvalidKey is returned for keys that escape the storage root
	ErrInvalidKey = errors.New("invalid media key")
)

// Kind classifies a file for backend selection
type Kind string

const (
	// KindImage is served inline and may be transformed by image CDNs
	KindImage Kind = "image"
	// KindDocument is a downloadable file such as a resume
	KindDocument Kind = "document"
)

// Slot identifies the content field a file is uploaded for
type Slot string

// Known upload slots
const (
	SlotProjectImage      Slot = "project_image"
	SlotBlogImage         Slot = "blog_image"
	SlotProfileImage      Slot = "profile_image"
	SlotResume            Slot = "resume"
	SlotTestimonialAvatar Slot = "testimonial_avatar"
	SlotCertificateImage  Slot = "certificate_image"
	SlotAwardImage        Slot = "award_image"
	SlotOGImage           Slot = "og_image"
)

type slotInfo struct {
	folder string
	kind   Kind
}

var slots = map[Slot]slotInfo{
	SlotProjectImage:      {folder: "projects", kind: KindImage},
	SlotBlogImage:         {folder: "blog", kind: KindImage},
	SlotProfileImage:      {folder: "profile", kind: KindImage},
	SlotResume:            {folder: "files", kind: KindDocument},
	SlotTestimonialAvatar: {folder: "testimonials", kind: KindImage},
	SlotCertificateImage:  {folder: "certifications", kind: KindImage},
	SlotAwardImage:        {folder: "awards", kind: KindImage},
	SlotOGImage:           {folder: "seo", kind: KindImage},
}

// ParseSlot converts a slot name into a Slot
func ParseSlot(name string) (Slot, error) {
	slot := Slot(strings.TrimSpace(strings.ToLower(name)))
	if _, ok := slots[slot]; !ok {
		return "", fmt.Errorf("unknown upload slot %q", name)
	}
	return slot, nil
}

// Folder returns the storage folder for the slot
func (s Slot) Folder() string {
	return slots[s].folder
}

// Kind returns the file kind stored in the slot
func (s Slot) Kind() Kind {
	if info, ok := slots[s]; ok {
		return info.kind
	}
	return KindImage
}

// SlotForKey guesses the slot a stored key was uploaded for from its folder.
// Keys outside every known folder map to the default slot of kind.
func SlotForKey(key string, kind Kind) Slot {
	folder := ""
	if i := strings.Index(key, "/"); i > 0 {
		folder = key[:i]
	}
	for slot, info := range slots {
		if info.folder == folder && info.kind == kind {
			return slot
		}
	}
	if kind == KindDocument {
		return SlotResume
	}
	return SlotProjectImage
}

// Ref points at a stored file. It is embedded in every entity that owns media.
type Ref struct {
	Backend string `json:"backend,omitempty"`
	Kind    Kind   `json:"kind,omitempty"`
	Key     string `json:"key,omitempty"`
	URL     string `json:"url,omitempty"`
}

// IsZero reports whether nothing is stored
func (r Ref) IsZero() bool {
	return r.Key == "" && r.URL == ""
}

// Filename returns the last path element of the key
func (r Ref) Filename() string {
	if i := strings.LastIndex(r.Key, "/"); i >= 0 {
		return r.Key[i+1:]
	}
	return r.Key
}

// Holder is implemented by entities that own media references
type Holder interface {
	MediaRefs() []*Ref
}

// Upload is a file on its way to a storage backend
type Upload struct {
	Filename    string
	ContentType string
	Size        int64
	Slot        Slot
	Body        io.Reader
}

// Kind returns the kind implied by the upload slot
func (u *Upload) Kind() Kind {
	return u.Slot.Kind()
}

// CheckResult reports the state of one stored reference
type CheckResult struct {
	Owner  string `json:"owner"`
	Ref    Ref    `json:"ref"`
	URL    string `json:"url"`
	Exists bool   `json:"exists"`
	Error  string `json:"error,omitempty"`
}
