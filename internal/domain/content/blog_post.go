package content

import (
	"strings"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"
)

// BlogPost is an article on the blog
type BlogPost struct {
	Base
	Title       string     `json:"title" validate:"required,max=200"`
	Slug        string     `json:"slug" validate:"required,slug,max=200"`
	Excerpt     string     `json:"excerpt" validate:"max=300"`
	Body        string     `json:"body" validate:"required"`
	Image       media.Ref  `json:"image"`
	Tags        string     `json:"tags" validate:"max=200"`
	IsFeatured  bool       `json:"is_featured"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Normalize trims the title and clears the publish date of drafts
func (b *BlogPost) Normalize() {
	b.Title = strings.TrimSpace(b.Title)
	if !b.IsPublished {
		b.PublishedAt = nil
	}
}

// Validate checks the post fields
func (b *BlogPost) Validate() error {
	return validators.Struct(b)
}

// TagList splits the comma separated tags
func (b *BlogPost) TagList() []string {
	return splitList(b.Tags, ",")
}

// MediaRefs implements media.Holder
func (b *BlogPost) MediaRefs() []*media.Ref {
	return []*media.Ref{&b.Image}
}

// BlogFilter narrows blog listings
type BlogFilter struct {
	Search        string
	Tag           string
	PublishedOnly bool
	FeaturedOnly  bool
}
