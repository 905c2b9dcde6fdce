package content

import (
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"
)

// Testimonial is a quote from a client or colleague
type Testimonial struct {
	Base
	Name       string    `json:"name" validate:"required,max=100"`
	Role       string    `json:"role" validate:"max=100"`
	Company    string    `json:"company" validate:"max=100"`
	Comment    string    `json:"comment" validate:"required"`
	Avatar     media.Ref `json:"avatar"`
	Rating     int       `json:"rating" validate:"gte=1,lte=5"`
	IsFeatured bool      `json:"is_featured"`
}

// Normalize defaults the rating to five stars
func (t *Testimonial) Normalize() {
	if t.Rating == 0 {
		t.Rating = 5
	}
}

// Validate checks the testimonial fields
func (t *Testimonial) Validate() error {
	return validators.Struct(t)
}

// MediaRefs implements media.Holder
func (t *Testimonial) MediaRefs() []*media.Ref {
	return []*media.Ref{&t.Avatar}
}

// Footer link categories
const (
	FooterQuick     = "quick"
	FooterSocial    = "social"
	FooterResources = "resources"
	FooterLegal     = "legal"
)

// FooterLink is a link rendered in the site footer
type FooterLink struct {
	Base
	Title      string `json:"title" validate:"required,max=100"`
	URL        string `json:"url" validate:"required,max=500"`
	Category   string `json:"category" validate:"required,oneof=quick social resources legal"`
	IconClass  string `json:"icon_class" validate:"max=100"`
	Order      int    `json:"order" validate:"gte=0"`
	IsExternal bool   `json:"is_external"`
	IsActive   bool   `json:"is_active"`
}

// Normalize defaults the category
func (f *FooterLink) Normalize() {
	if f.Category == "" {
		f.Category = FooterQuick
	}
}

// Validate checks the link fields
func (f *FooterLink) Validate() error {
	return validators.Struct(f)
}

// GroupFooterLinks groups links by category keeping their order
func GroupFooterLinks(links []*FooterLink) map[string][]*FooterLink {
	groups := map[string][]*FooterLink{}
	for _, l := range links {
		groups[l.Category] = append(groups[l.Category], l)
	}
	return groups
}

// SEO pages
const (
	PageHome     = "home"
	PageAbout    = "about"
	PageProjects = "projects"
	PageBlog     = "blog"
	PageContact  = "contact"
)

// SEOSettings holds meta tags for one public page
type SEOSettings struct {
	Base
	Page          string    `json:"page" validate:"required,oneof=home about projects blog contact"`
	Title         string    `json:"title" validate:"required,max=60"`
	Description   string    `json:"description" validate:"required,max=160"`
	Keywords      string    `json:"keywords" validate:"max=255"`
	OGTitle       string    `json:"og_title" validate:"max=60"`
	OGDescription string    `json:"og_description" validate:"max=160"`
	OGImage       media.Ref `json:"og_image"`
}

// Validate checks the SEO fields
func (s *SEOSettings) Validate() error {
	return validators.Struct(s)
}

// MediaRefs implements media.Holder
func (s *SEOSettings) MediaRefs() []*media.Ref {
	return []*media.Ref{&s.OGImage}
}
