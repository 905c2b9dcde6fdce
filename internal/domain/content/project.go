package content

import (
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"
)

// ProjectStatus tracks how far along a project is
type ProjectStatus string

// Project statuses
const (
	ProjectCompleted  ProjectStatus = "completed"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectPlanned    ProjectStatus = "planned"
)

// Tag labels projects
type Tag struct {
	Base
	Name string `json:"name" validate:"required,max=50"`
}

// Validate checks the tag fields
func (t *Tag) Validate() error {
	return validators.Struct(t)
}

// Project is a portfolio piece shown on the projects page
type Project struct {
	Base
	Title               string        `json:"title" validate:"required,max=200"`
	Slug                string        `json:"slug" validate:"required,slug,max=200"`
	Description         string        `json:"description" validate:"required"`
	DetailedDescription string        `json:"detailed_description"`
	TechStack           string        `json:"tech_stack" validate:"max=300"`
	Image               media.Ref     `json:"image"`
	LiveURL             string        `json:"live_url" validate:"omitempty,url"`
	RepoURL             string        `json:"repo_url" validate:"omitempty,url"`
	Status              ProjectStatus `json:"status" validate:"required,oneof=completed in_progress planned"`
	IsFeatured          bool          `json:"is_featured"`
	Order               int           `json:"order" validate:"gte=0"`
	Tags                []Tag         `json:"tags"`
	Technologies        []Skill       `json:"technologies"`
}

// Normalize fills defaults
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	if p.Status == "" {
		p.Status = ProjectCompleted
	}
}

// Validate checks the project fields
func (p *Project) Validate() error {
	return validators.Struct(p)
}

// TechList splits the comma separated tech stack
func (p *Project) TechList() []string {
	return splitList(p.TechStack, ",")
}

// MediaRefs implements media.Holder
func (p *Project) MediaRefs() []*media.Ref {
	return []*media.Ref{&p.Image}
}

// ProjectFilter narrows the public project listing
type ProjectFilter struct {
	Search       string
	Technology   string
	Status       string
	FeaturedOnly bool
}

func splitList(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
