package models

import (
	"github.com/Brownie-08/Portfolio/internal/domain/content"
)

// TagModel is the GORM model for tags
type TagModel struct {
	BaseColumns
	Name string `gorm:"not null;uniqueIndex;size:50"`
}

// TableName specifies the table name for GORM
func (TagModel) TableName() string {
	return "tags"
}

// ToDomain converts GORM model to domain entity
func (m *TagModel) ToDomain() *content.Tag {
	return &content.Tag{Base: m.toDomain(), Name: m.Name}
}

// FromDomain converts domain entity to GORM model
func (m *TagModel) FromDomain(t *content.Tag) {
	m.BaseColumns = baseFromDomain(&t.Base)
	m.Name = t.Name
}

// ProjectModel is the GORM model for projects
type ProjectModel struct {
	BaseColumns
	Title               string       `gorm:"not null;size:200"`
	Slug                string       `gorm:"not null;uniqueIndex;size:200"`
	Description         string       `gorm:"not null;type:text"`
	DetailedDescription string       `gorm:"type:text"`
	TechStack           string       `gorm:"size:300"`
	Image               MediaColumns `gorm:"embedded;embeddedPrefix:image_"`
	LiveURL             string       `gorm:"size:500"`
	RepoURL             string       `gorm:"size:500"`
	Status              string       `gorm:"not null;size:20;index"`
	IsFeatured          bool         `gorm:"not null;default:false;index"`
	Order               int          `gorm:"column:sort_order;not null;default:0"`
	Tags                []TagModel   `gorm:"many2many:project_tags;joinForeignKey:ProjectID;joinReferences:TagID"`
	Technologies        []SkillModel `gorm:"many2many:project_technologies;joinForeignKey:ProjectID;joinReferences:SkillID"`
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// ToDomain converts GORM model to domain entity
func (m *ProjectModel) ToDomain() *content.Project {
	p := &content.Project{
		Base:                m.toDomain(),
		Title:               m.Title,
		Slug:                m.Slug,
		Description:         m.Description,
		DetailedDescription: m.DetailedDescription,
		TechStack:           m.TechStack,
		Image:               m.Image.toDomain(),
		LiveURL:             m.LiveURL,
		RepoURL:             m.RepoURL,
		Status:              content.ProjectStatus(m.Status),
		IsFeatured:          m.IsFeatured,
		Order:               m.Order,
		Tags:                []content.Tag{},
		Technologies:        []content.Skill{},
	}
	for i := range m.Tags {
		p.Tags = append(p.Tags, *m.Tags[i].ToDomain())
	}
	for i := range m.Technologies {
		p.Technologies = append(p.Technologies, *m.Technologies[i].ToDomain())
	}
	return p
}

// FromDomain converts domain entity to GORM model
func (m *ProjectModel) FromDomain(p *content.Project) {
	m.BaseColumns = baseFromDomain(&p.Base)
	m.Title = p.Title
	m.Slug = p.Slug
	m.Description = p.Description
	m.DetailedDescription = p.DetailedDescription
	m.TechStack = p.TechStack
	m.Image = mediaFromDomain(p.Image)
	m.LiveURL = p.LiveURL
	m.RepoURL = p.RepoURL
	m.Status = string(p.Status)
	m.IsFeatured = p.IsFeatured
	m.Order = p.Order

	m.Tags = make([]TagModel, len(p.Tags))
	for i := range p.Tags {
		m.Tags[i].FromDomain(&p.Tags[i])
	}
	m.Technologies = make([]SkillModel, len(p.Technologies))
	for i := range p.Technologies {
		m.Technologies[i].FromDomain(&p.Technologies[i])
	}
}
