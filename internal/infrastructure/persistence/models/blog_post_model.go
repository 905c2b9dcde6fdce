package models

import (
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
)

// BlogPostModel is the GORM model for blog posts
type BlogPostModel struct {
	BaseColumns
	Title       string       `gorm:"not null;size:200"`
	Slug        string       `gorm:"not null;uniqueIndex;size:200"`
	Excerpt     string       `gorm:"size:300"`
	Body        string       `gorm:"not null;type:text"`
	Image       MediaColumns `gorm:"embedded;embeddedPrefix:image_"`
	Tags        string       `gorm:"size:200"`
	IsFeatured  bool         `gorm:"not null;default:false;index"`
	IsPublished bool         `gorm:"not null;default:false;index"`
	PublishedAt *time.Time
}

// TableName specifies the table name for GORM
func (BlogPostModel) TableName() string {
	return "blog_posts"
}

// ToDomain converts GORM model to domain entity
func (m *BlogPostModel) ToDomain() *content.BlogPost {
	return &content.BlogPost{
		Base:        m.toDomain(),
		Title:       m.Title,
		Slug:        m.Slug,
		Excerpt:     m.Excerpt,
		Body:        m.Body,
		Image:       m.Image.toDomain(),
		Tags:        m.Tags,
		IsFeatured:  m.IsFeatured,
		IsPublished: m.IsPublished,
		PublishedAt: m.PublishedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BlogPostModel) FromDomain(b *content.BlogPost) {
	m.BaseColumns = baseFromDomain(&b.Base)
	m.Title = b.Title
	m.Slug = b.Slug
	m.Excerpt = b.Excerpt
	m.Body = b.Body
	m.Image = mediaFromDomain(b.Image)
	m.Tags = b.Tags
	m.IsFeatured = b.IsFeatured
	m.IsPublished = b.IsPublished
	m.PublishedAt = b.PublishedAt
}
