package models

import (
	"github.com/Brownie-08/Portfolio/internal/domain/content"
)

// TestimonialModel is the GORM model for testimonials
type TestimonialModel struct {
	BaseColumns
	Name       string       `gorm:"not null;size:100"`
	Role       string       `gorm:"size:100"`
	Company    string       `gorm:"size:100"`
	Comment    string       `gorm:"not null;type:text"`
	Avatar     MediaColumns `gorm:"embedded;embeddedPrefix:avatar_"`
	Rating     int          `gorm:"not null;default:5"`
	IsFeatured bool         `gorm:"not null;default:false;index"`
}

// TableName specifies the table name for GORM
func (TestimonialModel) TableName() string {
	return "testimonials"
}

// ToDomain converts GORM model to domain entity
func (m *TestimonialModel) ToDomain() *content.Testimonial {
	return &content.Testimonial{
		Base:       m.toDomain(),
		Name:       m.Name,
		Role:       m.Role,
		Company:    m.Company,
		Comment:    m.Comment,
		Avatar:     m.Avatar.toDomain(),
		Rating:     m.Rating,
		IsFeatured: m.IsFeatured,
	}
}

// FromDomain converts domain entity to GORM model
func (m *TestimonialModel) FromDomain(t *content.Testimonial) {
	m.BaseColumns = baseFromDomain(&t.Base)
	m.Name = t.Name
	m.Role = t.Role
	m.Company = t.Company
	m.Comment = t.Comment
	m.Avatar = mediaFromDomain(t.Avatar)
	m.Rating = t.Rating
	m.IsFeatured = t.IsFeatured
}

// FooterLinkModel is the GORM model for footer links
type FooterLinkModel struct {
	BaseColumns
	Title      string `gorm:"not null;size:100"`
	URL        string `gorm:"not null;size:500"`
	Category   string `gorm:"not null;size:20;index"`
	IconClass  string `gorm:"size:100"`
	Order      int    `gorm:"column:sort_order;not null;default:0"`
	IsExternal bool   `gorm:"not null;default:false"`
	IsActive   bool   `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (FooterLinkModel) TableName() string {
	return "footer_links"
}

// ToDomain converts GORM model to domain entity
func (m *FooterLinkModel) ToDomain() *content.FooterLink {
	return &content.FooterLink{
		Base:       m.toDomain(),
		Title:      m.Title,
		URL:        m.URL,
		Category:   m.Category,
		IconClass:  m.IconClass,
		Order:      m.Order,
		IsExternal: m.IsExternal,
		IsActive:   m.IsActive,
	}
}

// FromDomain converts domain entity to GORM model
func (m *FooterLinkModel) FromDomain(f *content.FooterLink) {
	m.BaseColumns = baseFromDomain(&f.Base)
	m.Title = f.Title
	m.URL = f.URL
	m.Category = f.Category
	m.IconClass = f.IconClass
	m.Order = f.Order
	m.IsExternal = f.IsExternal
	m.IsActive = f.IsActive
}

// SEOSettingsModel is the GORM model for per page SEO settings
type SEOSettingsModel struct {
	BaseColumns
	Page          string       `gorm:"not null;uniqueIndex;size:20"`
	Title         string       `gorm:"not null;size:60"`
	Description   string       `gorm:"not null;size:160"`
	Keywords      string       `gorm:"size:255"`
	OGTitle       string       `gorm:"column:og_title;size:60"`
	OGDescription string       `gorm:"column:og_description;size:160"`
	OGImage       MediaColumns `gorm:"embedded;embeddedPrefix:og_image_"`
}

// TableName specifies the table name for GORM
func (SEOSettingsModel) TableName() string {
	return "seo_settings"
}

// ToDomain converts GORM model to domain entity
func (m *SEOSettingsModel) ToDomain() *content.SEOSettings {
	return &content.SEOSettings{
		Base:          m.toDomain(),
		Page:          m.Page,
		Title:         m.Title,
		Description:   m.Description,
		Keywords:      m.Keywords,
		OGTitle:       m.OGTitle,
		OGDescription: m.OGDescription,
		OGImage:       m.OGImage.toDomain(),
	}
}

// FromDomain converts domain entity to GORM model
func (m *SEOSettingsModel) FromDomain(s *content.SEOSettings) {
	m.BaseColumns = baseFromDomain(&s.Base)
	m.Page = s.Page
	m.Title = s.Title
	m.Description = s.Description
	m.Keywords = s.Keywords
	m.OGTitle = s.OGTitle
	m.OGDescription = s.OGDescription
	m.OGImage = mediaFromDomain(s.OGImage)
}
