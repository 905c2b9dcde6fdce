package models

import (
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
)

// SkillModel is the GORM model for skills
type SkillModel struct {
	BaseColumns
	Name        string `gorm:"not null;size:100"`
	Category    string `gorm:"not null;size:20;index"`
	Proficiency int    `gorm:"not null;default:3"`
	Description string `gorm:"type:text"`
	IconClass   string `gorm:"size:100"`
	Order       int    `gorm:"column:sort_order;not null;default:0"`
	IsFeatured  bool   `gorm:"not null;default:false;index"`
}

// TableName specifies the table name for GORM
func (SkillModel) TableName() string {
	return "skills"
}

// ToDomain converts GORM model to domain entity
func (m *SkillModel) ToDomain() *content.Skill {
	return &content.Skill{
		Base:        m.toDomain(),
		Name:        m.Name,
		Category:    content.SkillCategory(m.Category),
		Proficiency: m.Proficiency,
		Description: m.Description,
		IconClass:   m.IconClass,
		Order:       m.Order,
		IsFeatured:  m.IsFeatured,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SkillModel) FromDomain(s *content.Skill) {
	m.BaseColumns = baseFromDomain(&s.Base)
	m.Name = s.Name
	m.Category = string(s.Category)
	m.Proficiency = s.Proficiency
	m.Description = s.Description
	m.IconClass = s.IconClass
	m.Order = s.Order
	m.IsFeatured = s.IsFeatured
}

// EducationModel is the GORM model for education entries
type EducationModel struct {
	BaseColumns
	SchoolName   string    `gorm:"not null;size:200"`
	Degree       string    `gorm:"not null;size:200"`
	FieldOfStudy string    `gorm:"size:200"`
	StartDate    time.Time `gorm:"not null"`
	EndDate      *time.Time
	Grade        string `gorm:"size:50"`
	Description  string `gorm:"type:text"`
	Location     string `gorm:"size:100"`
	IsCurrent    bool   `gorm:"not null;default:false"`
	Order        int    `gorm:"column:sort_order;not null;default:0"`
}

// TableName specifies the table name for GORM
func (EducationModel) TableName() string {
	return "education"
}

// ToDomain converts GORM model to domain entity
func (m *EducationModel) ToDomain() *content.Education {
	return &content.Education{
		Base:         m.toDomain(),
		SchoolName:   m.SchoolName,
		Degree:       m.Degree,
		FieldOfStudy: m.FieldOfStudy,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Grade:        m.Grade,
		Description:  m.Description,
		Location:     m.Location,
		IsCurrent:    m.IsCurrent,
		Order:        m.Order,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EducationModel) FromDomain(e *content.Education) {
	m.BaseColumns = baseFromDomain(&e.Base)
	m.SchoolName = e.SchoolName
	m.Degree = e.Degree
	m.FieldOfStudy = e.FieldOfStudy
	m.StartDate = e.StartDate
	m.EndDate = e.EndDate
	m.Grade = e.Grade
	m.Description = e.Description
	m.Location = e.Location
	m.IsCurrent = e.IsCurrent
	m.Order = e.Order
}

// CertificationModel is the GORM model for certifications
type CertificationModel struct {
	BaseColumns
	Name                string    `gorm:"not null;size:200"`
	IssuingOrganization string    `gorm:"not null;size:200"`
	IssueDate           time.Time `gorm:"not null"`
	ExpiryDate          *time.Time
	CredentialID        string       `gorm:"size:100"`
	CredentialURL       string       `gorm:"size:500"`
	Description         string       `gorm:"type:text"`
	CertificateImage    MediaColumns `gorm:"embedded;embeddedPrefix:certificate_image_"`
	IsFeatured          bool         `gorm:"not null;default:false"`
	Order               int          `gorm:"column:sort_order;not null;default:0"`
}

// TableName specifies the table name for GORM
func (CertificationModel) TableName() string {
	return "certifications"
}

// ToDomain converts GORM model to domain entity
func (m *CertificationModel) ToDomain() *content.Certification {
	return &content.Certification{
		Base:                m.toDomain(),
		Name:                m.Name,
		IssuingOrganization: m.IssuingOrganization,
		IssueDate:           m.IssueDate,
		ExpiryDate:          m.ExpiryDate,
		CredentialID:        m.CredentialID,
		CredentialURL:       m.CredentialURL,
		Description:         m.Description,
		CertificateImage:    m.CertificateImage.toDomain(),
		IsFeatured:          m.IsFeatured,
		Order:               m.Order,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CertificationModel) FromDomain(c *content.Certification) {
	m.BaseColumns = baseFromDomain(&c.Base)
	m.Name = c.Name
	m.IssuingOrganization = c.IssuingOrganization
	m.IssueDate = c.IssueDate
	m.ExpiryDate = c.ExpiryDate
	m.CredentialID = c.CredentialID
	m.CredentialURL = c.CredentialURL
	m.Description = c.Description
	m.CertificateImage = mediaFromDomain(c.CertificateImage)
	m.IsFeatured = c.IsFeatured
	m.Order = c.Order
}

// AwardModel is the GORM model for awards
type AwardModel struct {
	BaseColumns
	Title               string       `gorm:"not null;size:200"`
	IssuingOrganization string       `gorm:"not null;size:200"`
	DateReceived        time.Time    `gorm:"not null"`
	Description         string       `gorm:"type:text"`
	Category            string       `gorm:"not null;size:20"`
	AwardImage          MediaColumns `gorm:"embedded;embeddedPrefix:award_image_"`
	AwardURL            string       `gorm:"size:500"`
	IsFeatured          bool         `gorm:"not null;default:false"`
	Order               int          `gorm:"column:sort_order;not null;default:0"`
}

// TableName specifies the table name for GORM
func (AwardModel) TableName() string {
	return "awards"
}

// ToDomain converts GORM model to domain entity
func (m *AwardModel) ToDomain() *content.Award {
	return &content.Award{
		Base:                m.toDomain(),
		Title:               m.Title,
		IssuingOrganization: m.IssuingOrganization,
		DateReceived:        m.DateReceived,
		Description:         m.Description,
		Category:            m.Category,
		AwardImage:          m.AwardImage.toDomain(),
		AwardURL:            m.AwardURL,
		IsFeatured:          m.IsFeatured,
		Order:               m.Order,
	}
}

// FromDomain converts domain entity to GORM model
func (m *AwardModel) FromDomain(a *content.Award) {
	m.BaseColumns = baseFromDomain(&a.Base)
	m.Title = a.Title
	m.IssuingOrganization = a.IssuingOrganization
	m.DateReceived = a.DateReceived
	m.Description = a.Description
	m.Category = a.Category
	m.AwardImage = mediaFromDomain(a.AwardImage)
	m.AwardURL = a.AwardURL
	m.IsFeatured = a.IsFeatured
	m.Order = a.Order
}

// CareerTimelineModel is the GORM model for career entries
type CareerTimelineModel struct {
	BaseColumns
	JobTitle     string    `gorm:"not null;size:200"`
	Company      string    `gorm:"not null;size:200"`
	CompanyURL   string    `gorm:"size:500"`
	Location     string    `gorm:"size:100"`
	JobType      string    `gorm:"not null;size:20"`
	StartDate    time.Time `gorm:"not null"`
	EndDate      *time.Time
	IsCurrent    bool   `gorm:"not null;default:false"`
	Description  string `gorm:"not null;type:text"`
	Technologies string `gorm:"type:text"`
	Achievements string `gorm:"type:text"`
	Order        int    `gorm:"column:sort_order;not null;default:0"`
}

// TableName specifies the table name for GORM
func (CareerTimelineModel) TableName() string {
	return "career_timeline"
}

// ToDomain converts GORM model to domain entity
func (m *CareerTimelineModel) ToDomain() *content.CareerTimeline {
	return &content.CareerTimeline{
		Base:         m.toDomain(),
		JobTitle:     m.JobTitle,
		Company:      m.Company,
		CompanyURL:   m.CompanyURL,
		Location:     m.Location,
		JobType:      m.JobType,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		IsCurrent:    m.IsCurrent,
		Description:  m.Description,
		Technologies: m.Technologies,
		Achievements: m.Achievements,
		Order:        m.Order,
	}
}

// FromDomain converts domain entity to GORM model
func (m *CareerTimelineModel) FromDomain(c *content.CareerTimeline) {
	m.BaseColumns = baseFromDomain(&c.Base)
	m.JobTitle = c.JobTitle
	m.Company = c.Company
	m.CompanyURL = c.CompanyURL
	m.Location = c.Location
	m.JobType = c.JobType
	m.StartDate = c.StartDate
	m.EndDate = c.EndDate
	m.IsCurrent = c.IsCurrent
	m.Description = c.Description
	m.Technologies = c.Technologies
	m.Achievements = c.Achievements
	m.Order = c.Order
}
