package models

import (
	"github.com/Brownie-08/Portfolio/internal/domain/content"
)

// PersonalInfoModel is the GORM model for the site owner's profile
type PersonalInfoModel struct {
	BaseColumns
	PortfolioName       string       `gorm:"size:100"`
	FullName            string       `gorm:"not null;size:100"`
	Email               string       `gorm:"size:254"`
	Phone               string       `gorm:"size:30"`
	Bio                 string       `gorm:"type:text"`
	Location            string       `gorm:"size:100"`
	ProfileImage        MediaColumns `gorm:"embedded;embeddedPrefix:profile_image_"`
	Resume              MediaColumns `gorm:"embedded;embeddedPrefix:resume_"`
	AboutIntro          string       `gorm:"type:text"`
	YearsExperience     int          `gorm:"not null;default:0"`
	CurrentRole         string       `gorm:"column:headline_role;size:100"`
	ProfessionalSummary string       `gorm:"type:text"`
	TechnicalSkills     string       `gorm:"type:text"`
	SoftSkills          string       `gorm:"type:text"`
	Interests           string       `gorm:"type:text"`
	GithubURL           string       `gorm:"size:500"`
	LinkedinURL         string       `gorm:"size:500"`
	TwitterURL          string       `gorm:"size:500"`
	WebsiteURL          string       `gorm:"size:500"`
	InstagramURL        string       `gorm:"size:500"`
	MetaDescription     string       `gorm:"size:160"`
	MetaKeywords        string       `gorm:"size:255"`
	IsActive            bool         `gorm:"not null;default:false;index"`
}

// TableName specifies the table name for GORM
func (PersonalInfoModel) TableName() string {
	return "personal_info"
}

// ToDomain converts GORM model to domain entity
func (m *PersonalInfoModel) ToDomain() *content.PersonalInfo {
	return &content.PersonalInfo{
		Base:                m.toDomain(),
		PortfolioName:       m.PortfolioName,
		FullName:            m.FullName,
		Email:               m.Email,
		Phone:               m.Phone,
		Bio:                 m.Bio,
		Location:            m.Location,
		ProfileImage:        m.ProfileImage.toDomain(),
		Resume:              m.Resume.toDomain(),
		AboutIntro:          m.AboutIntro,
		YearsExperience:     m.YearsExperience,
		CurrentRole:         m.CurrentRole,
		ProfessionalSummary: m.ProfessionalSummary,
		TechnicalSkills:     m.TechnicalSkills,
		SoftSkills:          m.SoftSkills,
		Interests:           m.Interests,
		GithubURL:           m.GithubURL,
		LinkedinURL:         m.LinkedinURL,
		TwitterURL:          m.TwitterURL,
		WebsiteURL:          m.WebsiteURL,
		InstagramURL:        m.InstagramURL,
		MetaDescription:     m.MetaDescription,
		MetaKeywords:        m.MetaKeywords,
		IsActive:            m.IsActive,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PersonalInfoModel) FromDomain(p *content.PersonalInfo) {
	m.BaseColumns = baseFromDomain(&p.Base)
	m.PortfolioName = p.PortfolioName
	m.FullName = p.FullName
	m.Email = p.Email
	m.Phone = p.Phone
	m.Bio = p.Bio
	m.Location = p.Location
	m.ProfileImage = mediaFromDomain(p.ProfileImage)
	m.Resume = mediaFromDomain(p.Resume)
	m.AboutIntro = p.AboutIntro
	m.YearsExperience = p.YearsExperience
	m.CurrentRole = p.CurrentRole
	m.ProfessionalSummary = p.ProfessionalSummary
	m.TechnicalSkills = p.TechnicalSkills
	m.SoftSkills = p.SoftSkills
	m.Interests = p.Interests
	m.GithubURL = p.GithubURL
	m.LinkedinURL = p.LinkedinURL
	m.TwitterURL = p.TwitterURL
	m.WebsiteURL = p.WebsiteURL
	m.InstagramURL = p.InstagramURL
	m.MetaDescription = p.MetaDescription
	m.MetaKeywords = p.MetaKeywords
	m.IsActive = p.IsActive
}
