package models

import (
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
)

// UserModel is the GORM model for dashboard accounts
type UserModel struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	Username     string `gorm:"not null;uniqueIndex;size:150"`
	Email        string `gorm:"size:254"`
	PasswordHash string `gorm:"not null;size:255"`
	IsStaff      bool   `gorm:"not null;default:false"`
	IsSuperuser  bool   `gorm:"not null;default:false"`
	LastLogin    *time.Time
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *accounts.User {
	return &accounts.User{
		ID:           m.ID,
		Username:     m.Username,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		IsStaff:      m.IsStaff,
		IsSuperuser:  m.IsSuperuser,
		LastLogin:    m.LastLogin,
		CreatedAt:    m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *accounts.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.IsStaff = u.IsStaff
	m.IsSuperuser = u.IsSuperuser
	m.LastLogin = u.LastLogin
	m.CreatedAt = u.CreatedAt
}

// All returns every model registered for migrations
func All() []interface{} {
	return []interface{}{
		&TagModel{},
		&SkillModel{},
		&ProjectModel{},
		&BlogPostModel{},
		&PersonalInfoModel{},
		&TestimonialModel{},
		&EducationModel{},
		&CertificationModel{},
		&AwardModel{},
		&CareerTimelineModel{},
		&FooterLinkModel{},
		&SEOSettingsModel{},
		&ContactMessageModel{},
		&UserModel{},
	}
}
