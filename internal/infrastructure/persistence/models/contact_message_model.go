package models

import (
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/contact"
)

// ContactMessageModel is the GORM model for contact form submissions
type ContactMessageModel struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Name      string    `gorm:"not null;size:100"`
	Email     string    `gorm:"not null;size:254"`
	Subject   string    `gorm:"not null;size:200"`
	Message   string    `gorm:"not null;type:text"`
	IsRead    bool      `gorm:"not null;default:false;index"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}

// ToDomain converts GORM model to domain entity
func (m *ContactMessageModel) ToDomain() *contact.ContactMessage {
	return &contact.ContactMessage{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IsRead:    m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContactMessageModel) FromDomain(c *contact.ContactMessage) {
	m.ID = c.ID
	m.Name = c.Name
	m.Email = c.Email
	m.Subject = c.Subject
	m.Message = c.Message
	m.IsRead = c.IsRead
	m.CreatedAt = c.CreatedAt
}
