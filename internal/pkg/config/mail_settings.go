package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// MailSettings configures outgoing email for contact notifications
type MailSettings struct {
	Backend       string        `mapstructure:"backend" validate:"required,oneof=smtp console"`
	Host          string        `mapstructure:"host"`
	Port          int           `mapstructure:"port"`
	Username      string        `mapstructure:"username"`
	Password      string        `mapstructure:"password"`
	UseTLS        bool          `mapstructure:"use_tls"`
	From          string        `mapstructure:"from" validate:"required,email"`
	ContactEmail  string        `mapstructure:"contact_email" validate:"omitempty,email"`
	SubjectPrefix string        `mapstructure:"subject_prefix"`
	SendAutoReply bool          `mapstructure:"send_auto_reply"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// Validate checks that all fields in MailSettings are valid
func (s *MailSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MailSettings: %w", err)
	}

	if s.Backend == SMTPMailBackend {
		if s.Host == "" {
			return fmt.Errorf("smtp host is required for smtp mail backend")
		}
		if s.Port < 1 || s.Port > 65535 {
			return fmt.Errorf("smtp port must be between 1 and 65535")
		}
	}

	return nil
}

// Recipient returns the address contact notifications are delivered to
func (s *MailSettings) Recipient() string {
	if s.ContactEmail != "" {
		return s.ContactEmail
	}
	return s.From
}
