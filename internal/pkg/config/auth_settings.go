package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// SuperuserSettings describes the administrator ensured at startup
type SuperuserSettings struct {
	Username string `mapstructure:"username"`
	Email    string `mapstructure:"email" validate:"omitempty,email"`
	Password string `mapstructure:"password"`
}

// Enabled reports whether enough data is present to create the account
func (s SuperuserSettings) Enabled() bool {
	return s.Username != "" && s.Password != ""
}

// AuthSettings configures dashboard sessions
type AuthSettings struct {
	SessionStorePath string            `mapstructure:"session_store_path" validate:"required"`
	SessionTTL       time.Duration     `mapstructure:"session_ttl" validate:"required"`
	CookieName       string            `mapstructure:"cookie_name" validate:"required"`
	CookieSecure     bool              `mapstructure:"cookie_secure"`
	Superuser        SuperuserSettings `mapstructure:"superuser"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	if s.SessionTTL < time.Minute {
		return fmt.Errorf("session ttl must be at least one minute")
	}
	if s.Superuser.Username != "" && len(s.Superuser.Password) > 0 && len(s.Superuser.Password) < 8 {
		return fmt.Errorf("superuser password must be at least 8 characters")
	}

	return nil
}

// CacheSettings configures the in-process cache
type CacheSettings struct {
	PersonalInfoTTL time.Duration `mapstructure:"personal_info_ttl"`
}
