// Package contact covers messages sent through the public contact form.
package contact

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/Brownie-08/Portfolio/internal/pkg/validators"
)

// ContactMessage is a stored contact form submission
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Subject   string    `json:"subject" validate:"required,max=200"`
	Message   string    `json:"message" validate:"required"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the stored fields
func (m *ContactMessage) Validate() error {
	return validators.Struct(m)
}

// Form limits
const (
	MinNameLength    = 2
	MinSubjectLength = 5
	MinMessageLength = 10
	MaxMessageLength = 2000
)

var spamKeywords = []string{"viagra", "casino", "lottery", "winner", "million dollars"}

// Form is the raw contact form input. Honeypot is a hidden field that humans leave empty.
type Form struct {
	Name     string `json:"name" form:"name"`
	Email    string `json:"email" form:"email"`
	Subject  string `json:"subject" form:"subject"`
	Message  string `json:"message" form:"message"`
	Honeypot string `json:"honeypot" form:"honeypot"`
}

// FormError carries one message per invalid field
type FormError struct {
	Fields map[string]string
}

func (e *FormError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}
	return "invalid contact form: " + strings.Join(parts, "; ")
}

// Clean validates the form and returns a normalised message ready to be stored.
// Names are title-cased and emails lowercased.
func (f *Form) Clean() (*ContactMessage, error) {
	errs := map[string]string{}

	if strings.TrimSpace(f.Honeypot) != "" {
		errs["honeypot"] = "Spam detected."
	}

	name := strings.Join(strings.Fields(f.Name), " ")
	switch {
	case len([]rune(name)) < MinNameLength:
		errs["name"] = "Name must be at least 2 characters long."
	case !lettersAndSpaces(name):
		errs["name"] = "Name should only contain letters and spaces."
	}

	email := strings.ToLower(strings.TrimSpace(f.Email))
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		errs["email"] = "Enter a valid email address."
	}

	subject := strings.TrimSpace(f.Subject)
	if len([]rune(subject)) < MinSubjectLength {
		errs["subject"] = "Subject must be at least 5 characters long."
	}

	message := strings.TrimSpace(f.Message)
	switch n := len([]rune(message)); {
	case n < MinMessageLength:
		errs["message"] = "Message must be at least 10 characters long."
	case n > MaxMessageLength:
		errs["message"] = "Message is too long. Please keep it under 2000 characters."
	case containsSpam(message):
		errs["message"] = "Message contains inappropriate content."
	}

	if len(errs) > 0 {
		return nil, &FormError{Fields: errs}
	}

	return &ContactMessage{
		Name:    titleCase(name),
		Email:   email,
		Subject: subject,
		Message: message,
	}, nil
}

func lettersAndSpaces(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

func containsSpam(s string) bool {
	lower := strings.ToLower(s)
	for _, kw := range spamKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		runes := []rune(strings.ToLower(w))
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// Message statuses used by the dashboard filter
const (
	StatusRead   = "read"
	StatusUnread = "unread"
)

// MessageQuery filters the dashboard inbox
type MessageQuery struct {
	Status string `validate:"omitempty,oneof=read unread"`
	Search string `validate:"max=200"`
	Limit  int    `validate:"gte=0,lte=500"`
	Offset int    `validate:"gte=0"`
}

// Validate checks the query
func (q *MessageQuery) Validate() error {
	return validators.Struct(q)
}

// BulkAction is an inbox operation applied to several messages at once
type BulkAction string

// Bulk actions
const (
	ActionMarkRead   BulkAction = "mark_read"
	ActionMarkUnread BulkAction = "mark_unread"
	ActionDelete     BulkAction = "delete"
)

// ParseBulkAction validates an action name
func ParseBulkAction(s string) (BulkAction, error) {
	switch a := BulkAction(s); a {
	case ActionMarkRead, ActionMarkUnread, ActionDelete:
		return a, nil
	default:
		return "", validators.Errorf("unknown bulk action %q", s)
	}
}

// Stats summarises the inbox
type Stats struct {
	Total  int64 `json:"total"`
	Unread int64 `json:"unread"`
	Recent int64 `json:"recent"`
}

// Email is an outgoing message
type Email struct {
	To      []string
	ReplyTo string
	Subject string
	Body    string
}
