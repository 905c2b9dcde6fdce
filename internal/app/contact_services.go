package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"
)

const (
	autoReplySubject = "Thank you for contacting me!"
	recentWindow     = 7 * 24 * time.Hour
	separator        = "----------------------------------------"
)

// dispatcher sends several emails at once, returning one error slot per email
type dispatcher interface {
	Dispatch(ctx context.Context, emails ...*contact.Email) []error
}

// contactService implements the contact.Service interface
type contactService struct {
	repo     contact.Repository
	mailer   contact.Mailer
	settings config.MailSettings
	logger   logger.Logger
}

// NewContactService creates a new contactService. mailer may be nil, which disables notifications.
func NewContactService(repo contact.Repository, mailer contact.Mailer, settings *config.MailSettings, logger logger.Logger) (contact.Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("contact repository cannot be nil")
	}
	return &contactService{
		repo:     repo,
		mailer:   mailer,
		settings: *settings,
		logger:   logger,
	}, nil
}

// Submit stores the cleaned message. Notification failures are logged and never returned.
func (s *contactService) Submit(ctx context.Context, form *contact.Form) (*contact.ContactMessage, error) {
	message, err := form.Clean()
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	s.notify(ctx, message)
	return message, nil
}

func (s *contactService) notify(ctx context.Context, message *contact.ContactMessage) {
	if s.mailer == nil {
		return
	}

	emails := []*contact.Email{s.adminNotification(message)}
	if s.settings.SendAutoReply {
		emails = append(emails, autoReply(message))
	}

	if d, ok := s.mailer.(dispatcher); ok {
		d.Dispatch(ctx, emails...)
		return
	}
	for _, email := range emails {
		s.sendQuietly(ctx, email)
	}
}

func (s *contactService) sendQuietly(ctx context.Context, email *contact.Email) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("mailer panicked: ", r)
		}
	}()
	if err := s.mailer.Send(ctx, email); err != nil {
		s.logger.Error(fmt.Sprintf("failed to send email %q: ", email.Subject), err)
	}
}

func (s *contactService) adminNotification(m *contact.ContactMessage) *contact.Email {
	var b strings.Builder
	b.WriteString("New Contact Form Submission\n============================\n\n")
	fmt.Fprintf(&b, "From: %s\nEmail: %s\nSubject: %s\nSubmitted: %s\n\n", m.Name, m.Email, m.Subject, m.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Message:\n%s\n%s\n%s\n\n", separator, m.Message, separator)
	fmt.Fprintf(&b, "You can reply directly to %s\n\n---\nThis message was sent from your portfolio website contact form.\n", m.Email)

	return &contact.Email{
		To:      []string{s.settings.Recipient()},
		ReplyTo: m.Email,
		Subject: s.settings.SubjectPrefix + m.Subject,
		Body:    b.String(),
	}
}

func autoReply(m *contact.ContactMessage) *contact.Email {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\nThank you for reaching out through my portfolio website!\n\n", m.Name)
	fmt.Fprintf(&b, "I have received your message about %q and will get back to you as soon as possible, typically within 24-48 hours.\n\n", m.Subject)
	fmt.Fprintf(&b, "Here's a copy of your message for your records:\n%s\n%s\n%s\n\n", separator, m.Message, separator)
	b.WriteString("Best regards,\nYour Portfolio Owner\n\n---\nThis is an automated response. Please do not reply to this email.\n")

	return &contact.Email{
		To:      []string{m.Email},
		Subject: autoReplySubject,
		Body:    b.String(),
	}
}

func (s *contactService) List(ctx context.Context, query *contact.MessageQuery) ([]*contact.ContactMessage, int64, error) {
	if query == nil {
		query = &contact.MessageQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, 0, err
	}
	messages, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	return messages, total, nil
}

// Get returns the message and marks it read
func (s *contactService) Get(ctx context.Context, id string) (*contact.ContactMessage, error) {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !message.IsRead {
		if _, err := s.repo.SetRead(ctx, []string{id}, true); err != nil {
			return nil, err
		}
		message.IsRead = true
	}
	return message, nil
}

func (s *contactService) Bulk(ctx context.Context, action contact.BulkAction, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, validators.Errorf("no messages selected")
	}
	switch action {
	case contact.ActionMarkRead:
		return s.repo.SetRead(ctx, ids, true)
	case contact.ActionMarkUnread:
		return s.repo.SetRead(ctx, ids, false)
	case contact.ActionDelete:
		return s.repo.Delete(ctx, ids)
	default:
		return 0, validators.Errorf("unknown bulk action %q", action)
	}
}

func (s *contactService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := s.repo.Delete(ctx, []string{id}); err != nil {
		return err
	}
	return nil
}

func (s *contactService) Stats(ctx context.Context) (*contact.Stats, error) {
	total, err := s.repo.Count(ctx, &contact.MessageQuery{})
	if err != nil {
		return nil, err
	}
	unread, err := s.repo.Count(ctx, &contact.MessageQuery{Status: contact.StatusUnread})
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.CountSince(ctx, time.Now().UTC().Add(-recentWindow))
	if err != nil {
		return nil, err
	}
	return &contact.Stats{Total: total, Unread: unread, Recent: recent}, nil
}
