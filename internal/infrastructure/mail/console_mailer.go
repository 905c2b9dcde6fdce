package mail

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
)

// consoleMailer writes emails to a stream instead of delivering them
type consoleMailer struct {
	from   string
	out    io.Writer
	mu     sync.Mutex
	logger logger.Logger
}

// NewConsoleMailer prints outgoing email to stdout
func NewConsoleMailer(settings *config.MailSettings, logger logger.Logger) contact.Mailer {
	return newConsoleMailer(settings.From, os.Stdout, logger)
}

func newConsoleMailer(from string, out io.Writer, logger logger.Logger) *consoleMailer {
	return &consoleMailer{
		from:   from,
		out:    out,
		logger: logger,
	}
}

func (m *consoleMailer) Send(ctx context.Context, email *contact.Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("email has no recipients")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := fmt.Fprintf(m.out, "%s\n%s\n", buildMessage(m.from, email, time.Now()), "----"); err != nil {
		return fmt.Errorf("failed to write email: %w", err)
	}
	m.logger.Info("Printed email to console for ", email.To)
	return nil
}

// NewMailer creates the mailer selected by settings.Backend
func NewMailer(settings *config.MailSettings, logger logger.Logger) (contact.Mailer, error) {
	switch settings.Backend {
	case config.SMTPMailBackend:
		return NewSMTPMailer(settings, logger)
	case config.ConsoleMailBackend, "":
		return NewConsoleMailer(settings, logger), nil
	default:
		return nil, fmt.Errorf("unsupported mail backend: %s", settings.Backend)
	}
}
