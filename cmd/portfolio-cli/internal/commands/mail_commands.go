package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/mail"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// MailCommandHandler checks the outgoing mail configuration
type MailCommandHandler struct {
	logger logger.Logger
}

// NewMailCommandHandler initializes a MailCommandHandler with a console logger
func NewMailCommandHandler() (*MailCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &MailCommandHandler{logger: loggerInstance}, nil
}

// TestEmailCmd sends one message through the configured backend
func (commandHandler *MailCommandHandler) TestEmailCmd(cmd *cobra.Command, _ []string) {
	to, err := cmd.Flags().GetString("to")
	if err != nil {
		commandHandler.logger.Error("invalid to flag ", err)
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	if to == "" {
		to = cfg.Mail.ContactEmail
	}
	if to == "" {
		commandHandler.logger.Error("no recipient: pass --to or configure the contact email")
		return
	}

	mailer, err := mail.NewMailer(&cfg.Mail, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	dispatcher := mail.NewDispatcher(mailer, cfg.Mail.Timeout, commandHandler.logger)

	email := &contact.Email{
		To:      []string{to},
		Subject: cfg.Mail.SubjectPrefix + "Test email",
		Body: fmt.Sprintf("This is a test email sent at %s using the %s backend.\n",
			time.Now().UTC().Format(time.RFC1123), cfg.Mail.Backend),
	}
	if err := dispatcher.Send(context.Background(), email); err != nil {
		commandHandler.logger.Error("failed to send test email: ", err)
		return
	}
	commandHandler.logger.Info("Test email sent to ", to)
}

// InitMailCommands registers test-email
func InitMailCommands(rootCmd *cobra.Command) error {
	handler, err := NewMailCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create mail command handler %w", err)
	}

	var testEmailCmd = &cobra.Command{
		Use:   "test-email",
		Short: "Send a test email through the configured mail backend",
		Run:   handler.TestEmailCmd,
	}
	testEmailCmd.Flags().StringP("to", "", "", "Recipient (defaults to the contact email)")
	rootCmd.AddCommand(testEmailCmd)

	return nil
}
