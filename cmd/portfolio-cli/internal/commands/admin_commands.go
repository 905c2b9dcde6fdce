package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Brownie-08/Portfolio/internal/app"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/cryptography"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/session"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AdminCommandHandler manages dashboard accounts
type AdminCommandHandler struct {
	logger logger.Logger
}

// NewAdminCommandHandler initializes an AdminCommandHandler with a console logger
func NewAdminCommandHandler() (*AdminCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &AdminCommandHandler{logger: loggerInstance}, nil
}

// CreateAdminCmd creates a superuser or resets the password of an existing one.
// Flags left empty fall back to the configured superuser.
func (commandHandler *AdminCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		commandHandler.logger.Error("invalid username flag ", err)
		return
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		commandHandler.logger.Error("invalid email flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	if username == "" {
		username = cfg.Auth.Superuser.Username
	}
	if email == "" {
		email = cfg.Auth.Superuser.Email
	}
	if password == "" {
		password = cfg.Auth.Superuser.Password
	}
	if username == "" || password == "" {
		commandHandler.logger.Error("username and password are required")
		return
	}

	db, err := openDatabase(cfg, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeDatabase(db, commandHandler.logger)

	users, err := persistence.NewGormUserRepository(db, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	// No session is issued here, so a scratch store keeps the server's store unlocked.
	scratch, err := os.MkdirTemp("", "portfolio-cli-")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer os.RemoveAll(scratch)
	sessions, err := session.NewBoltStore(filepath.Join(scratch, "sessions.db"), commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer sessions.Close()

	hasher, err := cryptography.NewBcryptHasher(0, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	tokens, err := cryptography.NewTokenIssuer(cfg.SecretKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	authService, err := app.NewAuthService(users, sessions, hasher, tokens, cfg.Auth.SessionTTL, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	user, created, err := authService.EnsureUser(context.Background(), username, email, password, true)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	if created {
		commandHandler.logger.Info("Superuser created: ", user.Username)
		return
	}
	commandHandler.logger.Info("Superuser updated: ", user.Username)
}

// InitAdminCommands registers create-admin
func InitAdminCommands(rootCmd *cobra.Command) error {
	handler, err := NewAdminCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin command handler %w", err)
	}

	var createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create or update the dashboard superuser",
		Run:   handler.CreateAdminCmd,
	}
	createAdminCmd.Flags().StringP("username", "", "", "Superuser name")
	createAdminCmd.Flags().StringP("email", "", "", "Superuser email")
	createAdminCmd.Flags().StringP("password", "", "", "Superuser password (at least 8 characters)")
	rootCmd.AddCommand(createAdminCmd)

	return nil
}
