package commands

import (
	"context"
	"fmt"

	"github.com/Brownie-08/Portfolio/internal/app"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// DatabaseCommandHandler runs schema migrations and seeds content
type DatabaseCommandHandler struct {
	logger logger.Logger
}

// NewDatabaseCommandHandler initializes a DatabaseCommandHandler with a console logger
func NewDatabaseCommandHandler() (*DatabaseCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &DatabaseCommandHandler{logger: loggerInstance}, nil
}

// MigrateCmd creates or updates every table
func (commandHandler *DatabaseCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	db, err := openDatabase(cfg, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeDatabase(db, commandHandler.logger)

	commandHandler.logger.Info("Migrations applied to ", cfg.Database.Type, " database")
}

// SeedCmd loads the bundled content, or a YAML file, without duplicating existing records
func (commandHandler *DatabaseCommandHandler) SeedCmd(cmd *cobra.Command, _ []string) {
	file, err := cmd.Flags().GetString("file")
	if err != nil {
		commandHandler.logger.Error("invalid file flag ", err)
		return
	}

	data, err := app.LoadSeedFile(file)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	db, err := openDatabase(cfg, commandHandler.logger)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeDatabase(db, commandHandler.logger)

	seedService, err := commandHandler.newSeedService(db)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	report, err := seedService.Seed(context.Background(), data)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, count := range report.Counts {
		commandHandler.logger.Info(fmt.Sprintf("%s: %d created, %d already present", count.Entity, count.Created, count.Existing))
	}
	commandHandler.logger.Info("Seeding finished, records created: ", report.Created())
}

func (commandHandler *DatabaseCommandHandler) newSeedService(db *gorm.DB) (*app.SeedService, error) {
	log := commandHandler.logger
	var (
		repos app.SeedRepositories
		err   error
	)
	if repos.PersonalInfo, err = persistence.NewGormPersonalInfoRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create personal info repository: %w", err)
	}
	if repos.Skills, err = persistence.NewGormSkillRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create skill repository: %w", err)
	}
	if repos.Education, err = persistence.NewGormEducationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create education repository: %w", err)
	}
	if repos.Career, err = persistence.NewGormCareerTimelineRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create career repository: %w", err)
	}
	if repos.Tags, err = persistence.NewGormTagRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create tag repository: %w", err)
	}
	if repos.Projects, err = persistence.NewGormProjectRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}
	if repos.Testimonials, err = persistence.NewGormTestimonialRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create testimonial repository: %w", err)
	}
	if repos.FooterLinks, err = persistence.NewGormFooterLinkRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create footer link repository: %w", err)
	}
	if repos.Posts, err = persistence.NewGormBlogPostRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create blog post repository: %w", err)
	}
	return app.NewSeedService(repos, log)
}

// InitDatabaseCommands registers migrate and seed
func InitDatabaseCommands(rootCmd *cobra.Command) error {
	handler, err := NewDatabaseCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create database command handler %w", err)
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Run:   handler.MigrateCmd,
	}
	rootCmd.AddCommand(migrateCmd)

	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Load portfolio content, skipping records that already exist",
		Run:   handler.SeedCmd,
	}
	seedCmd.Flags().StringP("file", "", "", "Path to a YAML seed file (defaults to the bundled data)")
	rootCmd.AddCommand(seedCmd)

	return nil
}
