package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Brownie-08/Portfolio/internal/app"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/connector"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// StorageCommandHandler inspects and migrates stored media
type StorageCommandHandler struct {
	logger logger.Logger
	out    io.Writer
}

// NewStorageCommandHandler initializes a StorageCommandHandler writing reports to stdout
func NewStorageCommandHandler() (*StorageCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &StorageCommandHandler{logger: loggerInstance, out: os.Stdout}, nil
}

// CheckCmd prints every stored reference with its resolved URL and whether the file exists
func (commandHandler *StorageCommandHandler) CheckCmd(cmd *cobra.Command, _ []string) {
	ctx := context.Background()
	storageService, closeFn, err := commandHandler.open(ctx, cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeFn()

	results, err := storageService.Check(ctx)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	missing := writeCheckResults(commandHandler.out, results)
	commandHandler.logger.Info(fmt.Sprintf("Checked %d files, %d missing", len(results), missing))
}

// MigrateCmd copies files to the configured backends and updates their references
func (commandHandler *StorageCommandHandler) MigrateCmd(cmd *cobra.Command, _ []string) {
	includeDocuments, err := cmd.Flags().GetBool("include-documents")
	if err != nil {
		commandHandler.logger.Error("invalid include-documents flag ", err)
		return
	}

	ctx := context.Background()
	storageService, closeFn, err := commandHandler.open(ctx, cmd)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	defer closeFn()

	report, err := storageService.Migrate(ctx, includeDocuments)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	for _, e := range report.Errors {
		commandHandler.logger.Warn(e)
	}
	if err := printJSON(commandHandler.out, report); err != nil {
		commandHandler.logger.Error(err)
	}
}

func (commandHandler *StorageCommandHandler) open(ctx context.Context, cmd *cobra.Command) (*app.StorageService, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	db, err := openDatabase(cfg, commandHandler.logger)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { closeDatabase(db, commandHandler.logger) }

	storageService, err := newStorageService(ctx, db, &cfg.Storage, commandHandler.logger)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return storageService, closeFn, nil
}

func newStorageService(ctx context.Context, db *gorm.DB, settings *config.StorageSettings, log logger.Logger) (*app.StorageService, error) {
	resolver, err := connector.NewResolverFromSettings(ctx, settings, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	mediaService, err := app.NewMediaService(resolver, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create media service: %w", err)
	}

	var repos app.StorageRepositories
	if repos.PersonalInfo, err = persistence.NewGormPersonalInfoRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create personal info repository: %w", err)
	}
	if repos.Projects, err = persistence.NewGormProjectRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}
	if repos.Posts, err = persistence.NewGormBlogPostRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create blog post repository: %w", err)
	}
	if repos.Testimonials, err = persistence.NewGormTestimonialRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create testimonial repository: %w", err)
	}
	if repos.Certifications, err = persistence.NewGormCertificationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create certification repository: %w", err)
	}
	if repos.Awards, err = persistence.NewGormAwardRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create award repository: %w", err)
	}
	if repos.SEO, err = persistence.NewGormSEORepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create seo repository: %w", err)
	}
	return app.NewStorageService(repos, mediaService, log)
}

// writeCheckResults prints one line per reference and returns how many files are missing
func writeCheckResults(w io.Writer, results []media.CheckResult) int {
	missing := 0
	for _, result := range results {
		state := "ok"
		if !result.Exists {
			missing++
			state = "MISSING"
			if result.Error != "" {
				state += " (" + result.Error + ")"
			}
		}
		fmt.Fprintf(w, "%-8s %-40s %s:%s %s\n", state, result.Owner, result.Ref.Backend, result.Ref.Key, result.URL)
	}
	return missing
}

// InitStorageCommands registers the storage command group
func InitStorageCommands(rootCmd *cobra.Command) error {
	handler, err := NewStorageCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create storage command handler %w", err)
	}

	var storageCmd = &cobra.Command{
		Use:   "storage",
		Short: "Inspect and migrate uploaded media",
	}

	var checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Verify that every stored file exists and show its URL",
		Run:   handler.CheckCmd,
	}
	storageCmd.AddCommand(checkCmd)

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Copy files onto the configured storage backends",
		Run:   handler.MigrateCmd,
	}
	migrateCmd.Flags().BoolP("include-documents", "", false, "Also migrate documents such as the resume")
	storageCmd.AddCommand(migrateCmd)

	rootCmd.AddCommand(storageCmd)
	return nil
}
