// cmd/portfolio-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Brownie-08/Portfolio/internal/api/rest/v1"
	"github.com/Brownie-08/Portfolio/internal/app"
	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/connector"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/cryptography"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/mail"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/session"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	if !restConfig.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.close(log)

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db       *gorm.DB
	sessions session.BoltStore
	services *v1.Services
}

func (deps *appDependencies) close(log logger.Logger) {
	if err := deps.sessions.Close(); err != nil {
		log.Warn("failed to close session store: ", err)
	}
	if err := persistence.CloseDB(deps.db); err != nil {
		log.Warn("failed to close database: ", err)
	}
}

type repositories struct {
	users          accounts.UserRepository
	messages       contact.Repository
	personalInfo   content.PersonalInfoRepository
	projects       content.ProjectRepository
	posts          content.BlogPostRepository
	seo            content.SEORepository
	tags           content.Repository[*content.Tag]
	skills         content.Repository[*content.Skill]
	education      content.Repository[*content.Education]
	certifications content.Repository[*content.Certification]
	awards         content.Repository[*content.Award]
	career         content.Repository[*content.CareerTimeline]
	testimonials   content.Repository[*content.Testimonial]
	footerLinks    content.Repository[*content.FooterLink]
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	// Initialize storage backends
	ctx := context.Background()
	resolver, err := connector.NewResolverFromSettings(ctx, &cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info(fmt.Sprintf("Storage initialized: media on %s, documents on %s", cfg.Storage.Backend, cfg.Storage.DocumentBackend))

	sessions, err := session.NewBoltStore(cfg.Auth.SessionStorePath, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	services, err := initializeApplicationServices(ctx, cfg, db, repos, resolver, sessions, log)
	if err != nil {
		_ = sessions.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:       db,
		sessions: sessions,
		services: services,
	}, nil
}

func initializeRepositories(db *gorm.DB, log logger.Logger) (*repositories, error) {
	var (
		repos repositories
		err   error
	)
	if repos.users, err = persistence.NewGormUserRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create user repository: %w", err)
	}
	if repos.messages, err = persistence.NewGormContactRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create contact repository: %w", err)
	}
	if repos.personalInfo, err = persistence.NewGormPersonalInfoRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create personal info repository: %w", err)
	}
	if repos.projects, err = persistence.NewGormProjectRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create project repository: %w", err)
	}
	if repos.posts, err = persistence.NewGormBlogPostRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create blog post repository: %w", err)
	}
	if repos.seo, err = persistence.NewGormSEORepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create seo repository: %w", err)
	}
	if repos.tags, err = persistence.NewGormTagRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create tag repository: %w", err)
	}
	if repos.skills, err = persistence.NewGormSkillRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create skill repository: %w", err)
	}
	if repos.education, err = persistence.NewGormEducationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create education repository: %w", err)
	}
	if repos.certifications, err = persistence.NewGormCertificationRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create certification repository: %w", err)
	}
	if repos.awards, err = persistence.NewGormAwardRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create award repository: %w", err)
	}
	if repos.career, err = persistence.NewGormCareerTimelineRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create career repository: %w", err)
	}
	if repos.testimonials, err = persistence.NewGormTestimonialRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create testimonial repository: %w", err)
	}
	if repos.footerLinks, err = persistence.NewGormFooterLinkRepository(db, log); err != nil {
		return nil, fmt.Errorf("failed to create footer link repository: %w", err)
	}
	return &repos, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	ctx context.Context,
	cfg *config.RestConfig,
	db *gorm.DB,
	repos *repositories,
	selector media.Selector,
	sessions accounts.SessionStore,
	log logger.Logger,
) (*v1.Services, error) {
	mediaService, err := app.NewMediaService(selector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create media service: %w", err)
	}

	mailer, err := mail.NewMailer(&cfg.Mail, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer: %w", err)
	}
	contactService, err := app.NewContactService(repos.messages, mail.NewDispatcher(mailer, cfg.Mail.Timeout, log), &cfg.Mail, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact service: %w", err)
	}

	hasher, err := cryptography.NewBcryptHasher(0, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create password hasher: %w", err)
	}
	tokens, err := cryptography.NewTokenIssuer(cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}
	authService, err := app.NewAuthService(repos.users, sessions, hasher, tokens, cfg.Auth.SessionTTL, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}

	superuser := cfg.Auth.Superuser
	if superuser.Enabled() {
		if _, created, err := authService.EnsureUser(ctx, superuser.Username, superuser.Email, superuser.Password, true); err != nil {
			return nil, fmt.Errorf("failed to ensure superuser: %w", err)
		} else if created {
			log.Info("Superuser created: ", superuser.Username)
		}
	}

	personalInfoService, err := app.NewPersonalInfoService(repos.personalInfo, mediaService, cfg.Cache.PersonalInfoTTL, superuser.Username, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create personal info service: %w", err)
	}

	services := &v1.Services{
		Contact:      contactService,
		PersonalInfo: personalInfoService,
		Media:        mediaService,
		Auth:         authService,
	}

	if services.Projects, err = app.NewProjectService(repos.projects, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create project service: %w", err)
	}
	if services.Posts, err = app.NewBlogService(repos.posts, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create blog service: %w", err)
	}
	if services.Education, err = app.NewCrudService[*content.Education]("education", repos.education, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create education service: %w", err)
	}
	if services.Certifications, err = app.NewCrudService[*content.Certification]("certification", repos.certifications, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create certification service: %w", err)
	}
	if services.Awards, err = app.NewCrudService[*content.Award]("award", repos.awards, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create award service: %w", err)
	}
	if services.SEO, err = app.NewCrudService[*content.SEOSettings]("seo settings", repos.seo, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create seo service: %w", err)
	}
	if services.Testimonials, err = app.NewCrudService[*content.Testimonial]("testimonial", repos.testimonials, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create testimonial service: %w", err)
	}
	if services.Skills, err = app.NewCrudService[*content.Skill]("skill", repos.skills, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create skill service: %w", err)
	}
	if services.Career, err = app.NewCrudService[*content.CareerTimeline]("career entry", repos.career, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create career service: %w", err)
	}
	if services.FooterLinks, err = app.NewCrudService[*content.FooterLink]("footer link", repos.footerLinks, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create footer link service: %w", err)
	}
	if services.Tags, err = app.NewCrudService[*content.Tag]("tag", repos.tags, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create tag service: %w", err)
	}

	if services.Site, err = app.NewSiteService(app.SiteRepositories{
		Projects:       repos.projects,
		Posts:          repos.posts,
		Skills:         repos.skills,
		Testimonials:   repos.testimonials,
		Education:      repos.education,
		Certifications: repos.certifications,
		Awards:         repos.awards,
		Career:         repos.career,
		FooterLinks:    repos.footerLinks,
		SEO:            repos.seo,
	}, personalInfoService, mediaService, log); err != nil {
		return nil, fmt.Errorf("failed to create site service: %w", err)
	}

	dashboardService, err := app.NewDashboardService(repos.projects, repos.posts, repos.messages, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}
	services.Dashboard = dashboardService

	healthService, err := app.NewHealthService(func(ctx context.Context) error {
		return persistence.Ping(ctx, db)
	}, cfg.Debug, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create health service: %w", err)
	}
	services.Health = healthService

	log.Info("Application services initialized successfully")
	return services, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()
	r.RedirectTrailingSlash = true

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(v1.AllowedHosts(cfg.AllowedHosts))

	// Setup routes
	v1.SetupRoutes(r, deps.services, &cfg.Auth, cfg.Storage.StaticRoot, log)

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal, initiating graceful shutdown: ", sig)
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
