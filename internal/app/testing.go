//go:build integration
// +build integration

package app

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/connector"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/cryptography"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/session"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// Test settings shared by the integration suites
const (
	TestContactEmail = "owner@example.com"
	TestFromEmail    = "noreply@example.com"
	TestOwnerName    = "admin"
)

// RecordingMailer keeps every email it is asked to send
type RecordingMailer struct {
	mu     sync.Mutex
	emails []*contact.Email
}

// Send implements contact.Mailer
func (m *RecordingMailer) Send(_ context.Context, email *contact.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails = append(m.emails, email)
	return nil
}

// Sent returns a copy of the recorded emails
func (m *RecordingMailer) Sent() []*contact.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*contact.Email(nil), m.emails...)
}

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	MediaService        media.Service
	ProjectService      content.Service[*content.Project]
	BlogService         content.Service[*content.BlogPost]
	SkillService        content.Service[*content.Skill]
	PersonalInfoService content.PersonalInfoService
	SiteService         content.SiteService
	ContactService      contact.Service
	DashboardService    *DashboardService
	AuthService         accounts.AuthService
	SeedService         *SeedService
	HealthService       *HealthService
	StorageService      *StorageService

	Mailer    *RecordingMailer
	MediaRoot string
	DBContext *persistence.TestContext
}

// SetupTestServices wires every service against a fresh database and a local media root
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)
	mediaRoot := t.TempDir()

	storage := &config.StorageSettings{
		Backend:   config.LocalStorageBackend,
		MediaRoot: mediaRoot,
		MediaURL:  "/media/",
	}
	local, err := connector.NewLocalConnector(storage, logger)
	require.NoError(t, err, "Failed to create local connector")
	resolver, err := connector.NewResolver(storage, local)
	require.NoError(t, err, "Failed to create resolver")

	mediaService, err := NewMediaService(resolver, logger)
	require.NoError(t, err, "Failed to create MediaService")

	projectService, err := NewProjectService(dbContext.ProjectRepo, mediaService, logger)
	require.NoError(t, err, "Failed to create ProjectService")

	blogService, err := NewBlogService(dbContext.BlogPostRepo, mediaService, logger)
	require.NoError(t, err, "Failed to create BlogService")

	skillService, err := NewCrudService[*content.Skill]("skill", dbContext.SkillRepo, mediaService, logger)
	require.NoError(t, err, "Failed to create SkillService")

	personalInfoService, err := NewPersonalInfoService(dbContext.PersonalInfoRepo, mediaService, time.Minute, TestOwnerName, logger)
	require.NoError(t, err, "Failed to create PersonalInfoService")

	siteService, err := NewSiteService(SiteRepositories{
		Projects:       dbContext.ProjectRepo,
		Posts:          dbContext.BlogPostRepo,
		Skills:         dbContext.SkillRepo,
		Testimonials:   dbContext.TestimonialRepo,
		Education:      dbContext.EducationRepo,
		Certifications: dbContext.CertificationRepo,
		Awards:         dbContext.AwardRepo,
		Career:         dbContext.CareerRepo,
		FooterLinks:    dbContext.FooterLinkRepo,
		SEO:            dbContext.SEORepo,
	}, personalInfoService, mediaService, logger)
	require.NoError(t, err, "Failed to create SiteService")

	mailer := &RecordingMailer{}
	mailSettings := &config.MailSettings{
		Backend:       config.ConsoleMailBackend,
		From:          TestFromEmail,
		ContactEmail:  TestContactEmail,
		SubjectPrefix: "[Portfolio Contact] ",
		SendAutoReply: true,
	}
	contactService, err := NewContactService(dbContext.ContactRepo, mailer, mailSettings, logger)
	require.NoError(t, err, "Failed to create ContactService")

	dashboardService, err := NewDashboardService(dbContext.ProjectRepo, dbContext.BlogPostRepo, dbContext.ContactRepo, logger)
	require.NoError(t, err, "Failed to create DashboardService")

	sessions, err := session.NewBoltStore(filepath.Join(t.TempDir(), "sessions.db"), logger)
	require.NoError(t, err, "Failed to create session store")
	t.Cleanup(func() { _ = sessions.Close() })

	hasher, err := cryptography.NewBcryptHasher(4, logger)
	require.NoError(t, err, "Failed to create hasher")
	tokens, err := cryptography.NewTokenIssuer("integration-secret")
	require.NoError(t, err, "Failed to create token issuer")

	authService, err := NewAuthService(dbContext.UserRepo, sessions, hasher, tokens, time.Hour, logger)
	require.NoError(t, err, "Failed to create AuthService")

	seedService, err := NewSeedService(SeedRepositories{
		PersonalInfo: dbContext.PersonalInfoRepo,
		Skills:       dbContext.SkillRepo,
		Education:    dbContext.EducationRepo,
		Career:       dbContext.CareerRepo,
		Tags:         dbContext.TagRepo,
		Projects:     dbContext.ProjectRepo,
		Testimonials: dbContext.TestimonialRepo,
		FooterLinks:  dbContext.FooterLinkRepo,
		Posts:        dbContext.BlogPostRepo,
	}, logger)
	require.NoError(t, err, "Failed to create SeedService")

	healthService, err := NewHealthService(func(ctx context.Context) error {
		return persistence.Ping(ctx, dbContext.DB)
	}, true, logger)
	require.NoError(t, err, "Failed to create HealthService")

	storageService, err := NewStorageService(StorageRepositories{
		PersonalInfo:   dbContext.PersonalInfoRepo,
		Projects:       dbContext.ProjectRepo,
		Posts:          dbContext.BlogPostRepo,
		Testimonials:   dbContext.TestimonialRepo,
		Certifications: dbContext.CertificationRepo,
		Awards:         dbContext.AwardRepo,
		SEO:            dbContext.SEORepo,
	}, mediaService, logger)
	require.NoError(t, err, "Failed to create StorageService")

	return &TestServices{
		MediaService:        mediaService,
		ProjectService:      projectService,
		BlogService:         blogService,
		SkillService:        skillService,
		PersonalInfoService: personalInfoService,
		SiteService:         siteService,
		ContactService:      contactService,
		DashboardService:    dashboardService,
		AuthService:         authService,
		SeedService:         seedService,
		HealthService:       healthService,
		StorageService:      storageService,
		Mailer:              mailer,
		MediaRoot:           mediaRoot,
		DBContext:           dbContext,
	}
}
