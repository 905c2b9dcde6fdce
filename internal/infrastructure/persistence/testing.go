//go:build integration
// +build integration

package persistence

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB                *gorm.DB
	ProjectRepo       content.ProjectRepository
	BlogPostRepo      content.BlogPostRepository
	PersonalInfoRepo  content.PersonalInfoRepository
	SEORepo           content.SEORepository
	TagRepo           content.Repository[*content.Tag]
	SkillRepo         content.Repository[*content.Skill]
	EducationRepo     content.Repository[*content.Education]
	CertificationRepo content.Repository[*content.Certification]
	AwardRepo         content.Repository[*content.Award]
	CareerRepo        content.Repository[*content.CareerTimeline]
	TestimonialRepo   content.Repository[*content.Testimonial]
	FooterLinkRepo    content.Repository[*content.FooterLink]
	ContactRepo       contact.Repository
	UserRepo          accounts.UserRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, AutoMigrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	tc := &TestContext{DB: db}

	tc.ProjectRepo, err = NewGormProjectRepository(db, logger)
	require.NoError(t, err)
	tc.BlogPostRepo, err = NewGormBlogPostRepository(db, logger)
	require.NoError(t, err)
	tc.PersonalInfoRepo, err = NewGormPersonalInfoRepository(db, logger)
	require.NoError(t, err)
	tc.SEORepo, err = NewGormSEORepository(db, logger)
	require.NoError(t, err)
	tc.TagRepo, err = NewGormTagRepository(db, logger)
	require.NoError(t, err)
	tc.SkillRepo, err = NewGormSkillRepository(db, logger)
	require.NoError(t, err)
	tc.EducationRepo, err = NewGormEducationRepository(db, logger)
	require.NoError(t, err)
	tc.CertificationRepo, err = NewGormCertificationRepository(db, logger)
	require.NoError(t, err)
	tc.AwardRepo, err = NewGormAwardRepository(db, logger)
	require.NoError(t, err)
	tc.CareerRepo, err = NewGormCareerTimelineRepository(db, logger)
	require.NoError(t, err)
	tc.TestimonialRepo, err = NewGormTestimonialRepository(db, logger)
	require.NoError(t, err)
	tc.FooterLinkRepo, err = NewGormFooterLinkRepository(db, logger)
	require.NoError(t, err)
	tc.ContactRepo, err = NewGormContactRepository(db, logger)
	require.NoError(t, err)
	tc.UserRepo, err = NewGormUserRepository(db, logger)
	require.NoError(t, err)

	return tc
}

// CreateTestProject returns a valid project with the given title
func CreateTestProject(t *testing.T, title string) *content.Project {
	t.Helper()

	return &content.Project{
		Title:       title,
		Slug:        strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		Description: "Description of " + title,
		Status:      content.ProjectCompleted,
	}
}

// CreateTestPost returns a valid blog post
func CreateTestPost(t *testing.T, title, tags string, published bool) *content.BlogPost {
	t.Helper()

	post := &content.BlogPost{
		Title:       title,
		Slug:        strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		Body:        "Body of " + title,
		Tags:        tags,
		IsPublished: published,
	}
	if published {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}
	return post
}
