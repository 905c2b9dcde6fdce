package app

import (
	"context"
	"fmt"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
)

const storageBatchSize = 100

// StorageRepositories groups the repositories of every entity that owns files
type StorageRepositories struct {
	PersonalInfo   content.Repository[*content.PersonalInfo]
	Projects       content.Repository[*content.Project]
	Posts          content.Repository[*content.BlogPost]
	Testimonials   content.Repository[*content.Testimonial]
	Certifications content.Repository[*content.Certification]
	Awards         content.Repository[*content.Award]
	SEO            content.Repository[*content.SEOSettings]
}

// MigrationReport summarises a storage migration
type MigrationReport struct {
	Migrated int      `json:"migrated"`
	Skipped  int      `json:"skipped"`
	Failed   int      `json:"failed"`
	Errors   []string `json:"errors,omitempty"`
}

// StorageService audits stored files and moves them between backends
type StorageService struct {
	repos  StorageRepositories
	media  media.Service
	logger logger.Logger
}

// NewStorageService creates a new StorageService
func NewStorageService(repos StorageRepositories, mediaService media.Service, logger logger.Logger) (*StorageService, error) {
	if mediaService == nil {
		return nil, fmt.Errorf("storage service requires a media service")
	}
	return &StorageService{repos: repos, media: mediaService, logger: logger}, nil
}

// Check verifies every stored file reference
func (s *StorageService) Check(ctx context.Context) ([]media.CheckResult, error) {
	var results []media.CheckResult
	err := s.walk(ctx, func(owner string, ref *media.Ref, _ func() error) {
		results = append(results, s.media.Check(ctx, owner, *ref))
	})
	return results, err
}

// Migrate copies files onto the backend currently configured for their kind and stores the new
// references. Documents are left alone unless includeDocuments is set. Source files are not deleted.
func (s *StorageService) Migrate(ctx context.Context, includeDocuments bool) (*MigrationReport, error) {
	report := &MigrationReport{}
	err := s.walk(ctx, func(owner string, ref *media.Ref, save func() error) {
		if ref.Key == "" || (ref.Kind == media.KindDocument && !includeDocuments) {
			report.Skipped++
			return
		}

		migrated, err := s.media.Migrate(ctx, *ref)
		if err != nil {
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: %v", owner, err))
			return
		}
		if migrated.Backend == ref.Backend && migrated.Key == ref.Key {
			report.Skipped++
			return
		}

		previous := *ref
		*ref = *migrated
		if err := save(); err != nil {
			*ref = previous
			report.Failed++
			report.Errors = append(report.Errors, fmt.Sprintf("%s: failed to save: %v", owner, err))
			return
		}
		report.Migrated++
	})
	if err != nil {
		return report, err
	}

	s.logger.Info(fmt.Sprintf("Storage migration finished: %d migrated, %d skipped, %d failed", report.Migrated, report.Skipped, report.Failed))
	return report, nil
}

// refVisitor receives each non empty reference with a callback that persists its owner
type refVisitor func(owner string, ref *media.Ref, save func() error)

func (s *StorageService) walk(ctx context.Context, visit refVisitor) error {
	steps := []func() error{
		func() error { return walkRefs[*content.PersonalInfo](ctx, "personal_info", s.repos.PersonalInfo, visit) },
		func() error { return walkRefs[*content.Project](ctx, "project", s.repos.Projects, visit) },
		func() error { return walkRefs[*content.BlogPost](ctx, "blog_post", s.repos.Posts, visit) },
		func() error { return walkRefs[*content.Testimonial](ctx, "testimonial", s.repos.Testimonials, visit) },
		func() error { return walkRefs[*content.Certification](ctx, "certification", s.repos.Certifications, visit) },
		func() error { return walkRefs[*content.Award](ctx, "award", s.repos.Awards, visit) },
		func() error { return walkRefs[*content.SEOSettings](ctx, "seo", s.repos.SEO, visit) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}

func walkRefs[T content.Entity](ctx context.Context, entity string, repo content.Repository[T], visit refVisitor) error {
	if repo == nil {
		return nil
	}

	query := &content.ListQuery{SortBy: "created_at", SortOrder: "asc", Limit: storageBatchSize}
	for {
		items, err := repo.List(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to list %s records: %w", entity, err)
		}
		for _, item := range items {
			holder, ok := any(item).(media.Holder)
			if !ok {
				continue
			}
			save := func() error { return repo.UpdateByID(ctx, item) }
			for _, ref := range holder.MediaRefs() {
				if ref.IsZero() {
					continue
				}
				visit(entity+":"+item.Meta().ID, ref, save)
			}
		}
		if len(items) < storageBatchSize {
			return nil
		}
		query.Offset += storageBatchSize
	}
}
