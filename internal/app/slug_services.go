package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"

	"github.com/gosimple/slug"
)

const (
	maxSlugLength   = 200
	maxSlugAttempts = 1000
)

// slugExistsFunc reports whether slug is taken by a record other than excludeID
type slugExistsFunc func(ctx context.Context, slug, excludeID string) (bool, error)

// assignSlug generates a unique slug from title when current is empty.
// An explicit slug is kept as given and must not collide with another record.
func assignSlug(ctx context.Context, current, title, excludeID string, exists slugExistsFunc) (string, error) {
	if current != "" {
		taken, err := exists(ctx, current, excludeID)
		if err != nil {
			return "", err
		}
		if taken {
			return "", fmt.Errorf("slug %q is already in use: %w", current, content.ErrConflict)
		}
		return current, nil
	}

	base := slug.Make(title)
	if base == "" {
		return "", validators.Errorf("title required")
	}
	if len(base) > maxSlugLength-5 {
		base = strings.TrimRight(base[:maxSlugLength-5], "-_")
	}

	for n := 1; n <= maxSlugAttempts; n++ {
		candidate := base
		if n > 1 {
			candidate = fmt.Sprintf("%s-%d", base, n)
		}
		taken, err := exists(ctx, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("no free slug for %q: %w", title, content.ErrConflict)
}

// NewProjectService creates the dashboard service for projects with slug generation
func NewProjectService(repo content.ProjectRepository, mediaService media.Service, logger logger.Logger) (content.Service[*content.Project], error) {
	hook := func(ctx context.Context, project, previous *content.Project) error {
		excludeID := ""
		if previous != nil {
			excludeID = previous.ID
		}
		s, err := assignSlug(ctx, strings.TrimSpace(project.Slug), project.Title, excludeID, repo.SlugExists)
		if err != nil {
			return err
		}
		project.Slug = s
		return nil
	}
	return newCrudService[*content.Project]("project", repo, mediaService, hook, logger)
}

// NewBlogService creates the dashboard service for blog posts. Publishing stamps PublishedAt once.
func NewBlogService(repo content.BlogPostRepository, mediaService media.Service, logger logger.Logger) (content.Service[*content.BlogPost], error) {
	hook := func(ctx context.Context, post, previous *content.BlogPost) error {
		excludeID := ""
		if previous != nil {
			excludeID = previous.ID
		}
		s, err := assignSlug(ctx, strings.TrimSpace(post.Slug), post.Title, excludeID, repo.SlugExists)
		if err != nil {
			return err
		}
		post.Slug = s

		if post.IsPublished && post.PublishedAt == nil {
			if previous != nil && previous.PublishedAt != nil {
				post.PublishedAt = previous.PublishedAt
			} else {
				now := time.Now().UTC()
				post.PublishedAt = &now
			}
		}
		return nil
	}
	return newCrudService[*content.BlogPost]("blog post", repo, mediaService, hook, logger)
}
