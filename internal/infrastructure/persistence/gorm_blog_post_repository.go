package persistence

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence/models"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBlogPostRepository struct {
	*gormRepository[*content.BlogPost, models.BlogPostModel, *models.BlogPostModel]
}

// NewGormBlogPostRepository creates a new GORM-based BlogPostRepository implementation
func NewGormBlogPostRepository(db *gorm.DB, logger logger.Logger) (content.BlogPostRepository, error) {
	return &gormBlogPostRepository{
		gormRepository: newGormRepository[*content.BlogPost, models.BlogPostModel](db, logger, listSpec{
			entity:        "blog post",
			searchColumns: []string{"title", "excerpt", "body", "tags"},
			sortColumns: map[string]string{
				"created_at":   "created_at",
				"updated_at":   "updated_at",
				"published_at": "published_at",
				"title":        "title",
			},
			defaultOrder: "created_at desc",
		}),
	}, nil
}

func (r *gormBlogPostRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*content.BlogPost, error) {
	db := r.db.WithContext(ctx).Where("slug = ?", slug)
	if publishedOnly {
		db = db.Where("is_published = ?", true)
	}
	return r.first(db, "slug "+slug)
}

func (r *gormBlogPostRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExists(ctx, r.db, &models.BlogPostModel{}, slug, excludeID)
}

func (r *gormBlogPostRepository) filtered(ctx context.Context, filter content.BlogFilter) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&models.BlogPostModel{})
	if filter.PublishedOnly {
		db = db.Where("is_published = ?", true)
	}
	if filter.FeaturedOnly {
		db = db.Where("is_featured = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		db = db.Where(likeAny(r.spec.searchColumns, search))
	}
	if tag := strings.TrimSpace(filter.Tag); tag != "" {
		db = db.Where("LOWER(tags) LIKE ?", "%"+strings.ToLower(tag)+"%")
	}
	return db.Session(&gorm.Session{})
}

func (r *gormBlogPostRepository) Search(ctx context.Context, filter content.BlogFilter, limit, offset int) ([]*content.BlogPost, int64, error) {
	db := r.filtered(ctx, filter)

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count blog posts: %w", err)
	}

	page := db.Order(r.spec.defaultOrder)
	if limit > 0 {
		page = page.Limit(limit)
	}
	if offset > 0 {
		page = page.Offset(offset)
	}

	var modelList []models.BlogPostModel
	if err := page.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch blog posts: %w", err)
	}
	return toDomainList[*content.BlogPost](modelList), total, nil
}

// Related returns published posts sharing the first tag of post that matches anything,
// falling back to featured posts
func (r *gormBlogPostRepository) Related(ctx context.Context, post *content.BlogPost, limit int) ([]*content.BlogPost, error) {
	for _, tag := range post.TagList() {
		posts, err := r.fetchOthers(ctx, post.ID, content.BlogFilter{PublishedOnly: true, Tag: tag}, limit)
		if err != nil {
			return nil, err
		}
		if len(posts) > 0 {
			return posts, nil
		}
	}
	return r.fetchOthers(ctx, post.ID, content.BlogFilter{PublishedOnly: true, FeaturedOnly: true}, limit)
}

func (r *gormBlogPostRepository) fetchOthers(ctx context.Context, excludeID string, filter content.BlogFilter, limit int) ([]*content.BlogPost, error) {
	var modelList []models.BlogPostModel
	err := r.filtered(ctx, filter).
		Where("id <> ?", excludeID).
		Order(r.spec.defaultOrder).
		Limit(limit).
		Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch related blog posts: %w", err)
	}
	return toDomainList[*content.BlogPost](modelList), nil
}

// AllTags returns the distinct tags of published posts, sorted
func (r *gormBlogPostRepository) AllTags(ctx context.Context) ([]string, error) {
	var raw []string
	err := r.db.WithContext(ctx).
		Model(&models.BlogPostModel{}).
		Where("is_published = ? AND tags <> ''", true).
		Pluck("tags", &raw).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blog tags: %w", err)
	}

	seen := map[string]struct{}{}
	tags := []string{}
	for _, line := range raw {
		post := content.BlogPost{Tags: line}
		for _, tag := range post.TagList() {
			if _, ok := seen[tag]; !ok {
				seen[tag] = struct{}{}
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)
	return tags, nil
}
