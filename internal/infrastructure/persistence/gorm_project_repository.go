package persistence

import (
	"context"
	"fmt"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence/models"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProjectRepository struct {
	*gormRepository[*content.Project, models.ProjectModel, *models.ProjectModel]
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository implementation
func NewGormProjectRepository(db *gorm.DB, logger logger.Logger) (content.ProjectRepository, error) {
	return &gormProjectRepository{
		gormRepository: newGormRepository[*content.Project, models.ProjectModel](db, logger, listSpec{
			entity:        "project",
			searchColumns: []string{"title", "description", "tech_stack"},
			sortColumns:   sortColumns(map[string]string{"title": "title", "status": "status", "is_featured": "is_featured"}),
			defaultOrder:  "is_featured desc, created_at desc",
			preloads:      []string{"Tags", "Technologies"},
			joins: []joinRef{
				{table: "project_tags", column: "project_id"},
				{table: "project_technologies", column: "project_id"},
			},
		}),
	}, nil
}

// UpdateByID stores the project columns and replaces its tags and technologies
func (r *gormProjectRepository) UpdateByID(ctx context.Context, project *content.Project) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.update(tx, project); err != nil {
			return err
		}

		model := &models.ProjectModel{}
		model.FromDomain(project)

		for _, j := range r.spec.joins {
			if err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", j.table, j.column), project.ID).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", j.table, err)
			}
		}
		if len(model.Tags) > 0 {
			if err := tx.Model(model).Association("Tags").Append(model.Tags); err != nil {
				return fmt.Errorf("failed to attach project tags: %w", err)
			}
		}
		if len(model.Technologies) > 0 {
			if err := tx.Model(model).Association("Technologies").Append(model.Technologies); err != nil {
				return fmt.Errorf("failed to attach project technologies: %w", err)
			}
		}
		return nil
	})
}

func (r *gormProjectRepository) GetBySlug(ctx context.Context, slug string) (*content.Project, error) {
	return r.first(r.db.WithContext(ctx).Where("slug = ?", slug), "slug "+slug)
}

func (r *gormProjectRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	return slugExists(ctx, r.db, &models.ProjectModel{}, slug, excludeID)
}

func (r *gormProjectRepository) Search(ctx context.Context, filter content.ProjectFilter, limit, offset int) ([]*content.Project, int64, error) {
	db := r.db.WithContext(ctx).Model(&models.ProjectModel{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		byTechnology := r.db.Table("project_technologies").
			Select("project_technologies.project_id").
			Joins("JOIN skills ON skills.id = project_technologies.skill_id").
			Where("LOWER(skills.name) LIKE ?", pattern)
		db = db.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR id IN (?)", pattern, pattern, byTechnology)
	}
	if technology := strings.TrimSpace(filter.Technology); technology != "" {
		byTechnology := r.db.Table("project_technologies").
			Select("project_technologies.project_id").
			Joins("JOIN skills ON skills.id = project_technologies.skill_id").
			Where("LOWER(skills.name) = ?", strings.ToLower(technology))
		db = db.Where("id IN (?)", byTechnology)
	}
	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.FeaturedOnly {
		db = db.Where("is_featured = ?", true)
	}

	db = db.Session(&gorm.Session{})

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count projects: %w", err)
	}

	var modelList []models.ProjectModel
	page := r.preloaded(db).Order(r.spec.defaultOrder)
	if limit > 0 {
		page = page.Limit(limit)
	}
	if offset > 0 {
		page = page.Offset(offset)
	}
	if err := page.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch projects: %w", err)
	}
	return toDomainList[*content.Project](modelList), total, nil
}

// Related returns projects sharing a technology with project, or featured ones
func (r *gormProjectRepository) Related(ctx context.Context, project *content.Project, limit int) ([]*content.Project, error) {
	skillIDs := make([]string, 0, len(project.Technologies))
	for _, s := range project.Technologies {
		skillIDs = append(skillIDs, s.ID)
	}

	db := r.db.WithContext(ctx).Model(&models.ProjectModel{}).Where("id <> ?", project.ID)
	if len(skillIDs) > 0 {
		shared := r.db.Table("project_technologies").
			Select("project_id").
			Where("skill_id IN ?", skillIDs)
		db = db.Where("id IN (?) OR is_featured = ?", shared, true)
	} else {
		db = db.Where("is_featured = ?", true)
	}

	var modelList []models.ProjectModel
	if err := r.preloaded(db).Order(r.spec.defaultOrder).Limit(limit).Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch related projects: %w", err)
	}
	return toDomainList[*content.Project](modelList), nil
}

// Technologies returns the skills attached to at least one project, ordered by name
func (r *gormProjectRepository) Technologies(ctx context.Context) ([]*content.Skill, error) {
	used := r.db.Table("project_technologies").Select("skill_id")

	var modelList []models.SkillModel
	if err := r.db.WithContext(ctx).Where("id IN (?)", used).Order("name asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch project technologies: %w", err)
	}
	return toDomainList[*content.Skill](modelList), nil
}

func slugExists(ctx context.Context, db *gorm.DB, model interface{}, slug, excludeID string) (bool, error) {
	query := db.WithContext(ctx).Model(model).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check slug %q: %w", slug, err)
	}
	return count > 0, nil
}
