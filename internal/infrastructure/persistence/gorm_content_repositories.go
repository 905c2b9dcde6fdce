package persistence

import (
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence/models"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"gorm.io/gorm"
)

var commonSortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"order":      "sort_order",
}

func sortColumns(extra map[string]string) map[string]string {
	columns := make(map[string]string, len(commonSortColumns)+len(extra))
	for k, v := range commonSortColumns {
		columns[k] = v
	}
	for k, v := range extra {
		columns[k] = v
	}
	return columns
}

// NewGormTagRepository creates a GORM-based tag repository
func NewGormTagRepository(db *gorm.DB, logger logger.Logger) (content.Repository[*content.Tag], error) {
	return newGormRepository[*content.Tag, models.TagModel](db, logger, listSpec{
		entity:        "tag",
		searchColumns: []string{"name"},
		sortColumns:   map[string]string{"name": "name", "created_at": "created_at"},
		defaultOrder:  "name asc",
		joins:         []joinRef{{table: "project_tags", column: "tag_id"}},
	}), nil
}

// NewGormSkillRepository creates a GORM-based skill repository
func NewGormSkillRepository(db *gorm.DB, logger logger.Logger) (content.Repository[*content.Skill], error) {
	return newGormRepository[*content.Skill, models.SkillModel](db, logger, listSpec{
		entity:        "skill",
		searchColumns: []string{"name", "description"},
		sortColumns:   sortColumns(map[string]string{"name": "name", "category": "category", "proficiency": "proficiency"}),
		defaultOrder:  "category asc, sort_order asc, name asc",
		joins:         []joinRef{{table: "project_technologies", column: "skill_id"}},
	}), nil
}

// NewGormEducationRepository creates a GORM-based education repository
func NewGormEducationRepository(db *gorm.DB, logger logger.Logger) (content.Repository[*content.Education], error) {
	return newGormRepository[*content.Education, models.EducationModel](db, logger, listSpec{
		entity:        "education",
		searchColumns: []string{"school_name", "degree", "field_of_study"},
		sortColumns:   sortColumns(map[string]string{"start_date": "start_date", "school_name": "school_name"}),
		defaultOrder:  "sort_order asc, start_date desc",
	}), nil
}

// NewGormCertificationRepository creates a GORM-based certification repository
func NewGormCertificationRepository(db *gorm.DB, logger logger.Logger) (content.Repository[*content.Certification], error) {
	return newGormRepository[*content.Certification, models.CertificationModel](db, logger, listSpec{
		entity:        "certification",
		searchColumns: []string{"name", "issuing_organization"},
		sortColumns:   sortColumns(map[string]string{"issue_date": "issue_date", "name": "name"}),
		defaultOrder:  "sort_order asc, issue_date desc",
	}), nil
}

// NewGormAwardRepository creates a GORM-based award repository
func NewGormAwardRepository(db *gorm.DB, logger logger.Logger) (content.Repository[*content.Award], error) {
	return newGormRepository[*content.Award, models.AwardModel](db, logger, listSpec{
		entity:        "award",
		searchColumns: []string{"title", "issuing_organization", "description"},
		sortColumns:   sortColumns(map[string]string{"date_received": "date_received", "title": "title"}),
		defaultOrder:  "sort_order asc, date_received desc",
	}), nil
}

// NewGormCareerTimelineRepository creates a GORM-based career timeline repository
func NewGormCareerTimelineRepository(db *gorm.DB, logger logger.Logger) (content.Repository[*content.CareerTimeline], error) {
	return newGormRepository[*content.CareerTimeline, models.CareerTimelineModel](db, logger, listSpec{
		entity:        "career entry",
		searchColumns: []string{"job_title", "company", "technologies"},
		sortColumns:   sortColumns(map[string]string{"start_date": "start_date", "company": "company"}),
		defaultOrder:  "sort_order asc, start_date desc",
	}), nil
}

// NewGormTestimonialRepository creates a GORM-based testimonial repository
func NewGormTestimonialRepository(db *gorm.DB, logger logger.Logger) (content.Repository[*content.Testimonial], error) {
	return newGormRepository[*content.Testimonial, models.TestimonialModel](db, logger, listSpec{
		entity:        "testimonial",
		searchColumns: []string{"name", "company", "comment"},
		sortColumns:   map[string]string{"created_at": "created_at", "rating": "rating", "name": "name"},
		defaultOrder:  "created_at desc",
	}), nil
}

// NewGormFooterLinkRepository creates a GORM-based footer link repository
func NewGormFooterLinkRepository(db *gorm.DB, logger logger.Logger) (content.Repository[*content.FooterLink], error) {
	return newGormRepository[*content.FooterLink, models.FooterLinkModel](db, logger, listSpec{
		entity:        "footer link",
		searchColumns: []string{"title", "url"},
		sortColumns:   sortColumns(map[string]string{"title": "title", "category": "category"}),
		defaultOrder:  "category asc, sort_order asc, title asc",
	}), nil
}
