package persistence

import (
	"context"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence/models"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormSEORepository struct {
	*gormRepository[*content.SEOSettings, models.SEOSettingsModel, *models.SEOSettingsModel]
}

// NewGormSEORepository creates a new GORM-based SEORepository implementation
func NewGormSEORepository(db *gorm.DB, logger logger.Logger) (content.SEORepository, error) {
	return &gormSEORepository{
		gormRepository: newGormRepository[*content.SEOSettings, models.SEOSettingsModel](db, logger, listSpec{
			entity:        "seo settings",
			searchColumns: []string{"page", "title", "description"},
			sortColumns:   map[string]string{"page": "page", "created_at": "created_at"},
			defaultOrder:  "page asc",
		}),
	}, nil
}

func (r *gormSEORepository) GetByPage(ctx context.Context, page string) (*content.SEOSettings, error) {
	return r.first(r.db.WithContext(ctx).Where("page = ?", page), "page "+page)
}
