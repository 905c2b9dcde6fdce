package persistence

import (
	"context"
	"fmt"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence/models"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormPersonalInfoRepository struct {
	*gormRepository[*content.PersonalInfo, models.PersonalInfoModel, *models.PersonalInfoModel]
}

// NewGormPersonalInfoRepository creates a new GORM-based PersonalInfoRepository implementation
func NewGormPersonalInfoRepository(db *gorm.DB, logger logger.Logger) (content.PersonalInfoRepository, error) {
	return &gormPersonalInfoRepository{
		gormRepository: newGormRepository[*content.PersonalInfo, models.PersonalInfoModel](db, logger, listSpec{
			entity:        "personal info",
			searchColumns: []string{"full_name", "portfolio_name", "email"},
			sortColumns:   map[string]string{"created_at": "created_at", "updated_at": "updated_at"},
			defaultOrder:  "updated_at desc",
		}),
	}, nil
}

// GetActive returns the most recently updated active profile
func (r *gormPersonalInfoRepository) GetActive(ctx context.Context) (*content.PersonalInfo, error) {
	return r.first(r.db.WithContext(ctx).Where("is_active = ?", true).Order("updated_at desc"), "active flag")
}

func (r *gormPersonalInfoRepository) Activate(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.PersonalInfoModel{}).Where("id = ?", id).Update("is_active", true)
		if result.Error != nil {
			return fmt.Errorf("failed to activate personal info: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("personal info with ID %s: %w", id, content.ErrNotFound)
		}
		if err := tx.Model(&models.PersonalInfoModel{}).Where("id <> ? AND is_active = ?", id, true).Update("is_active", false).Error; err != nil {
			return fmt.Errorf("failed to deactivate other personal info records: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Activated personal info with id ", id)
	return nil
}
