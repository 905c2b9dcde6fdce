package persistence

import (
	"fmt"

	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every model
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}
