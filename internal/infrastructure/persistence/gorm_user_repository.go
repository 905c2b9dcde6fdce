package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence/models"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormUserRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUserRepository creates a new GORM-based UserRepository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (accounts.UserRepository, error) {
	return &gormUserRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUserRepository) Create(ctx context.Context, user *accounts.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return translateError(fmt.Errorf("failed to create user: %w", err))
	}

	r.logger.Info("Created user ", user.Username)
	return nil
}

func (r *gormUserRepository) get(ctx context.Context, column, value string) (*accounts.User, error) {
	var model models.UserModel
	if err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user with %s %s: %w", column, value, content.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormUserRepository) GetByID(ctx context.Context, id string) (*accounts.User, error) {
	return r.get(ctx, "id", id)
}

func (r *gormUserRepository) GetByUsername(ctx context.Context, username string) (*accounts.User, error) {
	return r.get(ctx, "username", username)
}

func (r *gormUserRepository) Update(ctx context.Context, user *accounts.User) error {
	if err := user.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UserModel{}
	model.FromDomain(user)

	result := r.db.WithContext(ctx).Model(model).Select("*").Omit("id", "created_at").Updates(model)
	if result.Error != nil {
		return translateError(fmt.Errorf("failed to update user: %w", result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("user with ID %s: %w", user.ID, content.ErrNotFound)
	}

	r.logger.Info("Updated user ", user.Username)
	return nil
}
