package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/infrastructure/persistence/models"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormContactRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormContactRepository creates a new GORM-based contact message repository
func NewGormContactRepository(db *gorm.DB, logger logger.Logger) (contact.Repository, error) {
	return &gormContactRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormContactRepository) Create(ctx context.Context, message *contact.ContactMessage) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now().UTC()
	}
	if err := message.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ContactMessageModel{}
	model.FromDomain(message)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	r.logger.Info("Created contact message with id ", message.ID)
	return nil
}

func (r *gormContactRepository) filtered(ctx context.Context, query *contact.MessageQuery) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&models.ContactMessageModel{})
	switch query.Status {
	case contact.StatusRead:
		db = db.Where("is_read = ?", true)
	case contact.StatusUnread:
		db = db.Where("is_read = ?", false)
	}
	if search := strings.TrimSpace(query.Search); search != "" {
		db = db.Where(likeAny([]string{"name", "email", "subject", "message"}, search))
	}
	return db
}

func (r *gormContactRepository) List(ctx context.Context, query *contact.MessageQuery) ([]*contact.ContactMessage, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	db := r.filtered(ctx, query).Order("created_at desc")
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}
	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}

	var modelList []*models.ContactMessageModel
	if err := db.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch contact messages: %w", err)
	}

	domainList := make([]*contact.ContactMessage, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormContactRepository) Count(ctx context.Context, query *contact.MessageQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	var total int64
	if err := r.filtered(ctx, query).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return total, nil
}

func (r *gormContactRepository) GetByID(ctx context.Context, id string) (*contact.ContactMessage, error) {
	var model models.ContactMessageModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("contact message with ID %s: %w", id, content.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to fetch contact message: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormContactRepository) SetRead(ctx context.Context, ids []string, read bool) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Model(&models.ContactMessageModel{}).Where("id IN ?", ids).Update("is_read", read)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update contact messages: %w", result.Error)
	}

	r.logger.Info(fmt.Sprintf("Set read=%t on %d contact messages", read, result.RowsAffected))
	return result.RowsAffected, nil
}

func (r *gormContactRepository) Delete(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&models.ContactMessageModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete contact messages: %w", result.Error)
	}

	r.logger.Info(fmt.Sprintf("Deleted %d contact messages", result.RowsAffected))
	return result.RowsAffected, nil
}

func (r *gormContactRepository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ContactMessageModel{}).Where("created_at >= ?", since).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count recent contact messages: %w", err)
	}
	return total, nil
}
