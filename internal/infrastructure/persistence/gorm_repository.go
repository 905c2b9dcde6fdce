package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// modelPtr is a pointer to a GORM model that converts to and from the domain entity T
type modelPtr[T content.Entity, M any] interface {
	*M
	ToDomain() T
	FromDomain(T)
}

// joinRef names a join table column holding references to a row
type joinRef struct {
	table  string
	column string
}

// listSpec describes how an entity is searched, sorted and loaded
type listSpec struct {
	entity        string
	searchColumns []string
	sortColumns   map[string]string
	defaultOrder  string
	preloads      []string
	// joins are cleared before a row is deleted
	joins []joinRef
}

type gormRepository[T content.Entity, M any, PM modelPtr[T, M]] struct {
	db     *gorm.DB
	logger logger.Logger
	spec   listSpec
}

func newGormRepository[T content.Entity, M any, PM modelPtr[T, M]](db *gorm.DB, logger logger.Logger, spec listSpec) *gormRepository[T, M, PM] {
	return &gormRepository[T, M, PM]{
		db:     db,
		logger: logger,
		spec:   spec,
	}
}

func (r *gormRepository[T, M, PM]) newModel() PM {
	return PM(new(M))
}

// prepare stamps identity and timestamps and validates the entity
func (r *gormRepository[T, M, PM]) prepare(entity T) error {
	base := entity.Meta()
	now := time.Now().UTC()
	if base.ID == "" {
		base.ID = uuid.NewString()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now

	if err := entity.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

func (r *gormRepository[T, M, PM]) preloaded(db *gorm.DB) *gorm.DB {
	for _, p := range r.spec.preloads {
		db = db.Preload(p)
	}
	return db
}

func (r *gormRepository[T, M, PM]) Create(ctx context.Context, entity T) error {
	return r.create(r.db.WithContext(ctx), entity)
}

func (r *gormRepository[T, M, PM]) create(db *gorm.DB, entity T) error {
	if err := r.prepare(entity); err != nil {
		return err
	}

	model := r.newModel()
	model.FromDomain(entity)

	omit := make([]string, 0, len(r.spec.preloads))
	for _, p := range r.spec.preloads {
		omit = append(omit, p+".*")
	}
	if err := db.Omit(omit...).Create(model).Error; err != nil {
		return translateError(fmt.Errorf("failed to create %s: %w", r.spec.entity, err))
	}

	r.logger.Info(fmt.Sprintf("Created %s with id ", r.spec.entity), entity.Meta().ID)
	return nil
}

// scope applies filters and search without pagination or ordering
func (r *gormRepository[T, M, PM]) scope(ctx context.Context, query *content.ListQuery) *gorm.DB {
	db := r.db.WithContext(ctx).Model(r.newModel())
	if len(query.Filters) > 0 {
		db = db.Where(map[string]interface{}(query.Filters))
	}
	if search := strings.TrimSpace(query.Search); search != "" && len(r.spec.searchColumns) > 0 {
		db = db.Where(likeAny(r.spec.searchColumns, search))
	}
	return db
}

func (r *gormRepository[T, M, PM]) order(query *content.ListQuery) (string, error) {
	if query.SortBy == "" {
		return r.spec.defaultOrder, nil
	}
	column, ok := r.spec.sortColumns[query.SortBy]
	if !ok {
		return "", validators.Errorf("cannot sort %s by %q", r.spec.entity, query.SortBy)
	}
	direction := query.SortOrder
	if direction == "" {
		direction = "asc"
	}
	return fmt.Sprintf("%s %s", column, direction), nil
}

func (r *gormRepository[T, M, PM]) List(ctx context.Context, query *content.ListQuery) ([]T, error) {
	if query == nil {
		query = content.NewListQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}
	order, err := r.order(query)
	if err != nil {
		return nil, err
	}

	db := r.preloaded(r.scope(ctx, query))
	if order != "" {
		db = db.Order(order)
	}
	if query.Limit > 0 {
		db = db.Limit(query.Limit)
	}
	if query.Offset > 0 {
		db = db.Offset(query.Offset)
	}

	var modelList []M
	if err := db.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch %s list: %w", r.spec.entity, err)
	}
	return toDomainList[T, M, PM](modelList), nil
}

func (r *gormRepository[T, M, PM]) Count(ctx context.Context, query *content.ListQuery) (int64, error) {
	if query == nil {
		query = content.NewListQuery()
	}
	if err := query.Validate(); err != nil {
		return 0, fmt.Errorf("invalid query parameters: %w", err)
	}

	var total int64
	if err := r.scope(ctx, query).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count %s records: %w", r.spec.entity, err)
	}
	return total, nil
}

func (r *gormRepository[T, M, PM]) GetByID(ctx context.Context, id string) (T, error) {
	return r.first(r.db.WithContext(ctx).Where("id = ?", id), "ID "+id)
}

// first loads the first row matched by db, describing the lookup as what in errors
func (r *gormRepository[T, M, PM]) first(db *gorm.DB, what string) (T, error) {
	var zero T
	model := r.newModel()
	if err := r.preloaded(db).First(model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return zero, fmt.Errorf("%s with %s: %w", r.spec.entity, what, content.ErrNotFound)
		}
		return zero, fmt.Errorf("failed to fetch %s: %w", r.spec.entity, err)
	}
	return model.ToDomain(), nil
}

func (r *gormRepository[T, M, PM]) UpdateByID(ctx context.Context, entity T) error {
	return r.update(r.db.WithContext(ctx), entity)
}

func (r *gormRepository[T, M, PM]) update(db *gorm.DB, entity T) error {
	if entity.Meta().ID == "" {
		return fmt.Errorf("failed to update %s: missing ID", r.spec.entity)
	}
	if err := r.prepare(entity); err != nil {
		return err
	}

	model := r.newModel()
	model.FromDomain(entity)

	result := db.Model(model).Select("*").Omit("id", "created_at", clause.Associations).Updates(model)
	if result.Error != nil {
		return translateError(fmt.Errorf("failed to update %s: %w", r.spec.entity, result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%s with ID %s: %w", r.spec.entity, entity.Meta().ID, content.ErrNotFound)
	}

	r.logger.Info(fmt.Sprintf("Updated %s with id ", r.spec.entity), entity.Meta().ID)
	return nil
}

func (r *gormRepository[T, M, PM]) DeleteByID(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, j := range r.spec.joins {
			if err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE %s = ?", j.table, j.column), id).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", j.table, err)
			}
		}

		result := tx.Where("id = ?", id).Delete(r.newModel())
		if result.Error != nil {
			return fmt.Errorf("failed to delete %s: %w", r.spec.entity, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%s with ID %s: %w", r.spec.entity, id, content.ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info(fmt.Sprintf("Deleted %s with id ", r.spec.entity), id)
	return nil
}

func (r *gormRepository[T, M, PM]) FirstOrCreate(ctx context.Context, match map[string]interface{}, entity T) (T, bool, error) {
	var (
		found   T
		created bool
	)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []M
		if err := r.preloaded(tx.Where(match)).Limit(1).Find(&existing).Error; err != nil {
			return fmt.Errorf("failed to look up %s: %w", r.spec.entity, err)
		}
		if len(existing) > 0 {
			found = PM(&existing[0]).ToDomain()
			return nil
		}

		if err := r.create(tx, entity); err != nil {
			return err
		}
		found, created = entity, true
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return found, created, nil
}

func toDomainList[T content.Entity, M any, PM modelPtr[T, M]](modelList []M) []T {
	domainList := make([]T, len(modelList))
	for i := range modelList {
		domainList[i] = PM(&modelList[i]).ToDomain()
	}
	return domainList
}

// likeAny builds a case insensitive OR of LIKE matches over columns
func likeAny(columns []string, term string) clause.Expression {
	pattern := "%" + strings.ToLower(term) + "%"
	exprs := make([]clause.Expression, 0, len(columns))
	for _, c := range columns {
		exprs = append(exprs, clause.Expr{SQL: fmt.Sprintf("LOWER(%s) LIKE ?", c), Vars: []interface{}{pattern}})
	}
	return clause.Or(exprs...)
}

// translateError maps unique constraint violations onto content.ErrConflict
func translateError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", content.ErrConflict, err)
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key") || strings.Contains(msg, "duplicate entry") {
		return fmt.Errorf("%w: %w", content.ErrConflict, err)
	}
	return err
}
