package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
)

// saveHook runs after normalisation and before the entity is stored.
// previous is the stored version on update and the zero value on create.
type saveHook[T content.Entity] func(ctx context.Context, entity, previous T) error

// crudService implements content.Service for any entity backed by a content.Repository
type crudService[T content.Entity] struct {
	repo       content.Repository[T]
	media      media.Service
	entity     string
	beforeSave saveHook[T]
	logger     logger.Logger
}

// NewCrudService creates the dashboard service for one entity type. mediaService may be nil
// for entities that own no files.
func NewCrudService[T content.Entity](entity string, repo content.Repository[T], mediaService media.Service, logger logger.Logger) (content.Service[T], error) {
	return newCrudService(entity, repo, mediaService, nil, logger)
}

func newCrudService[T content.Entity](entity string, repo content.Repository[T], mediaService media.Service, hook saveHook[T], logger logger.Logger) (*crudService[T], error) {
	if repo == nil {
		return nil, fmt.Errorf("%s repository cannot be nil", entity)
	}
	return &crudService[T]{
		repo:       repo,
		media:      mediaService,
		entity:     entity,
		beforeSave: hook,
		logger:     logger,
	}, nil
}

func (s *crudService[T]) resolve(items ...T) {
	if s.media == nil {
		return
	}
	for _, item := range items {
		if h, ok := any(item).(media.Holder); ok {
			s.media.Resolve(h)
		}
	}
}

func (s *crudService[T]) List(ctx context.Context, query *content.ListQuery) ([]T, int64, error) {
	if query == nil {
		query = content.NewListQuery()
	}
	items, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.repo.Count(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	s.resolve(items...)
	return items, total, nil
}

func (s *crudService[T]) GetByID(ctx context.Context, id string) (T, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		var zero T
		return zero, err
	}
	s.resolve(item)
	return item, nil
}

func (s *crudService[T]) prepare(ctx context.Context, entity, previous T) error {
	if n, ok := any(entity).(content.Normalizer); ok {
		n.Normalize()
	}
	if s.beforeSave != nil {
		if err := s.beforeSave(ctx, entity, previous); err != nil {
			return err
		}
	}
	if err := entity.Validate(); err != nil {
		return fmt.Errorf("invalid %s: %w", s.entity, err)
	}
	return nil
}

func (s *crudService[T]) Create(ctx context.Context, entity T) (T, error) {
	var zero T
	base := entity.Meta()
	base.ID = ""
	base.CreatedAt = time.Time{}
	if err := s.prepare(ctx, entity, zero); err != nil {
		return zero, err
	}
	if err := s.repo.Create(ctx, entity); err != nil {
		return zero, err
	}

	s.resolve(entity)
	return entity, nil
}

// Update replaces the stored entity. Files referenced by the old version and dropped by the new one
// are removed on a best effort basis.
func (s *crudService[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	var zero T
	previous, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, err
	}

	base := entity.Meta()
	base.ID = id
	base.CreatedAt = previous.Meta().CreatedAt
	if err := s.prepare(ctx, entity, previous); err != nil {
		return zero, err
	}
	if err := s.repo.UpdateByID(ctx, entity); err != nil {
		return zero, err
	}

	s.dropReplacedMedia(ctx, previous, mediaRefs(entity))
	s.resolve(entity)
	return entity, nil
}

func (s *crudService[T]) Delete(ctx context.Context, id string) error {
	previous, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.dropReplacedMedia(ctx, previous, nil)
	return nil
}

// dropReplacedMedia deletes files owned by previous that are not in keep
func (s *crudService[T]) dropReplacedMedia(ctx context.Context, previous T, keep []*media.Ref) {
	if s.media == nil {
		return
	}

	kept := map[string]bool{}
	for _, ref := range keep {
		kept[ref.Backend+"|"+ref.Key] = true
	}

	for _, ref := range mediaRefs(previous) {
		if ref.Key == "" || kept[ref.Backend+"|"+ref.Key] {
			continue
		}
		if err := s.media.Delete(ctx, *ref); err != nil {
			s.logger.Warn(fmt.Sprintf("failed to delete replaced %s file %s: ", s.entity, ref.Key), err)
		}
	}
}

func mediaRefs(entity any) []*media.Ref {
	if h, ok := entity.(media.Holder); ok {
		return h.MediaRefs()
	}
	return nil
}
