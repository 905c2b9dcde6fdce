package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/patrickmn/go-cache"
)

const (
	personalInfoCacheKey    = "personal_info"
	defaultPersonalInfoTTL  = 5 * time.Minute
	defaultPersonalInfoName = "Portfolio Owner"
)

// personalInfoService implements the content.PersonalInfoService interface
type personalInfoService struct {
	repo      content.PersonalInfoRepository
	media     media.Service
	cache     *cache.Cache
	ownerName string
	logger    logger.Logger
}

// NewPersonalInfoService creates a new personalInfoService. ownerName is used as the full name of a
// profile created on demand. A zero ttl uses five minutes.
func NewPersonalInfoService(repo content.PersonalInfoRepository, mediaService media.Service, ttl time.Duration, ownerName string, logger logger.Logger) (content.PersonalInfoService, error) {
	if repo == nil {
		return nil, fmt.Errorf("personal info repository cannot be nil")
	}
	if ttl <= 0 {
		ttl = defaultPersonalInfoTTL
	}
	if ownerName == "" {
		ownerName = defaultPersonalInfoName
	}
	return &personalInfoService{
		repo:      repo,
		media:     mediaService,
		cache:     cache.New(ttl, 2*ttl),
		ownerName: ownerName,
		logger:    logger,
	}, nil
}

func (s *personalInfoService) resolved(info *content.PersonalInfo) *content.PersonalInfo {
	out := *info
	if s.media != nil {
		s.media.Resolve(&out)
	}
	return &out
}

// GetActive returns a copy of the cached active profile
func (s *personalInfoService) GetActive(ctx context.Context) (*content.PersonalInfo, error) {
	if cached, ok := s.cache.Get(personalInfoCacheKey); ok {
		return s.resolved(cached.(*content.PersonalInfo)), nil
	}

	info, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(personalInfoCacheKey, info, cache.DefaultExpiration)
	return s.resolved(info), nil
}

func (s *personalInfoService) GetOrCreateActive(ctx context.Context) (*content.PersonalInfo, error) {
	info, err := s.repo.GetActive(ctx)
	if err == nil {
		return s.resolved(info), nil
	}
	if !errors.Is(err, content.ErrNotFound) {
		return nil, err
	}

	info = &content.PersonalInfo{FullName: s.ownerName, IsActive: true}
	if err := s.repo.Create(ctx, info); err != nil {
		return nil, fmt.Errorf("failed to create personal info: %w", err)
	}
	if err := s.repo.Activate(ctx, info.ID); err != nil {
		return nil, fmt.Errorf("failed to activate personal info: %w", err)
	}
	s.refresh(ctx)
	return s.resolved(info), nil
}

// Save stores info and makes it the only active profile
func (s *personalInfoService) Save(ctx context.Context, info *content.PersonalInfo) (*content.PersonalInfo, error) {
	info.IsActive = true
	if err := info.Validate(); err != nil {
		return nil, err
	}

	var previous *content.PersonalInfo
	if info.ID == "" {
		if err := s.repo.Create(ctx, info); err != nil {
			return nil, err
		}
	} else {
		stored, err := s.repo.GetByID(ctx, info.ID)
		if err != nil {
			return nil, err
		}
		previous = stored
		info.CreatedAt = stored.CreatedAt
		if err := s.repo.UpdateByID(ctx, info); err != nil {
			return nil, err
		}
	}

	if err := s.repo.Activate(ctx, info.ID); err != nil {
		return nil, fmt.Errorf("failed to activate personal info: %w", err)
	}
	if previous != nil {
		s.dropReplaced(ctx, previous.ProfileImage, info.ProfileImage)
		s.dropReplaced(ctx, previous.Resume, info.Resume)
	}

	s.refresh(ctx)
	return s.resolved(info), nil
}

func (s *personalInfoService) UploadResume(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*content.PersonalInfo, error) {
	return s.upload(ctx, media.SlotResume, filename, contentType, size, body, func(info *content.PersonalInfo) *media.Ref {
		return &info.Resume
	})
}

func (s *personalInfoService) UploadProfileImage(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*content.PersonalInfo, error) {
	return s.upload(ctx, media.SlotProfileImage, filename, contentType, size, body, func(info *content.PersonalInfo) *media.Ref {
		return &info.ProfileImage
	})
}

func (s *personalInfoService) upload(ctx context.Context, slot media.Slot, filename, contentType string, size int64, body io.Reader, field func(*content.PersonalInfo) *media.Ref) (*content.PersonalInfo, error) {
	if s.media == nil {
		return nil, fmt.Errorf("media storage is not configured")
	}
	if _, err := s.GetOrCreateActive(ctx); err != nil {
		return nil, err
	}
	info, err := s.repo.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	ref, err := s.media.Upload(ctx, &media.Upload{
		Filename:    filename,
		ContentType: contentType,
		Size:        size,
		Slot:        slot,
		Body:        body,
	})
	if err != nil {
		return nil, err
	}

	target := field(info)
	old := *target
	*target = *ref
	if err := s.repo.UpdateByID(ctx, info); err != nil {
		if delErr := s.media.Delete(ctx, *ref); delErr != nil {
			s.logger.Warn("failed to remove orphaned upload: ", delErr)
		}
		return nil, err
	}

	s.dropReplaced(ctx, old, *ref)
	s.refresh(ctx)
	return s.resolved(info), nil
}

func (s *personalInfoService) dropReplaced(ctx context.Context, old, current media.Ref) {
	if s.media == nil || old.Key == "" || (old.Key == current.Key && old.Backend == current.Backend) {
		return
	}
	if err := s.media.Delete(ctx, old); err != nil {
		s.logger.Warn("failed to delete replaced personal info file: ", err)
	}
}

// refresh drops the cached profile and reloads it
func (s *personalInfoService) refresh(ctx context.Context) {
	s.cache.Delete(personalInfoCacheKey)
	info, err := s.repo.GetActive(ctx)
	if err != nil {
		s.logger.Warn("failed to refresh personal info cache: ", err)
		return
	}
	s.cache.Set(personalInfoCacheKey, info, cache.DefaultExpiration)
}
