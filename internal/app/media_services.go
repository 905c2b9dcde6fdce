package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"
)

// mediaService implements the media.Service interface on top of a connector selector
type mediaService struct {
	selector media.Selector
	logger   logger.Logger
}

// NewMediaService creates a new instance of mediaService
func NewMediaService(selector media.Selector, logger logger.Logger) (media.Service, error) {
	if selector == nil {
		return nil, fmt.Errorf("media selector cannot be nil")
	}
	return &mediaService{
		selector: selector,
		logger:   logger,
	}, nil
}

// Upload stores the file on the backend chosen for its slot kind
func (s *mediaService) Upload(ctx context.Context, upload *media.Upload) (*media.Ref, error) {
	if upload == nil || upload.Body == nil {
		return nil, validators.Errorf("no file provided")
	}
	if strings.TrimSpace(upload.Filename) == "" {
		return nil, validators.Errorf("file name required")
	}
	if _, err := media.ParseSlot(string(upload.Slot)); err != nil {
		return nil, validators.Errorf("%v", err)
	}

	connector := s.selector.For(upload.Kind())
	ref, err := connector.Save(ctx, upload)
	if err != nil {
		return nil, fmt.Errorf("failed to store %s: %w", upload.Filename, err)
	}

	s.logger.Info(fmt.Sprintf("Uploaded %s to %s as ", upload.Slot, connector.Name()), ref.Key)
	return ref, nil
}

func (s *mediaService) connectorFor(ref media.Ref) (media.Connector, error) {
	backend := ref.Backend
	if backend == "" && s.IsLocal(ref) {
		backend = config.LocalStorageBackend
	}
	c, ok := s.selector.Lookup(backend)
	if !ok {
		return nil, fmt.Errorf("storage backend %q is not configured", ref.Backend)
	}
	return c, nil
}

func (s *mediaService) Open(ctx context.Context, ref media.Ref) (io.ReadCloser, error) {
	if ref.Key == "" {
		return nil, media.ErrNotFound
	}
	c, err := s.connectorFor(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", media.ErrNotFound, err)
	}
	return c.Open(ctx, ref.Key)
}

func (s *mediaService) Delete(ctx context.Context, ref media.Ref) error {
	if ref.Key == "" {
		return nil
	}
	c, err := s.connectorFor(ref)
	if err != nil {
		s.logger.Warn("skipping media delete: ", err)
		return nil
	}
	if err := c.Delete(ctx, ref.Key); err != nil && !errors.Is(err, media.ErrNotFound) {
		return fmt.Errorf("failed to delete %s: %w", ref.Key, err)
	}
	return nil
}

func (s *mediaService) ResolveURL(ref media.Ref) string {
	return s.selector.URL(ref)
}

// Resolve fills the URL of every stored reference. Holders must not be nil.
func (s *mediaService) Resolve(holders ...media.Holder) {
	for _, h := range holders {
		for _, ref := range h.MediaRefs() {
			if !ref.IsZero() {
				ref.URL = s.ResolveURL(*ref)
			}
		}
	}
}

func (s *mediaService) Check(ctx context.Context, owner string, ref media.Ref) media.CheckResult {
	result := media.CheckResult{
		Owner: owner,
		Ref:   ref,
		URL:   s.ResolveURL(ref),
	}
	if ref.Key == "" {
		result.Exists = result.URL != ""
		if !result.Exists {
			result.Error = "no file stored"
		}
		return result
	}

	c, err := s.connectorFor(ref)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	exists, err := c.Exists(ctx, ref.Key)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Exists = exists
	if !exists {
		result.Error = "file missing on " + c.Name()
	}
	return result
}

// Migrate copies ref onto the backend currently selected for its kind.
// The source file is left in place so the caller can delete it once the new reference is saved.
func (s *mediaService) Migrate(ctx context.Context, ref media.Ref) (*media.Ref, error) {
	if ref.Key == "" {
		return nil, validators.Errorf("reference has no key")
	}
	kind := ref.Kind
	if kind == "" {
		kind = media.KindImage
	}

	target := s.selector.For(kind)
	if ref.Backend == target.Name() {
		return &ref, nil
	}

	body, err := s.Open(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", ref.Key, err)
	}
	defer body.Close()

	migrated, err := target.Save(ctx, &media.Upload{
		Filename: ref.Filename(),
		Slot:     media.SlotForKey(ref.Key, kind),
		Body:     body,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to copy %s to %s: %w", ref.Key, target.Name(), err)
	}

	s.logger.Info(fmt.Sprintf("Migrated %s to %s as ", ref.Key, target.Name()), migrated.Key)
	return migrated, nil
}

// IsLocal reports whether ref lives on local disk. References without a backend count as local
// unless they carry an absolute URL.
func (s *mediaService) IsLocal(ref media.Ref) bool {
	if ref.Backend != "" {
		return ref.Backend == config.LocalStorageBackend
	}
	if ref.Key == "" {
		return false
	}
	u, err := url.Parse(ref.URL)
	return ref.URL == "" || err != nil || !u.IsAbs()
}
