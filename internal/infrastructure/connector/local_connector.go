package connector

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
)

type localConnector struct {
	root     string
	mediaURL string
	logger   logger.Logger
}

// NewLocalConnector stores media below settings.MediaRoot and serves it under settings.MediaURL
func NewLocalConnector(settings *config.StorageSettings, logger logger.Logger) (media.Connector, error) {
	root, err := filepath.Abs(settings.MediaRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve media root: %w", err)
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create media root: %w", err)
	}

	mediaURL := settings.MediaURL
	if !strings.HasSuffix(mediaURL, "/") {
		mediaURL += "/"
	}

	return &localConnector{
		root:     root,
		mediaURL: mediaURL,
		logger:   logger,
	}, nil
}

func (c *localConnector) Name() string {
	return config.LocalStorageBackend
}

// resolve maps key onto a path inside the media root
func (c *localConnector) resolve(key string) (string, error) {
	key = strings.ReplaceAll(key, "\\", "/")
	if key == "" || strings.Contains(key, "\x00") {
		return "", fmt.Errorf("%q: %w", key, media.ErrInvalidKey)
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", fmt.Errorf("%q: %w", key, media.ErrInvalidKey)
		}
	}

	full := filepath.Join(c.root, filepath.FromSlash(path.Clean("/"+key)))
	rel, err := filepath.Rel(c.root, full)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%q: %w", key, media.ErrInvalidKey)
	}
	return full, nil
}

func (c *localConnector) Save(ctx context.Context, upload *media.Upload) (*media.Ref, error) {
	stem, ext := cleanFileName(upload.Filename)
	folder := upload.Slot.Folder()

	key := path.Join(folder, stem+ext)
	full, err := c.resolve(key)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create media folder: %w", err)
	}

	file, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	if errors.Is(err, fs.ErrExist) {
		key = path.Join(folder, stem+"_"+uniqueSuffix()+ext)
		if full, err = c.resolve(key); err != nil {
			return nil, err
		}
		file, err = os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o640)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create media file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, upload.Body); err != nil {
		_ = os.Remove(full)
		return nil, fmt.Errorf("failed to write media file: %w", err)
	}

	c.logger.Info("Stored local media file ", key)
	return &media.Ref{
		Backend: c.Name(),
		Kind:    upload.Kind(),
		Key:     key,
		URL:     c.mediaURL + key,
	}, nil
}

func (c *localConnector) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	full, err := c.resolve(key)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && info.IsDir()) {
		return nil, fmt.Errorf("%s: %w", key, media.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to stat media file: %w", err)
	}

	file, err := os.Open(full)
	if err != nil {
		return nil, fmt.Errorf("failed to open media file: %w", err)
	}
	return file, nil
}

func (c *localConnector) Exists(ctx context.Context, key string) (bool, error) {
	full, err := c.resolve(key)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(full)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to stat media file: %w", err)
	}
	return !info.IsDir(), nil
}

func (c *localConnector) Delete(ctx context.Context, key string) error {
	full, err := c.resolve(key)
	if err != nil {
		return err
	}

	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete media file: %w", err)
	}

	c.logger.Info("Deleted local media file ", key)
	return nil
}

func (c *localConnector) URL(key string, kind media.Kind) (string, error) {
	if _, err := c.resolve(key); err != nil {
		return "", err
	}
	return c.mediaURL + strings.TrimPrefix(key, "/"), nil
}
