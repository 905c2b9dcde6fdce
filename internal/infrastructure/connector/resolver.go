package connector

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
)

// Resolver decides which connector receives new uploads and how stored references become URLs
type Resolver struct {
	connectors      map[string]media.Connector
	imageBackend    string
	documentBackend string
	mediaURL        string
}

// NewResolver registers connectors and applies the backend choice in settings
func NewResolver(settings *config.StorageSettings, connectors ...media.Connector) (*Resolver, error) {
	r := &Resolver{
		connectors:      make(map[string]media.Connector, len(connectors)),
		imageBackend:    settings.Backend,
		documentBackend: settings.DocumentBackend,
		mediaURL:        settings.MediaURL,
	}
	if r.imageBackend == "" {
		r.imageBackend = config.LocalStorageBackend
	}
	if r.documentBackend == "" {
		r.documentBackend = r.imageBackend
	}
	if r.mediaURL != "" && !strings.HasSuffix(r.mediaURL, "/") {
		r.mediaURL += "/"
	}

	for _, c := range connectors {
		r.connectors[c.Name()] = c
	}
	for _, backend := range []string{r.imageBackend, r.documentBackend} {
		if _, ok := r.connectors[backend]; !ok {
			return nil, fmt.Errorf("no connector registered for storage backend %q", backend)
		}
	}
	return r, nil
}

// NewConnector creates the connector for one backend
func NewConnector(ctx context.Context, backend string, settings *config.StorageSettings, logger logger.Logger) (media.Connector, error) {
	switch backend {
	case config.LocalStorageBackend:
		return NewLocalConnector(settings, logger)
	case config.CloudinaryStorageBackend:
		return NewCloudinaryConnector(&settings.Cloudinary, logger)
	case config.S3StorageBackend:
		return NewS3Connector(ctx, &settings.S3, logger)
	case config.AzureStorageBackend:
		return NewAzureBlobConnector(ctx, &settings.Azure, logger)
	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", backend)
	}
}

// NewResolverFromSettings builds every connector the settings use, local storage included
func NewResolverFromSettings(ctx context.Context, settings *config.StorageSettings, logger logger.Logger) (*Resolver, error) {
	var connectors []media.Connector
	for _, backend := range settings.Backends() {
		c, err := NewConnector(ctx, backend, settings, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s connector: %w", backend, err)
		}
		connectors = append(connectors, c)
	}
	return NewResolver(settings, connectors...)
}

// For returns the connector new uploads of kind are stored on
func (r *Resolver) For(kind media.Kind) media.Connector {
	if kind == media.KindDocument {
		return r.connectors[r.documentBackend]
	}
	return r.connectors[r.imageBackend]
}

// Lookup returns the connector registered under backend
func (r *Resolver) Lookup(backend string) (media.Connector, bool) {
	c, ok := r.connectors[backend]
	return c, ok
}

// URL returns a usable URL for ref, or "" when none can be built.
// The owning connector wins, then an absolute stored URL, then the local media prefix.
func (r *Resolver) URL(ref media.Ref) string {
	if ref.IsZero() {
		return ""
	}

	if c, ok := r.connectors[ref.Backend]; ok && ref.Key != "" {
		if u, err := c.URL(ref.Key, ref.Kind); err == nil {
			return u
		}
	}

	if u, err := url.Parse(ref.URL); err == nil && u.IsAbs() && u.Host != "" {
		if u.Scheme == "http" && strings.HasSuffix(u.Hostname(), "cloudinary.com") {
			u.Scheme = "https"
		}
		return u.String()
	}

	if ref.Key != "" && r.mediaURL != "" && !strings.Contains(ref.Key, "..") {
		return r.mediaURL + strings.TrimPrefix(ref.Key, "/")
	}
	return ""
}

func isNotFound(err error) bool {
	return errors.Is(err, media.ErrNotFound)
}
