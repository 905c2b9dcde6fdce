package media

import (
	"context"
	"io"
)

// Connector stores and serves files on one backend
type Connector interface {
	// Name returns the backend name recorded in Ref.Backend
	Name() string
	// Save stores the upload and returns a reference to it
	Save(ctx context.Context, upload *Upload) (*Ref, error)
	// Open returns the stored content
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Exists reports whether key is present on the backend
	Exists(ctx context.Context, key string) (bool, error)
	// Delete removes key from the backend
	Delete(ctx context.Context, key string) error
	// URL returns a public URL for key
	URL(key string, kind Kind) (string, error)
}

// Selector picks connectors for new uploads and resolves URLs for stored references
type Selector interface {
	For(kind Kind) Connector
	Lookup(backend string) (Connector, bool)
	URL(ref Ref) string
}

// Service is the application facing media API
type Service interface {
	// Upload stores a file for the given slot
	Upload(ctx context.Context, upload *Upload) (*Ref, error)
	// Open returns the content of a stored reference
	Open(ctx context.Context, ref Ref) (io.ReadCloser, error)
	// Delete removes a stored file, ignoring references that are already gone
	Delete(ctx context.Context, ref Ref) error
	// ResolveURL returns a working URL for ref or an empty string
	ResolveURL(ref Ref) string
	// Resolve rewrites the URL of every reference owned by the holders
	Resolve(holders ...Holder)
	// Check verifies that a stored reference is reachable
	Check(ctx context.Context, owner string, ref Ref) CheckResult
	// Migrate moves a stored reference to the connector selected for its kind
	Migrate(ctx context.Context, ref Ref) (*Ref, error)
	// IsLocal reports whether ref lives on the local filesystem backend
	IsLocal(ref Ref) bool
}
