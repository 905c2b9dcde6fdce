package contact

import (
	"context"
	"time"
)

// Repository stores contact messages
type Repository interface {
	Create(ctx context.Context, message *ContactMessage) error
	List(ctx context.Context, query *MessageQuery) ([]*ContactMessage, error)
	Count(ctx context.Context, query *MessageQuery) (int64, error)
	GetByID(ctx context.Context, id string) (*ContactMessage, error)
	SetRead(ctx context.Context, ids []string, read bool) (int64, error)
	Delete(ctx context.Context, ids []string) (int64, error)
	CountSince(ctx context.Context, since time.Time) (int64, error)
}

// Mailer delivers email
type Mailer interface {
	Send(ctx context.Context, email *Email) error
}

// Service handles submissions and the dashboard inbox
type Service interface {
	// Submit validates and stores a form, then notifies the owner on a best effort basis
	Submit(ctx context.Context, form *Form) (*ContactMessage, error)
	List(ctx context.Context, query *MessageQuery) ([]*ContactMessage, int64, error)
	// Get returns a message and marks it read
	Get(ctx context.Context, id string) (*ContactMessage, error)
	Bulk(ctx context.Context, action BulkAction, ids []string) (int64, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*Stats, error)
}
