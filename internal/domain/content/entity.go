package content

import (
	"errors"
	"time"

	"github.com/Brownie-08/Portfolio/internal/pkg/validators"
)

var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a unique field is already taken
	ErrConflict = errors.New("conflict")
)

// Base carries the identity and timestamps shared by every entity
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Meta exposes the embedded Base to generic code
func (b *Base) Meta() *Base {
	return b
}

// Entity is implemented by all content types
type Entity interface {
	Meta() *Base
	Validate() error
}

// Normalizer is implemented by entities that tidy derived fields before validation
type Normalizer interface {
	Normalize()
}

// ListQuery filters, sorts and paginates a repository listing.
// Filters holds exact matches keyed by column name.
type ListQuery struct {
	Search    string                 `validate:"max=200"`
	Filters   map[string]interface{} `validate:"-"`
	Limit     int                    `validate:"gte=0,lte=500"`
	Offset    int                    `validate:"gte=0"`
	SortBy    string                 `validate:"omitempty,max=64"`
	SortOrder string                 `validate:"omitempty,oneof=asc desc"`
}

// NewListQuery returns an empty query
func NewListQuery() *ListQuery {
	return &ListQuery{Filters: map[string]interface{}{}}
}

// Where adds an exact match filter
func (q *ListQuery) Where(column string, value interface{}) *ListQuery {
	if q.Filters == nil {
		q.Filters = map[string]interface{}{}
	}
	q.Filters[column] = value
	return q
}

// Page is one page of a paginated listing
type Page[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	Number      int   `json:"page"`
	PageSize    int   `json:"page_size"`
	NumPages    int   `json:"num_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

// maxPageNumber bounds page numbers taken from requests before the row count is known
const maxPageNumber = 1 << 20

// PageOffset returns the requested page pulled into [1, maxPageNumber] and its row offset.
// PageBounds still has to clamp the result once the total is known.
func PageOffset(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if page > maxPageNumber {
		page = maxPageNumber
	}
	return page, (page - 1) * size
}

// PageBounds clamps the requested page number into range and returns it with the row offset.
// Pages are numbered from 1. An empty listing still has one page.
func PageBounds(page, size int, total int64) (int, int) {
	numPages := numPages(size, total)
	if page < 1 {
		page = 1
	}
	if page > numPages {
		page = numPages
	}
	return page, (page - 1) * size
}

// NewPage assembles a Page from one slice of items
func NewPage[T any](items []T, total int64, number, size int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	n := numPages(size, total)
	return &Page[T]{
		Items:       items,
		Total:       total,
		Number:      number,
		PageSize:    size,
		NumPages:    n,
		HasNext:     number < n,
		HasPrevious: number > 1,
	}
}

func numPages(size int, total int64) int {
	if size <= 0 || total <= 0 {
		return 1
	}
	return int((total + int64(size) - 1) / int64(size))
}

// Validate checks the query bounds
func (q *ListQuery) Validate() error {
	return validators.Struct(q)
}
