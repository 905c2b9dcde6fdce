package content

import (
	"context"
	"io"
)

// Repository is the persistence contract shared by all content entities
type Repository[T Entity] interface {
	// Create inserts a new record
	Create(ctx context.Context, entity T) error
	// List returns records matching the query
	List(ctx context.Context, query *ListQuery) ([]T, error)
	// Count returns the number of records matching the query, ignoring limit and offset
	Count(ctx context.Context, query *ListQuery) (int64, error)
	// GetByID returns the record with the given ID or ErrNotFound
	GetByID(ctx context.Context, id string) (T, error)
	// UpdateByID replaces the stored record with entity
	UpdateByID(ctx context.Context, entity T) error
	// DeleteByID removes the record with the given ID or returns ErrNotFound
	DeleteByID(ctx context.Context, id string) error
	// FirstOrCreate returns the record matching match, inserting entity when none exists.
	// The boolean reports whether a record was created.
	FirstOrCreate(ctx context.Context, match map[string]interface{}, entity T) (T, bool, error)
}

// ProjectRepository adds slug lookups and public listing queries for projects
type ProjectRepository interface {
	Repository[*Project]
	GetBySlug(ctx context.Context, slug string) (*Project, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Search(ctx context.Context, filter ProjectFilter, limit, offset int) ([]*Project, int64, error)
	Related(ctx context.Context, project *Project, limit int) ([]*Project, error)
	Technologies(ctx context.Context) ([]*Skill, error)
}

// BlogPostRepository adds slug lookups and public listing queries for posts
type BlogPostRepository interface {
	Repository[*BlogPost]
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*BlogPost, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	Search(ctx context.Context, filter BlogFilter, limit, offset int) ([]*BlogPost, int64, error)
	Related(ctx context.Context, post *BlogPost, limit int) ([]*BlogPost, error)
	AllTags(ctx context.Context) ([]string, error)
}

// PersonalInfoRepository manages the single active profile
type PersonalInfoRepository interface {
	Repository[*PersonalInfo]
	GetActive(ctx context.Context) (*PersonalInfo, error)
	// Activate marks id active and every other record inactive
	Activate(ctx context.Context, id string) error
}

// SEORepository looks up settings per page
type SEORepository interface {
	Repository[*SEOSettings]
	GetByPage(ctx context.Context, page string) (*SEOSettings, error)
}

// Service is the dashboard CRUD contract
type Service[T Entity] interface {
	List(ctx context.Context, query *ListQuery) ([]T, int64, error)
	GetByID(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, entity T) (T, error)
	Update(ctx context.Context, id string, entity T) (T, error)
	Delete(ctx context.Context, id string) error
}

// PersonalInfoService manages the active profile and its cache
type PersonalInfoService interface {
	// GetActive returns the active profile or ErrNotFound
	GetActive(ctx context.Context) (*PersonalInfo, error)
	// GetOrCreateActive returns the active profile, creating an empty one when missing
	GetOrCreateActive(ctx context.Context) (*PersonalInfo, error)
	// Save stores info as the active profile
	Save(ctx context.Context, info *PersonalInfo) (*PersonalInfo, error)
	// UploadResume replaces the resume of the active profile
	UploadResume(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*PersonalInfo, error)
	// UploadProfileImage replaces the profile image of the active profile
	UploadProfileImage(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*PersonalInfo, error)
}

// SiteService assembles the read only public pages
type SiteService interface {
	Home(ctx context.Context) (*HomeView, error)
	About(ctx context.Context) (*AboutView, error)
	Projects(ctx context.Context, filter ProjectFilter, page int) (*ProjectListView, error)
	Project(ctx context.Context, slug string) (*ProjectDetailView, error)
	Blog(ctx context.Context, filter BlogFilter, page int) (*BlogListView, error)
	Post(ctx context.Context, slug string) (*BlogDetailView, error)
	Contact(ctx context.Context) (*ContactView, error)
}
