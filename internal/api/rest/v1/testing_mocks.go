//go:build unit
// +build unit

package v1

import (
	"context"
	"io"

	"github.com/Brownie-08/Portfolio/internal/app"
	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"

	"github.com/stretchr/testify/mock"
)

// MockSiteService is a mock implementation of content.SiteService
type MockSiteService struct {
	mock.Mock
}

func (m *MockSiteService) Home(ctx context.Context) (*content.HomeView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.HomeView), args.Error(1)
}

func (m *MockSiteService) About(ctx context.Context) (*content.AboutView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.AboutView), args.Error(1)
}

func (m *MockSiteService) Projects(ctx context.Context, filter content.ProjectFilter, page int) (*content.ProjectListView, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.ProjectListView), args.Error(1)
}

func (m *MockSiteService) Project(ctx context.Context, slug string) (*content.ProjectDetailView, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.ProjectDetailView), args.Error(1)
}

func (m *MockSiteService) Blog(ctx context.Context, filter content.BlogFilter, page int) (*content.BlogListView, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.BlogListView), args.Error(1)
}

func (m *MockSiteService) Post(ctx context.Context, slug string) (*content.BlogDetailView, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.BlogDetailView), args.Error(1)
}

func (m *MockSiteService) Contact(ctx context.Context) (*content.ContactView, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.ContactView), args.Error(1)
}

// MockContactService is a mock implementation of contact.Service
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Submit(ctx context.Context, form *contact.Form) (*contact.ContactMessage, error) {
	args := m.Called(ctx, form)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.ContactMessage), args.Error(1)
}

func (m *MockContactService) List(ctx context.Context, query *contact.MessageQuery) ([]*contact.ContactMessage, int64, error) {
	args := m.Called(ctx, query)
	messages, _ := args.Get(0).([]*contact.ContactMessage)
	return messages, args.Get(1).(int64), args.Error(2)
}

func (m *MockContactService) Get(ctx context.Context, id string) (*contact.ContactMessage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.ContactMessage), args.Error(1)
}

func (m *MockContactService) Bulk(ctx context.Context, action contact.BulkAction, ids []string) (int64, error) {
	args := m.Called(ctx, action, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockContactService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockContactService) Stats(ctx context.Context) (*contact.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contact.Stats), args.Error(1)
}

// MockPersonalInfoService is a mock implementation of content.PersonalInfoService
type MockPersonalInfoService struct {
	mock.Mock
}

func (m *MockPersonalInfoService) GetActive(ctx context.Context) (*content.PersonalInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.PersonalInfo), args.Error(1)
}

func (m *MockPersonalInfoService) GetOrCreateActive(ctx context.Context) (*content.PersonalInfo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.PersonalInfo), args.Error(1)
}

func (m *MockPersonalInfoService) Save(ctx context.Context, info *content.PersonalInfo) (*content.PersonalInfo, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.PersonalInfo), args.Error(1)
}

func (m *MockPersonalInfoService) UploadResume(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*content.PersonalInfo, error) {
	args := m.Called(ctx, filename, contentType, size, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.PersonalInfo), args.Error(1)
}

func (m *MockPersonalInfoService) UploadProfileImage(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*content.PersonalInfo, error) {
	args := m.Called(ctx, filename, contentType, size, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*content.PersonalInfo), args.Error(1)
}

// MockMediaService is a mock implementation of media.Service
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) Upload(ctx context.Context, upload *media.Upload) (*media.Ref, error) {
	args := m.Called(ctx, upload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Ref), args.Error(1)
}

func (m *MockMediaService) Open(ctx context.Context, ref media.Ref) (io.ReadCloser, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockMediaService) Delete(ctx context.Context, ref media.Ref) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

func (m *MockMediaService) ResolveURL(ref media.Ref) string {
	args := m.Called(ref)
	return args.String(0)
}

func (m *MockMediaService) Resolve(holders ...media.Holder) {
	m.Called(holders)
}

func (m *MockMediaService) Check(ctx context.Context, owner string, ref media.Ref) media.CheckResult {
	args := m.Called(ctx, owner, ref)
	return args.Get(0).(media.CheckResult)
}

func (m *MockMediaService) Migrate(ctx context.Context, ref media.Ref) (*media.Ref, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Ref), args.Error(1)
}

func (m *MockMediaService) IsLocal(ref media.Ref) bool {
	args := m.Called(ref)
	return args.Bool(0)
}

// MockAuthService is a mock implementation of accounts.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, *accounts.User, error) {
	args := m.Called(ctx, username, password)
	user, _ := args.Get(1).(*accounts.User)
	return args.String(0), user, args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *MockAuthService) Authenticate(ctx context.Context, token string) (*accounts.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*accounts.User), args.Error(1)
}

func (m *MockAuthService) EnsureUser(ctx context.Context, username, email, password string, superuser bool) (*accounts.User, bool, error) {
	args := m.Called(ctx, username, email, password, superuser)
	user, _ := args.Get(0).(*accounts.User)
	return user, args.Bool(1), args.Error(2)
}

// MockStatsProvider is a mock implementation of StatsProvider
type MockStatsProvider struct {
	mock.Mock
}

func (m *MockStatsProvider) Stats(ctx context.Context) (*app.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*app.DashboardStats), args.Error(1)
}

// MockHealthChecker is a mock implementation of HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Check(ctx context.Context) *app.HealthReport {
	args := m.Called(ctx)
	return args.Get(0).(*app.HealthReport)
}

func (m *MockHealthChecker) Ready(ctx context.Context) *app.ReadyReport {
	args := m.Called(ctx)
	return args.Get(0).(*app.ReadyReport)
}

// MockContentService is a mock implementation of content.Service
type MockContentService[T content.Entity] struct {
	mock.Mock
}

func (m *MockContentService[T]) List(ctx context.Context, query *content.ListQuery) ([]T, int64, error) {
	args := m.Called(ctx, query)
	items, _ := args.Get(0).([]T)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *MockContentService[T]) GetByID(ctx context.Context, id string) (T, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(T)
	return item, args.Error(1)
}

func (m *MockContentService[T]) Create(ctx context.Context, entity T) (T, error) {
	args := m.Called(ctx, entity)
	item, _ := args.Get(0).(T)
	return item, args.Error(1)
}

func (m *MockContentService[T]) Update(ctx context.Context, id string, entity T) (T, error) {
	args := m.Called(ctx, id, entity)
	item, _ := args.Get(0).(T)
	return item, args.Error(1)
}

func (m *MockContentService[T]) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
