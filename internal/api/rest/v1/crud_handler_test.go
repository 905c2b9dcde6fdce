//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProjectCrudHandler() (CrudHandler, *MockContentService[*content.Project]) {
	service := new(MockContentService[*content.Project])
	return NewCrudHandler("Project", service, func() *content.Project { return &content.Project{} }), service
}

func TestCrudHandler_List(t *testing.T) {
	handler, service := newProjectCrudHandler()

	query := &content.ListQuery{Search: "shop", SortBy: "title", SortOrder: "asc", Limit: DashboardPageSize}
	service.On("List", mock.Anything, query).Return([]*content.Project{{Title: "E-Commerce Platform"}}, int64(1), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/dashboard/projects/?search=shop&sort=title&order=ASC", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var page content.Page[*content.Project]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, DashboardPageSize, page.PageSize)
	assert.Equal(t, "E-Commerce Platform", page.Items[0].Title)
	service.AssertExpectations(t)
}

func TestCrudHandler_List_BadSortIsRejected(t *testing.T) {
	handler, service := newProjectCrudHandler()
	service.On("List", mock.Anything, mock.Anything).Return(nil, int64(0), validators.Errorf("cannot sort by %q", "password"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/dashboard/projects/?sort=password", nil)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCrudHandler_List_HugePageIsClamped(t *testing.T) {
	handler, service := newProjectCrudHandler()

	service.On("List", mock.Anything, mock.MatchedBy(func(q *content.ListQuery) bool { return q.Offset > 0 && q.Validate() == nil })).
		Return([]*content.Project{}, int64(12), nil).Once()
	service.On("List", mock.Anything, mock.MatchedBy(func(q *content.ListQuery) bool { return q.Offset == DashboardPageSize })).
		Return([]*content.Project{{Title: "Last"}, {Title: "Page"}}, int64(12), nil).Once()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/dashboard/projects/?page=9223372036854775807", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var page content.Page[*content.Project]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Number)
	assert.Len(t, page.Items, 2)
	service.AssertExpectations(t)
}

func TestCrudHandler_Create(t *testing.T) {
	handler, service := newProjectCrudHandler()
	service.On("Create", mock.Anything, mock.MatchedBy(func(p *content.Project) bool {
		return p.Title == "Task API" && len(p.Tags) == 1 && p.Tags[0].ID == "t1"
	})).Return(&content.Project{Base: content.Base{ID: "p1"}, Title: "Task API", Slug: "task-api"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/dashboard/projects/", strings.NewReader(`{"title":"Task API","description":"REST API","tags":[{"id":"t1"}]}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"task-api"`)
	service.AssertExpectations(t)
}

func TestCrudHandler_Create_SlugConflict(t *testing.T) {
	handler, service := newProjectCrudHandler()
	service.On("Create", mock.Anything, mock.Anything).Return(nil, content.ErrConflict)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/dashboard/projects/", strings.NewReader(`{"title":"Task API","slug":"taken"}`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCrudHandler_Create_MalformedBody(t *testing.T) {
	handler, service := newProjectCrudHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/dashboard/projects/", strings.NewReader(`{"title":`))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid project")
	service.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCrudHandler_Update_KeepsStoredImage(t *testing.T) {
	handler, service := newProjectCrudHandler()

	image := media.Ref{Backend: "local", Kind: media.KindImage, Key: "projects/old.png"}
	service.On("GetByID", mock.Anything, "p1").Return(&content.Project{Base: content.Base{ID: "p1"}, Image: image}, nil)
	service.On("Update", mock.Anything, "p1", mock.MatchedBy(func(p *content.Project) bool {
		return p.Title == "Renamed" && p.Image == image
	})).Return(&content.Project{Base: content.Base{ID: "p1"}, Title: "Renamed", Image: image}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/dashboard/projects/p1/", strings.NewReader(`{"title":"Renamed","description":"d"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "p1"}}

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestCrudHandler_Update_ReplacesImage(t *testing.T) {
	handler, service := newProjectCrudHandler()

	service.On("GetByID", mock.Anything, "p1").Return(&content.Project{Image: media.Ref{Backend: "local", Key: "projects/old.png"}}, nil)
	service.On("Update", mock.Anything, "p1", mock.MatchedBy(func(p *content.Project) bool {
		return p.Image.Key == "projects/new.png"
	})).Return(&content.Project{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/dashboard/projects/p1/", strings.NewReader(`{"title":"T","image":{"backend":"local","key":"projects/new.png"}}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "p1"}}

	handler.Update(c)

	assert.Equal(t, http.StatusOK, w.Code)
	service.AssertExpectations(t)
}

func TestCrudHandler_Update_NotFound(t *testing.T) {
	handler, service := newProjectCrudHandler()
	service.On("GetByID", mock.Anything, "missing").Return(nil, content.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("PUT", "/dashboard/projects/missing/", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.Update(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCrudHandler_Delete(t *testing.T) {
	handler, service := newProjectCrudHandler()
	service.On("Delete", mock.Anything, "p1").Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("DELETE", "/dashboard/projects/p1/", nil)
	c.Params = gin.Params{{Key: "id", Value: "p1"}}

	handler.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Project deleted successfully!")
	service.AssertExpectations(t)
}

func TestKeepStoredMedia_IgnoresEntitiesWithoutFiles(t *testing.T) {
	tag := &content.Tag{Name: "go"}
	keepStoredMedia(tag, &content.Tag{Name: "old"})
	assert.Equal(t, "go", tag.Name)
}
