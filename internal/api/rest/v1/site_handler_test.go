//go:build unit
// +build unit

package v1

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSiteHandler_Home_Success(t *testing.T) {
	mockSiteService := new(MockSiteService)
	handler := NewSiteHandler(mockSiteService, new(MockContactService))

	view := &content.HomeView{Site: content.SiteContext{PortfolioName: "Peter's Portfolio"}}
	mockSiteService.On("Home", mock.Anything).Return(view, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/", nil)

	handler.Home(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Peter's Portfolio")
	mockSiteService.AssertExpectations(t)
}

func TestSiteHandler_Home_InternalErrorHidden(t *testing.T) {
	mockSiteService := new(MockSiteService)
	handler := NewSiteHandler(mockSiteService, new(MockContactService))

	mockSiteService.On("Home", mock.Anything).Return(nil, errors.New("dial tcp: connection refused"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/", nil)

	handler.Home(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
	assert.NotContains(t, w.Body.String(), "connection refused")
	assert.Len(t, c.Errors, 1)
}

func TestSiteHandler_Projects_PassesFilterAndPage(t *testing.T) {
	mockSiteService := new(MockSiteService)
	handler := NewSiteHandler(mockSiteService, new(MockContactService))

	filter := content.ProjectFilter{Search: "api", Technology: "Go", Status: "completed"}
	mockSiteService.On("Projects", mock.Anything, filter, 2).Return(&content.ProjectListView{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/projects/?page=2&search=+api+&technology=Go&status=completed", nil)

	handler.Projects(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSiteService.AssertExpectations(t)
}

func TestSiteHandler_Blog_InvalidPageFallsBackToFirst(t *testing.T) {
	mockSiteService := new(MockSiteService)
	handler := NewSiteHandler(mockSiteService, new(MockContactService))

	mockSiteService.On("Blog", mock.Anything, content.BlogFilter{Tag: "django"}, 1).Return(&content.BlogListView{}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/blog/?page=abc&tag=django", nil)

	handler.Blog(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSiteService.AssertExpectations(t)
}

func TestSiteHandler_PostDetail_NotFound(t *testing.T) {
	mockSiteService := new(MockSiteService)
	handler := NewSiteHandler(mockSiteService, new(MockContactService))

	mockSiteService.On("Post", mock.Anything, "draft-post").Return(nil, content.ErrNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/blog/draft-post/", nil)
	c.Params = gin.Params{{Key: "slug", Value: "draft-post"}}

	handler.PostDetail(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockSiteService.AssertExpectations(t)
}

func TestSiteHandler_SubmitContact_JSON(t *testing.T) {
	mockContactService := new(MockContactService)
	handler := NewSiteHandler(new(MockSiteService), mockContactService)

	form := &contact.Form{Name: "Jane Doe", Email: "jane@example.com", Subject: "Hello there", Message: "I liked your portfolio."}
	mockContactService.On("Submit", mock.Anything, form).Return(&contact.ContactMessage{ID: "42", Name: "Jane Doe"}, nil)

	body, err := json.Marshal(form)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/contact/", strings.NewReader(string(body)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.SubmitContact(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var response ContactResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, contactSuccessMessage, response.Message)
	assert.Equal(t, "42", response.Contact.ID)
	mockContactService.AssertExpectations(t)
}

func TestSiteHandler_SubmitContact_FormEncodedWithFieldErrors(t *testing.T) {
	mockContactService := new(MockContactService)
	handler := NewSiteHandler(new(MockSiteService), mockContactService)

	formErr := &contact.FormError{Fields: map[string]string{"email": "Enter a valid email address."}}
	mockContactService.On("Submit", mock.Anything, mock.MatchedBy(func(f *contact.Form) bool {
		return f.Email == "not-an-email" && f.Honeypot == ""
	})).Return(nil, formErr)

	values := url.Values{"name": {"Jane"}, "email": {"not-an-email"}, "subject": {"Hello"}, "message": {"Some message"}}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/contact/", strings.NewReader(values.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	handler.SubmitContact(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var response ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Please correct the errors below.", response.Message)
	assert.Equal(t, "Enter a valid email address.", response.Errors["email"])
	mockContactService.AssertExpectations(t)
}
