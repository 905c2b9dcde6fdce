//go:build unit
// +build unit

package v1

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMediaHandler_Serve_Success(t *testing.T) {
	mockMediaService := new(MockMediaService)
	handler := NewMediaHandler(mockMediaService, new(MockPersonalInfoService), testutil.SetupTestLogger(t))

	ref := media.Ref{Backend: config.LocalStorageBackend, Key: "projects/cover.png"}
	mockMediaService.On("Open", mock.Anything, ref).Return(io.NopCloser(strings.NewReader("png-bytes")), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/media/projects/cover.png", nil)
	c.Params = gin.Params{{Key: "filepath", Value: "/projects/cover.png"}}

	handler.Serve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "png-bytes", w.Body.String())
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=3600", w.Header().Get("Cache-Control"))
	assert.Equal(t, `inline; filename="cover.png"`, w.Header().Get("Content-Disposition"))
	mockMediaService.AssertExpectations(t)
}

func TestMediaHandler_Serve_TraversalIsNotFound(t *testing.T) {
	mockMediaService := new(MockMediaService)
	handler := NewMediaHandler(mockMediaService, new(MockPersonalInfoService), testutil.SetupTestLogger(t))

	mockMediaService.On("Open", mock.Anything, mock.Anything).Return(nil, media.ErrInvalidKey)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/media/../secrets.env", nil)
	c.Params = gin.Params{{Key: "filepath", Value: "/../secrets.env"}}

	handler.Serve(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "File not found")
}

func TestMediaHandler_Serve_UnknownExtensionIsOctetStream(t *testing.T) {
	mockMediaService := new(MockMediaService)
	handler := NewMediaHandler(mockMediaService, new(MockPersonalInfoService), testutil.SetupTestLogger(t))

	mockMediaService.On("Open", mock.Anything, mock.Anything).Return(io.NopCloser(strings.NewReader("data")), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/media/files/blob", nil)
	c.Params = gin.Params{{Key: "filepath", Value: "/files/blob"}}

	handler.Serve(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
}

func TestMediaHandler_Resume_LocalIsAttachment(t *testing.T) {
	mockMediaService := new(MockMediaService)
	mockPersonalInfoService := new(MockPersonalInfoService)
	handler := NewMediaHandler(mockMediaService, mockPersonalInfoService, testutil.SetupTestLogger(t))

	ref := media.Ref{Backend: config.LocalStorageBackend, Kind: media.KindDocument, Key: "files/resume"}
	mockPersonalInfoService.On("GetActive", mock.Anything).Return(&content.PersonalInfo{Resume: ref}, nil)
	mockMediaService.On("IsLocal", ref).Return(true)
	mockMediaService.On("Open", mock.Anything, ref).Return(io.NopCloser(strings.NewReader("%PDF")), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/resume/", nil)

	handler.Resume(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="resume"`, w.Header().Get("Content-Disposition"))
	mockMediaService.AssertExpectations(t)
}

func TestMediaHandler_Resume_RemoteRedirects(t *testing.T) {
	mockMediaService := new(MockMediaService)
	mockPersonalInfoService := new(MockPersonalInfoService)
	handler := NewMediaHandler(mockMediaService, mockPersonalInfoService, testutil.SetupTestLogger(t))

	ref := media.Ref{Backend: "cloudinary", Kind: media.KindDocument, Key: "files/cv.pdf"}
	mockPersonalInfoService.On("GetActive", mock.Anything).Return(&content.PersonalInfo{Resume: ref}, nil)
	mockMediaService.On("IsLocal", ref).Return(false)
	mockMediaService.On("ResolveURL", ref).Return("https://res.cloudinary.com/demo/raw/upload/files/cv.pdf")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/resume/", nil)

	handler.Resume(c)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://res.cloudinary.com/demo/raw/upload/files/cv.pdf", w.Header().Get("Location"))
	mockMediaService.AssertNotCalled(t, "Open", mock.Anything, mock.Anything)
}

func TestMediaHandler_ProfileImage_Missing(t *testing.T) {
	mockPersonalInfoService := new(MockPersonalInfoService)
	handler := NewMediaHandler(new(MockMediaService), mockPersonalInfoService, testutil.SetupTestLogger(t))

	mockPersonalInfoService.On("GetActive", mock.Anything).Return(&content.PersonalInfo{}, nil).Once()
	mockPersonalInfoService.On("GetActive", mock.Anything).Return(nil, content.ErrNotFound).Once()

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request, _ = http.NewRequest("GET", "/profile-image/", nil)

		handler.ProfileImage(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Profile image not found")
	}
	mockPersonalInfoService.AssertExpectations(t)
}

func TestMediaHandler_Upload_Success(t *testing.T) {
	mockMediaService := new(MockMediaService)
	handler := NewMediaHandler(mockMediaService, new(MockPersonalInfoService), testutil.SetupTestLogger(t))

	ref := &media.Ref{Backend: config.LocalStorageBackend, Kind: media.KindImage, Key: "blog/cover.png", URL: "/media/blog/cover.png"}
	mockMediaService.On("Upload", mock.Anything, mock.MatchedBy(func(u *media.Upload) bool {
		return u.Slot == media.SlotBlogImage && u.Filename == "cover.png"
	})).Return(ref, nil)

	body, contentType := testutil.CreateUploadRequestBody(t, "cover.png", []byte("png-bytes"), map[string]string{"slot": "blog_image"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/dashboard/media/", body)
	c.Request.Header.Set("Content-Type", contentType)

	handler.Upload(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "/media/blog/cover.png")
	mockMediaService.AssertExpectations(t)
}

func TestMediaHandler_Upload_UnknownSlot(t *testing.T) {
	mockMediaService := new(MockMediaService)
	handler := NewMediaHandler(mockMediaService, new(MockPersonalInfoService), testutil.SetupTestLogger(t))

	body, contentType := testutil.CreateUploadRequestBody(t, "cover.png", []byte("png-bytes"), map[string]string{"slot": "wallpaper"})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/dashboard/media/", body)
	c.Request.Header.Set("Content-Type", contentType)

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown upload slot")
	mockMediaService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything)
}

func TestMediaHandler_Upload_MissingFile(t *testing.T) {
	handler := NewMediaHandler(new(MockMediaService), new(MockPersonalInfoService), testutil.SetupTestLogger(t))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("POST", "/dashboard/media/", nil)

	handler.Upload(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid form data")
}
