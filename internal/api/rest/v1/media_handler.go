package v1

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/httputil"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	mediaCacheControl  = "public, max-age=3600"
	defaultMediaType   = "application/octet-stream"
	defaultResumeType  = "application/pdf"
	defaultProfileType = "image/jpeg"
)

// MediaHandler defines the interface for serving and uploading media files
type MediaHandler interface {
	Serve(ctx *gin.Context)
	Resume(ctx *gin.Context)
	ProfileImage(ctx *gin.Context)
	Upload(ctx *gin.Context)
}

type mediaHandler struct {
	mediaService        media.Service
	personalInfoService content.PersonalInfoService
	logger              logger.Logger
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService media.Service, personalInfoService content.PersonalInfoService, logger logger.Logger) MediaHandler {
	return &mediaHandler{
		mediaService:        mediaService,
		personalInfoService: personalInfoService,
		logger:              logger,
	}
}

// Serve streams a file stored on local disk. Paths outside the media root and missing files are 404.
// @Summary Serve a local media file
// @Tags Media
// @Param filepath path string true "Path below the media root"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Router /media/{filepath} [get]
func (handler *mediaHandler) Serve(ctx *gin.Context) {
	key := strings.TrimPrefix(ctx.Param("filepath"), "/")
	ref := media.Ref{Backend: config.LocalStorageBackend, Key: key}
	handler.stream(ctx, ref, true, defaultMediaType)
}

// Resume downloads the active resume, redirecting when it lives on a remote backend
func (handler *mediaHandler) Resume(ctx *gin.Context) {
	handler.serveProfileFile(ctx, func(info *content.PersonalInfo) media.Ref { return info.Resume }, false, defaultResumeType, "Resume not found")
}

// ProfileImage shows the active profile image inline
func (handler *mediaHandler) ProfileImage(ctx *gin.Context) {
	handler.serveProfileFile(ctx, func(info *content.PersonalInfo) media.Ref { return info.ProfileImage }, true, defaultProfileType, "Profile image not found")
}

func (handler *mediaHandler) serveProfileFile(ctx *gin.Context, field func(*content.PersonalInfo) media.Ref, inline bool, fallbackType, notFound string) {
	info, err := handler.personalInfoService.GetActive(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, errorResponse(notFound))
			return
		}
		abortWithError(ctx, err)
		return
	}

	ref := field(info)
	if ref.IsZero() {
		ctx.JSON(http.StatusNotFound, errorResponse(notFound))
		return
	}
	if !handler.mediaService.IsLocal(ref) {
		url := handler.mediaService.ResolveURL(ref)
		if url == "" {
			ctx.JSON(http.StatusNotFound, errorResponse(notFound))
			return
		}
		ctx.Redirect(http.StatusFound, url)
		return
	}
	handler.stream(ctx, ref, inline, fallbackType)
}

func (handler *mediaHandler) stream(ctx *gin.Context, ref media.Ref, inline bool, fallbackType string) {
	body, err := handler.mediaService.Open(ctx.Request.Context(), ref)
	if err != nil {
		if errors.Is(err, media.ErrNotFound) || errors.Is(err, media.ErrInvalidKey) {
			ctx.JSON(http.StatusNotFound, errorResponse("File not found"))
			return
		}
		handler.logger.Error("failed to open media file: ", err)
		abortWithError(ctx, err)
		return
	}
	defer body.Close()

	name := ref.Filename()
	contentType := mime.TypeByExtension(path.Ext(name))
	if contentType == "" {
		contentType = fallbackType
	}

	ctx.Header("Cache-Control", mediaCacheControl)
	ctx.Header("Content-Disposition", httputil.AttachmentDisposition(name, inline))
	ctx.Header("Content-Type", contentType)
	ctx.Status(http.StatusOK)
	if _, err := io.Copy(ctx.Writer, body); err != nil {
		handler.logger.Warn("failed to stream media file: ", err)
	}
}

// Upload stores a multipart file for a slot and returns its reference
// @Summary Upload a media file
// @Tags Dashboard
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "File"
// @Param slot formData string true "Upload slot"
// @Success 201 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Router /dashboard/media/ [post]
func (handler *mediaHandler) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid form data"))
		return
	}
	slot, err := media.ParseSlot(ctx.PostForm("slot"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("failed to read uploaded file"))
		return
	}
	defer file.Close()

	ref, err := handler.mediaService.Upload(ctx.Request.Context(), &media.Upload{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Slot:        slot,
		Body:        file,
	})
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, UploadResponse{Slot: string(slot), Ref: ref})
}
