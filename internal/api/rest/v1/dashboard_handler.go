package v1

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/app"
	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// MessagePageSize is the number of inbox messages per dashboard page
const MessagePageSize = 20

// StatsProvider summarises site content for the dashboard overview
type StatsProvider interface {
	Stats(ctx context.Context) (*app.DashboardStats, error)
}

// DashboardHandler defines the interface for the dashboard overview, inbox and profile pages
type DashboardHandler interface {
	Overview(ctx *gin.Context)
	Messages(ctx *gin.Context)
	Message(ctx *gin.Context)
	BulkMessages(ctx *gin.Context)
	DeleteMessage(ctx *gin.Context)
	PersonalInfo(ctx *gin.Context)
	UpdatePersonalInfo(ctx *gin.Context)
	UploadResume(ctx *gin.Context)
	UploadProfileImage(ctx *gin.Context)
}

type dashboardHandler struct {
	stats               StatsProvider
	contactService      contact.Service
	personalInfoService content.PersonalInfoService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(stats StatsProvider, contactService contact.Service, personalInfoService content.PersonalInfoService) DashboardHandler {
	return &dashboardHandler{
		stats:               stats,
		contactService:      contactService,
		personalInfoService: personalInfoService,
	}
}

// Overview returns content counters and recent activity
// @Summary Dashboard overview
// @Tags Dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Router /dashboard/ [get]
func (handler *dashboardHandler) Overview(ctx *gin.Context) {
	stats, err := handler.stats.Stats(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	inbox, err := handler.contactService.Stats(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, DashboardResponse{User: currentUser(ctx), Stats: stats, Inbox: inbox})
}

// Messages lists the inbox, newest first
// @Summary List contact messages
// @Tags Dashboard
// @Produce json
// @Param page query int false "Page number"
// @Param status query string false "read or unread"
// @Param search query string false "Search in name, email, subject and message"
// @Success 200 {object} MessagesResponse
// @Failure 400 {object} ErrorResponse
// @Router /dashboard/messages/ [get]
func (handler *dashboardHandler) Messages(ctx *gin.Context) {
	query := &contact.MessageQuery{
		Status: strings.TrimSpace(ctx.Query("status")),
		Search: strings.TrimSpace(ctx.Query("search")),
		Limit:  MessagePageSize,
	}

	page, offset := content.PageOffset(strutil.IntOr(ctx.Query("page"), 1), MessagePageSize)
	query.Offset = offset

	messages, total, err := handler.contactService.List(ctx.Request.Context(), query)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	if clamped, offset := content.PageBounds(page, MessagePageSize, total); clamped != page {
		page, query.Offset = clamped, offset
		if messages, total, err = handler.contactService.List(ctx.Request.Context(), query); err != nil {
			abortWithError(ctx, err)
			return
		}
	}

	stats, err := handler.contactService.Stats(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, MessagesResponse{
		Messages: content.NewPage(messages, total, page, MessagePageSize),
		Status:   query.Status,
		Search:   query.Search,
		Stats:    stats,
	})
}

// Message returns one message and marks it read
// @Summary Get a contact message
// @Tags Dashboard
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} contact.ContactMessage
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/messages/{id}/ [get]
func (handler *dashboardHandler) Message(ctx *gin.Context) {
	message, err := handler.contactService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, message)
}

// BulkMessages applies mark_read, mark_unread or delete to the selected messages
// @Summary Bulk inbox action
// @Tags Dashboard
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body BulkRequest true "Action and message IDs"
// @Success 200 {object} BulkResponse
// @Failure 400 {object} ErrorResponse
// @Router /dashboard/messages/bulk/ [post]
func (handler *dashboardHandler) BulkMessages(ctx *gin.Context) {
	var request BulkRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid bulk request: "+err.Error()))
		return
	}
	if len(request.IDs) == 0 {
		ctx.JSON(http.StatusBadRequest, errorResponse("No messages selected."))
		return
	}

	action, err := contact.ParseBulkAction(request.Action)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	affected, err := handler.contactService.Bulk(ctx.Request.Context(), action, request.IDs)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, BulkResponse{Action: string(action), Affected: affected})
}

// DeleteMessage removes a single message
// @Summary Delete a contact message
// @Tags Dashboard
// @Param id path string true "Message ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/messages/{id}/ [delete]
func (handler *dashboardHandler) DeleteMessage(ctx *gin.Context) {
	if err := handler.contactService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// PersonalInfo returns the active profile, creating it on first visit
// @Summary Get personal info
// @Tags Dashboard
// @Produce json
// @Success 200 {object} content.PersonalInfo
// @Router /dashboard/personal-info/ [get]
func (handler *dashboardHandler) PersonalInfo(ctx *gin.Context) {
	info, err := handler.personalInfoService.GetOrCreateActive(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}

// UpdatePersonalInfo merges the request body into the active profile
// @Summary Update personal info
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param requestBody body content.PersonalInfo true "Profile fields"
// @Success 200 {object} content.PersonalInfo
// @Failure 400 {object} ErrorResponse
// @Router /dashboard/personal-info/ [put]
func (handler *dashboardHandler) UpdatePersonalInfo(ctx *gin.Context) {
	info, err := handler.personalInfoService.GetOrCreateActive(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	id, profileImage, resume := info.ID, info.ProfileImage, info.Resume
	if err := ctx.ShouldBindJSON(info); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid personal info: "+err.Error()))
		return
	}
	// files change only through the upload endpoints
	info.ID, info.ProfileImage, info.Resume = id, profileImage, resume

	saved, err := handler.personalInfoService.Save(ctx.Request.Context(), info)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, saved)
}

type uploadFunc func(ctx context.Context, filename, contentType string, size int64, body io.Reader) (*content.PersonalInfo, error)

// UploadResume replaces the resume of the active profile
// @Summary Upload resume
// @Tags Dashboard
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Resume"
// @Success 200 {object} content.PersonalInfo
// @Failure 400 {object} ErrorResponse
// @Router /dashboard/personal-info/upload-cv/ [post]
func (handler *dashboardHandler) UploadResume(ctx *gin.Context) {
	handler.upload(ctx, handler.personalInfoService.UploadResume)
}

// UploadProfileImage replaces the profile image of the active profile
// @Summary Upload profile image
// @Tags Dashboard
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image"
// @Success 200 {object} content.PersonalInfo
// @Failure 400 {object} ErrorResponse
// @Router /dashboard/personal-info/profile-image/ [post]
func (handler *dashboardHandler) UploadProfileImage(ctx *gin.Context) {
	handler.upload(ctx, handler.personalInfoService.UploadProfileImage)
}

func (handler *dashboardHandler) upload(ctx *gin.Context, store uploadFunc) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid form data"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse(fmt.Sprintf("failed to read uploaded file: %v", err)))
		return
	}
	defer file.Close()

	info, err := store(ctx.Request.Context(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size, file)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, info)
}
