package v1

import (
	"net/http"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

const contactSuccessMessage = "Thank you for your message! I will get back to you soon."

// SiteHandler defines the interface for the public pages
type SiteHandler interface {
	Home(ctx *gin.Context)
	About(ctx *gin.Context)
	Projects(ctx *gin.Context)
	ProjectDetail(ctx *gin.Context)
	Blog(ctx *gin.Context)
	PostDetail(ctx *gin.Context)
	Contact(ctx *gin.Context)
	SubmitContact(ctx *gin.Context)
}

type siteHandler struct {
	siteService    content.SiteService
	contactService contact.Service
}

// NewSiteHandler creates a new SiteHandler
func NewSiteHandler(siteService content.SiteService, contactService contact.Service) SiteHandler {
	return &siteHandler{
		siteService:    siteService,
		contactService: contactService,
	}
}

// Home returns the landing page
// @Summary Landing page
// @Tags Site
// @Produce json
// @Success 200 {object} content.HomeView
// @Router / [get]
func (handler *siteHandler) Home(ctx *gin.Context) {
	view, err := handler.siteService.Home(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

func (handler *siteHandler) About(ctx *gin.Context) {
	view, err := handler.siteService.About(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Projects lists projects, six per page
// @Summary Project listing
// @Tags Site
// @Produce json
// @Param page query int false "Page number"
// @Param search query string false "Search in title, description and technologies"
// @Param technology query string false "Technology name"
// @Param status query string false "Project status"
// @Success 200 {object} content.ProjectListView
// @Router /projects/ [get]
func (handler *siteHandler) Projects(ctx *gin.Context) {
	filter := content.ProjectFilter{
		Search:     strings.TrimSpace(ctx.Query("search")),
		Technology: strings.TrimSpace(ctx.Query("technology")),
		Status:     strings.TrimSpace(ctx.Query("status")),
	}

	view, err := handler.siteService.Projects(ctx.Request.Context(), filter, strutil.IntOr(ctx.Query("page"), 1))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

func (handler *siteHandler) ProjectDetail(ctx *gin.Context) {
	view, err := handler.siteService.Project(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// Blog lists published posts, six per page
// @Summary Blog listing
// @Tags Site
// @Produce json
// @Param page query int false "Page number"
// @Param search query string false "Search in title, body and tags"
// @Param tag query string false "Tag"
// @Success 200 {object} content.BlogListView
// @Router /blog/ [get]
func (handler *siteHandler) Blog(ctx *gin.Context) {
	filter := content.BlogFilter{
		Search: strings.TrimSpace(ctx.Query("search")),
		Tag:    strings.TrimSpace(ctx.Query("tag")),
	}

	view, err := handler.siteService.Blog(ctx.Request.Context(), filter, strutil.IntOr(ctx.Query("page"), 1))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

func (handler *siteHandler) PostDetail(ctx *gin.Context) {
	view, err := handler.siteService.Post(ctx.Request.Context(), ctx.Param("slug"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

func (handler *siteHandler) Contact(ctx *gin.Context) {
	view, err := handler.siteService.Contact(ctx.Request.Context())
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SubmitContact stores a contact form submission
// @Summary Submit the contact form
// @Tags Site
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body contact.Form true "Contact form"
// @Success 201 {object} ContactResponse
// @Failure 400 {object} ErrorResponse
// @Router /contact/ [post]
func (handler *siteHandler) SubmitContact(ctx *gin.Context) {
	var form contact.Form
	if err := ctx.ShouldBind(&form); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid contact form: "+err.Error()))
		return
	}

	message, err := handler.contactService.Submit(ctx.Request.Context(), &form)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, ContactResponse{Message: contactSuccessMessage, Contact: message})
}
