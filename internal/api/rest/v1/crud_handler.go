package v1

import (
	"net/http"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/strutil"

	"github.com/gin-gonic/gin"
)

// DashboardPageSize is the number of records per page in dashboard listings
const DashboardPageSize = 10

// CrudHandler defines the interface for managing one kind of content from the dashboard
type CrudHandler interface {
	List(ctx *gin.Context)
	Get(ctx *gin.Context)
	Create(ctx *gin.Context)
	Update(ctx *gin.Context)
	Delete(ctx *gin.Context)
}

type crudHandler[T content.Entity] struct {
	service   content.Service[T]
	label     string
	newEntity func() T
}

// NewCrudHandler creates a CrudHandler. label names the entity in user facing messages,
// newEntity returns an empty value to bind request bodies into.
func NewCrudHandler[T content.Entity](label string, service content.Service[T], newEntity func() T) CrudHandler {
	return &crudHandler[T]{
		service:   service,
		label:     label,
		newEntity: newEntity,
	}
}

// List returns one page of records
// @Summary List dashboard records
// @Tags Dashboard
// @Produce json
// @Param page query int false "Page number"
// @Param search query string false "Search term"
// @Param sort query string false "Sort column"
// @Param order query string false "asc or desc"
// @Success 200 {object} content.Page[any]
// @Failure 400 {object} ErrorResponse
// @Router /dashboard/{resource}/ [get]
func (handler *crudHandler[T]) List(ctx *gin.Context) {
	query := &content.ListQuery{
		Search:    strings.TrimSpace(ctx.Query("search")),
		SortBy:    strings.TrimSpace(ctx.Query("sort")),
		SortOrder: strings.ToLower(strings.TrimSpace(ctx.Query("order"))),
		Limit:     DashboardPageSize,
	}

	page, offset := content.PageOffset(strutil.IntOr(ctx.Query("page"), 1), DashboardPageSize)
	query.Offset = offset

	items, total, err := handler.service.List(ctx.Request.Context(), query)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	if clamped, offset := content.PageBounds(page, DashboardPageSize, total); clamped != page {
		page, query.Offset = clamped, offset
		if items, total, err = handler.service.List(ctx.Request.Context(), query); err != nil {
			abortWithError(ctx, err)
			return
		}
	}
	ctx.JSON(http.StatusOK, content.NewPage(items, total, page, DashboardPageSize))
}

func (handler *crudHandler[T]) Get(ctx *gin.Context) {
	item, err := handler.service.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// Create stores a new record
// @Summary Create a dashboard record
// @Tags Dashboard
// @Accept json
// @Produce json
// @Success 201 {object} any
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /dashboard/{resource}/ [post]
func (handler *crudHandler[T]) Create(ctx *gin.Context) {
	entity := handler.newEntity()
	if err := ctx.ShouldBindJSON(entity); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid "+strings.ToLower(handler.label)+": "+err.Error()))
		return
	}

	created, err := handler.service.Create(ctx.Request.Context(), entity)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// Update replaces a record. File references left empty keep the stored file.
// @Summary Update a dashboard record
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} any
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/{resource}/{id}/ [put]
func (handler *crudHandler[T]) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	previous, err := handler.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	entity := handler.newEntity()
	if err := ctx.ShouldBindJSON(entity); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid "+strings.ToLower(handler.label)+": "+err.Error()))
		return
	}
	keepStoredMedia(entity, previous)

	updated, err := handler.service.Update(ctx.Request.Context(), id, entity)
	if err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Delete removes a record and the files it owns
// @Summary Delete a dashboard record
// @Tags Dashboard
// @Produce json
// @Param id path string true "Record ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /dashboard/{resource}/{id}/ [delete]
func (handler *crudHandler[T]) Delete(ctx *gin.Context) {
	if err := handler.service.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		abortWithError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, MessageResponse{Message: handler.label + " deleted successfully!"})
}

// keepStoredMedia copies file references from previous into the empty slots of entity
func keepStoredMedia(entity, previous any) {
	next, ok := entity.(media.Holder)
	if !ok {
		return
	}
	prev, ok := previous.(media.Holder)
	if !ok {
		return
	}

	stored := prev.MediaRefs()
	for i, ref := range next.MediaRefs() {
		if i < len(stored) && ref.IsZero() {
			*ref = *stored[i]
		}
	}
}
