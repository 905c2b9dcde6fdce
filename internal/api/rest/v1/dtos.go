package v1

import (
	"errors"
	"net/http"

	"github.com/Brownie-08/Portfolio/internal/app"
	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/domain/contact"
	"github.com/Brownie-08/Portfolio/internal/domain/content"
	"github.com/Brownie-08/Portfolio/internal/domain/media"
	"github.com/Brownie-08/Portfolio/internal/pkg/validators"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

// MessageResponse acknowledges a request without a resource body
type MessageResponse struct {
	Message string `json:"message"`
}

// ContactResponse is returned after a successful contact submission
type ContactResponse struct {
	Message string                  `json:"message"`
	Contact *contact.ContactMessage `json:"contact"`
}

// LoginRequest is the dashboard login form
type LoginRequest struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
	Next     string `json:"next" form:"next"`
}

// LoginResponse describes the logged in user and where to go next
type LoginResponse struct {
	User     *accounts.User `json:"user"`
	Redirect string         `json:"redirect"`
}

// LoginPageResponse describes the login page for anonymous visitors
type LoginPageResponse struct {
	Authenticated bool           `json:"authenticated"`
	User          *accounts.User `json:"user,omitempty"`
	Next          string         `json:"next"`
}

// BulkRequest applies an inbox action to several messages
type BulkRequest struct {
	Action string   `json:"action" form:"action" binding:"required"`
	IDs    []string `json:"ids" form:"ids"`
}

// BulkResponse reports how many messages an action touched
type BulkResponse struct {
	Action   string `json:"action"`
	Affected int64  `json:"affected"`
}

// DashboardResponse is the dashboard landing page
type DashboardResponse struct {
	User  *accounts.User      `json:"user"`
	Stats *app.DashboardStats `json:"stats"`
	Inbox *contact.Stats      `json:"inbox"`
}

// MessagesResponse is one page of the inbox
type MessagesResponse struct {
	Messages *content.Page[*contact.ContactMessage] `json:"messages"`
	Status   string                                 `json:"status"`
	Search   string                                 `json:"search"`
	Stats    *contact.Stats                         `json:"stats"`
}

// UploadResponse is returned after storing a file
type UploadResponse struct {
	Slot string     `json:"slot"`
	Ref  *media.Ref `json:"ref"`
}

func errorResponse(message string) ErrorResponse {
	return ErrorResponse{Message: message}
}

// statusFor maps domain errors onto HTTP status codes
func statusFor(err error) int {
	var formErr *contact.FormError
	switch {
	case errors.As(err, &formErr), errors.Is(err, validators.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, content.ErrNotFound), errors.Is(err, media.ErrNotFound), errors.Is(err, media.ErrInvalidKey):
		return http.StatusNotFound
	case errors.Is(err, content.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, accounts.ErrInvalidCredentials), errors.Is(err, accounts.ErrSessionExpired):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes err as an ErrorResponse. Internal errors are not echoed to the client.
func abortWithError(ctx *gin.Context, err error) {
	status := statusFor(err)
	response := errorResponse(err.Error())

	var formErr *contact.FormError
	if errors.As(err, &formErr) {
		response.Message = "Please correct the errors below."
		response.Errors = formErr.Fields
	}
	if status == http.StatusInternalServerError {
		_ = ctx.Error(err)
		response.Message = "internal server error"
	}
	ctx.AbortWithStatusJSON(status, response)
}
