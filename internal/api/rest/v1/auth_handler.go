package v1

import (
	"errors"
	"net/http"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/httputil"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler defines the interface for dashboard login and logout
type AuthHandler interface {
	LoginPage(ctx *gin.Context)
	Login(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type authHandler struct {
	authService accounts.AuthService
	settings    *config.AuthSettings
	logger      logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService accounts.AuthService, settings *config.AuthSettings, logger logger.Logger) AuthHandler {
	return &authHandler{
		authService: authService,
		settings:    settings,
		logger:      logger,
	}
}

// LoginPage describes the login form. Visitors with a live session are sent on to the dashboard.
// @Summary Login page
// @Tags Auth
// @Produce json
// @Param next query string false "Where to go after login"
// @Success 200 {object} LoginPageResponse
// @Success 302
// @Router /dashboard/login/ [get]
func (handler *authHandler) LoginPage(ctx *gin.Context) {
	next := httputil.SafeNext(ctx.Query("next"), dashboardPath)

	if token, err := ctx.Cookie(handler.settings.CookieName); err == nil && token != "" {
		if _, err := handler.authService.Authenticate(ctx.Request.Context(), token); err == nil {
			ctx.Redirect(http.StatusFound, next)
			return
		}
	}
	ctx.JSON(http.StatusOK, LoginPageResponse{Next: next})
}

// Login verifies credentials and starts a session cookie
// @Summary Log in to the dashboard
// @Tags Auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param requestBody body LoginRequest true "Credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /dashboard/login/ [post]
func (handler *authHandler) Login(ctx *gin.Context) {
	var request LoginRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse("invalid login form: "+err.Error()))
		return
	}

	token, user, err := handler.authService.Login(ctx.Request.Context(), request.Username, request.Password)
	if err != nil {
		if errors.Is(err, accounts.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, errorResponse("Please enter a correct username and password."))
			return
		}
		abortWithError(ctx, err)
		return
	}

	handler.setSessionCookie(ctx, token, int(handler.settings.SessionTTL.Seconds()))
	ctx.JSON(http.StatusOK, LoginResponse{
		User:     user,
		Redirect: httputil.SafeNext(request.Next, dashboardPath),
	})
}

// Logout ends the current session
// @Summary Log out of the dashboard
// @Tags Auth
// @Produce json
// @Success 200 {object} MessageResponse
// @Router /dashboard/logout/ [post]
func (handler *authHandler) Logout(ctx *gin.Context) {
	if token, err := ctx.Cookie(handler.settings.CookieName); err == nil && token != "" {
		if err := handler.authService.Logout(ctx.Request.Context(), token); err != nil {
			handler.logger.Warn("failed to delete session: ", err)
		}
	}
	handler.setSessionCookie(ctx, "", -1)
	ctx.JSON(http.StatusOK, MessageResponse{Message: "You have been logged out."})
}

func (handler *authHandler) setSessionCookie(ctx *gin.Context, value string, maxAge int) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(handler.settings.CookieName, value, maxAge, "/", "", handler.settings.CookieSecure, true)
}
