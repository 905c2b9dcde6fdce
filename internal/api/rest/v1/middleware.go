package v1

import (
	"errors"
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/Brownie-08/Portfolio/internal/domain/accounts"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

const (
	userContextKey = "portfolio.user"
	loginPath      = "/dashboard/login/"
	dashboardPath  = "/dashboard/"
)

// AllowedHosts rejects requests whose Host header is not listed.
// An empty list or "*" accepts every host. Entries starting with a dot match subdomains.
func AllowedHosts(hosts []string) gin.HandlerFunc {
	allowAll := len(hosts) == 0
	for _, h := range hosts {
		if h == "*" {
			allowAll = true
		}
	}

	return func(ctx *gin.Context) {
		if allowAll || hostAllowed(ctx.Request.Host, hosts) {
			ctx.Next()
			return
		}
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errorResponse("invalid host header"))
	}
}

func hostAllowed(host string, allowed []string) bool {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.ToLower(strings.TrimSuffix(host, "."))

	for _, pattern := range allowed {
		pattern = strings.ToLower(pattern)
		if strings.HasPrefix(pattern, ".") {
			if host == pattern[1:] || strings.HasSuffix(host, pattern) {
				return true
			}
			continue
		}
		if host == pattern {
			return true
		}
	}
	return false
}

// NoCache marks responses as uncacheable
func NoCache() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Header("Cache-Control", "no-cache, no-store, must-revalidate, max-age=0")
		ctx.Next()
	}
}

// AuthRequired loads the session user from the cookie. Anonymous GET requests are redirected to
// the login page, every other method gets 401.
func AuthRequired(auth accounts.AuthService, cookieName string, log logger.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, _ := ctx.Cookie(cookieName)
		user, err := auth.Authenticate(ctx.Request.Context(), token)
		if err == nil {
			ctx.Set(userContextKey, user)
			ctx.Next()
			return
		}
		if !errors.Is(err, accounts.ErrSessionExpired) {
			log.Error("failed to authenticate session: ", err)
		}

		if ctx.Request.Method == http.MethodGet || ctx.Request.Method == http.MethodHead {
			ctx.Redirect(http.StatusFound, loginPath+"?next="+url.QueryEscape(ctx.Request.URL.RequestURI()))
			ctx.Abort()
			return
		}
		ctx.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse("authentication required"))
	}
}

// currentUser returns the user stored by AuthRequired
func currentUser(ctx *gin.Context) *accounts.User {
	if v, ok := ctx.Get(userContextKey); ok {
		if user, ok := v.(*accounts.User); ok {
			return user
		}
	}
	return nil
}
