//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Brownie-08/Portfolio/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHealthHandler_Health(t *testing.T) {
	tests := []struct {
		name   string
		report *app.HealthReport
		code   int
	}{
		{"healthy", &app.HealthReport{Status: app.StatusHealthy, Service: app.ServiceInfo{Database: "connected"}}, http.StatusOK},
		{"unhealthy", &app.HealthReport{Status: app.StatusUnhealthy, Service: app.ServiceInfo{Database: "error: timeout"}}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockChecker := new(MockHealthChecker)
			mockChecker.On("Check", mock.Anything).Return(tt.report)
			handler := NewHealthHandler(mockChecker)

			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request, _ = http.NewRequest("GET", "/health/", nil)

			handler.Health(c)

			assert.Equal(t, tt.code, w.Code)
			assert.Contains(t, w.Body.String(), tt.report.Service.Database)
		})
	}
}

func TestHealthHandler_Ready(t *testing.T) {
	mockChecker := new(MockHealthChecker)
	mockChecker.On("Ready", mock.Anything).Return(&app.ReadyReport{Status: app.StatusNotReady, Error: "database is locked"}).Once()
	mockChecker.On("Ready", mock.Anything).Return(&app.ReadyReport{Status: app.StatusReady, Message: "Application is ready to serve requests"}).Once()
	handler := NewHealthHandler(mockChecker)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/ready/", nil)
	handler.Ready(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"not_ready"`)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/ready/", nil)
	handler.Ready(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready"`)
}
