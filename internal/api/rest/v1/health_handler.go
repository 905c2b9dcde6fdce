package v1

import (
	"context"
	"net/http"

	"github.com/Brownie-08/Portfolio/internal/app"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports liveness and readiness of the service
type HealthChecker interface {
	Check(ctx context.Context) *app.HealthReport
	Ready(ctx context.Context) *app.ReadyReport
}

// HealthHandler defines the interface for the probe endpoints
type HealthHandler interface {
	Health(ctx *gin.Context)
	Ready(ctx *gin.Context)
}

type healthHandler struct {
	checker HealthChecker
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(checker HealthChecker) HealthHandler {
	return &healthHandler{checker: checker}
}

// Health pings the database and describes the running service
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} app.HealthReport
// @Failure 503 {object} app.HealthReport
// @Router /health/ [get]
func (handler *healthHandler) Health(ctx *gin.Context) {
	report := handler.checker.Check(ctx.Request.Context())
	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, report)
}

// Ready reports whether requests can be served
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} app.ReadyReport
// @Failure 503 {object} app.ReadyReport
// @Router /ready/ [get]
func (handler *healthHandler) Ready(ctx *gin.Context) {
	report := handler.checker.Ready(ctx.Request.Context())
	status := http.StatusOK
	if report.Status != app.StatusReady {
		status = http.StatusServiceUnavailable
	}
	ctx.JSON(status, report)
}
