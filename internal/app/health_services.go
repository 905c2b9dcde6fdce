package app

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/Brownie-08/Portfolio/internal/pkg/config"
	"github.com/Brownie-08/Portfolio/internal/pkg/logger"
)

// Health statuses
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusReady     = "ready"
	StatusNotReady  = "not_ready"

	databaseConnected = "connected"
	pingTimeout       = 5 * time.Second
)

// PingFunc checks that a dependency answers
type PingFunc func(ctx context.Context) error

// ServiceInfo describes the running process
type ServiceInfo struct {
	Version  string `json:"version"`
	Debug    bool   `json:"debug"`
	Database string `json:"database"`
}

// ApplicationInfo names the deployed application
type ApplicationInfo struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// HealthReport is the body of the health endpoints
type HealthReport struct {
	Status      string          `json:"status"`
	Service     ServiceInfo     `json:"service"`
	Application ApplicationInfo `json:"application"`
}

// Healthy reports whether every dependency answered
func (r *HealthReport) Healthy() bool {
	return r.Status == StatusHealthy
}

// ReadyReport is the body of the readiness endpoint
type ReadyReport struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// HealthService reports liveness and readiness
type HealthService struct {
	ping   PingFunc
	debug  bool
	logger logger.Logger
}

// NewHealthService creates a new HealthService
func NewHealthService(ping PingFunc, debug bool, logger logger.Logger) (*HealthService, error) {
	if ping == nil {
		return nil, fmt.Errorf("health service requires a database ping")
	}
	return &HealthService{ping: ping, debug: debug, logger: logger}, nil
}

// Check pings the database and describes the service
func (s *HealthService) Check(ctx context.Context) *HealthReport {
	report := &HealthReport{
		Status: StatusHealthy,
		Service: ServiceInfo{
			Version:  runtime.Version(),
			Debug:    s.debug,
			Database: databaseConnected,
		},
		Application: ApplicationInfo{
			Name:    config.ApplicationName,
			Version: config.ApplicationVersion,
		},
	}

	if err := s.pingWithTimeout(ctx); err != nil {
		s.logger.Warn("Health check failed: ", err)
		report.Status = StatusUnhealthy
		report.Service.Database = "error: " + err.Error()
	}
	return report
}

// Ready reports whether requests can be served
func (s *HealthService) Ready(ctx context.Context) *ReadyReport {
	if err := s.pingWithTimeout(ctx); err != nil {
		return &ReadyReport{Status: StatusNotReady, Error: err.Error()}
	}
	return &ReadyReport{Status: StatusReady, Message: "Application is ready to serve requests"}
}

func (s *HealthService) pingWithTimeout(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.ping(ctx)
}
