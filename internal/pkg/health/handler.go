package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker verifies one dependency
type Checker func(ctx context.Context) error

// Service aggregates dependency checks for the health endpoints
type Service struct {
	checkers map[string]Checker
}

// NewService creates a health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a named dependency check
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

type checkResult struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type healthResponse struct {
	Status  string                 `json:"status"`
	App     string                 `json:"app"`
	Version string                 `json:"version,omitempty"`
	Checks  map[string]checkResult `json:"checks,omitempty"`
}

// RegisterEndpoints registers /health (liveness) and /health/ready
// (dependency pings) on the Echo instance
func RegisterEndpoints(e *echo.Echo, appName, version string, s *Service) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, healthResponse{
			Status:  "ok",
			App:     appName,
			Version: version,
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		resp := healthResponse{
			Status:  "ok",
			App:     appName,
			Version: version,
			Checks:  make(map[string]checkResult),
		}
		status := http.StatusOK

		for name, checker := range s.checkers {
			if err := checker(ctx); err != nil {
				resp.Checks[name] = checkResult{Status: "down", Error: err.Error()}
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[name] = checkResult{Status: "up"}
		}

		return c.JSON(status, resp)
	})
}
