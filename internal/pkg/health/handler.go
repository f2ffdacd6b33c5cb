// Package health exposes liveness and readiness endpoints with named
// dependency checkers.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Checker reports whether one dependency is healthy
type Checker func(ctx context.Context) error

// Service runs registered dependency checks
type Service struct {
	checkers map[string]Checker
}

// NewService creates an empty health service
func NewService() *Service {
	return &Service{checkers: make(map[string]Checker)}
}

// AddChecker registers a named dependency check
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

type status struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// RegisterEndpoints registers the health endpoints on the echo instance
func RegisterEndpoints(e *echo.Echo, serviceName, version string, s *Service) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"service": serviceName,
			"version": version,
			"status":  "ok",
		})
	})

	e.GET("/health/live", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
		defer cancel()

		result := status{Status: "ok", Checks: make(map[string]string)}
		code := http.StatusOK
		for name, check := range s.checkers {
			if err := check(ctx); err != nil {
				result.Checks[name] = err.Error()
				result.Status = "degraded"
				code = http.StatusServiceUnavailable
			} else {
				result.Checks[name] = "ok"
			}
		}
		return c.JSON(code, result)
	})
}
