package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const (
	readinessTimeout = 3 * time.Second

	statusOK        = "ok"
	statusUnhealthy = "unhealthy"
)

// DependencyCheck pings one backing service for the readiness check.
type DependencyCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler serves GET /health (liveness) and GET /health/ready (readiness).
type HealthHandler struct {
	checks []DependencyCheck
	logger zerolog.Logger
}

func NewHealthHandler(logger zerolog.Logger, checks ...DependencyCheck) *HealthHandler {
	return &HealthHandler{checks: checks, logger: logger}
}

// readinessResponse maps each dependency name to "ok" or "unhealthy".
// Ping errors are logged, never returned to the caller.
type readinessResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

// Liveness returns 200 immediately; it confirms the process is alive.
//
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness pings every dependency concurrently and reports 503 if any fails.
//
// @Summary      Readiness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  readinessResponse
// @Failure      503  {object}  readinessResponse
// @Router       /health/ready [get]
func (h *HealthHandler) Readiness(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
	defer cancel()

	errs := make([]error, len(h.checks))
	var g errgroup.Group
	for i, check := range h.checks {
		g.Go(func() error {
			errs[i] = check.Ping(ctx)
			return nil
		})
	}
	_ = g.Wait()

	resp := readinessResponse{Status: statusOK, Dependencies: make(map[string]string, len(h.checks))}
	httpStatus := http.StatusOK
	for i, check := range h.checks {
		if errs[i] == nil {
			resp.Dependencies[check.Name] = statusOK
			continue
		}
		h.logger.Warn().Err(errs[i]).Str("dependency", check.Name).Msg("readiness check failed")
		resp.Dependencies[check.Name] = statusUnhealthy
		resp.Status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}
	return c.JSON(httpStatus, resp)
}
