package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/ladder-stats/internal/middleware"
	"github.com/deppfellow/ladder-stats/internal/server"
	"github.com/labstack/echo/v4"
)

const healthCheckTimeout = 5 * time.Second

// HealthHandler reports whether the service and its dependencies are
// reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckHealth pings PostgreSQL and Redis. It answers 200 when both are
// reachable and 503 otherwise; sessions and the leaderboard live in
// Redis, so it is not optional.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := map[string]any{}
	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	isHealthy := true

	probes := map[string]func(ctx context.Context) error{
		"database": func(ctx context.Context) error {
			return h.server.DB.Pool.Ping(ctx)
		},
	}
	if h.server.Redis != nil {
		probes["redis"] = func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		}
	}

	for name, probe := range probes {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		probeStart := time.Now()
		err := probe(ctx)
		cancel()

		if err != nil {
			isHealthy = false

			checks[name] = map[string]any{
				"status":        "unhealthy",
				"response_time": time.Since(probeStart).String(),
				"error":         err.Error(),
			}

			logger.Error().
				Err(err).
				Str("check", name).
				Dur("response_time", time.Since(probeStart)).
				Msg("health check failed")

			h.recordHealthError(map[string]any{
				"check_type":       name,
				"operation":        "health_check",
				"error_type":       name + "_unhealthy",
				"response_time_ms": time.Since(probeStart).Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		checks[name] = map[string]any{
			"status":        "healthy",
			"response_time": time.Since(probeStart).String(),
		}

		logger.Debug().
			Str("check", name).
			Dur("response_time", time.Since(probeStart)).
			Msg("health check passed")
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthError(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Info().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) recordHealthError(attributes map[string]any) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", attributes)
	}
}
