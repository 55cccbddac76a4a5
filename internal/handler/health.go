package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/grubdash/internal/middleware"
	"github.com/deppfellow/grubdash/internal/repository"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves GET /status for load balancers and uptime checks.
type HealthHandler struct {
	Handler
	repos *repository.Repositories
}

func NewHealthHandler(s *server.Server, repos *repository.Repositories) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		repos:   repos,
	}
}

// healthCheck is one named dependency probe.
type healthCheck struct {
	name  string
	probe func(ctx context.Context) error
}

func (h *HealthHandler) checks() []healthCheck {
	checks := []healthCheck{
		{name: "store", probe: func(ctx context.Context) error {
			if _, err := h.repos.Dishes.ListDishes(ctx); err != nil {
				return err
			}
			_, err := h.repos.Orders.ListOrders(ctx)
			return err
		}},
	}

	if h.server.DB != nil {
		checks = append(checks, healthCheck{name: "database", probe: h.server.DB.Ping})
	}
	return checks
}

// CheckHealth answers 200 when every check passes and 503 otherwise.
//
// With health_checks disabled only liveness is reported.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability.HealthChecks

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"store":       h.server.Config.Store.Driver,
	}

	if store, ok := h.repos.Dishes.(*repository.MemoryStore); ok {
		dishes, orders := store.Counts()
		response["records"] = map[string]int{"dishes": dishes, "orders": orders}
	}

	if !cfg.Enabled {
		return c.JSON(http.StatusOK, response)
	}

	checks := make(map[string]interface{})
	response["checks"] = checks
	isHealthy := true

	for _, check := range h.checks() {
		ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.Timeout)
		checkStart := time.Now()
		err := check.probe(ctx)
		cancel()

		if err != nil {
			isHealthy = false
			checks[check.name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": time.Since(checkStart).String(),
				"error":         err.Error(),
			}

			logger.Error().
				Err(err).
				Str("check", check.name).
				Dur("response_time", time.Since(checkStart)).
				Msg("health check failed")

			if app := h.server.LoggerService.GetApplication(); app != nil {
				app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
					"check_type":       check.name,
					"operation":        "health_check",
					"error_type":       check.name + "_unhealthy",
					"response_time_ms": time.Since(checkStart).Milliseconds(),
					"error_message":    err.Error(),
				})
			}
			continue
		}

		checks[check.name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(checkStart).String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}
