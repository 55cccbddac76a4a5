package router

import (
	"github.com/deppfellow/grubdash/internal/handler"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerSystemRoutes registers endpoints that are not part of the
// dishes and orders API.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/status", h.Health.CheckHealth)

	r.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	r.GET("/openapi.json", h.OpenAPI.ServeOpenAPISpec)
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
