// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and defines the API route groups,
// mapping specific paths to their corresponding handlers
package router

import (
	"github.com/deppfellow/grubdash/internal/handler"
	"github.com/deppfellow/grubdash/internal/middleware"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the echo instance with every middleware and route.
//
// Middleware order matters: the request id and New Relic transaction
// must exist before the request logger is built, and the logger must
// exist before metrics and access logging run.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	router.Use(
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Metrics.Collect(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Secure(),
		middlewares.Global.CORS(),
	)

	if middlewares.RateLimit.Enabled() {
		router.Use(middlewares.RateLimit.Limit())
	}

	registerSystemRoutes(router, h)
	registerDishRoutes(router, h)
	registerOrderRoutes(router, h)

	return router
}

func registerDishRoutes(r *echo.Echo, h *handler.Handlers) {
	dishes := r.Group("/dishes")

	dishes.GET("", h.Dishes.List())
	dishes.POST("", h.Dishes.Create())
	dishes.GET("/:dishId", h.Dishes.Read())
	dishes.PUT("/:dishId", h.Dishes.Update())
}

func registerOrderRoutes(r *echo.Echo, h *handler.Handlers) {
	orders := r.Group("/orders")

	orders.GET("", h.Orders.List())
	orders.POST("", h.Orders.Create())
	orders.GET("/:orderId", h.Orders.Read())
	orders.PUT("/:orderId", h.Orders.Update())
	orders.DELETE("/:orderId", h.Orders.Delete())
}
