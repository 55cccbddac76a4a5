package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "grubdash",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "grubdash",
			Name:      "http_request_duration_ms",
			Help:      "Duration of HTTP requests in ms",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 200, 400, 800, 1600},
		},
		[]string{"method", "route"},
	)
)

// MetricsMiddleware records request counts and latencies for /metrics.
type MetricsMiddleware struct{}

func NewMetricsMiddleware() *MetricsMiddleware {
	return &MetricsMiddleware{}
}

// Collect observes every request. Routes are labelled by their template
// (e.g. /dishes/:dishId) so ids do not blow up label cardinality.
func (m *MetricsMiddleware) Collect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			httpRequests.WithLabelValues(c.Request().Method, route, strconv.Itoa(statusOf(c, err))).Inc()
			httpDuration.WithLabelValues(c.Request().Method, route).
				Observe(float64(time.Since(start).Microseconds()) / 1000)

			return err
		}
	}
}

// statusOf returns the status the error handler will write for err.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		return echoErr.Code
	}
	return http.StatusInternalServerError
}
