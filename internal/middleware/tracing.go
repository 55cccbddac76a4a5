package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/deppfellow/grubdash/internal/server"
)

// TracingMiddleware owns New Relic related Echo middleware.
//
// It needs:
//   - server: shared deps (logger/config)
//   - nrApp: the New Relic application instance (nil if New Relic disabled)
//
// It has two layers:
//  1. NewRelicMiddleware() -> installs New Relic transaction handling into Echo
//  2. EnhanceTracing()     -> adds request attributes and notices errors
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

// NewTracingMiddleware constructs TracingMiddleware.
//
// nrApp comes from LoggerService.GetApplication and may be nil.
func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware returns the New Relic Echo middleware.
//
// What it does:
//   - If nrApp is nil, return a no-op middleware (passes request through unchanged).
//   - If nrApp exists, return nrecho.Middleware(tm.nrApp) which:
//   - starts a New Relic transaction for each request
//   - stores that transaction into request context
//   - records timing and status codes
//
// This middleware is what makes newrelic.FromContext(...) work later in
// EnhanceTracing, ContextEnhancer and the handlers.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		// No-op middleware: doesn't wrap the handler, just returns it.
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing adds custom attributes to New Relic transactions.
//
// It assumes NewRelicMiddleware() already ran so a transaction exists in
// the request context; without one it is a pass-through.
//
// What it adds:
//   - http.real_ip and http.user_agent
//   - request.id from the RequestID middleware
//   - route.<name> for each route param (route.dishId, route.orderId)
//   - http.status_code once the handler returned
//
// Errors returned by the handler chain are noticed on the transaction,
// wrapped by nrpkgerrors so stack traces survive.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}

			// Record ids show up as route.dishId / route.orderId.
			for _, name := range c.ParamNames() {
				txn.AddAttribute("route."+name, c.Param(name))
			}

			err := next(c)
			if err != nil {
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			// The status is final here only for successful responses; for
			// errors GlobalErrorHandler writes it after this returns.
			txn.AddAttribute("http.status_code", c.Response().Status)

			return err
		}
	}
}
