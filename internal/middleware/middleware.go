// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns
// such as request ids, request logging, metrics, CORS,
// rate limiting, and panic recovery. It also owns the global
// error handler that turns every returned error into the
// `{ "error": message }` response body.
package middleware
