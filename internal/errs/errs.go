// Package errs defines the error types the API hands back to clients.
//
// Every client-facing failure is an *HTTPError carrying its status code
// and message. Handlers and validation steps return them; the global
// error handler in the middleware package turns them into a
// `{ "error": message }` JSON body.
package errs
