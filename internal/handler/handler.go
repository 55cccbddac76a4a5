// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// Every resource route runs the validation pipeline for its operation,
// then a terminal step that calls the service layer and wraps the
// result in the `{ "data": ... }` envelope.
package handler
