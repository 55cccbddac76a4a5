package handler

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"time"

	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/middleware"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/deppfellow/grubdash/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// Handler is the base handler type that holds shared application dependencies.
//
// It is embedded by the concrete handlers (DishHandler, OrderHandler,
// HealthHandler, OpenAPIHandler) so they can reach config, the logger
// and the optional database through *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler.
//
// It returns the struct by value; the only field is a pointer, so every
// copy still points at the same Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// logger returns the request logger set by ContextEnhancer, falling back
// to the server logger for requests that skipped the middleware chain.
//
// Every line is tagged with the active store driver so memory and
// postgres deployments can be told apart in aggregated logs.
func (h Handler) logger(c echo.Context) zerolog.Context {
	base := middleware.GetLogger(c)
	if _, ok := c.Get(middleware.LoggerKey).(*zerolog.Logger); !ok && h.server != nil && h.server.Logger != nil {
		base = h.server.Logger
	}

	ctx := base.With()
	if h.server != nil && h.server.Config != nil {
		ctx = ctx.Str("store", h.server.Config.Store.Driver)
	}
	return ctx
}

// --- Generic typed handler plumbing -----------------------------------------

// HandlerFunc is the terminal step of a route.
//
// It only runs once every step of the route's pipeline has passed, and
// reads its inputs from the scratch:
//
//   - in: the raw request (context, route params, decoded body)
//   - s: values the pipeline already checked, plus the resolved record
//     for routes that name one
//
// Res is the value wrapped in the `{ "data": ... }` envelope.
type HandlerFunc[Res any] func(c echo.Context, in *validation.Input, s *validation.Scratch) (Res, error)

// HandlerFuncNoContent is a terminal step for routes that answer without
// a body (e.g. 204 No Content on order delete).
type HandlerFuncNoContent func(c echo.Context, in *validation.Input, s *validation.Scratch) error

// Envelope wraps every successful response body.
//
//	{ "data": { "id": "...", "name": "..." } }
type Envelope struct {
	Data any `json:"data"`
}

// ResponseHandler defines how a successful result is written to the
// HTTP response, and which observability attributes belong to it.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result interface{}) error

	// GetOperation returns an operation name used for structured logging.
	// It distinguishes json and no_content routes in logs.
	GetOperation() string

	// AddAttributes attaches New Relic attributes based on the result.
	AddAttributes(txn *newrelic.Transaction, result interface{})
}

// JSONResponseHandler writes `{ "data": result }` with a fixed status.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.JSON(h.status, Envelope{Data: result})
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// AddAttributes records how many records a list route returned.
func (h JSONResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	if txn == nil || result == nil {
		return
	}
	if n, ok := collectionSize(result); ok {
		txn.AddAttribute("response.items", n)
	}
}

// NoContentResponseHandler writes an empty body with a fixed status.
type NoContentResponseHandler struct {
	status int
}

func (h NoContentResponseHandler) Handle(c echo.Context, result interface{}) error {
	return c.NoContent(h.status)
}

func (h NoContentResponseHandler) GetOperation() string {
	return "handler_no_content"
}

func (h NoContentResponseHandler) AddAttributes(txn *newrelic.Transaction, result interface{}) {
	// http.status_code is already set by EnhanceTracing.
}

// bindInput decodes the request into a pipeline Input.
//
// Route params are copied by name so steps can look them up without
// an echo.Context. The body is decoded with echo's JSON serializer into
// the `{ "data": {...} }` envelope:
//
//   - no body at all: an empty payload, so the first field step reports
//     what is missing
//   - a body that is not a JSON object: 400 with echo's parse message
func bindInput(c echo.Context) (*validation.Input, error) {
	in := &validation.Input{
		Ctx:    c.Request().Context(),
		Params: make(map[string]string, len(c.ParamNames())),
	}
	for _, name := range c.ParamNames() {
		in.Params[name] = c.Param(name)
	}

	req := c.Request()
	if req.Body == nil || req.Body == http.NoBody {
		return in, nil
	}

	err := c.Echo().JSONSerializer.Deserialize(c, &in.Body)
	if err == nil || errors.Is(err, io.EOF) {
		return in, nil
	}

	message := "Request body must be a JSON object"
	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) {
		if m, ok := echoErr.Message.(string); ok {
			message = m
		}
	}
	return nil, errs.NewBadRequestError(message, true, nil)
}

// handleRequest is the unified pipeline behind every resource route.
//
// It provides:
//   - request decoding into a validation.Input
//   - the route's validation pipeline, stopping at the first failing step
//   - the terminal step, which only runs when the pipeline passed
//   - structured logging with the request logger
//   - New Relic tracing attributes and error reporting
//   - timing (validation duration, handler duration, total duration)
//   - response writing (json / no-content)
//
// Errors are returned as-is; GlobalErrorHandler turns them into the
// `{ "error": message }` body.
func (h Handler) handleRequest(
	c echo.Context,
	pipeline validation.Pipeline,
	handler func(c echo.Context, in *validation.Input, s *validation.Scratch) (interface{}, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()
	route := c.Path()

	// The transaction is started by the nrecho middleware; it is nil when
	// New Relic is disabled.
	txn := newrelic.FromContext(c.Request().Context())
	if txn != nil {
		txn.AddAttribute("handler.name", route)
		responseHandler.AddAttributes(txn, nil)
	}

	// The request logger already carries request_id, method, path, ip and
	// trace ids from ContextEnhancer.
	logger := h.logger(c).
		Str("operation", responseHandler.GetOperation()).
		Str("route", route).
		Int("pipeline_steps", len(pipeline)).
		Logger()

	logger.Debug().Msg("handling request")

	// ---------------- Validation phase ---------------------------------------
	validationStart := time.Now()

	// A fresh scratch per request: steps record the values they checked
	// and the resolved record on it.
	in, err := bindInput(c)
	scratch := &validation.Scratch{}
	if err == nil {
		err = pipeline.Run(in, scratch)
	}

	validationDuration := time.Since(validationStart)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", validationDuration).
			Msg("request validation failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("validation.status", "failed")
			txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
		}
		return err
	}

	if txn != nil {
		txn.AddAttribute("validation.status", "success")
		txn.AddAttribute("validation.duration_ms", validationDuration.Milliseconds())
	}

	// ---------------- Handler execution phase --------------------------------
	handlerStart := time.Now()
	result, err := handler(c, in, scratch)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Error().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")

		if txn != nil {
			txn.NoticeError(nrpkgerrors.Wrap(err))
			txn.AddAttribute("handler.status", "error")
			txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		}
		return err
	}

	// ---------------- Response phase -----------------------------------------
	totalDuration := time.Since(start)

	if txn != nil {
		txn.AddAttribute("handler.status", "success")
		txn.AddAttribute("handler.duration_ms", handlerDuration.Milliseconds())
		txn.AddAttribute("total.duration_ms", totalDuration.Milliseconds())
		responseHandler.AddAttributes(txn, result)
	}

	logger.Debug().
		Dur("handler_duration", handlerDuration).
		Dur("validation_duration", validationDuration).
		Dur("total_duration", totalDuration).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle builds a route that answers with `{ "data": result }`.
//
// It returns an echo.HandlerFunc so it can be registered directly on
// routes:
//
//	dishes.POST("", handler.Handle(h, validation.CreateDish(), createFn, http.StatusCreated))
func Handle[Res any](
	h Handler,
	pipeline validation.Pipeline,
	handler HandlerFunc[Res],
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		// Adapt the typed terminal step (Res) into the interface{} pipeline.
		return h.handleRequest(c, pipeline, func(c echo.Context, in *validation.Input, s *validation.Scratch) (interface{}, error) {
			return handler(c, in, s)
		}, JSONResponseHandler{status: status})
	}
}

// HandleNoContent builds a route that answers with an empty body.
func HandleNoContent(
	h Handler,
	pipeline validation.Pipeline,
	handler HandlerFuncNoContent,
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.handleRequest(c, pipeline, func(c echo.Context, in *validation.Input, s *validation.Scratch) (interface{}, error) {
			return nil, handler(c, in, s)
		}, NoContentResponseHandler{status: status})
	}
}

// collectionSize reports the length of list results.
func collectionSize(result interface{}) (int, bool) {
	v := reflect.ValueOf(result)
	if v.Kind() != reflect.Slice {
		return 0, false
	}
	return v.Len(), true
}
