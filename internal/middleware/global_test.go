package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/grubdash/internal/config"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newGlobal(t *testing.T) *GlobalMiddlewares {
	t.Helper()
	logger := zerolog.Nop()
	return NewGlobalMiddlewares(&server.Server{Config: config.DefaultConfig(), Logger: &logger})
}

func runErrorHandler(t *testing.T, method, target string, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	newGlobal(t).GlobalErrorHandler(err, c)

	var body errs.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return rec.Code, body.Error
}

func TestGlobalErrorHandler(t *testing.T) {
	cases := []struct {
		name    string
		method  string
		target  string
		err     error
		status  int
		message string
	}{
		{
			name: "http error", method: http.MethodPost, target: "/dishes",
			err:    errs.NewValidationError("name", "Dish must include a name"),
			status: http.StatusBadRequest, message: "Dish must include a name",
		},
		{
			name: "wrapped http error", method: http.MethodGet, target: "/orders/x",
			err:    fmt.Errorf("resolving: %w", errs.NewNotFoundError("Order x not found.", true, nil)),
			status: http.StatusNotFound, message: "Order x not found.",
		},
		{
			name: "unknown route", method: http.MethodGet, target: "/nowhere?x=1",
			err:    echo.ErrNotFound,
			status: http.StatusNotFound, message: "Path not found: /nowhere?x=1",
		},
		{
			name: "wrong method", method: http.MethodDelete, target: "/dishes/abc",
			err:    echo.ErrMethodNotAllowed,
			status: http.StatusMethodNotAllowed, message: "DELETE not allowed for /dishes/abc",
		},
		{
			name: "other echo error", method: http.MethodPost, target: "/dishes",
			err:    echo.NewHTTPError(http.StatusUnsupportedMediaType, "Unsupported Media Type"),
			status: http.StatusUnsupportedMediaType, message: "Unsupported Media Type",
		},
		{
			name: "check violation", method: http.MethodPost, target: "/dishes",
			err: fmt.Errorf("creating dish: %w", &pgconn.PgError{
				Code: "23514", TableName: "dishes", ConstraintName: "dishes_price_check",
			}),
			status: http.StatusBadRequest, message: "The dish Price value is not allowed",
		},
		{
			name: "unknown error", method: http.MethodGet, target: "/dishes",
			err:    errors.New("connection refused"),
			status: http.StatusInternalServerError, message: "Internal Server Error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := runErrorHandler(t, tc.method, tc.target, tc.err)
			require.Equal(t, tc.status, status)
			require.Equal(t, tc.message, message)
		})
	}
}

func TestGlobalErrorHandler_CommittedResponse(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, c.String(http.StatusOK, "done"))
	newGlobal(t).GlobalErrorHandler(errors.New("late"), c)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "done", rec.Body.String())
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	require.Len(t, seen, 36)
	require.Equal(t, seen, rec.Header().Get(RequestIDHeader))
}

func TestGetLogger_FallsBackToNop(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	require.NotNil(t, GetLogger(c))
}
