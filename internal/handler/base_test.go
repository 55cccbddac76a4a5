package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/grubdash/internal/config"
	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/deppfellow/grubdash/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(body string) echo.Context {
	e := echo.New()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(http.MethodPost, "/orders/abc", nil)
	} else {
		req = httptest.NewRequest(http.MethodPost, "/orders/abc", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	c := e.NewContext(req, httptest.NewRecorder())
	c.SetParamNames("orderId")
	c.SetParamValues("abc")
	return c
}

func TestBindInput_DecodesEnvelope(t *testing.T) {
	in, err := bindInput(newContext(`{"data":{"deliverTo":"Rm 1","dishes":[{"quantity":2}]}}`))
	require.NoError(t, err)

	assert.Equal(t, "abc", in.Param("orderId"))
	assert.Equal(t, "Rm 1", in.Body.Data["deliverTo"])

	dishes, ok := in.Body.Data["dishes"].([]any)
	require.True(t, ok)
	require.Len(t, dishes, 1)
	assert.Equal(t, 2.0, dishes[0].(map[string]any)["quantity"])
}

func TestBindInput_EmptyBody(t *testing.T) {
	in, err := bindInput(newContext(""))
	require.NoError(t, err)
	assert.Nil(t, in.Body.Data)
}

func TestBindInput_MissingDataKey(t *testing.T) {
	in, err := bindInput(newContext(`{"name":"Pasta"}`))
	require.NoError(t, err)
	assert.Nil(t, in.Body.Data["name"])
}

func TestBindInput_MalformedJSON(t *testing.T) {
	_, err := bindInput(newContext(`{"data":`))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestCollectionSize(t *testing.T) {
	n, ok := collectionSize([]int{1, 2, 3})
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	_, ok = collectionSize(map[string]int{})
	assert.False(t, ok)
}

func TestHandle_LogsThroughServerLoggerWithStoreDriver(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	h := NewHandler(&server.Server{Config: config.DefaultConfig(), Logger: &logger})

	route := Handle(h, validation.Pipeline{},
		func(c echo.Context, _ *validation.Input, _ *validation.Scratch) (string, error) {
			return "ok", nil
		}, http.StatusOK)

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/dishes", nil), rec)
	require.NoError(t, route(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"ok"}`, rec.Body.String())
	assert.Contains(t, buf.String(), `"store":"memory"`)
	assert.Contains(t, buf.String(), "request completed successfully")
}
