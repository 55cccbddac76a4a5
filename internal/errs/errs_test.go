package errs_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := errs.NewValidationError("price", "Dish must have a price that is an integer greater than 0")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "price", err.Field)
	assert.Equal(t, errs.CodeValidationFailed, err.Code)
	assert.Equal(t, errs.Response{Error: err.Message}, err.Body())
}

func TestNewConflictError(t *testing.T) {
	err := errs.NewConflictError("An order cannot be deleted unless it is pending")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, errs.CodeConflict, err.Code)
}

func TestStatusCodes(t *testing.T) {
	custom := "DISH_NOT_FOUND"
	cases := []struct {
		err    *errs.HTTPError
		status int
		code   string
	}{
		{errs.NewBadRequestError("bad", false, nil), http.StatusBadRequest, "BAD_REQUEST"},
		{errs.NewNotFoundError("missing", false, nil), http.StatusNotFound, "NOT_FOUND"},
		{errs.NewNotFoundError("missing", false, &custom), http.StatusNotFound, custom},
		{errs.NewMethodNotAllowedError("nope"), http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED"},
		{errs.NewTooManyRequestsError(), http.StatusTooManyRequests, "TOO_MANY_REQUESTS"},
		{errs.NewInternalServerError(), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.Status)
		assert.Equal(t, tc.code, tc.err.Code)
	}
}

func TestHTTPError_IsAndAs(t *testing.T) {
	wrapped := fmt.Errorf("pipeline: %w", errs.NewNotFoundError("Order 1 not found.", true, nil))

	require.True(t, errors.Is(wrapped, &errs.HTTPError{}))

	var httpErr *errs.HTTPError
	require.True(t, errors.As(wrapped, &httpErr))
	assert.Equal(t, "Order 1 not found.", httpErr.Error())
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "BAD_REQUEST", errs.MakeUpperCaseWithUnderscores("Bad Request"))
}
