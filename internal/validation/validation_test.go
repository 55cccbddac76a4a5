package validation

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/stretchr/testify/require"
)

func input(data map[string]any, params map[string]string) *Input {
	return &Input{Ctx: context.Background(), Params: params, Body: Payload{Data: data}}
}

// requireHTTPError asserts err is an *errs.HTTPError with the given status and message.
func requireHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr), "expected *errs.HTTPError, got %T: %v", err, err)
	require.Equal(t, status, httpErr.Status)
	require.Equal(t, message, httpErr.Message)
}

func TestPipeline_HaltsOnFirstError(t *testing.T) {
	var ran []string
	step := func(name string, err error) Step {
		return func(*Input, *Scratch) error {
			ran = append(ran, name)
			return err
		}
	}
	boom := errors.New("boom")

	err := Pipeline{step("a", nil), step("b", boom), step("c", nil)}.Run(input(nil, nil), &Scratch{})

	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"a", "b"}, ran)
}

func TestPipeline_RunsEveryStepOnSuccess(t *testing.T) {
	count := 0
	step := func(*Input, *Scratch) error { count++; return nil }

	require.NoError(t, Pipeline{step, step, step}.Run(input(nil, nil), &Scratch{}))
	require.Equal(t, 3, count)
}

func TestEmptyPipeline(t *testing.T) {
	require.NoError(t, Pipeline{}.Run(input(nil, nil), &Scratch{}))
}

func TestBodyID(t *testing.T) {
	cases := []struct {
		name    string
		data    map[string]any
		want    string
		present bool
	}{
		{"missing", map[string]any{}, "", false},
		{"null", map[string]any{"id": nil}, "", false},
		{"empty", map[string]any{"id": ""}, "", false},
		{"zero", map[string]any{"id": 0.0}, "0", false},
		{"string", map[string]any{"id": "abc"}, "abc", true},
		{"number", map[string]any{"id": 17.0}, "17", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := bodyID(tc.data)
			require.Equal(t, tc.present, ok)
			if ok {
				require.Equal(t, tc.want, got)
			}
		})
	}
}

func TestPositiveInteger(t *testing.T) {
	for _, v := range []any{0.0, -1.0, 1.5, "2", nil, true} {
		_, ok := positiveInteger(v)
		require.False(t, ok, "%v", v)
	}

	n, ok := positiveInteger(3.0)
	require.True(t, ok)
	require.Equal(t, 3, n)
}

func TestStatusCodesForFailures(t *testing.T) {
	requireHTTPError(t, DishName(input(nil, nil), &Scratch{}), http.StatusBadRequest, "Dish must include a name")
}
