package repository

import (
	"errors"
	"testing"

	"github.com/deppfellow/grubdash/internal/model"
	"github.com/stretchr/testify/require"
)

// fakeRow feeds fixed column values to Scan, in order.
type fakeRow struct {
	values []any
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *float64:
			*p = r.values[i].(float64)
		case *[]byte:
			*p = r.values[i].([]byte)
		}
	}
	return nil
}

func TestScanOrder_DecodesDishes(t *testing.T) {
	row := fakeRow{values: []any{
		"o1", "1 Main St", "555-0100", "preparing",
		[]byte(`[{"id":"d1","name":"Soup","price":4,"quantity":2}]`),
	}}

	o, err := scanOrder(row)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusPreparing, o.Status)
	require.Equal(t, []model.OrderDish{{ID: "d1", Name: "Soup", Price: 4, Quantity: 2}}, o.Dishes)
}

func TestScanOrder_PropagatesScanError(t *testing.T) {
	boom := errors.New("boom")
	_, err := scanOrder(fakeRow{err: boom})
	require.ErrorIs(t, err, boom)
}

func TestEncodeOrderDishes_NilBecomesEmptyArray(t *testing.T) {
	b, err := encodeOrderDishes(nil)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(b))
}
