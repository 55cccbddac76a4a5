package validation

import (
	"net/http"
	"testing"

	"github.com/deppfellow/grubdash/internal/model"
	"github.com/deppfellow/grubdash/internal/repository/repomock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func validOrder() map[string]any {
	return map[string]any{
		"deliverTo":    "308 Negra Arroyo Lane",
		"mobileNumber": "(505) 143-3369",
		"status":       "preparing",
		"dishes": []any{
			map[string]any{"id": "d1", "name": "Soup", "price": 4.0, "quantity": 2.0},
		},
	}
}

func TestCreateOrder_ValidPayloadFillsScratch(t *testing.T) {
	s := &Scratch{}
	require.NoError(t, CreateOrder().Run(input(validOrder(), nil), s))

	require.Equal(t, "308 Negra Arroyo Lane", s.DeliverTo)
	require.Equal(t, "(505) 143-3369", s.MobileNumber)
	require.Equal(t, []model.OrderDish{{ID: "d1", Name: "Soup", Price: 4, Quantity: 2}}, s.Dishes)
}

func TestOrderDishQuantities_CopiesOnlyStringLineIDs(t *testing.T) {
	data := validOrder()
	data["dishes"] = []any{
		map[string]any{"id": false, "quantity": 2.0},
		map[string]any{"id": 7.0, "quantity": 1.0},
		map[string]any{"id": "d3", "quantity": 1.0},
	}

	s := &Scratch{}
	require.NoError(t, CreateOrder().Run(input(data, nil), s))

	require.Len(t, s.Dishes, 3)
	require.Equal(t, "", s.Dishes[0].ID)
	require.Equal(t, "", s.Dishes[1].ID)
	require.Equal(t, "d3", s.Dishes[2].ID)
}

func TestCreateOrder_Failures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(map[string]any)
		message string
	}{
		{"missing deliverTo", func(d map[string]any) { delete(d, "deliverTo") }, "Order must include a deliverTo"},
		{"empty deliverTo", func(d map[string]any) { d["deliverTo"] = "" }, "Order must include a deliverTo"},
		{"missing mobileNumber", func(d map[string]any) { delete(d, "mobileNumber") }, "Order must include a mobileNumber"},
		{"missing dishes", func(d map[string]any) { delete(d, "dishes") }, "Order must include a dish"},
		{"empty dishes", func(d map[string]any) { d["dishes"] = []any{} }, "Order must include at least one dish"},
		{"dishes not array", func(d map[string]any) { d["dishes"] = "soup" }, "Order must include at least one dish"},
		{"zero quantity", func(d map[string]any) {
			d["dishes"] = []any{map[string]any{"id": "a", "quantity": 1.0}, map[string]any{"id": "b", "quantity": 0.0}}
		}, "Dish 1 must have a quantity that is an integer greater than 0"},
		{"negative quantity", func(d map[string]any) {
			d["dishes"] = []any{map[string]any{"quantity": -2.0}}
		}, "Dish 0 must have a quantity that is an integer greater than 0"},
		{"fractional quantity", func(d map[string]any) {
			d["dishes"] = []any{map[string]any{"quantity": 1.5}}
		}, "Dish 0 must have a quantity that is an integer greater than 0"},
		{"string quantity", func(d map[string]any) {
			d["dishes"] = []any{map[string]any{"quantity": "2"}}
		}, "Dish 0 must have a quantity that is an integer greater than 0"},
		{"missing quantity", func(d map[string]any) {
			d["dishes"] = []any{map[string]any{"id": "a"}}
		}, "Dish 0 must have a quantity that is an integer greater than 0"},
		{"dish not object", func(d map[string]any) {
			d["dishes"] = []any{"a"}
		}, "Dish 0 must have a quantity that is an integer greater than 0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data := validOrder()
			tc.mutate(data)

			err := CreateOrder().Run(input(data, nil), &Scratch{})
			requireHTTPError(t, err, http.StatusBadRequest, tc.message)
		})
	}
}

func TestOrderStatus(t *testing.T) {
	message := "Order must have a status of pending, preparing, out-for-delivery, delivered"

	for _, bad := range []any{nil, "", "invalid", "Pending", 3.0} {
		err := OrderStatus(input(map[string]any{"status": bad}, nil), &Scratch{})
		requireHTTPError(t, err, http.StatusBadRequest, message)
	}

	for _, status := range model.OrderStatuses {
		s := &Scratch{}
		require.NoError(t, OrderStatus(input(map[string]any{"status": string(status)}, nil), s))
		require.Equal(t, status, s.Status)
	}
}

func TestUpdateOrder_StepOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomock.NewMockOrderRepository(ctrl)
	existing := model.Order{ID: "o1", Status: model.OrderStatusPending}
	repo.EXPECT().GetOrder(gomock.Any(), "o1").Return(existing, true, nil).AnyTimes()

	params := map[string]string{OrderIDParam: "o1"}

	// Status is checked before the id and every other field.
	data := validOrder()
	data["status"] = "bogus"
	data["id"] = "o2"
	delete(data, "deliverTo")
	err := UpdateOrder(repo).Run(input(data, params), &Scratch{})
	requireHTTPError(t, err, http.StatusBadRequest, "Order must have a status of pending, preparing, out-for-delivery, delivered")

	// Id mismatch is checked before deliverTo.
	data["status"] = "delivered"
	err = UpdateOrder(repo).Run(input(data, params), &Scratch{})
	requireHTTPError(t, err, http.StatusBadRequest, "Order id does not match route id. Order: o2, Route: o1.")

	data["id"] = "o1"
	err = UpdateOrder(repo).Run(input(data, params), &Scratch{})
	requireHTTPError(t, err, http.StatusBadRequest, "Order must include a deliverTo")

	data["deliverTo"] = "somewhere"
	s := &Scratch{}
	require.NoError(t, UpdateOrder(repo).Run(input(data, params), s))
	require.Equal(t, model.OrderStatusDelivered, s.Status)
	require.Equal(t, "o1", s.Order.ID)
}

func TestOrderExists_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomock.NewMockOrderRepository(ctrl)
	repo.EXPECT().GetOrder(gomock.Any(), "missing").Return(model.Order{}, false, nil)

	err := ReadOrder(repo).Run(input(nil, map[string]string{OrderIDParam: "missing"}), &Scratch{})
	requireHTTPError(t, err, http.StatusNotFound, "Order missing not found.")
}

func TestDeleteOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomock.NewMockOrderRepository(ctrl)
	repo.EXPECT().GetOrder(gomock.Any(), "p").Return(model.Order{ID: "p", Status: model.OrderStatusPending}, true, nil)
	repo.EXPECT().GetOrder(gomock.Any(), "q").Return(model.Order{ID: "q", Status: model.OrderStatusPreparing}, true, nil)

	require.NoError(t, DeleteOrder(repo).Run(input(nil, map[string]string{OrderIDParam: "p"}), &Scratch{}))

	err := DeleteOrder(repo).Run(input(nil, map[string]string{OrderIDParam: "q"}), &Scratch{})
	requireHTTPError(t, err, http.StatusBadRequest, "An order cannot be deleted unless it is pending")
}
