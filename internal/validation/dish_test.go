package validation

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/deppfellow/grubdash/internal/model"
	"github.com/deppfellow/grubdash/internal/repository/repomock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func validDish() map[string]any {
	return map[string]any{
		"name":        "Pasta",
		"description": "Tasty",
		"price":       12.0,
		"image_url":   "http://x",
	}
}

func TestCreateDish_ValidPayloadFillsScratch(t *testing.T) {
	s := &Scratch{}
	require.NoError(t, CreateDish().Run(input(validDish(), nil), s))

	require.Equal(t, model.DishInput{Name: "Pasta", Description: "Tasty", Price: 12, ImageURL: "http://x"}, s.DishInput())
}

func TestCreateDish_MissingFields(t *testing.T) {
	cases := map[string]string{
		"name":        "Dish must include a name",
		"price":       "Dish must have a price that is an integer greater than 0",
		"description": "Dish must include a description",
		"image_url":   "Dish must include a image_url",
	}

	for field, message := range cases {
		t.Run(field, func(t *testing.T) {
			data := validDish()
			delete(data, field)

			err := CreateDish().Run(input(data, nil), &Scratch{})
			requireHTTPError(t, err, http.StatusBadRequest, message)
		})

		t.Run(field+"_empty", func(t *testing.T) {
			data := validDish()
			if field == "price" {
				data[field] = 0.0
			} else {
				data[field] = ""
			}

			err := CreateDish().Run(input(data, nil), &Scratch{})
			requireHTTPError(t, err, http.StatusBadRequest, message)
		})
	}
}

func TestCreateDish_StepOrder(t *testing.T) {
	// Nothing valid: the name step runs first.
	err := CreateDish().Run(input(map[string]any{}, nil), &Scratch{})
	requireHTTPError(t, err, http.StatusBadRequest, "Dish must include a name")

	// Bad price and missing description: price is reported.
	err = CreateDish().Run(input(map[string]any{"name": "x", "price": -1.0}, nil), &Scratch{})
	requireHTTPError(t, err, http.StatusBadRequest, "Dish must have a price that is an integer greater than 0")
}

func TestDishPrice(t *testing.T) {
	for _, bad := range []any{0.0, -3.0, "12", nil, true} {
		err := DishPrice(input(map[string]any{"price": bad}, nil), &Scratch{})
		requireHTTPError(t, err, http.StatusBadRequest, "Dish must have a price that is an integer greater than 0")
	}

	s := &Scratch{}
	require.NoError(t, DishPrice(input(map[string]any{"price": 9.5}, nil), s))
	require.Equal(t, 9.5, s.Price)
}

func TestDishExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomock.NewMockDishRepository(ctrl)
	dish := model.Dish{ID: "d1", Name: "Soup"}
	repo.EXPECT().GetDish(gomock.Any(), "d1").Return(dish, true, nil)
	repo.EXPECT().GetDish(gomock.Any(), "nope").Return(model.Dish{}, false, nil)

	s := &Scratch{}
	require.NoError(t, DishExists(repo)(input(nil, map[string]string{DishIDParam: "d1"}), s))
	require.Equal(t, &dish, s.Dish)

	err := DishExists(repo)(input(nil, map[string]string{DishIDParam: "nope"}), &Scratch{})
	requireHTTPError(t, err, http.StatusNotFound, "Dish does not exist: nope.")
}

func TestDishExists_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("connection reset")
	repo := repomock.NewMockDishRepository(ctrl)
	repo.EXPECT().GetDish(gomock.Any(), "d1").Return(model.Dish{}, false, boom)

	err := DishExists(repo)(input(nil, map[string]string{DishIDParam: "d1"}), &Scratch{})
	require.ErrorIs(t, err, boom)
}

func TestUpdateDish_IDMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomock.NewMockDishRepository(ctrl)
	repo.EXPECT().GetDish(gomock.Any(), "d1").Return(model.Dish{ID: "d1"}, true, nil).Times(3)

	params := map[string]string{DishIDParam: "d1"}

	data := validDish()
	data["id"] = "d2"
	err := UpdateDish(repo).Run(input(data, params), &Scratch{})
	requireHTTPError(t, err, http.StatusBadRequest, "Dish id does not match route id. Dish: d2, Route: d1")

	data["id"] = "d1"
	require.NoError(t, UpdateDish(repo).Run(input(data, params), &Scratch{}))

	delete(data, "id")
	require.NoError(t, UpdateDish(repo).Run(input(data, params), &Scratch{}))
}

func TestUpdateDish_MissingDishStopsBeforeFieldChecks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomock.NewMockDishRepository(ctrl)
	repo.EXPECT().GetDish(gomock.Any(), "gone").Return(model.Dish{}, false, nil)

	err := UpdateDish(repo).Run(input(map[string]any{}, map[string]string{DishIDParam: "gone"}), &Scratch{})
	requireHTTPError(t, err, http.StatusNotFound, "Dish does not exist: gone.")
}

func TestReadDish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomock.NewMockDishRepository(ctrl)
	repo.EXPECT().GetDish(context.Background(), "d1").Return(model.Dish{ID: "d1"}, true, nil)

	s := &Scratch{}
	require.NoError(t, ReadDish(repo).Run(input(nil, map[string]string{DishIDParam: "d1"}), s))
	require.Equal(t, "d1", s.Dish.ID)
}
