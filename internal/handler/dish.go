package handler

import (
	"net/http"

	"github.com/deppfellow/grubdash/internal/model"
	"github.com/deppfellow/grubdash/internal/repository"
	"github.com/deppfellow/grubdash/internal/server"
	"github.com/deppfellow/grubdash/internal/service"
	"github.com/deppfellow/grubdash/internal/validation"
	"github.com/labstack/echo/v4"
)

// DishHandler serves /dishes.
type DishHandler struct {
	Handler
	dishes *service.DishService
	repo   repository.DishRepository
}

func NewDishHandler(s *server.Server, dishes *service.DishService, repo repository.DishRepository) *DishHandler {
	return &DishHandler{
		Handler: NewHandler(s),
		dishes:  dishes,
		repo:    repo,
	}
}

// List handles GET /dishes.
func (h *DishHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, nil,
		func(c echo.Context, in *validation.Input, _ *validation.Scratch) ([]model.Dish, error) {
			return h.dishes.List(in.Ctx)
		}, http.StatusOK)
}

// Create handles POST /dishes.
func (h *DishHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, validation.CreateDish(),
		func(c echo.Context, in *validation.Input, s *validation.Scratch) (model.Dish, error) {
			return h.dishes.Create(in.Ctx, s.DishInput())
		}, http.StatusCreated)
}

// Read handles GET /dishes/:dishId.
func (h *DishHandler) Read() echo.HandlerFunc {
	return Handle(h.Handler, validation.ReadDish(h.repo),
		func(c echo.Context, _ *validation.Input, s *validation.Scratch) (model.Dish, error) {
			return *s.Dish, nil
		}, http.StatusOK)
}

// Update handles PUT /dishes/:dishId.
func (h *DishHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, validation.UpdateDish(h.repo),
		func(c echo.Context, in *validation.Input, s *validation.Scratch) (model.Dish, error) {
			return h.dishes.Update(in.Ctx, *s.Dish, s.DishInput())
		}, http.StatusOK)
}
