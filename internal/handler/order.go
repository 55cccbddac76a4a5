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

// OrderHandler serves /orders.
type OrderHandler struct {
	Handler
	orders *service.OrderService
	repo   repository.OrderRepository
}

func NewOrderHandler(s *server.Server, orders *service.OrderService, repo repository.OrderRepository) *OrderHandler {
	return &OrderHandler{
		Handler: NewHandler(s),
		orders:  orders,
		repo:    repo,
	}
}

// List handles GET /orders.
func (h *OrderHandler) List() echo.HandlerFunc {
	return Handle(h.Handler, nil,
		func(c echo.Context, in *validation.Input, _ *validation.Scratch) ([]model.Order, error) {
			return h.orders.List(in.Ctx)
		}, http.StatusOK)
}

// Create handles POST /orders. New orders are always pending.
func (h *OrderHandler) Create() echo.HandlerFunc {
	return Handle(h.Handler, validation.CreateOrder(),
		func(c echo.Context, in *validation.Input, s *validation.Scratch) (model.Order, error) {
			return h.orders.Create(in.Ctx, s.OrderInput())
		}, http.StatusCreated)
}

// Read handles GET /orders/:orderId.
func (h *OrderHandler) Read() echo.HandlerFunc {
	return Handle(h.Handler, validation.ReadOrder(h.repo),
		func(c echo.Context, _ *validation.Input, s *validation.Scratch) (model.Order, error) {
			return *s.Order, nil
		}, http.StatusOK)
}

// Update handles PUT /orders/:orderId.
func (h *OrderHandler) Update() echo.HandlerFunc {
	return Handle(h.Handler, validation.UpdateOrder(h.repo),
		func(c echo.Context, in *validation.Input, s *validation.Scratch) (model.Order, error) {
			return h.orders.Update(in.Ctx, *s.Order, s.OrderInput())
		}, http.StatusOK)
}

// Delete handles DELETE /orders/:orderId. Only pending orders get here.
func (h *OrderHandler) Delete() echo.HandlerFunc {
	return HandleNoContent(h.Handler, validation.DeleteOrder(h.repo),
		func(c echo.Context, in *validation.Input, s *validation.Scratch) error {
			return h.orders.Delete(in.Ctx, s.Order.ID)
		}, http.StatusNoContent)
}
