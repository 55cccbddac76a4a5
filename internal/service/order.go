package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/lib/idgen"
	"github.com/deppfellow/grubdash/internal/model"
	"github.com/deppfellow/grubdash/internal/repository"
)

type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// List returns every order in insertion order, never nil.
func (s *OrderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

// Create stores a new pending order under a fresh id. Any status in the
// input is ignored.
func (s *OrderService) Create(ctx context.Context, in model.OrderInput) (model.Order, error) {
	id, err := idgen.Next(func(id string) (bool, error) {
		_, found, err := s.repo.GetOrder(ctx, id)
		return found, err
	})
	if err != nil {
		return model.Order{}, fmt.Errorf("generating order id: %w", err)
	}

	in.Status = model.OrderStatusPending
	order := in.Apply(model.Order{ID: id})

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

// Update applies in to current and stores the result.
func (s *OrderService) Update(ctx context.Context, current model.Order, in model.OrderInput) (model.Order, error) {
	order := in.Apply(current)

	updated, err := s.repo.UpdateOrder(ctx, order)
	if err != nil {
		return model.Order{}, err
	}
	if !updated {
		return model.Order{}, errs.NewNotFoundError(fmt.Sprintf("Order %s not found.", order.ID), true, nil)
	}
	return order, nil
}

// Delete removes the order. Removing an order that is already gone is
// not an error.
func (s *OrderService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.DeleteOrder(ctx, id); err != nil {
		return err
	}
	return nil
}
