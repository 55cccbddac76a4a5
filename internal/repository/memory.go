package repository

import (
	"context"

	"github.com/deppfellow/grubdash/internal/model"
)

// MemoryStore keeps dishes and orders in process memory.
//
// It implements both DishRepository and OrderRepository. Each collection
// has its own lock, so dish traffic never waits on order traffic.
type MemoryStore struct {
	dishes *collection[model.Dish]
	orders *collection[model.Order]
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		dishes: newCollection(func(d model.Dish) string { return d.ID }, nil),
		orders: newCollection(func(o model.Order) string { return o.ID }, model.Order.Clone),
	}
}

func (s *MemoryStore) ListDishes(_ context.Context) ([]model.Dish, error) {
	return s.dishes.list(), nil
}

func (s *MemoryStore) GetDish(_ context.Context, id string) (model.Dish, bool, error) {
	d, ok := s.dishes.find(id)
	return d, ok, nil
}

func (s *MemoryStore) CreateDish(_ context.Context, d model.Dish) error {
	s.dishes.append(d)
	return nil
}

func (s *MemoryStore) UpdateDish(_ context.Context, d model.Dish) (bool, error) {
	return s.dishes.replace(d), nil
}

func (s *MemoryStore) ListOrders(_ context.Context) ([]model.Order, error) {
	return s.orders.list(), nil
}

func (s *MemoryStore) GetOrder(_ context.Context, id string) (model.Order, bool, error) {
	o, ok := s.orders.find(id)
	return o, ok, nil
}

func (s *MemoryStore) CreateOrder(_ context.Context, o model.Order) error {
	s.orders.append(o)
	return nil
}

func (s *MemoryStore) UpdateOrder(_ context.Context, o model.Order) (bool, error) {
	return s.orders.replace(o), nil
}

func (s *MemoryStore) DeleteOrder(_ context.Context, id string) (bool, error) {
	return s.orders.removeByID(id), nil
}

// Counts reports how many dishes and orders are stored.
func (s *MemoryStore) Counts() (dishes, orders int) {
	return s.dishes.len(), s.orders.len()
}

var (
	_ DishRepository  = (*MemoryStore)(nil)
	_ OrderRepository = (*MemoryStore)(nil)
)
