// Package repository holds the record stores for dishes and orders.
//
// Two drivers implement the same interfaces: an in-memory store guarded
// by a mutex per collection (the default), and a PostgreSQL store built
// on the pgx pool from the database package.
package repository

import (
	"context"

	"github.com/deppfellow/grubdash/internal/model"
)

//go:generate mockgen -destination=repomock/mock_repository.go -package=repomock github.com/deppfellow/grubdash/internal/repository DishRepository,OrderRepository

// DishRepository stores dishes in insertion order. Dishes are never
// removed once created.
type DishRepository interface {
	// ListDishes returns every dish. The slice is owned by the caller.
	ListDishes(ctx context.Context) ([]model.Dish, error)
	// GetDish reports found=false when no dish has the id.
	GetDish(ctx context.Context, id string) (model.Dish, bool, error)
	CreateDish(ctx context.Context, d model.Dish) error
	// UpdateDish replaces the dish with d.ID and reports whether it existed.
	UpdateDish(ctx context.Context, d model.Dish) (bool, error)
}

// OrderRepository stores orders in insertion order.
type OrderRepository interface {
	ListOrders(ctx context.Context) ([]model.Order, error)
	GetOrder(ctx context.Context, id string) (model.Order, bool, error)
	CreateOrder(ctx context.Context, o model.Order) error
	UpdateOrder(ctx context.Context, o model.Order) (bool, error)
	DeleteOrder(ctx context.Context, id string) (bool, error)
}
