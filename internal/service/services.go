// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, performs
// business operations, and calls repository methods to interact
// with the data
package service

import (
	"github.com/deppfellow/grubdash/internal/repository"
)

type Services struct {
	Dishes *DishService
	Orders *OrderService
}

func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Dishes: NewDishService(repos.Dishes),
		Orders: NewOrderService(repos.Orders),
	}
}
