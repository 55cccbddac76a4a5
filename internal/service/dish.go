package service

import (
	"context"
	"fmt"

	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/lib/idgen"
	"github.com/deppfellow/grubdash/internal/model"
	"github.com/deppfellow/grubdash/internal/repository"
)

type DishService struct {
	repo repository.DishRepository
}

func NewDishService(repo repository.DishRepository) *DishService {
	return &DishService{repo: repo}
}

// List returns every dish in insertion order, never nil.
func (s *DishService) List(ctx context.Context) ([]model.Dish, error) {
	dishes, err := s.repo.ListDishes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing dishes: %w", err)
	}
	if dishes == nil {
		dishes = []model.Dish{}
	}
	return dishes, nil
}

// Create stores a new dish under a fresh id.
func (s *DishService) Create(ctx context.Context, in model.DishInput) (model.Dish, error) {
	id, err := idgen.Next(func(id string) (bool, error) {
		_, found, err := s.repo.GetDish(ctx, id)
		return found, err
	})
	if err != nil {
		return model.Dish{}, fmt.Errorf("generating dish id: %w", err)
	}

	dish := in.Apply(model.Dish{ID: id})
	if err := s.repo.CreateDish(ctx, dish); err != nil {
		return model.Dish{}, err
	}
	return dish, nil
}

// Update applies in to current and stores the result.
//
// A dish removed since current was read yields a 404.
func (s *DishService) Update(ctx context.Context, current model.Dish, in model.DishInput) (model.Dish, error) {
	dish := in.Apply(current)

	updated, err := s.repo.UpdateDish(ctx, dish)
	if err != nil {
		return model.Dish{}, err
	}
	if !updated {
		return model.Dish{}, errs.NewNotFoundError(fmt.Sprintf("Dish does not exist: %s.", dish.ID), true, nil)
	}
	return dish, nil
}
