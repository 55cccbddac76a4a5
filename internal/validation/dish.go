package validation

import (
	"fmt"

	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/repository"
)

// DishIDParam is the route parameter naming a dish.
const DishIDParam = "dishId"

// DishExists resolves the dish named by the route onto s.Dish.
func DishExists(repo repository.DishRepository) Step {
	return func(in *Input, s *Scratch) error {
		id := in.Param(DishIDParam)

		dish, found, err := repo.GetDish(in.Ctx, id)
		if err != nil {
			return fmt.Errorf("looking up dish %s: %w", id, err)
		}
		if !found {
			return errs.NewNotFoundError(fmt.Sprintf("Dish does not exist: %s.", id), true, nil)
		}

		s.Dish = &dish
		return nil
	}
}

func DishName(in *Input, s *Scratch) error {
	name, ok := stringField(in.Body.Data, "name")
	if !ok {
		return errs.NewValidationError("name", "Dish must include a name")
	}
	s.Name = name
	return nil
}

// DishPrice accepts any JSON number above zero, fractional prices included.
func DishPrice(in *Input, s *Scratch) error {
	price, ok := positiveNumber(in.Body.Data["price"])
	if !ok {
		return errs.NewValidationError("price", "Dish must have a price that is an integer greater than 0")
	}
	s.Price = price
	return nil
}

func DishDescription(in *Input, s *Scratch) error {
	description, ok := stringField(in.Body.Data, "description")
	if !ok {
		return errs.NewValidationError("description", "Dish must include a description")
	}
	s.Description = description
	return nil
}

func DishImageURL(in *Input, s *Scratch) error {
	imageURL, ok := stringField(in.Body.Data, "image_url")
	if !ok {
		return errs.NewValidationError("image_url", "Dish must include a image_url")
	}
	s.ImageURL = imageURL
	return nil
}

// DishIDMatchesRoute rejects a body id that differs from the resolved
// dish. A missing or empty body id is fine.
func DishIDMatchesRoute(in *Input, s *Scratch) error {
	id, ok := bodyID(in.Body.Data)
	if !ok {
		return nil
	}

	if id != s.Dish.ID {
		return errs.NewConflictError(fmt.Sprintf(
			"Dish id does not match route id. Dish: %s, Route: %s", id, s.Dish.ID))
	}
	return nil
}

// CreateDish validates a new dish.
func CreateDish() Pipeline {
	return Pipeline{DishName, DishPrice, DishDescription, DishImageURL}
}

// UpdateDish validates a replacement for an existing dish.
func UpdateDish(repo repository.DishRepository) Pipeline {
	return Pipeline{DishExists(repo), DishName, DishPrice, DishDescription, DishImageURL, DishIDMatchesRoute}
}

// ReadDish resolves the dish named by the route.
func ReadDish(repo repository.DishRepository) Pipeline {
	return Pipeline{DishExists(repo)}
}
