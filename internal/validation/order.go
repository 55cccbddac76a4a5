package validation

import (
	"fmt"
	"strings"

	"github.com/deppfellow/grubdash/internal/errs"
	"github.com/deppfellow/grubdash/internal/model"
	"github.com/deppfellow/grubdash/internal/repository"
	"github.com/go-playground/validator/v10"
)

// OrderIDParam is the route parameter naming an order.
const OrderIDParam = "orderId"

var validate = validator.New()

var statusRule = "oneof=" + strings.Join(statusNames(), " ")

var statusMessage = "Order must have a status of " + strings.Join(statusNames(), ", ")

func statusNames() []string {
	names := make([]string, len(model.OrderStatuses))
	for i, s := range model.OrderStatuses {
		names[i] = string(s)
	}
	return names
}

// OrderExists resolves the order named by the route onto s.Order.
func OrderExists(repo repository.OrderRepository) Step {
	return func(in *Input, s *Scratch) error {
		id := in.Param(OrderIDParam)

		order, found, err := repo.GetOrder(in.Ctx, id)
		if err != nil {
			return fmt.Errorf("looking up order %s: %w", id, err)
		}
		if !found {
			return errs.NewNotFoundError(fmt.Sprintf("Order %s not found.", id), true, nil)
		}

		s.Order = &order
		return nil
	}
}

func OrderStatus(in *Input, s *Scratch) error {
	status, ok := stringField(in.Body.Data, "status")
	if !ok || validate.Var(status, statusRule) != nil {
		return errs.NewValidationError("status", statusMessage)
	}
	s.Status = model.OrderStatus(status)
	return nil
}

// OrderIDMatchesRoute rejects a body id that differs from the resolved
// order. A missing or empty body id is fine.
func OrderIDMatchesRoute(in *Input, s *Scratch) error {
	id, ok := bodyID(in.Body.Data)
	if !ok {
		return nil
	}

	if id != s.Order.ID {
		return errs.NewConflictError(fmt.Sprintf(
			"Order id does not match route id. Order: %s, Route: %s.", id, s.Order.ID))
	}
	return nil
}

func OrderDeliverTo(in *Input, s *Scratch) error {
	deliverTo, ok := stringField(in.Body.Data, "deliverTo")
	if !ok {
		return errs.NewValidationError("deliverTo", "Order must include a deliverTo")
	}
	s.DeliverTo = deliverTo
	return nil
}

func OrderMobileNumber(in *Input, s *Scratch) error {
	mobileNumber, ok := stringField(in.Body.Data, "mobileNumber")
	if !ok {
		return errs.NewValidationError("mobileNumber", "Order must include a mobileNumber")
	}
	s.MobileNumber = mobileNumber
	return nil
}

// OrderDishesPresent only checks that the dishes key was sent.
func OrderDishesPresent(in *Input, _ *Scratch) error {
	if in.Body.Data["dishes"] == nil {
		return errs.NewValidationError("dishes", "Order must include a dish")
	}
	return nil
}

func OrderDishesNonEmpty(in *Input, _ *Scratch) error {
	dishes, ok := in.Body.Data["dishes"].([]any)
	if !ok || len(dishes) == 0 {
		return errs.NewValidationError("dishes", "Order must include at least one dish")
	}
	return nil
}

// OrderDishQuantities checks every dish line and copies the lines onto
// s.Dishes. It expects OrderDishesNonEmpty to have run.
func OrderDishQuantities(in *Input, s *Scratch) error {
	raw, _ := in.Body.Data["dishes"].([]any)

	lines := make([]model.OrderDish, 0, len(raw))
	for i, item := range raw {
		fields, _ := item.(map[string]any)

		quantity, ok := positiveInteger(fields["quantity"])
		if !ok {
			return errs.NewValidationError("dishes",
				fmt.Sprintf("Dish %d must have a quantity that is an integer greater than 0", i))
		}

		line := model.OrderDish{Quantity: quantity}
		line.ID, _ = fields["id"].(string)
		line.Name, _ = fields["name"].(string)
		line.Description, _ = fields["description"].(string)
		line.Price, _ = fields["price"].(float64)
		line.ImageURL, _ = fields["image_url"].(string)

		lines = append(lines, line)
	}

	s.Dishes = lines
	return nil
}

// OrderIsPending only lets pending orders through.
func OrderIsPending(_ *Input, s *Scratch) error {
	if s.Order.Status != model.OrderStatusPending {
		return errs.NewConflictError("An order cannot be deleted unless it is pending")
	}
	return nil
}

// CreateOrder validates a new order.
func CreateOrder() Pipeline {
	return Pipeline{
		OrderDeliverTo,
		OrderMobileNumber,
		OrderDishesPresent,
		OrderDishesNonEmpty,
		OrderDishQuantities,
	}
}

// UpdateOrder validates a replacement for an existing order.
func UpdateOrder(repo repository.OrderRepository) Pipeline {
	return Pipeline{
		OrderExists(repo),
		OrderStatus,
		OrderIDMatchesRoute,
		OrderDeliverTo,
		OrderMobileNumber,
		OrderDishesPresent,
		OrderDishesNonEmpty,
		OrderDishQuantities,
	}
}

// ReadOrder resolves the order named by the route.
func ReadOrder(repo repository.OrderRepository) Pipeline {
	return Pipeline{OrderExists(repo)}
}

// DeleteOrder resolves the order and checks it can be removed.
func DeleteOrder(repo repository.OrderRepository) Pipeline {
	return Pipeline{OrderExists(repo), OrderIsPending}
}
