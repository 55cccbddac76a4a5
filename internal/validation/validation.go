// Package validation contains the logic for validating
// request data.
//
// Each route runs an ordered Pipeline of single-purpose steps over the
// decoded `{ "data": {...} }` payload. A step either records the value it
// checked on the per-request Scratch or returns an *errs.HTTPError, and
// the first error stops the pipeline. Handlers only run once every step
// has passed.
package validation

import (
	"context"

	"github.com/deppfellow/grubdash/internal/model"
)

// Payload is the request body envelope shared by every write route.
type Payload struct {
	Data map[string]any `json:"data"`
}

// Input is the raw request as the steps see it.
type Input struct {
	Ctx    context.Context
	Params map[string]string
	Body   Payload
}

// Param returns the named route parameter, or "".
func (in *Input) Param(name string) string {
	return in.Params[name]
}

// Scratch is the per-request state steps write into.
//
// A fresh Scratch is created for every request.
type Scratch struct {
	// Resolved records, set by the existence steps.
	Dish  *model.Dish
	Order *model.Order

	Name        string
	Description string
	Price       float64
	ImageURL    string

	DeliverTo    string
	MobileNumber string
	Status       model.OrderStatus
	Dishes       []model.OrderDish
}

// DishInput builds the service input from the validated dish fields.
func (s *Scratch) DishInput() model.DishInput {
	return model.DishInput{
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price,
		ImageURL:    s.ImageURL,
	}
}

// OrderInput builds the service input from the validated order fields.
func (s *Scratch) OrderInput() model.OrderInput {
	return model.OrderInput{
		DeliverTo:    s.DeliverTo,
		MobileNumber: s.MobileNumber,
		Status:       s.Status,
		Dishes:       s.Dishes,
	}
}

// Step checks one concern of a request.
type Step func(in *Input, s *Scratch) error

// Pipeline is an ordered list of steps.
type Pipeline []Step

// Run executes the steps in order and stops at the first error.
func (p Pipeline) Run(in *Input, s *Scratch) error {
	for _, step := range p {
		if err := step(in, s); err != nil {
			return err
		}
	}
	return nil
}
