package repository

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/deppfellow/grubdash/internal/lib/idgen"
	"github.com/deppfellow/grubdash/internal/model"
	"github.com/rs/zerolog"
)

var (
	//go:embed seed/dishes.json
	seedDishes []byte

	//go:embed seed/orders.json
	seedOrders []byte
)

// SeedOptions controls what Seed loads.
type SeedOptions struct {
	// Fixtures loads the bundled dishes and orders.
	Fixtures bool
	// FakeDishes generates that many extra dishes.
	FakeDishes int
}

// FixtureDishes returns the bundled dish fixtures.
func FixtureDishes() ([]model.Dish, error) {
	var dishes []model.Dish
	if err := json.Unmarshal(seedDishes, &dishes); err != nil {
		return nil, fmt.Errorf("decoding dish fixtures: %w", err)
	}
	return dishes, nil
}

// FixtureOrders returns the bundled order fixtures.
func FixtureOrders() ([]model.Order, error) {
	return decodeOrders(seedOrders)
}

// decodeOrders parses order fixtures and rejects any order whose status
// is not one of model.OrderStatuses.
func decodeOrders(data []byte) ([]model.Order, error) {
	var orders []model.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("decoding order fixtures: %w", err)
	}
	for _, o := range orders {
		if !o.Status.Valid() {
			return nil, fmt.Errorf("order fixture %s has unknown status %q", o.ID, o.Status)
		}
	}
	return orders, nil
}

// FakeDish generates a valid dish with a fresh id.
func FakeDish() model.Dish {
	return model.Dish{
		ID:          idgen.New(),
		Name:        gofakeit.Dinner(),
		Description: gofakeit.ProductDescription(),
		Price:       gofakeit.Price(1, 60),
		ImageURL:    gofakeit.URL(),
	}
}

// Seed fills empty stores. Stores that already hold records are left
// untouched so restarts against postgres do not duplicate rows.
func Seed(ctx context.Context, repos *Repositories, opts SeedOptions, logger *zerolog.Logger) error {
	dishes, err := repos.Dishes.ListDishes(ctx)
	if err != nil {
		return err
	}
	orders, err := repos.Orders.ListOrders(ctx)
	if err != nil {
		return err
	}
	if len(dishes) > 0 || len(orders) > 0 {
		logger.Info().
			Int("dishes", len(dishes)).
			Int("orders", len(orders)).
			Msg("store already populated, skipping seed")
		return nil
	}

	var toCreate []model.Dish
	var ordersToCreate []model.Order

	if opts.Fixtures {
		if toCreate, err = FixtureDishes(); err != nil {
			return err
		}
		if ordersToCreate, err = FixtureOrders(); err != nil {
			return err
		}
	}

	for i := 0; i < opts.FakeDishes; i++ {
		toCreate = append(toCreate, FakeDish())
	}

	for _, d := range toCreate {
		if err := repos.Dishes.CreateDish(ctx, d); err != nil {
			return fmt.Errorf("seeding dish %s: %w", d.ID, err)
		}
	}
	for _, o := range ordersToCreate {
		if err := repos.Orders.CreateOrder(ctx, o); err != nil {
			return fmt.Errorf("seeding order %s: %w", o.ID, err)
		}
	}

	logger.Info().
		Int("dishes", len(toCreate)).
		Int("orders", len(ordersToCreate)).
		Msg("seeded store")
	return nil
}
