package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/deppfellow/grubdash/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PgxIface is the subset of *pgxpool.Pool the postgres store uses.
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresStore keeps dishes and orders in PostgreSQL.
//
// Rows are listed by their seq column so reads keep insertion order.
// Order dishes live in a JSONB column.
type PostgresStore struct {
	pool PgxIface
}

// NewPostgresStore returns a store backed by pool.
func NewPostgresStore(pool PgxIface) *PostgresStore {
	return &PostgresStore{pool: pool}
}

const dishColumns = `id, name, description, price, image_url`

func scanDish(row pgx.Row) (model.Dish, error) {
	var d model.Dish
	err := row.Scan(&d.ID, &d.Name, &d.Description, &d.Price, &d.ImageURL)
	return d, err
}

func (s *PostgresStore) ListDishes(ctx context.Context) ([]model.Dish, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+dishColumns+` FROM dishes ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing dishes: %w", err)
	}
	defer rows.Close()

	dishes := []model.Dish{}
	for rows.Next() {
		d, err := scanDish(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning dish: %w", err)
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

func (s *PostgresStore) GetDish(ctx context.Context, id string) (model.Dish, bool, error) {
	d, err := scanDish(s.pool.QueryRow(ctx, `SELECT `+dishColumns+` FROM dishes WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Dish{}, false, nil
	}
	if err != nil {
		return model.Dish{}, false, fmt.Errorf("getting dish %s: %w", id, err)
	}
	return d, true, nil
}

func (s *PostgresStore) CreateDish(ctx context.Context, d model.Dish) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO dishes (id, name, description, price, image_url)
		VALUES ($1, $2, $3, $4, $5)
	`, d.ID, d.Name, d.Description, d.Price, d.ImageURL)
	if err != nil {
		return fmt.Errorf("creating dish: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateDish(ctx context.Context, d model.Dish) (bool, error) {
	tag, err := s.pool.Exec(ctx, `
		UPDATE dishes SET name = $2, description = $3, price = $4, image_url = $5
		WHERE id = $1
	`, d.ID, d.Name, d.Description, d.Price, d.ImageURL)
	if err != nil {
		return false, fmt.Errorf("updating dish %s: %w", d.ID, err)
	}
	return tag.RowsAffected() > 0, nil
}

const orderColumns = `id, deliver_to, mobile_number, status, dishes`

func scanOrder(row pgx.Row) (model.Order, error) {
	var (
		o      model.Order
		status string
		dishes []byte
	)
	if err := row.Scan(&o.ID, &o.DeliverTo, &o.MobileNumber, &status, &dishes); err != nil {
		return model.Order{}, err
	}
	o.Status = model.OrderStatus(status)
	if err := json.Unmarshal(dishes, &o.Dishes); err != nil {
		return model.Order{}, fmt.Errorf("decoding dishes of order %s: %w", o.ID, err)
	}
	return o, nil
}

func encodeOrderDishes(dishes []model.OrderDish) ([]byte, error) {
	if dishes == nil {
		dishes = []model.OrderDish{}
	}
	return json.Marshal(dishes)
}

func (s *PostgresStore) ListOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *PostgresStore) GetOrder(ctx context.Context, id string) (model.Order, bool, error) {
	o, err := scanOrder(s.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Order{}, false, nil
	}
	if err != nil {
		return model.Order{}, false, fmt.Errorf("getting order %s: %w", id, err)
	}
	return o, true, nil
}

func (s *PostgresStore) CreateOrder(ctx context.Context, o model.Order) error {
	dishes, err := encodeOrderDishes(o.Dishes)
	if err != nil {
		return err
	}
	_, err = s.pool.Exec(ctx, `
		INSERT INTO orders (id, deliver_to, mobile_number, status, dishes)
		VALUES ($1, $2, $3, $4, $5)
	`, o.ID, o.DeliverTo, o.MobileNumber, string(o.Status), dishes)
	if err != nil {
		return fmt.Errorf("creating order: %w", err)
	}
	return nil
}

func (s *PostgresStore) UpdateOrder(ctx context.Context, o model.Order) (bool, error) {
	dishes, err := encodeOrderDishes(o.Dishes)
	if err != nil {
		return false, err
	}
	tag, err := s.pool.Exec(ctx, `
		UPDATE orders SET deliver_to = $2, mobile_number = $3, status = $4, dishes = $5
		WHERE id = $1
	`, o.ID, o.DeliverTo, o.MobileNumber, string(o.Status), dishes)
	if err != nil {
		return false, fmt.Errorf("updating order %s: %w", o.ID, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *PostgresStore) DeleteOrder(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("deleting order %s: %w", id, err)
	}
	return tag.RowsAffected() > 0, nil
}

var (
	_ DishRepository  = (*PostgresStore)(nil)
	_ OrderRepository = (*PostgresStore)(nil)
)
