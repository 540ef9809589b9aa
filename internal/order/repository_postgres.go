package order

import (
	"database/sql"
	"encoding/json"
)

type PostgresRepository struct {
	db *sql.DB
}

const (
	insertOrderQuery = `
        INSERT INTO orders ("orderId", "customerId", products, status, "createdAt")
        VALUES ($1, $2, $3, $4, $5)
    `
	updateOrderStatusQuery = `
        UPDATE orders SET status = $1 WHERE "orderId" = $2
        RETURNING "orderId", "customerId", products, status, "createdAt"
    `
	getOrderQuery = `
        SELECT "orderId", "customerId", products, status, "createdAt"
        FROM orders WHERE "orderId" = $1
    `
	listOrdersQuery = `
        SELECT "orderId", "customerId", products, status, "createdAt"
        FROM orders WHERE "customerId" = $1
        ORDER BY "createdAt" DESC
    `
)

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(o Order) (Order, error) {
	products, err := json.Marshal(o.Products)
	if err != nil {
		return Order{}, err
	}
	if _, err := r.db.Exec(insertOrderQuery, o.OrderID, o.CustomerID, string(products), string(o.Status), o.CreatedAt); err != nil {
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) UpdateStatus(orderID string, status Status) (Order, error) {
	row := r.db.QueryRow(updateOrderStatusQuery, string(status), orderID)
	o, err := scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) GetByOrderID(orderID string) (Order, error) {
	row := r.db.QueryRow(getOrderQuery, orderID)
	o, err := scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return Order{}, ErrNotFound
		}
		return Order{}, err
	}
	return o, nil
}

func (r *PostgresRepository) ListByCustomerID(customerID string) ([]Order, error) {
	rows, err := r.db.Query(listOrdersQuery, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row rowScanner) (Order, error) {
	var o Order
	var products sql.NullString
	var status string
	if err := row.Scan(&o.OrderID, &o.CustomerID, &products, &status, &o.CreatedAt); err != nil {
		return Order{}, err
	}
	o.Status = Status(status)
	if products.Valid && products.String != "" {
		if err := json.Unmarshal([]byte(products.String), &o.Products); err != nil {
			return Order{}, err
		}
	}
	return o, nil
}
