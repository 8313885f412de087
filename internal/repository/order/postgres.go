package order

import (
	"context"
	"errors"
	"io"
	"log"

	"pastelaria/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

// Create inserts the order row and one membership row per product id inside a
// single transaction. A failure partway rolls everything back.
func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var o domain.Order
	err = tx.QueryRow(ctx, `
INSERT INTO orders (customer_id, total, status)
VALUES ($1, $2, $3)
RETURNING id, customer_id, total, status, created_at
`, in.CustomerID, in.Total, domain.StatusReceived).Scan(&o.ID, &o.CustomerID, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		r.logger.Printf("order repo: insert order customer_id=%d error=%v", in.CustomerID, err)
		return nil, err
	}

	for _, productID := range in.ProductIDs {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_products (order_id, product_id)
VALUES ($1, $2)
`, o.ID, productID); err != nil {
			r.logger.Printf("order repo: insert membership order_id=%d product_id=%d error=%v", o.ID, productID, err)
			return nil, err
		}
		o.Products = append(o.Products, domain.OrderProduct{ProductID: productID})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	const q = `
SELECT id, customer_id, total, status, created_at
FROM orders
WHERE id = $1
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, id).Scan(&o.ID, &o.CustomerID, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: get id=%d error=%v", id, err)
		return nil, err
	}

	products, err := r.fetchProducts(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	o.Products = products
	return &o, nil
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id, customer_id, total, status, created_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list error=%v", err)
		return nil, err
	}
	defer rows.Close()

	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.Total, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	const q = `
UPDATE orders
SET status = $1
WHERE id = $2
RETURNING id, customer_id, total, status, created_at
`
	var o domain.Order
	err := r.pool.QueryRow(ctx, q, status, id).Scan(&o.ID, &o.CustomerID, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Printf("order repo: update status id=%d error=%v", id, err)
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// fetchProducts resolves membership rows, joining product names where the
// product still exists. Deleted products come back with an empty name.
func (r *postgresRepo) fetchProducts(ctx context.Context, orderID int64) ([]domain.OrderProduct, error) {
	const q = `
SELECT op.product_id, COALESCE(p.name, '')
FROM order_products op
LEFT JOIN products p ON p.id = op.product_id
WHERE op.order_id = $1
ORDER BY op.product_id ASC
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.OrderProduct
	for rows.Next() {
		var p domain.OrderProduct
		if err := rows.Scan(&p.ProductID, &p.Name); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return products, nil
}
