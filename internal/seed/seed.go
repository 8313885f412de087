package seed

import (
	"context"
	"fmt"

	"pastelaria/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name        string
	Description string
	Price       string
	Category    string
}

// Apply inserts the example menu for manual testing. It is idempotent via
// ON CONFLICT on the product name.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	products := []productSeed{
		{"Pastel de Carne", "Seasoned ground beef", "8.50", domain.CategorySavoryPastry},
		{"Pastel de Queijo", "Melted mozzarella", "8.00", domain.CategorySavoryPastry},
		{"Pastel de Frango com Catupiry", "Shredded chicken with creamy catupiry", "9.00", domain.CategorySavoryPastry},
		{"Pastel de Chocolate", "Melted milk chocolate", "7.50", domain.CategorySweetPastry},
		{"Pastel de Banana com Canela", "Banana with sugar and cinnamon", "7.00", domain.CategorySweetPastry},
		{"Refrigerante Lata", "Canned soda", "5.00", domain.CategoryBeverage},
		{"Suco Natural de Laranja", "Fresh orange juice, 300ml", "6.00", domain.CategoryBeverage},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}
	return nil
}

// EnsureAdmin creates an administrator account when the phone is not
// registered yet. An existing customer with that phone is left untouched.
func EnsureAdmin(ctx context.Context, pool *pgxpool.Pool, name, phone, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	const q = `
INSERT INTO customers (name, phone, address, password_hash, is_admin, lgpd_consent)
VALUES ($1, $2, '', $3, TRUE, TRUE)
ON CONFLICT (phone) DO NOTHING
`
	if _, err := pool.Exec(ctx, q, name, phone, string(hashed)); err != nil {
		return fmt.Errorf("insert admin: %w", err)
	}
	return nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, p productSeed) error {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO products (name, description, price, category)
VALUES ($1, $2, $3, $4)
ON CONFLICT (name) DO UPDATE
SET description = EXCLUDED.description,
    price = EXCLUDED.price,
    category = EXCLUDED.category
`
	_, err = pool.Exec(ctx, q, p.Name, p.Description, price, p.Category)
	return err
}
