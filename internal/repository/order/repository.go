package order

import (
	"context"

	"pastelaria/internal/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderInput carries everything the commit step persists: the owning
// customer, the total computed at checkout time, and the distinct product ids
// purchased.
type CreateOrderInput struct {
	CustomerID int64
	Total      decimal.Decimal
	ProductIDs []int64
}

// Repository persists and fetches orders. Create must be atomic: either the
// order row and all of its membership rows become durable, or none do.
type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	ListAll(ctx context.Context) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	Count(ctx context.Context) (int64, error)
}
