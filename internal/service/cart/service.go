package cart

import (
	"context"

	"pastelaria/internal/domain"
)

type productRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// Service mutates session-held carts. The cart is always passed in
// explicitly; the service never keeps cart state of its own.
type Service struct {
	products productRepo
}

func New(products productRepo) *Service {
	return &Service{products: products}
}

// Add looks the product up in the catalog and merges it into the cart. The
// entry snapshots the product's name and price at this moment; a later
// catalog price change does not reach the cart.
func (s *Service) Add(ctx context.Context, cart domain.Cart, productID int64) (*domain.Product, error) {
	p, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	cart.Add(*p)
	return p, nil
}

// Remove drops the product from the cart. Absent products are ignored.
func (s *Service) Remove(cart domain.Cart, productID int64) {
	cart.Remove(productID)
}
