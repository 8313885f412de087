package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"pastelaria/internal/domain"
	orderrepo "pastelaria/internal/repository/order"
)

var (
	// ErrEmptyCart is returned when checkout is attempted on an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidStatus is returned for an unknown order status label.
	ErrInvalidStatus = errors.New("invalid order status")
)

// Service converts carts into durable orders and serves order reads.
type Service struct {
	repo   orderrepo.Repository
	logger *log.Logger
}

func New(repo orderrepo.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// Checkout commits the cart as a new order owned by customerID. The total is
// computed from the cart's snapshots at this instant; the order row and one
// membership row per distinct product are persisted atomically. On failure
// the cart is left untouched so the caller can retry; the underlying cause is
// logged but not surfaced. Clearing the cart on success is the caller's job,
// since the cart lives in session state the caller owns.
func (s *Service) Checkout(ctx context.Context, customerID int64, cart domain.Cart) (*domain.Order, error) {
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	o, err := s.repo.Create(ctx, orderrepo.CreateOrderInput{
		CustomerID: customerID,
		Total:      cart.Total(),
		ProductIDs: cart.ProductIDs(),
	})
	if err != nil {
		s.logger.Printf("order service: commit customer_id=%d error=%v", customerID, err)
		return nil, fmt.Errorf("commit order: %w", err)
	}
	s.logger.Printf("order service: committed order_id=%d customer_id=%d total=%s", o.ID, customerID, o.Total)
	return o, nil
}

// Get returns the order only to its owner. A mismatching customer receives
// ErrForbidden rather than ErrNotFound.
func (s *Service) Get(ctx context.Context, orderID, customerID int64) (*domain.Order, error) {
	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != customerID {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

// ListAll returns every order, newest first. Admin only; the guard layer
// enforces that.
func (s *Service) ListAll(ctx context.Context) ([]domain.Order, error) {
	return s.repo.ListAll(ctx)
}

// UpdateStatus moves an order to another known status label.
func (s *Service) UpdateStatus(ctx context.Context, orderID int64, status string) (*domain.Order, error) {
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, orderID, status)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
