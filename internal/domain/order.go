package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order statuses, in the sequence the kitchen normally walks them. Only an
// administrator moves an order between statuses.
const (
	StatusReceived  = "Received"
	StatusPreparing = "Preparing"
	StatusReady     = "Ready"
	StatusDelivered = "Delivered"
)

// ValidStatus reports whether s is a known order status label.
func ValidStatus(s string) bool {
	switch s {
	case StatusReceived, StatusPreparing, StatusReady, StatusDelivered:
		return true
	}
	return false
}

// Order is a committed checkout. The total is computed once at checkout time
// and never recomputed. Products records which products were purchased but
// not their quantity or per-line price; see the order_products schema note.
type Order struct {
	ID         int64           `json:"id"`
	CustomerID int64           `json:"customerId"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	CreatedAt  time.Time       `json:"createdAt"`
	Products   []OrderProduct  `json:"products,omitempty"`
}

// OrderProduct is one membership row of an order. Name is resolved from the
// catalog at read time and stays empty when the product has since been
// deleted (the reference is allowed to dangle).
type OrderProduct struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name,omitempty"`
}
