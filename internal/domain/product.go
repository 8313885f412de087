package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Well-known catalog categories. The set is open: the store accepts any
// label, these are just the ones the menu ships with.
const (
	CategorySavoryPastry = "savory pastry"
	CategorySweetPastry  = "sweet pastry"
	CategoryBeverage     = "beverage"
)

type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// MenuSection groups the products of one category for listing.
type MenuSection struct {
	Category string    `json:"category"`
	Products []Product `json:"products"`
}
