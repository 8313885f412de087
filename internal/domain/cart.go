package domain

import "github.com/shopspring/decimal"

// CartEntry is the snapshot taken when a product is first added to a cart.
// The price is locked at add time and is not refreshed if the catalog price
// changes before checkout.
type CartEntry struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Cart maps product ids to entries. A cart lives in session state only; it is
// never persisted and is passed explicitly into and out of every operation
// that touches it.
type Cart map[int64]CartEntry

func NewCart() Cart {
	return make(Cart)
}

// Add merges the product into the cart: an existing entry gains one unit,
// otherwise a new entry with quantity 1 snapshots the product's current name
// and price.
func (c Cart) Add(p Product) {
	if entry, ok := c[p.ID]; ok {
		entry.Quantity++
		c[p.ID] = entry
		return
	}
	c[p.ID] = CartEntry{Name: p.Name, Price: p.Price, Quantity: 1}
}

// Remove drops the entry for the product id. Removing an absent product is a
// no-op, not an error.
func (c Cart) Remove(productID int64) {
	delete(c, productID)
}

// Total sums price times quantity over all entries. An empty cart totals zero.
func (c Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, entry := range c {
		total = total.Add(entry.Price.Mul(decimal.NewFromInt(int64(entry.Quantity))))
	}
	return total
}

// Clear empties the cart in place.
func (c Cart) Clear() {
	for id := range c {
		delete(c, id)
	}
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// ProductIDs returns the distinct product ids present in the cart.
func (c Cart) ProductIDs() []int64 {
	ids := make([]int64, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	return ids
}

// Clone returns an independent copy of the cart.
func (c Cart) Clone() Cart {
	clone := make(Cart, len(c))
	for id, entry := range c {
		clone[id] = entry
	}
	return clone
}
