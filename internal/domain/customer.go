package domain

import "time"

// Customer represents a registered customer. The phone number doubles as the
// login identifier and is unique across all customers.
type Customer struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"isAdmin"`
	Consent      bool      `json:"consent"`
	CreatedAt    time.Time `json:"createdAt"`
}
