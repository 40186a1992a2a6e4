package models

import "time"

// Seller represents a vendor account used for authentication and as the
// tenant scope of every sync operation. A seller only ever sees the subset
// of each collection it owns.
type Seller struct {
	// SellerID is the internal unique identifier of the seller.
	// It is not exposed via JSON and is used only at the persistence layer.
	SellerID int64 `json:"-"`

	// Login is the unique seller login identifier.
	Login string `json:"login"`

	// Name is the display name of the seller.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the seller's password.
	// Never plaintext, never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the seller account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Seller model.
func (s Seller) TableName() string {
	return "sellers"
}
