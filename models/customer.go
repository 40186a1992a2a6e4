package models

import "time"

// Customer is a store customer visible to a seller.
type Customer struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	Phone       string     `json:"phone"`
	Company     string     `json:"company"`
	Active      bool       `json:"active"`
	Deleted     bool       `json:"deleted"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`

	// Attributes carries the customer's custom attributes. It is populated
	// by an enrichment hook on the upsert set only, never for the whole
	// snapshot.
	Attributes []CustomerAttribute `json:"attributes,omitempty"`
}

// CustomerAttribute is one generic key/value attribute attached to a
// customer (e.g. gender, date of birth, VAT number).
type CustomerAttribute struct {
	CustomerID int64  `json:"customer_id"`
	Key        string `json:"key"`
	Value      string `json:"value"`
}

func (c Customer) GetID() int64            { return c.ID }
func (c Customer) GetUpdatedAt() time.Time { return c.UpdatedAt }
