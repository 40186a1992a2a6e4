package models

import "time"

// Order is a placed customer order in the scope of one seller.
type Order struct {
	ID               int64      `json:"id"`
	CustomerID       int64      `json:"customer_id"`
	BillingAddressID int64      `json:"billing_address_id"`
	StatusID         int        `json:"status_id"`
	PaymentStatusID  int        `json:"payment_status_id"`
	ShippingStatusID int        `json:"shipping_status_id"`
	OrderTotal       float64    `json:"order_total"`
	Deleted          bool       `json:"deleted"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	PaidAt           *time.Time `json:"paid_at,omitempty"`
}

func (o Order) GetID() int64            { return o.ID }
func (o Order) GetUpdatedAt() time.Time { return o.UpdatedAt }

// OrderItem is one line of an order.
type OrderItem struct {
	ID           int64     `json:"id"`
	OrderID      int64     `json:"order_id"`
	ProductID    int64     `json:"product_id"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	DiscountAmt  float64   `json:"discount_amt"`
	PriceInclTax float64   `json:"price_incl_tax"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (i OrderItem) GetID() int64            { return i.ID }
func (i OrderItem) GetUpdatedAt() time.Time { return i.UpdatedAt }

// Address is a customer address referenced by orders (billing/shipping).
type Address struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	City       string    `json:"city"`
	Street     string    `json:"street"`
	ZipCode    string    `json:"zip_code"`
	CountryID  int64     `json:"country_id"`
	Phone      string    `json:"phone"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (a Address) GetID() int64            { return a.ID }
func (a Address) GetUpdatedAt() time.Time { return a.UpdatedAt }

// Invoice is the billing document issued for an order.
type Invoice struct {
	ID            int64     `json:"id"`
	OrderID       int64     `json:"order_id"`
	Number        string    `json:"number"`
	TotalInclTax  float64   `json:"total_incl_tax"`
	TotalExclTax  float64   `json:"total_excl_tax"`
	CurrencyCode  string    `json:"currency_code"`
	IssuedAt      time.Time `json:"issued_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	PaymentMethod string    `json:"payment_method"`
}

func (i Invoice) GetID() int64            { return i.ID }
func (i Invoice) GetUpdatedAt() time.Time { return i.UpdatedAt }
