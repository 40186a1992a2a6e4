package models

import "time"

// Setting is one seller-scoped configuration entry mirrored to the mobile
// app (e.g. notification preferences, display options).
type Setting struct {
	ID        int64     `json:"id"`
	SellerID  int64     `json:"seller_id"`
	Name      string    `json:"name"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s Setting) GetID() int64            { return s.ID }
func (s Setting) GetUpdatedAt() time.Time { return s.UpdatedAt }

// SellerStat is one precomputed statistics row for the seller dashboard
// (orders per day, revenue per period, etc.).
type SellerStat struct {
	ID         int64     `json:"id"`
	SellerID   int64     `json:"seller_id"`
	PeriodKind string    `json:"period_kind"`
	PeriodFrom time.Time `json:"period_from"`
	OrderCount int       `json:"order_count"`
	Revenue    float64   `json:"revenue"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (s SellerStat) GetID() int64            { return s.ID }
func (s SellerStat) GetUpdatedAt() time.Time { return s.UpdatedAt }

// QueuedEmail is an outbound email waiting in the store's send queue.
type QueuedEmail struct {
	ID        int64      `json:"id"`
	ToAddress string     `json:"to_address"`
	Subject   string     `json:"subject"`
	SentTries int        `json:"sent_tries"`
	SentAt    *time.Time `json:"sent_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (q QueuedEmail) GetID() int64            { return q.ID }
func (q QueuedEmail) GetUpdatedAt() time.Time { return q.UpdatedAt }

// Report is a client-generated report row. Reports are written through the
// side-channel save endpoint and flow back to other devices via normal sync.
type Report struct {
	ID        int64     `json:"id"`
	SellerID  int64     `json:"seller_id"`
	Kind      string    `json:"kind"`
	Payload   string    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r Report) GetID() int64            { return r.ID }
func (r Report) GetUpdatedAt() time.Time { return r.UpdatedAt }
