package models

import "time"

// Product is one sellable item belonging to a seller's catalog.
type Product struct {
	ID               int64     `json:"id"`
	Name             string    `json:"name"`
	Sku              string    `json:"sku"`
	ShortDescription string    `json:"short_description"`
	Price            float64   `json:"price"`
	OldPrice         float64   `json:"old_price"`
	StockQuantity    int       `json:"stock_quantity"`
	CategoryID       int64     `json:"category_id"`
	Published        bool      `json:"published"`
	Deleted          bool      `json:"deleted"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (p Product) GetID() int64            { return p.ID }
func (p Product) GetUpdatedAt() time.Time { return p.UpdatedAt }

// Category is a node of the seller's catalog tree.
type Category struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ParentID     int64     `json:"parent_id"`
	DisplayOrder int       `json:"display_order"`
	Published    bool      `json:"published"`
	Deleted      bool      `json:"deleted"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c Category) GetID() int64            { return c.ID }
func (c Category) GetUpdatedAt() time.Time { return c.UpdatedAt }
