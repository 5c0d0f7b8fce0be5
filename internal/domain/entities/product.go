package entities

import (
	"time"
)

// Product represents a product offered by a store.
//
// StoreName, StoreAddress and StoreRating are read-model fields filled by
// joining against the owning store at fetch time. They are never persisted
// on the products table, so writes cannot make them stale.
type Product struct {
	ID          int64     `json:"id" db:"id"`
	StoreID     int64     `json:"store_id" db:"store_id"`
	Name        string    `json:"name" db:"name"`
	Description string    `json:"description,omitempty" db:"description"`
	Price       float64   `json:"price" db:"price"`
	Category    string    `json:"category" db:"category"`
	InStock     bool      `json:"in_stock" db:"in_stock"`
	Tags        []string  `json:"tags" db:"tags"`
	ImageURL    string    `json:"image_url,omitempty" db:"image_url"`
	SearchCount int64     `json:"search_count" db:"search_count"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`

	// Joined store fields
	StoreName    string  `json:"store_name,omitempty" db:"-"`
	StoreAddress string  `json:"store_address,omitempty" db:"-"`
	StoreRating  float64 `json:"store_rating,omitempty" db:"-"`
}
