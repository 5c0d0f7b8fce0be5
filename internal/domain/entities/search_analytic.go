package entities

import (
	"time"
)

// SearchAnalytic records one search attempt and its eventual click outcome.
// Rows are created with Clicked=false at search time; a later click flips
// the flag on the most recent matching row instead of inserting a new one.
type SearchAnalytic struct {
	ID              int64     `json:"id" db:"id"`
	SearchTerm      string    `json:"search_term" db:"search_term"`
	ProductID       *int64    `json:"product_id,omitempty" db:"product_id"`
	StoreID         *int64    `json:"store_id,omitempty" db:"store_id"`
	UserSession     string    `json:"user_session" db:"user_session"`
	Clicked         bool      `json:"clicked" db:"clicked"`
	SearchTimestamp time.Time `json:"search_timestamp" db:"search_timestamp"`
}
