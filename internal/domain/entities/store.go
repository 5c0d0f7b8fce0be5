package entities

import (
	"time"
)

// Store represents a local store on the storefront.
type Store struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	Description  string    `json:"description" db:"description"`
	Address      string    `json:"address" db:"address"`
	Phone        string    `json:"phone,omitempty" db:"phone"`
	Category     string    `json:"category" db:"category"`
	Rating       float64   `json:"rating" db:"rating"`
	IsOpen       bool      `json:"is_open" db:"is_open"`
	DeliveryTime string    `json:"delivery_time" db:"delivery_time"`
	Latitude     *float64  `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64  `json:"longitude,omitempty" db:"longitude"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
