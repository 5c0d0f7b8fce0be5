package entities

// PopularProduct is a read-only row from the store_popular_products view,
// ranking products per store by search and click volume. It is never
// written by this service.
type PopularProduct struct {
	StoreID     int64   `json:"store_id" db:"store_id"`
	StoreName   string  `json:"store_name" db:"store_name"`
	ProductID   int64   `json:"product_id" db:"product_id"`
	ProductName string  `json:"product_name" db:"product_name"`
	Category    string  `json:"category" db:"category"`
	Price       float64 `json:"price" db:"price"`
	SearchCount int64   `json:"search_count" db:"search_count"`
	ClickCount  int64   `json:"click_count" db:"click_count"`
}

// SearchTrend is one calendar-date bucket of search volume.
type SearchTrend struct {
	Date     string `json:"date"`
	Searches int    `json:"searches"`
}
