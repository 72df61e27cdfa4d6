package model

import "time"

// Product is a sellable item with a validity window. A subscription to a
// product stays active for ValidityDays from its start date.
type Product struct {
	ID           int64     `json:"product_id"`
	Name         string    `json:"product_name"`
	Description  string    `json:"description"`
	ValidityDays int       `json:"validity"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
