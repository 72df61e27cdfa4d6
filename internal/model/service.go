package model

import (
	"encoding/json"
	"time"
)

// Service is the elaborate catalogue variant of Product: it carries a SKU,
// an item-group reference, a preferred vendor, and structured sales,
// purchase, and tax-rate information.
type Service struct {
	ID              int64           `json:"service_id"`
	Name            string          `json:"service_name"`
	Description     *string         `json:"description"`
	SKU             string          `json:"sku"`
	TaxPreference   string          `json:"tax_preference"`
	ItemGroupID     int64           `json:"item_group"`
	PreferredVendor string          `json:"preferred_vendor"`
	SalesInfo       json.RawMessage `json:"sales_information"`
	PurchaseInfo    json.RawMessage `json:"purchase_information"`
	DefaultTaxRates json.RawMessage `json:"default_tax_rates"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
