package model

// TaxRate is one entry in the tax-rates array stored on the settings row.
type TaxRate struct {
	ID        string  `json:"tax_id"`
	Name      string  `json:"tax_name"`
	Type      string  `json:"tax_type"`
	Rate      float64 `json:"tax_rate"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

// GSTSettings is the org-wide GST configuration blob.
type GSTSettings struct {
	GSTRegistered   bool   `json:"gst_registered"`
	GSTIN           string `json:"gst_in"`
	BusinessLegal   string `json:"business_legal_name"`
	BusinessTrade   string `json:"business_trade_name"`
	RegisteredOn    string `json:"registered_on"`
	CompositionLevy bool   `json:"composition_levy"`
}
