package model

import (
	"encoding/json"
	"time"
)

type CustomerStatus string

const (
	CustomerActive   CustomerStatus = "Active"
	CustomerInactive CustomerStatus = "Inactive"
)

type Customer struct {
	ID              string          `json:"customer_id"`
	Salutation      string          `json:"salutation"`
	FirstName       string          `json:"first_name"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"primary_email"`
	Phone           string          `json:"primary_phone_number"`
	Address         json.RawMessage `json:"customer_address"`
	CompanyName     string          `json:"company_name"`
	DisplayName     string          `json:"display_name"`
	GSTIN           string          `json:"gst_in"`
	CurrencyCode    string          `json:"currency_code"`
	PlaceOfSupply   string          `json:"place_of_supply"`
	GSTTreatment    string          `json:"gst_treatment"`
	TaxPreference   string          `json:"tax_preference"`
	ExemptionReason *string         `json:"exemption_reason"`
	ContactPersons  json.RawMessage `json:"contact_persons"`
	PaymentTerms    json.RawMessage `json:"payment_terms"`
	CustomFields    json.RawMessage `json:"custom_fields"`
	Notes           *string         `json:"notes"`
	ProfilePicture  *string         `json:"profile_picture"`
	Status          CustomerStatus  `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
