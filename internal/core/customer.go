package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/subsync/subsync/internal/model"
	"github.com/subsync/subsync/internal/platform"
	"github.com/subsync/subsync/internal/validate"
)

type CustomerService struct {
	db DB
}

func NewCustomerService(db DB) *CustomerService {
	return &CustomerService{db: db}
}

const customerColumns = `id, salutation, first_name, last_name, email, phone, address,
	company_name, display_name, gstin, currency_code, place_of_supply, gst_treatment,
	tax_preference, exemption_reason, contact_persons, payment_terms, custom_fields,
	notes, profile_picture, status, created_at, updated_at`

var customerListSpec = ListSpec{
	Table:  "customers",
	Select: customerColumns,
	Columns: map[string]string{
		"customer_id":          "id",
		"display_name":         "display_name",
		"company_name":         "company_name",
		"first_name":           "first_name",
		"last_name":            "last_name",
		"primary_email":        "email",
		"primary_phone_number": "phone",
		"gst_in":               "gstin",
		"status":               "status",
		"created_at":           "created_at",
	},
	DefaultSort: "display_name",
}

// checkCustomerFormats applies the advisory format gates before any write.
func checkCustomerFormats(gstin, email, phone string) error {
	if !validate.IsGSTIN(gstin) {
		return Invalid("invalid GSTIN format")
	}
	if !validate.IsEmail(email) {
		return Invalid("invalid email format")
	}
	if !validate.IsPhone(phone) {
		return Invalid("invalid phone number format")
	}
	return nil
}

// Create validates formats, assigns a CID identifier, and inserts the row.
// CreatedAt and UpdatedAt are set equal at creation.
func (s *CustomerService) Create(ctx context.Context, c *model.Customer) error {
	if err := checkCustomerFormats(c.GSTIN, c.Email, c.Phone); err != nil {
		return err
	}

	c.ID = platform.RecordID(platform.CustomerPrefix)
	if c.Status == "" {
		c.Status = model.CustomerActive
	}
	now := time.Now()
	c.CreatedAt = now
	c.UpdatedAt = now

	_, err := s.db.Exec(ctx,
		`INSERT INTO customers (`+customerColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)`,
		c.ID, c.Salutation, c.FirstName, c.LastName, c.Email, c.Phone, c.Address,
		c.CompanyName, c.DisplayName, c.GSTIN, c.CurrencyCode, c.PlaceOfSupply, c.GSTTreatment,
		c.TaxPreference, c.ExemptionReason, c.ContactPersons, c.PaymentTerms, c.CustomFields,
		c.Notes, c.ProfilePicture, c.Status, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create customer: %w",
			mapStoreError(err, "customer not found", "a customer with this identifier already exists"))
	}
	return nil
}

func scanCustomer(row interface{ Scan(dest ...any) error }) (model.Customer, error) {
	var c model.Customer
	err := row.Scan(&c.ID, &c.Salutation, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.Address,
		&c.CompanyName, &c.DisplayName, &c.GSTIN, &c.CurrencyCode, &c.PlaceOfSupply, &c.GSTTreatment,
		&c.TaxPreference, &c.ExemptionReason, &c.ContactPersons, &c.PaymentTerms, &c.CustomFields,
		&c.Notes, &c.ProfilePicture, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *CustomerService) GetByID(ctx context.Context, id string) (*model.Customer, error) {
	c, err := scanCustomer(s.db.QueryRow(ctx,
		`SELECT `+customerColumns+` FROM customers WHERE id = $1`, id))
	if err != nil {
		return nil, mapStoreError(err, fmt.Sprintf("customer %s not found", id), "")
	}
	return &c, nil
}

func (s *CustomerService) List(ctx context.Context, p ListParams) (Page[model.Customer], error) {
	return listPage(ctx, s.db, customerListSpec, p, func(rows pgx.Rows) (model.Customer, error) {
		return scanCustomer(rows)
	})
}

func (s *CustomerService) Update(ctx context.Context, c *model.Customer) error {
	if err := checkCustomerFormats(c.GSTIN, c.Email, c.Phone); err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE customers SET salutation = $1, first_name = $2, last_name = $3, email = $4,
			phone = $5, address = $6, company_name = $7, display_name = $8, gstin = $9,
			currency_code = $10, place_of_supply = $11, gst_treatment = $12, tax_preference = $13,
			exemption_reason = $14, contact_persons = $15, payment_terms = $16, custom_fields = $17,
			notes = $18, status = $19, updated_at = now()
		 WHERE id = $20`,
		c.Salutation, c.FirstName, c.LastName, c.Email,
		c.Phone, c.Address, c.CompanyName, c.DisplayName, c.GSTIN,
		c.CurrencyCode, c.PlaceOfSupply, c.GSTTreatment, c.TaxPreference,
		c.ExemptionReason, c.ContactPersons, c.PaymentTerms, c.CustomFields,
		c.Notes, c.Status, c.ID,
	)
	if err != nil {
		return fmt.Errorf("update customer %s: %w", c.ID, mapStoreError(err, "", ""))
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("customer %s not found", c.ID))
	}
	return nil
}

// SetProfilePicture records the finalized upload path for a customer.
func (s *CustomerService) SetProfilePicture(ctx context.Context, id, path string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE customers SET profile_picture = $1, updated_at = now() WHERE id = $2`, path, id)
	if err != nil {
		return fmt.Errorf("set profile picture for %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("customer %s not found", id))
	}
	return nil
}

func (s *CustomerService) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete customer %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("customer %s not found", id))
	}
	return nil
}
