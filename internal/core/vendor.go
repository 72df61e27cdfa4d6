package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/subsync/subsync/internal/model"
	"github.com/subsync/subsync/internal/platform"
)

// VendorService mirrors CustomerService on the supply side.
type VendorService struct {
	db DB
}

func NewVendorService(db DB) *VendorService {
	return &VendorService{db: db}
}

const vendorColumns = `id, salutation, first_name, last_name, email, phone, address,
	company_name, display_name, gstin, currency_code, place_of_supply, gst_treatment,
	tax_preference, exemption_reason, contact_persons, payment_terms, custom_fields,
	notes, status, created_at, updated_at`

var vendorListSpec = ListSpec{
	Table:  "vendors",
	Select: vendorColumns,
	Columns: map[string]string{
		"vendor_id":            "id",
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

func (s *VendorService) Create(ctx context.Context, v *model.Vendor) error {
	if err := checkCustomerFormats(v.GSTIN, v.Email, v.Phone); err != nil {
		return err
	}

	v.ID = platform.RecordID(platform.VendorPrefix)
	if v.Status == "" {
		v.Status = model.CustomerActive
	}
	now := time.Now()
	v.CreatedAt = now
	v.UpdatedAt = now

	_, err := s.db.Exec(ctx,
		`INSERT INTO vendors (`+vendorColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`,
		v.ID, v.Salutation, v.FirstName, v.LastName, v.Email, v.Phone, v.Address,
		v.CompanyName, v.DisplayName, v.GSTIN, v.CurrencyCode, v.PlaceOfSupply, v.GSTTreatment,
		v.TaxPreference, v.ExemptionReason, v.ContactPersons, v.PaymentTerms, v.CustomFields,
		v.Notes, v.Status, v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create vendor: %w",
			mapStoreError(err, "vendor not found", "a vendor with this identifier already exists"))
	}
	return nil
}

func scanVendor(row interface{ Scan(dest ...any) error }) (model.Vendor, error) {
	var v model.Vendor
	err := row.Scan(&v.ID, &v.Salutation, &v.FirstName, &v.LastName, &v.Email, &v.Phone, &v.Address,
		&v.CompanyName, &v.DisplayName, &v.GSTIN, &v.CurrencyCode, &v.PlaceOfSupply, &v.GSTTreatment,
		&v.TaxPreference, &v.ExemptionReason, &v.ContactPersons, &v.PaymentTerms, &v.CustomFields,
		&v.Notes, &v.Status, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (s *VendorService) GetByID(ctx context.Context, id string) (*model.Vendor, error) {
	v, err := scanVendor(s.db.QueryRow(ctx,
		`SELECT `+vendorColumns+` FROM vendors WHERE id = $1`, id))
	if err != nil {
		return nil, mapStoreError(err, fmt.Sprintf("vendor %s not found", id), "")
	}
	return &v, nil
}

func (s *VendorService) List(ctx context.Context, p ListParams) (Page[model.Vendor], error) {
	return listPage(ctx, s.db, vendorListSpec, p, func(rows pgx.Rows) (model.Vendor, error) {
		return scanVendor(rows)
	})
}

func (s *VendorService) Update(ctx context.Context, v *model.Vendor) error {
	if err := checkCustomerFormats(v.GSTIN, v.Email, v.Phone); err != nil {
		return err
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE vendors SET salutation = $1, first_name = $2, last_name = $3, email = $4,
			phone = $5, address = $6, company_name = $7, display_name = $8, gstin = $9,
			currency_code = $10, place_of_supply = $11, gst_treatment = $12, tax_preference = $13,
			exemption_reason = $14, contact_persons = $15, payment_terms = $16, custom_fields = $17,
			notes = $18, status = $19, updated_at = now()
		 WHERE id = $20`,
		v.Salutation, v.FirstName, v.LastName, v.Email,
		v.Phone, v.Address, v.CompanyName, v.DisplayName, v.GSTIN,
		v.CurrencyCode, v.PlaceOfSupply, v.GSTTreatment, v.TaxPreference,
		v.ExemptionReason, v.ContactPersons, v.PaymentTerms, v.CustomFields,
		v.Notes, v.Status, v.ID,
	)
	if err != nil {
		return fmt.Errorf("update vendor %s: %w", v.ID, mapStoreError(err, "", ""))
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("vendor %s not found", v.ID))
	}
	return nil
}

func (s *VendorService) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM vendors WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete vendor %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("vendor %s not found", id))
	}
	return nil
}
