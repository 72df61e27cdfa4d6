package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/subsync/subsync/internal/model"
)

// CatalogService manages the elaborate service-catalogue entries
// (SKU, item group, preferred vendor, structured sales/purchase info).
type CatalogService struct {
	db DB
}

func NewCatalogService(db DB) *CatalogService {
	return &CatalogService{db: db}
}

const serviceColumns = `id, name, description, sku, tax_preference, item_group_id,
	preferred_vendor, sales_info, purchase_info, default_tax_rates, created_at, updated_at`

var serviceListSpec = ListSpec{
	Table:  "services",
	Select: serviceColumns,
	Columns: map[string]string{
		"service_id":     "id",
		"service_name":   "name",
		"sku":            "sku",
		"tax_preference": "tax_preference",
		"item_group":     "item_group_id",
		"created_at":     "created_at",
	},
	DefaultSort: "service_name",
}

func (s *CatalogService) Create(ctx context.Context, svc *model.Service) error {
	if svc.Name == "" || svc.SKU == "" || svc.ItemGroupID == 0 || svc.PreferredVendor == "" ||
		svc.SalesInfo == nil || svc.PurchaseInfo == nil || svc.DefaultTaxRates == nil {
		return Invalid("missing required service fields")
	}
	if svc.TaxPreference == "" {
		svc.TaxPreference = "Taxable"
	}

	now := time.Now()
	svc.CreatedAt = now
	svc.UpdatedAt = now

	err := s.db.QueryRow(ctx,
		`INSERT INTO services (name, description, sku, tax_preference, item_group_id,
			preferred_vendor, sales_info, purchase_info, default_tax_rates, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id`,
		svc.Name, svc.Description, svc.SKU, svc.TaxPreference, svc.ItemGroupID,
		svc.PreferredVendor, svc.SalesInfo, svc.PurchaseInfo, svc.DefaultTaxRates,
		svc.CreatedAt, svc.UpdatedAt,
	).Scan(&svc.ID)
	if err != nil {
		return fmt.Errorf("create service: %w",
			mapStoreError(err, "invalid item group reference", "a service with this name already exists"))
	}
	return nil
}

func scanService(row interface{ Scan(dest ...any) error }) (model.Service, error) {
	var svc model.Service
	err := row.Scan(&svc.ID, &svc.Name, &svc.Description, &svc.SKU, &svc.TaxPreference,
		&svc.ItemGroupID, &svc.PreferredVendor, &svc.SalesInfo, &svc.PurchaseInfo,
		&svc.DefaultTaxRates, &svc.CreatedAt, &svc.UpdatedAt)
	return svc, err
}

func (s *CatalogService) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	svc, err := scanService(s.db.QueryRow(ctx,
		`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id))
	if err != nil {
		return nil, mapStoreError(err, fmt.Sprintf("service %d not found", id), "")
	}
	return &svc, nil
}

func (s *CatalogService) List(ctx context.Context, p ListParams) (Page[model.Service], error) {
	return listPage(ctx, s.db, serviceListSpec, p, func(rows pgx.Rows) (model.Service, error) {
		return scanService(rows)
	})
}

func (s *CatalogService) Update(ctx context.Context, svc *model.Service) error {
	if svc.Name == "" || svc.SKU == "" {
		return Invalid("service name and SKU are required")
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE services SET name = $1, description = $2, sku = $3, tax_preference = $4,
			item_group_id = $5, preferred_vendor = $6, sales_info = $7, purchase_info = $8,
			default_tax_rates = $9, updated_at = now()
		 WHERE id = $10`,
		svc.Name, svc.Description, svc.SKU, svc.TaxPreference,
		svc.ItemGroupID, svc.PreferredVendor, svc.SalesInfo, svc.PurchaseInfo,
		svc.DefaultTaxRates, svc.ID,
	)
	if err != nil {
		return fmt.Errorf("update service %d: %w", svc.ID,
			mapStoreError(err, "", "a service with this name already exists"))
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("service %d not found", svc.ID))
	}
	return nil
}

func (s *CatalogService) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("service %d not found", id))
	}
	return nil
}
