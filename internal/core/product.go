package core

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/subsync/subsync/internal/model"
)

type ProductService struct {
	db DB
}

func NewProductService(db DB) *ProductService {
	return &ProductService{db: db}
}

var productListSpec = ListSpec{
	Table:  "products",
	Select: "id, name, description, validity_days, price, created_at, updated_at",
	Columns: map[string]string{
		"product_id":   "id",
		"product_name": "name",
		"description":  "description",
		"validity":     "validity_days",
		"price":        "price",
		"created_at":   "created_at",
		"updated_at":   "updated_at",
	},
	DefaultSort: "product_name",
}

func (s *ProductService) Create(ctx context.Context, p *model.Product) error {
	if p.Name == "" || p.ValidityDays <= 0 || p.Price < 0 {
		return Invalid("product name, a positive validity, and a non-negative price are required")
	}

	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	err := s.db.QueryRow(ctx,
		`INSERT INTO products (name, description, validity_days, price, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		p.Name, p.Description, p.ValidityDays, p.Price, p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("create product: %w",
			mapStoreError(err, "product not found", "a product with this name already exists"))
	}
	return nil
}

func scanProduct(row interface{ Scan(dest ...any) error }) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.ValidityDays, &p.Price, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (s *ProductService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	p, err := scanProduct(s.db.QueryRow(ctx,
		`SELECT id, name, description, validity_days, price, created_at, updated_at
		 FROM products WHERE id = $1`, id))
	if err != nil {
		return nil, mapStoreError(err, fmt.Sprintf("product %d not found", id), "")
	}
	return &p, nil
}

func (s *ProductService) List(ctx context.Context, p ListParams) (Page[model.Product], error) {
	return listPage(ctx, s.db, productListSpec, p, func(rows pgx.Rows) (model.Product, error) {
		return scanProduct(rows)
	})
}

func (s *ProductService) Update(ctx context.Context, p *model.Product) error {
	if p.Name == "" || p.ValidityDays <= 0 || p.Price < 0 {
		return Invalid("product name, a positive validity, and a non-negative price are required")
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE products SET name = $1, description = $2, validity_days = $3, price = $4, updated_at = now()
		 WHERE id = $5`,
		p.Name, p.Description, p.ValidityDays, p.Price, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update product %d: %w", p.ID,
			mapStoreError(err, "", "a product with this name already exists"))
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("product %d not found", p.ID))
	}
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("product %d not found", id))
	}
	return nil
}
