package core

import (
	"context"
	"fmt"

	"github.com/subsync/subsync/internal/model"
)

type PaymentTermService struct {
	db DB
}

func NewPaymentTermService(db DB) *PaymentTermService {
	return &PaymentTermService{db: db}
}

func (s *PaymentTermService) List(ctx context.Context) ([]model.PaymentTerm, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, days, is_default, created_at FROM payment_terms ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list payment terms: %w", err)
	}
	defer rows.Close()

	terms := []model.PaymentTerm{}
	for rows.Next() {
		var t model.PaymentTerm
		if err := rows.Scan(&t.ID, &t.Name, &t.Days, &t.IsDefault, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment term: %w", err)
		}
		terms = append(terms, t)
	}
	return terms, rows.Err()
}

func (s *PaymentTermService) GetByID(ctx context.Context, id int64) (*model.PaymentTerm, error) {
	var t model.PaymentTerm
	err := s.db.QueryRow(ctx,
		`SELECT id, name, days, is_default, created_at FROM payment_terms WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Days, &t.IsDefault, &t.CreatedAt)
	if err != nil {
		return nil, mapStoreError(err, fmt.Sprintf("payment term %d not found", id), "")
	}
	return &t, nil
}

func (s *PaymentTermService) Create(ctx context.Context, name string, days int) (*model.PaymentTerm, error) {
	if name == "" || days < 0 {
		return nil, Invalid("term name and a non-negative day count are required")
	}

	t := &model.PaymentTerm{Name: name, Days: days}
	err := s.db.QueryRow(ctx,
		`INSERT INTO payment_terms (name, days) VALUES ($1, $2) RETURNING id, is_default, created_at`,
		name, days,
	).Scan(&t.ID, &t.IsDefault, &t.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create payment term: %w",
			mapStoreError(err, "", "payment term name already exists"))
	}
	return t, nil
}

func (s *PaymentTermService) Update(ctx context.Context, id int64, name string, days int) error {
	if name == "" || days < 0 {
		return Invalid("term name and a non-negative day count are required")
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE payment_terms SET name = $1, days = $2 WHERE id = $3`, name, days, id)
	if err != nil {
		return fmt.Errorf("update payment term %d: %w", id,
			mapStoreError(err, "", "payment term name already exists"))
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("payment term %d not found", id))
	}
	return nil
}

func (s *PaymentTermService) Delete(ctx context.Context, id int64) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM payment_terms WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payment term %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return NotFound(fmt.Sprintf("payment term %d not found", id))
	}
	return nil
}

// SetDefault marks one term as the default and clears every other term in
// a single statement, so concurrent readers never observe zero defaults.
func (s *PaymentTermService) SetDefault(ctx context.Context, id int64) error {
	var exists bool
	if err := s.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payment_terms WHERE id = $1)`, id).Scan(&exists); err != nil {
		return fmt.Errorf("check payment term %d: %w", id, err)
	}
	if !exists {
		return NotFound(fmt.Sprintf("payment term %d not found", id))
	}

	if _, err := s.db.Exec(ctx, `UPDATE payment_terms SET is_default = (id = $1)`, id); err != nil {
		return fmt.Errorf("set default payment term %d: %w", id, err)
	}
	return nil
}
