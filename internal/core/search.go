package core

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// SearchResult represents a single search result across entity types.
type SearchResult struct {
	Type  string `json:"type"`
	ID    string `json:"id"`
	Label string `json:"label"`
}

// SearchService provides cross-entity search for the admin UI's global
// search box.
type SearchService struct {
	db DB
}

func NewSearchService(db DB) *SearchService {
	return &SearchService{db: db}
}

// Search runs parallel queries across entity tables and returns matching
// results, grouped by table order.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	if limit <= 0 {
		limit = 5
	}
	pattern := "%" + query + "%"

	type queryDef struct {
		sql  string
		args []any
	}

	queries := []queryDef{
		{
			sql: `SELECT 'customer', id, display_name FROM customers
				WHERE id ILIKE $1 OR display_name ILIKE $1 OR company_name ILIKE $1 OR email ILIKE $1
				LIMIT $2`,
			args: []any{pattern, limit},
		},
		{
			sql: `SELECT 'vendor', id, display_name FROM vendors
				WHERE id ILIKE $1 OR display_name ILIKE $1 OR company_name ILIKE $1 OR email ILIKE $1
				LIMIT $2`,
			args: []any{pattern, limit},
		},
		{
			sql: `SELECT 'product', id::text, name FROM products
				WHERE name ILIKE $1
				LIMIT $2`,
			args: []any{pattern, limit},
		},
		{
			sql: `SELECT 'service', id::text, name FROM services
				WHERE name ILIKE $1 OR sku ILIKE $1
				LIMIT $2`,
			args: []any{pattern, limit},
		},
		{
			sql: `SELECT 'domain', id::text, name FROM domains
				WHERE name ILIKE $1 OR customer_name ILIKE $1
				LIMIT $2`,
			args: []any{pattern, limit},
		},
		{
			sql: `SELECT 'subscription', id, customer_id FROM subscriptions
				WHERE id ILIKE $1 OR customer_id ILIKE $1
				LIMIT $2`,
			args: []any{pattern, limit},
		},
	}

	results := make([][]SearchResult, len(queries))
	g, ctx := errgroup.WithContext(ctx)

	for i, q := range queries {
		g.Go(func() error {
			rows, err := s.db.Query(ctx, q.sql, q.args...)
			if err != nil {
				return fmt.Errorf("search query %d: %w", i, err)
			}
			defer rows.Close()

			for rows.Next() {
				var r SearchResult
				if err := rows.Scan(&r.Type, &r.ID, &r.Label); err != nil {
					return fmt.Errorf("scan search result: %w", err)
				}
				results[i] = append(results[i], r)
			}
			return rows.Err()
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := []SearchResult{}
	for _, rs := range results {
		merged = append(merged, rs...)
	}
	return merged, nil
}
