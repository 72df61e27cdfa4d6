package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

// ListParams carries the pagination, search, and sort inputs shared by
// every list endpoint.
type ListParams struct {
	SearchColumn string
	SearchTerm   string
	SortColumn   string
	SortOrder    string // "asc" or "desc"
	Page         int    // 1-based
	PageSize     int
}

// ListSpec configures the generic paginated query for one entity. Columns
// maps request-facing field names to SQL column identifiers; sort and
// search inputs are resolved through this fixed map and never interpolated
// from user input.
type ListSpec struct {
	Table       string
	Select      string
	Columns     map[string]string
	DefaultSort string
}

// Page is one page of rows plus the pagination metadata the client needs
// to render page controls.
type Page[T any] struct {
	Rows        []T
	TotalCount  int
	CurrentPage int
	TotalPages  int
}

const DefaultPageSize = 10

// listPage runs the shared filter/sort/paginate algorithm: an optional
// ILIKE substring filter on one allow-listed column, ORDER BY an
// allow-listed column, LIMIT/OFFSET, and a separate COUNT(*) under the
// same filter. An empty result is a success, not an error.
func listPage[T any](ctx context.Context, db DB, spec ListSpec, p ListParams, scan func(pgx.Rows) (T, error)) (Page[T], error) {
	var page Page[T]

	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}

	var where string
	var args []any
	if p.SearchColumn != "" && p.SearchTerm != "" {
		col, ok := spec.Columns[p.SearchColumn]
		if !ok {
			return page, Invalid("invalid search field")
		}
		where = fmt.Sprintf(" WHERE %s::text ILIKE $1", col)
		args = append(args, "%"+p.SearchTerm+"%")
	}

	sortCol := spec.Columns[spec.DefaultSort]
	if p.SortColumn != "" {
		col, ok := spec.Columns[p.SortColumn]
		if !ok {
			return page, Invalid("invalid sort field")
		}
		sortCol = col
	}
	dir := "ASC"
	if strings.EqualFold(p.SortOrder, "desc") {
		dir = "DESC"
	}

	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY %s %s LIMIT $%d OFFSET $%d",
		spec.Select, spec.Table, where, sortCol, dir, len(args)+1, len(args)+2)
	queryArgs := append(append([]any{}, args...), p.PageSize, (p.Page-1)*p.PageSize)

	rows, err := db.Query(ctx, query, queryArgs...)
	if err != nil {
		return page, fmt.Errorf("list %s: %w", spec.Table, err)
	}
	defer rows.Close()

	page.Rows = []T{}
	for rows.Next() {
		row, err := scan(rows)
		if err != nil {
			return page, fmt.Errorf("scan %s row: %w", spec.Table, err)
		}
		page.Rows = append(page.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return page, fmt.Errorf("iterate %s: %w", spec.Table, err)
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s%s", spec.Table, where)
	if err := db.QueryRow(ctx, countQuery, args...).Scan(&page.TotalCount); err != nil {
		return page, fmt.Errorf("count %s: %w", spec.Table, err)
	}

	page.CurrentPage = p.Page
	page.TotalPages = (page.TotalCount + p.PageSize - 1) / p.PageSize
	return page, nil
}
