package request

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/subsync/subsync/internal/core"
)

const maxPageSize = 100

// ParseListParams extracts search, sort, and pagination parameters from the
// query string. Unknown column keys are rejected later, by the service's
// allow-list.
func ParseListParams(r *http.Request) core.ListParams {
	q := r.URL.Query()

	p := core.ListParams{
		SearchColumn: q.Get("searchType"),
		SearchTerm:   q.Get("search"),
		SortColumn:   q.Get("sort"),
		Page:         1,
		PageSize:     core.DefaultPageSize,
	}

	switch strings.ToLower(q.Get("order")) {
	case "desc":
		p.SortOrder = "DESC"
	default:
		p.SortOrder = "ASC"
	}

	if page, err := strconv.Atoi(q.Get("page")); err == nil && page > 0 {
		p.Page = page
	}
	if size, err := strconv.Atoi(q.Get("pageSize")); err == nil && size > 0 {
		p.PageSize = size
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}

	return p
}
