package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/subsync/subsync/internal/core"
)

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, map[string]string{"error": message})
}

// WriteServiceError maps core error sentinels to HTTP status codes.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrInvalid):
		WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, core.ErrNotFound):
		WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, core.ErrConflict):
		WriteError(w, http.StatusConflict, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

// PagedResponse wraps a list page with its pagination metadata.
type PagedResponse struct {
	DataArray   any `json:"dataArray"`
	CurrentPage int `json:"currentPage"`
	TotalPages  int `json:"totalPages"`
	TotalCount  int `json:"totalCount"`
}

// WritePage writes a paginated JSON response.
func WritePage[T any](w http.ResponseWriter, status int, page core.Page[T]) {
	rows := page.Rows
	if rows == nil {
		rows = []T{}
	}
	WriteJSON(w, status, PagedResponse{
		DataArray:   rows,
		CurrentPage: page.CurrentPage,
		TotalPages:  page.TotalPages,
		TotalCount:  page.TotalCount,
	})
}
