package handler

import (
	"net/http"
	"strconv"

	"github.com/subsync/subsync/internal/api/response"
	"github.com/subsync/subsync/internal/core"
)

type Search struct {
	svc *core.SearchService
}

func NewSearch(svc *core.SearchService) *Search {
	return &Search{svc: svc}
}

func (h *Search) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		response.WriteError(w, http.StatusBadRequest, "missing query parameter q")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	results, err := h.svc.Search(r.Context(), query, limit)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	if results == nil {
		results = []core.SearchResult{}
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{"results": results})
}
