package handler

import (
	"net/http"

	"github.com/subsync/subsync/internal/api/request"
	"github.com/subsync/subsync/internal/api/response"
	"github.com/subsync/subsync/internal/core"
)

type ItemGroup struct {
	svc *core.ItemGroupService
}

func NewItemGroup(svc *core.ItemGroupService) *ItemGroup {
	return &ItemGroup{svc: svc}
}

func (h *ItemGroup) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, groups)
}

func (h *ItemGroup) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"item_group_name" validate:"required"`
	}
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	group, err := h.svc.Create(r.Context(), req.Name)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, group)
}

func (h *ItemGroup) Update(w http.ResponseWriter, r *http.Request) {
	id, err := requireInt64(r, "id")
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	var req struct {
		Name string `json:"item_group_name" validate:"required"`
	}
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Update(r.Context(), id, req.Name); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	group, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, group)
}

func (h *ItemGroup) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := requireInt64(r, "id")
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
