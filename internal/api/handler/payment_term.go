package handler

import (
	"net/http"

	"github.com/subsync/subsync/internal/api/request"
	"github.com/subsync/subsync/internal/api/response"
	"github.com/subsync/subsync/internal/core"
)

type PaymentTerm struct {
	svc *core.PaymentTermService
}

func NewPaymentTerm(svc *core.PaymentTermService) *PaymentTerm {
	return &PaymentTerm{svc: svc}
}

func (h *PaymentTerm) List(w http.ResponseWriter, r *http.Request) {
	terms, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, terms)
}

func (h *PaymentTerm) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"term_name" validate:"required"`
		Days int    `json:"days" validate:"gte=0"`
	}
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	term, err := h.svc.Create(r.Context(), req.Name, req.Days)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, term)
}

func (h *PaymentTerm) Update(w http.ResponseWriter, r *http.Request) {
	id, err := requireInt64(r, "id")
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	var req struct {
		Name string `json:"term_name" validate:"required"`
		Days int    `json:"days" validate:"gte=0"`
	}
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Update(r.Context(), id, req.Name, req.Days); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	term, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, term)
}

func (h *PaymentTerm) Delete(w http.ResponseWriter, r *http.Request) {
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

// SetDefault promotes one term to be the default; every other term is
// demoted in the same statement.
func (h *PaymentTerm) SetDefault(w http.ResponseWriter, r *http.Request) {
	id, err := requireInt64(r, "id")
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	if err := h.svc.SetDefault(r.Context(), id); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	terms, err := h.svc.List(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, terms)
}
