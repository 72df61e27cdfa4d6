package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/subsync/subsync/internal/api/request"
	"github.com/subsync/subsync/internal/api/response"
	"github.com/subsync/subsync/internal/core"
	"github.com/subsync/subsync/internal/model"
)

type Tax struct {
	svc *core.TaxService
}

func NewTax(svc *core.TaxService) *Tax {
	return &Tax{svc: svc}
}

func (h *Tax) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.svc.ListRates(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, rates)
}

type taxRatePayload struct {
	Name string  `json:"tax_name" validate:"required"`
	Type string  `json:"tax_type" validate:"required"`
	Rate float64 `json:"tax_rate" validate:"gte=0"`
}

func (h *Tax) AddRate(w http.ResponseWriter, r *http.Request) {
	var req taxRatePayload
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	rate, err := h.svc.AddRate(r.Context(), req.Name, req.Type, req.Rate)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, rate)
}

func (h *Tax) UpdateRate(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req taxRatePayload
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.UpdateRate(r.Context(), id, req.Name, req.Type, req.Rate); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	rates, err := h.svc.ListRates(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	response.WriteJSON(w, http.StatusOK, rates)
}

func (h *Tax) RemoveRate(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.RemoveRate(r.Context(), id); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Tax) GetDefaultPreference(w http.ResponseWriter, r *http.Request) {
	pref, err := h.svc.GetDefaultPreference(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]json.RawMessage{"default_tax_preference": pref})
}

func (h *Tax) SetDefaultPreference(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Preference json.RawMessage `json:"default_tax_preference" validate:"required"`
	}
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.SetDefaultPreference(r.Context(), req.Preference); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]json.RawMessage{"default_tax_preference": req.Preference})
}

func (h *Tax) GetGSTSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.GetGSTSettings(r.Context())
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, settings)
}

func (h *Tax) SetGSTSettings(w http.ResponseWriter, r *http.Request) {
	var req model.GSTSettings
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.SetGSTSettings(r.Context(), &req); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, &req)
}
