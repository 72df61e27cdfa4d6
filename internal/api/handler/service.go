package handler

import (
	"encoding/json"
	"net/http"

	"github.com/subsync/subsync/internal/api/request"
	"github.com/subsync/subsync/internal/api/response"
	"github.com/subsync/subsync/internal/core"
	"github.com/subsync/subsync/internal/model"
)

// Service exposes the service catalogue.
type Service struct {
	svc *core.CatalogService
}

func NewService(svc *core.CatalogService) *Service {
	return &Service{svc: svc}
}

type servicePayload struct {
	Name            string          `json:"service_name" validate:"required"`
	Description     *string         `json:"description"`
	SKU             string          `json:"sku" validate:"required"`
	TaxPreference   string          `json:"tax_preference"`
	ItemGroupID     int64           `json:"item_group" validate:"required"`
	PreferredVendor string          `json:"preferred_vendor" validate:"required"`
	SalesInfo       json.RawMessage `json:"sales_information" validate:"required"`
	PurchaseInfo    json.RawMessage `json:"purchase_information" validate:"required"`
	DefaultTaxRates json.RawMessage `json:"default_tax_rates" validate:"required"`
}

func (p *servicePayload) toService() *model.Service {
	return &model.Service{
		Name:            p.Name,
		Description:     p.Description,
		SKU:             p.SKU,
		TaxPreference:   p.TaxPreference,
		ItemGroupID:     p.ItemGroupID,
		PreferredVendor: p.PreferredVendor,
		SalesInfo:       p.SalesInfo,
		PurchaseInfo:    p.PurchaseInfo,
		DefaultTaxRates: p.DefaultTaxRates,
	}
}

func (h *Service) Create(w http.ResponseWriter, r *http.Request) {
	var req servicePayload
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	svc := req.toService()
	if err := h.svc.Create(r.Context(), svc); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, svc)
}

func (h *Service) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), request.ParseListParams(r))
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WritePage(w, http.StatusOK, page)
}

func (h *Service) Get(w http.ResponseWriter, r *http.Request) {
	id, err := requireInt64(r, "id")
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	svc, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, svc)
}

func (h *Service) Update(w http.ResponseWriter, r *http.Request) {
	id, err := requireInt64(r, "id")
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	var req servicePayload
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	svc := req.toService()
	svc.ID = id

	if err := h.svc.Update(r.Context(), svc); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, svc)
}

func (h *Service) Delete(w http.ResponseWriter, r *http.Request) {
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
