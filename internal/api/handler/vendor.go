package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/subsync/subsync/internal/api/request"
	"github.com/subsync/subsync/internal/api/response"
	"github.com/subsync/subsync/internal/core"
	"github.com/subsync/subsync/internal/model"
)

type Vendor struct {
	svc *core.VendorService
}

func NewVendor(svc *core.VendorService) *Vendor {
	return &Vendor{svc: svc}
}

func (p *contactPayload) toVendor() *model.Vendor {
	return &model.Vendor{
		Salutation:      p.Salutation,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		Email:           p.Email,
		Phone:           p.Phone,
		Address:         orEmptyObject(p.Address),
		CompanyName:     p.CompanyName,
		DisplayName:     p.DisplayName,
		GSTIN:           p.GSTIN,
		CurrencyCode:    p.CurrencyCode,
		PlaceOfSupply:   p.PlaceOfSupply,
		GSTTreatment:    p.GSTTreatment,
		TaxPreference:   p.TaxPreference,
		ExemptionReason: p.ExemptionReason,
		ContactPersons:  orEmptyArray(p.ContactPersons),
		PaymentTerms:    orEmptyObject(p.PaymentTerms),
		CustomFields:    orEmptyArray(p.CustomFields),
		Notes:           p.Notes,
		Status:          model.CustomerStatus(p.Status),
	}
}

func (h *Vendor) Create(w http.ResponseWriter, r *http.Request) {
	var req contactPayload
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	vendor := req.toVendor()
	if err := h.svc.Create(r.Context(), vendor); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, vendor)
}

func (h *Vendor) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), request.ParseListParams(r))
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WritePage(w, http.StatusOK, page)
}

func (h *Vendor) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	vendor, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, vendor)
}

func (h *Vendor) Update(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req contactPayload
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	vendor := req.toVendor()
	vendor.ID = id
	if vendor.Status == "" {
		vendor.Status = model.CustomerActive
	}

	if err := h.svc.Update(r.Context(), vendor); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, vendor)
}

func (h *Vendor) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
