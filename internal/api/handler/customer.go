package handler

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/subsync/subsync/internal/api/request"
	"github.com/subsync/subsync/internal/api/response"
	"github.com/subsync/subsync/internal/core"
	"github.com/subsync/subsync/internal/model"
	"github.com/subsync/subsync/internal/storage"
)

type Customer struct {
	svc     *core.CustomerService
	subSvc  *core.SubscriptionService
	uploads *storage.Uploads
}

func NewCustomer(svc *core.CustomerService, subSvc *core.SubscriptionService, uploads *storage.Uploads) *Customer {
	return &Customer{svc: svc, subSvc: subSvc, uploads: uploads}
}

// contactPayload is shared by customer and vendor create/update requests.
type contactPayload struct {
	Salutation      string          `json:"salutation"`
	FirstName       string          `json:"first_name" validate:"required"`
	LastName        string          `json:"last_name"`
	Email           string          `json:"primary_email" validate:"required"`
	Phone           string          `json:"primary_phone_number" validate:"required"`
	CompanyName     string          `json:"company_name"`
	DisplayName     string          `json:"display_name" validate:"required"`
	GSTIN           string          `json:"gst_in" validate:"required"`
	CurrencyCode    string          `json:"currency_code"`
	PlaceOfSupply   string          `json:"place_of_supply"`
	GSTTreatment    string          `json:"gst_treatment"`
	TaxPreference   string          `json:"tax_preference"`
	ExemptionReason *string         `json:"exemption_reason"`
	Address         json.RawMessage `json:"address"`
	ContactPersons  json.RawMessage `json:"contact_persons"`
	PaymentTerms    json.RawMessage `json:"payment_terms"`
	CustomFields    json.RawMessage `json:"custom_fields"`
	Notes           *string         `json:"notes"`
	Status          string          `json:"status"`
}

func (p *contactPayload) toCustomer() *model.Customer {
	return &model.Customer{
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

func (h *Customer) Create(w http.ResponseWriter, r *http.Request) {
	var req contactPayload
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer := req.toCustomer()
	if err := h.svc.Create(r.Context(), customer); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, customer)
}

func (h *Customer) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), request.ParseListParams(r))
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WritePage(w, http.StatusOK, page)
}

// Get returns the customer together with its subscriptions, so the detail
// view needs a single round trip.
func (h *Customer) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	customer, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	subs, err := h.subSvc.ListByCustomer(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	if subs == nil {
		subs = []model.Subscription{}
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"customer":             customer,
		"relatedSubscriptions": subs,
	})
}

func (h *Customer) Update(w http.ResponseWriter, r *http.Request) {
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

	customer := req.toCustomer()
	customer.ID = id
	if customer.Status == "" {
		customer.Status = model.CustomerActive
	}

	if err := h.svc.Update(r.Context(), customer); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, customer)
}

func (h *Customer) Delete(w http.ResponseWriter, r *http.Request) {
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

const maxUploadBytes = 5 << 20

// UploadProfilePicture accepts a multipart image, stores it under the
// customer's ID, and records the filename on the row.
func (h *Customer) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("profile_picture")
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, "missing profile_picture file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".gif", ".webp":
	default:
		response.WriteError(w, http.StatusBadRequest, "unsupported image type")
		return
	}

	tempName, err := h.uploads.SaveTemp(file, ext)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	finalName, err := h.uploads.Finalize(tempName, id)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if err := h.svc.SetProfilePicture(r.Context(), id, finalName); err != nil {
		h.uploads.Remove(finalName)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]string{"profile_picture": finalName})
}
