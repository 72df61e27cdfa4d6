package handler

import (
	"net/http"
	"time"

	"github.com/subsync/subsync/internal/api/request"
	"github.com/subsync/subsync/internal/api/response"
	"github.com/subsync/subsync/internal/core"
	"github.com/subsync/subsync/internal/model"
)

type Domain struct {
	svc *core.DomainService
}

func NewDomain(svc *core.DomainService) *Domain {
	return &Domain{svc: svc}
}

const dateLayout = "2006-01-02"

type domainPayload struct {
	CustomerID       string   `json:"customer_id" validate:"required"`
	CustomerName     string   `json:"customer_name"`
	DomainName       string   `json:"domain_name" validate:"required"`
	RegistrationDate string   `json:"registration_date" validate:"required"`
	ExpiryDate       string   `json:"expiry_date" validate:"required"`
	RegisteredWith   string   `json:"registered_with" validate:"required"`
	OtherProvider    string   `json:"other_provider"`
	MailService      string   `json:"mail_service"`
	Description      string   `json:"description"`
	NameServers      []string `json:"name_servers"`
}

func (p *domainPayload) toDomain() (*model.Domain, error) {
	regDate, err := time.Parse(dateLayout, p.RegistrationDate)
	if err != nil {
		return nil, core.Invalid("registration_date must be YYYY-MM-DD")
	}
	expDate, err := time.Parse(dateLayout, p.ExpiryDate)
	if err != nil {
		return nil, core.Invalid("expiry_date must be YYYY-MM-DD")
	}

	return &model.Domain{
		CustomerID:       p.CustomerID,
		CustomerName:     p.CustomerName,
		DomainName:       p.DomainName,
		RegistrationDate: regDate,
		ExpiryDate:       expDate,
		RegisteredWith:   p.RegisteredWith,
		OtherProvider:    p.OtherProvider,
		MailService:      p.MailService,
		Description:      p.Description,
		NameServers:      p.NameServers,
	}, nil
}

func (h *Domain) Create(w http.ResponseWriter, r *http.Request) {
	var req domainPayload
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	domain, err := req.toDomain()
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	if err := h.svc.Create(r.Context(), domain); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, domain)
}

func (h *Domain) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), request.ParseListParams(r))
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WritePage(w, http.StatusOK, page)
}

func (h *Domain) Get(w http.ResponseWriter, r *http.Request) {
	id, err := requireInt64(r, "id")
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	domain, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, domain)
}

func (h *Domain) Update(w http.ResponseWriter, r *http.Request) {
	id, err := requireInt64(r, "id")
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	var req domainPayload
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	domain, err := req.toDomain()
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}
	domain.ID = id

	if err := h.svc.Update(r.Context(), domain); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, domain)
}

func (h *Domain) Delete(w http.ResponseWriter, r *http.Request) {
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
