package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/subsync/subsync/internal/api/request"
	"github.com/subsync/subsync/internal/api/response"
	"github.com/subsync/subsync/internal/core"
	"github.com/subsync/subsync/internal/platform"
)

type Subscription struct {
	svc *core.SubscriptionService
}

func NewSubscription(svc *core.SubscriptionService) *Subscription {
	return &Subscription{svc: svc}
}

func (h *Subscription) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerID string `json:"customer_id" validate:"required"`
		ProductID  int64  `json:"product_id" validate:"required"`
	}
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := h.svc.Create(r.Context(), req.CustomerID, req.ProductID)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, map[string]string{
		"sub_id":   sub.ID,
		"end_date": sub.EndDate.Format(platform.TimestampLayout),
	})
}

func (h *Subscription) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), request.ParseListParams(r))
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WritePage(w, http.StatusOK, page)
}

func (h *Subscription) Get(w http.ResponseWriter, r *http.Request) {
	id, err := request.RequireID(chi.URLParam(r, "id"))
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	sub, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, sub)
}
