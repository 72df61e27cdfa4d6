package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/subsync/subsync/internal/api/request"
	"github.com/subsync/subsync/internal/api/response"
	"github.com/subsync/subsync/internal/core"
	"github.com/subsync/subsync/internal/model"
)

type Product struct {
	svc *core.ProductService
}

func NewProduct(svc *core.ProductService) *Product {
	return &Product{svc: svc}
}

// requireInt64 parses a numeric URL parameter.
func requireInt64(r *http.Request, key string) (int64, error) {
	raw := chi.URLParam(r, key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, core.Invalid("invalid numeric ID")
	}
	return id, nil
}

type productPayload struct {
	Name         string  `json:"product_name" validate:"required"`
	Description  string  `json:"description"`
	ValidityDays int     `json:"validity" validate:"required,gt=0"`
	Price        float64 `json:"price" validate:"gte=0"`
}

func (h *Product) Create(w http.ResponseWriter, r *http.Request) {
	var req productPayload
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	product := &model.Product{
		Name:         req.Name,
		Description:  req.Description,
		ValidityDays: req.ValidityDays,
		Price:        req.Price,
	}
	if err := h.svc.Create(r.Context(), product); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusCreated, product)
}

func (h *Product) List(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.List(r.Context(), request.ParseListParams(r))
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WritePage(w, http.StatusOK, page)
}

func (h *Product) Get(w http.ResponseWriter, r *http.Request) {
	id, err := requireInt64(r, "id")
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	product, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, product)
}

func (h *Product) Update(w http.ResponseWriter, r *http.Request) {
	id, err := requireInt64(r, "id")
	if err != nil {
		response.WriteServiceError(w, err)
		return
	}

	var req productPayload
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	product := &model.Product{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		ValidityDays: req.ValidityDays,
		Price:        req.Price,
	}
	if err := h.svc.Update(r.Context(), product); err != nil {
		response.WriteServiceError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, product)
}

func (h *Product) Delete(w http.ResponseWriter, r *http.Request) {
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
