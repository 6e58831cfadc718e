package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"techmart/internal/middleware"
	"techmart/internal/model"
	"techmart/internal/service"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// List handles GET /api/products requests with optional category, name
// and pagination filters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, ok := parseNonNegative(q.Get("limit"), 10)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
		return
	}

	skip, ok := parseNonNegative(q.Get("skip"), 0)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid skip parameter", h.logger)
		return
	}

	query := model.ProductQuery{
		Name:  q.Get("name"),
		Limit: limit,
		Skip:  skip,
	}

	if raw := q.Get("category"); raw != "" {
		category, valid := model.ParseCategory(raw)
		if !valid {
			writeError(w, http.StatusBadRequest, "invalid category", h.logger)
			return
		}
		query.Category = category
	}

	list, err := h.service.List(r.Context(), query)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests (admin only).
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Create(r.Context(), &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.logger.Info().
		Str("admin", middleware.Username(r.Context())).
		Str("product_id", product.ID).
		Msg("product created")

	writeJSON(w, http.StatusCreated, product)
}

// Update handles PUT /api/products/{id} requests (admin only). The
// payload is a partial patch; absent fields keep their current values.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	product, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.logger.Info().
		Str("admin", middleware.Username(r.Context())).
		Str("product_id", id).
		Msg("product updated")

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests (admin only).
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	h.logger.Info().
		Str("admin", middleware.Username(r.Context())).
		Str("product_id", id).
		Msg("product deleted")

	w.WriteHeader(http.StatusNoContent)
}

// parseNonNegative parses an optional non-negative integer query
// parameter, returning ok=false for malformed or negative values.
func parseNonNegative(raw string, defaultValue int) (int, bool) {
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, false
	}
	return value, true
}
