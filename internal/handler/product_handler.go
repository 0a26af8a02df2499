package handler

import (
	"fmt"
	"io"
	"net/http"

	"shopdesk/internal/model"
	"shopdesk/internal/service"
	"shopdesk/internal/storage"

	"github.com/rs/zerolog"
)

// maxImageBytes caps product image uploads at 5 MiB.
const maxImageBytes = 5 << 20

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	products service.ProductService
	images   storage.ImageStore
	logger   zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(products service.ProductService, images storage.ImageStore, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		images:   images,
		logger:   logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /api/products requests.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	product, err := h.products.Create(r.Context(), ref, &req)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	products, err := h.products.GetAll(r.Context(), ref)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	product, err := h.products.GetByID(r.Context(), ref, id)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Update handles PUT /api/products/{id} requests.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	product, err := h.products.Update(r.Context(), ref, id, &req)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /api/products/{id} requests.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.products.Delete(r.Context(), ref, id); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UploadImage handles PUT /api/products/{id}/image requests. The request body
// is the raw image; the stored key is recorded on the product.
func (h *ProductHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	product, err := h.products.GetByID(r.Context(), ref, id)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	key := fmt.Sprintf("%s/%s/%s", ref.OwnerID, ref.ShopID, id)
	body := http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := h.images.Put(r.Context(), key, body); err != nil {
		h.logger.Error().Err(err).Str("key", key).Msg("image upload failed")
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "Failed to store image", h.logger)
		return
	}

	updated, err := h.products.Update(r.Context(), ref, id, &model.ProductRequest{
		Name:        product.Name,
		Price:       product.Price,
		Description: product.Description,
		ImageKey:    key,
	})
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// GetImage handles GET /api/products/{id}/image requests.
func (h *ProductHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	product, err := h.products.GetByID(r.Context(), ref, id)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}
	if product.ImageKey == "" {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "Product has no image", h.logger)
		return
	}

	reader, err := h.images.Get(r.Context(), product.ImageKey)
	if err != nil {
		writeError(w, http.StatusNotFound, model.ErrCodeNotFound, "Image not found", h.logger)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, reader); err != nil {
		h.logger.Error().Err(err).Str("key", product.ImageKey).Msg("failed to stream image")
	}
}
