package handler

import (
	"net/http"

	"shopdesk/internal/model"
	"shopdesk/internal/service"

	"github.com/rs/zerolog"
)

// InvoiceHandler handles invoice-related HTTP requests.
type InvoiceHandler struct {
	service service.InvoiceService
	logger  zerolog.Logger
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(service service.InvoiceService, logger zerolog.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		service: service,
		logger:  logger.With().Str("handler", "invoice").Logger(),
	}
}

// Create handles POST /api/invoices requests.
func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	var req model.InvoiceRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	invoice, err := h.service.Create(r.Context(), ref, &req)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, invoice)
}

// GetAll handles GET /api/invoices requests.
func (h *InvoiceHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	invoices, err := h.service.GetByShop(r.Context(), ref)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, invoices)
}

// GetByID handles GET /api/invoices/{id} requests.
func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	invoice, err := h.service.GetByID(r.Context(), ref, id)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, invoice)
}

// Delete handles DELETE /api/invoices/{id} requests.
func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), ref, id); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Document handles GET /api/invoices/{id}/document requests.
func (h *InvoiceHandler) Document(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	doc, err := h.service.Document(r.Context(), ref, id)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}
