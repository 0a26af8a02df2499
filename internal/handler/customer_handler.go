package handler

import (
	"net/http"

	"shopdesk/internal/model"
	"shopdesk/internal/service"

	"github.com/rs/zerolog"
)

// CustomerHandler handles customer-related HTTP requests.
type CustomerHandler struct {
	customers service.CustomerService
	invoices  service.InvoiceService
	logger    zerolog.Logger
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customers service.CustomerService, invoices service.InvoiceService, logger zerolog.Logger) *CustomerHandler {
	return &CustomerHandler{
		customers: customers,
		invoices:  invoices,
		logger:    logger.With().Str("handler", "customer").Logger(),
	}
}

// Create handles POST /api/customers requests.
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	var req model.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	customer, err := h.customers.Create(r.Context(), ref, &req)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, customer)
}

// GetAll handles GET /api/customers requests.
func (h *CustomerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	customers, err := h.customers.GetAll(r.Context(), ref)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customers)
}

// GetByID handles GET /api/customers/{id} requests.
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	customer, err := h.customers.GetByID(r.Context(), ref, id)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// Update handles PUT /api/customers/{id} requests.
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	customer, err := h.customers.Update(r.Context(), ref, id, &req)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, customer)
}

// Delete handles DELETE /api/customers/{id} requests.
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.customers.Delete(r.Context(), ref, id); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Invoices handles GET /api/customers/{id}/invoices requests.
func (h *CustomerHandler) Invoices(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	invoices, err := h.invoices.GetByCustomer(r.Context(), ref, id)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, invoices)
}
