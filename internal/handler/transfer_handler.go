package handler

import (
	"net/http"

	"shopdesk/internal/service"

	"github.com/rs/zerolog"
)

// TransferHandler handles CSV import and export HTTP requests.
type TransferHandler struct {
	service service.TransferService
	logger  zerolog.Logger
}

// NewTransferHandler creates a new transfer handler.
func NewTransferHandler(service service.TransferService, logger zerolog.Logger) *TransferHandler {
	return &TransferHandler{
		service: service,
		logger:  logger.With().Str("handler", "transfer").Logger(),
	}
}

// ImportCustomers handles POST /api/import/customers requests. The request
// body is the CSV file.
func (h *TransferHandler) ImportCustomers(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.ImportCustomers(r.Context(), ref, r.Body)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ImportProducts handles POST /api/import/products requests.
func (h *TransferHandler) ImportProducts(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.ImportProducts(r.Context(), ref, r.Body)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ExportCustomers handles GET /api/export/customers requests.
func (h *TransferHandler) ExportCustomers(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="customers.csv"`)
	if err := h.service.ExportCustomers(r.Context(), ref, w); err != nil {
		h.logger.Error().Err(err).Msg("customer export failed")
	}
}

// ExportInvoices handles GET /api/export/invoices requests.
func (h *TransferHandler) ExportInvoices(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.csv"`)
	if err := h.service.ExportInvoices(r.Context(), ref, w); err != nil {
		h.logger.Error().Err(err).Msg("invoice export failed")
	}
}
