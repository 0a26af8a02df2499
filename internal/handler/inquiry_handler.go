package handler

import (
	"net/http"

	"shopdesk/internal/model"
	"shopdesk/internal/service"

	"github.com/rs/zerolog"
)

// InquiryHandler handles storefront contact inquiries.
type InquiryHandler struct {
	service service.InquiryService
	logger  zerolog.Logger
}

// NewInquiryHandler creates a new inquiry handler.
func NewInquiryHandler(service service.InquiryService, logger zerolog.Logger) *InquiryHandler {
	return &InquiryHandler{
		service: service,
		logger:  logger.With().Str("handler", "inquiry").Logger(),
	}
}

// Create handles POST /api/public/inquiries requests.
func (h *InquiryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.InquiryRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	inquiry, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, inquiry)
}

// GetAll handles GET /api/admin/inquiries requests.
func (h *InquiryHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	inquiries, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, inquiries)
}
