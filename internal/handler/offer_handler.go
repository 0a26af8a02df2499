package handler

import (
	"net/http"

	"shopdesk/internal/model"
	"shopdesk/internal/service"

	"github.com/rs/zerolog"
)

// OfferHandler handles offer-related HTTP requests.
type OfferHandler struct {
	service service.OfferService
	logger  zerolog.Logger
}

// NewOfferHandler creates a new offer handler.
func NewOfferHandler(service service.OfferService, logger zerolog.Logger) *OfferHandler {
	return &OfferHandler{
		service: service,
		logger:  logger.With().Str("handler", "offer").Logger(),
	}
}

// Create handles POST /api/offers requests.
func (h *OfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	var req model.OfferRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	offer, err := h.service.Create(r.Context(), ref, &req)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, offer)
}

// GetAll handles GET /api/offers requests. With ?active=true only offers
// that have not expired are returned.
func (h *OfferHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	var (
		offers []model.Offer
		err    error
	)
	if r.URL.Query().Get("active") == "true" {
		offers, err = h.service.GetActive(r.Context(), ref)
	} else {
		offers, err = h.service.GetAll(r.Context(), ref)
	}
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offers)
}

// Update handles PUT /api/offers/{id} requests.
func (h *OfferHandler) Update(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.OfferRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	offer, err := h.service.Update(r.Context(), ref, id, &req)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offer)
}

// Delete handles DELETE /api/offers/{id} requests.
func (h *OfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
