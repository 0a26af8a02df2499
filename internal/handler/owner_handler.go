package handler

import (
	"net/http"

	"shopdesk/internal/model"
	"shopdesk/internal/service"

	"github.com/rs/zerolog"
)

// OwnerHandler handles company-admin owner provisioning requests.
type OwnerHandler struct {
	service service.OwnerService
	logger  zerolog.Logger
}

// NewOwnerHandler creates a new owner handler.
func NewOwnerHandler(service service.OwnerService, logger zerolog.Logger) *OwnerHandler {
	return &OwnerHandler{
		service: service,
		logger:  logger.With().Str("handler", "owner").Logger(),
	}
}

// Create handles POST /api/admin/owners requests.
func (h *OwnerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.OwnerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	owner, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, owner)
}

// GetAll handles GET /api/admin/owners requests.
func (h *OwnerHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	owners, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, owners)
}

// Update handles PUT /api/admin/owners/{id} requests.
func (h *OwnerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	var req model.OwnerRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	owner, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, owner)
}

// Delete handles DELETE /api/admin/owners/{id} requests.
func (h *OwnerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id", h.logger)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
