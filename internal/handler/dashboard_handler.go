package handler

import (
	"net/http"

	"shopdesk/internal/service"

	"github.com/rs/zerolog"
)

// DashboardHandler handles dashboard HTTP requests.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("handler", "dashboard").Logger(),
	}
}

// Metrics handles GET /api/dashboard requests.
func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	ref, ok := shopRef(w, r, h.logger)
	if !ok {
		return
	}

	metrics, err := h.service.Metrics(r.Context(), ref)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, metrics)
}
