package handler

import (
	"net/http"

	"shopdesk/internal/model"
	"shopdesk/internal/service"

	"github.com/rs/zerolog"
)

// ShopHandler handles shop management HTTP requests for authenticated owners.
type ShopHandler struct {
	service service.ShopService
	logger  zerolog.Logger
}

// NewShopHandler creates a new shop handler.
func NewShopHandler(service service.ShopService, logger zerolog.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		logger:  logger.With().Str("handler", "shop").Logger(),
	}
}

// Create handles POST /api/shops requests.
func (h *ShopHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r, h.logger)
	if !ok {
		return
	}

	var req model.ShopRequest
	if err := decodeJSON(r, &req); err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	shop, err := h.service.Create(r.Context(), owner, &req)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, shop)
}

// GetAll handles GET /api/shops requests, listing the owner's shops.
func (h *ShopHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r, h.logger)
	if !ok {
		return
	}

	shops, err := h.service.GetByOwner(r.Context(), owner)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, shops)
}
