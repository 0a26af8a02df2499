package handler

import (
	"net/http"

	"shopdesk/internal/service"

	"github.com/rs/zerolog"
)

// StorefrontHandler serves unauthenticated reads for a shop's public page.
// The tenant ref is derived from the shop itself rather than a session.
type StorefrontHandler struct {
	shops    service.ShopService
	products service.ProductService
	offers   service.OfferService
	logger   zerolog.Logger
}

// NewStorefrontHandler creates a new storefront handler.
func NewStorefrontHandler(
	shops service.ShopService,
	products service.ProductService,
	offers service.OfferService,
	logger zerolog.Logger,
) *StorefrontHandler {
	return &StorefrontHandler{
		shops:    shops,
		products: products,
		offers:   offers,
		logger:   logger.With().Str("handler", "storefront").Logger(),
	}
}

// Products handles GET /api/public/shops/{shopId}/products requests.
func (h *StorefrontHandler) Products(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(w, r, "shopId", h.logger)
	if !ok {
		return
	}

	ref, err := h.shops.RefForShop(r.Context(), shopID)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	products, err := h.products.GetAll(r.Context(), ref)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// Offers handles GET /api/public/shops/{shopId}/offers requests. Only
// unexpired offers are shown publicly.
func (h *StorefrontHandler) Offers(w http.ResponseWriter, r *http.Request) {
	shopID, ok := pathID(w, r, "shopId", h.logger)
	if !ok {
		return
	}

	ref, err := h.shops.RefForShop(r.Context(), shopID)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	offers, err := h.offers.GetActive(r.Context(), ref)
	if err != nil {
		handleServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, offers)
}
