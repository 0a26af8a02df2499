package handler

import (
	"net/http"

	"shopdesk/internal/middleware"
	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// shopRef pulls the tenant ref placed in the context by the shop-scope
// middleware. A missing ref means the route was wired without it.
func shopRef(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (model.ShopRef, bool) {
	ref, ok := middleware.ShopRefFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "Missing shop scope", logger)
		return model.ShopRef{}, false
	}
	return ref, true
}

// ownerID pulls the authenticated owner id placed in the context by the
// owner-auth middleware.
func ownerID(w http.ResponseWriter, r *http.Request, logger zerolog.Logger) (uuid.UUID, bool) {
	id, ok := middleware.OwnerIDFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "Missing session token", logger)
		return uuid.Nil, false
	}
	return id, true
}

// pathID parses the {id} path segment of the current route.
func pathID(w http.ResponseWriter, r *http.Request, name string, logger zerolog.Logger) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeValidation, "Invalid "+name+" format", logger)
		return uuid.Nil, false
	}
	return id, true
}
