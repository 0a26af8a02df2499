package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"shopdesk/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const (
	ownerIDKey contextKey = "ownerID"
	shopRefKey contextKey = "shopRef"
)

// WithOwnerID returns a context carrying the authenticated owner id.
func WithOwnerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerIDKey, id)
}

// WithShopRef returns a context carrying the resolved tenant ref.
func WithShopRef(ctx context.Context, ref model.ShopRef) context.Context {
	return context.WithValue(ctx, shopRefKey, ref)
}

// OwnerIDFrom extracts the authenticated owner id from the request context.
func OwnerIDFrom(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ownerIDKey).(uuid.UUID)
	return id, ok
}

// ShopRefFrom extracts the resolved tenant ref from the request context.
func ShopRefFrom(ctx context.Context) (model.ShopRef, bool) {
	ref, ok := ctx.Value(shopRefKey).(model.ShopRef)
	return ref, ok
}

// TokenVerifier checks a session token and returns the owner it belongs to.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// ShopResolver verifies that a shop belongs to an owner and returns the
// tenant ref for the pair.
type ShopResolver interface {
	Resolve(ctx context.Context, ownerID, shopID uuid.UUID) (model.ShopRef, error)
}

// CORS adds CORS headers to the response.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, X-Shop-ID")

		// Handle preflight requests
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// OwnerAuth validates the Bearer session token and stores the owner id in
// the request context.
func OwnerAuth(verifier TokenVerifier, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing session token")
				unauthorised(w, "Missing session token")
				return
			}

			ownerID, err := verifier.Verify(token)
			if err != nil {
				logger.Warn().Str("path", r.URL.Path).Msg("invalid session token")
				unauthorised(w, "Invalid or expired session token")
				return
			}

			ctx := WithOwnerID(r.Context(), ownerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ShopScope reads the X-Shop-ID header, verifies the shop belongs to the
// authenticated owner and stores the tenant ref in the request context.
// Must be applied after OwnerAuth.
func ShopScope(resolver ShopResolver, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID, ok := OwnerIDFrom(r.Context())
			if !ok {
				unauthorised(w, "Missing session token")
				return
			}

			shopIDStr := r.Header.Get("X-Shop-ID")
			if shopIDStr == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing shop header")
				unauthorised(w, "X-Shop-ID header is required")
				return
			}

			shopID, err := uuid.Parse(shopIDStr)
			if err != nil {
				logger.Warn().Str("path", r.URL.Path).Str("shop_id", shopIDStr).Msg("malformed shop header")
				unauthorised(w, "X-Shop-ID header is not a valid id")
				return
			}

			ref, err := resolver.Resolve(r.Context(), ownerID, shopID)
			if err != nil {
				logger.Warn().
					Str("path", r.URL.Path).
					Str("owner_id", ownerID.String()).
					Str("shop_id", shopID.String()).
					Msg("shop access denied")
				unauthorised(w, "Shop does not belong to the authenticated owner")
				return
			}

			ctx := WithShopRef(r.Context(), ref)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// APIKeyAuth validates the company-admin API key from the X-API-Key header.
func APIKeyAuth(apiKey string, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			providedKey := r.Header.Get("X-API-Key")
			if providedKey == "" {
				logger.Warn().Str("path", r.URL.Path).Msg("missing API key")
				unauthorised(w, "Missing API key")
				return
			}

			if providedKey != apiKey {
				// Presented keys are secrets too; log only where the attempt hit.
				logger.Warn().Str("path", r.URL.Path).Msg("invalid API key")
				unauthorised(w, "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Logging logs HTTP requests with timing information.
func Logging(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Create a response writer wrapper to capture status code
			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			duration := time.Since(start)
			logger.Info().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", rw.statusCode).
				Dur("duration", duration).
				Str("remote_addr", r.RemoteAddr).
				Msg("http request")
		})
	}
}

// Recovery recovers from panics and returns a 500 error.
func Recovery(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error().
						Interface("panic", err).
						Str("method", r.Method).
						Str("path", r.URL.Path).
						Msg("panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error": "INTERNAL_ERROR", "message": "internal server error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func unauthorised(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error": "` + model.ErrCodeUnauthorised + `", "message": "` + message + `"}`))
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
