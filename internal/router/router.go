package router

import (
	"net/http"

	"shopdesk/internal/handler"
	"shopdesk/internal/middleware"

	"github.com/rs/zerolog"
)

// Handlers bundles every HTTP handler the router wires up.
type Handlers struct {
	Auth       *handler.AuthHandler
	Shop       *handler.ShopHandler
	Customer   *handler.CustomerHandler
	Product    *handler.ProductHandler
	Invoice    *handler.InvoiceHandler
	Offer      *handler.OfferHandler
	Dashboard  *handler.DashboardHandler
	Transfer   *handler.TransferHandler
	Owner      *handler.OwnerHandler
	Inquiry    *handler.InquiryHandler
	Storefront *handler.StorefrontHandler
}

// New creates the HTTP router with all routes and middleware configured.
// Route groups:
//
//   - public: health, login and storefront reads
//   - owner: shop management, session token required
//   - shop: tenant data, session token plus X-Shop-ID required
//   - admin: owner provisioning, X-API-Key required
func New(
	h Handlers,
	verifier middleware.TokenVerifier,
	resolver middleware.ShopResolver,
	adminAPIKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	ownerAuth := middleware.OwnerAuth(verifier, logger)
	shopScope := middleware.ShopScope(resolver, logger)
	adminAuth := middleware.APIKeyAuth(adminAPIKey, logger)

	owner := func(hf http.HandlerFunc) http.Handler {
		return ownerAuth(hf)
	}
	shop := func(hf http.HandlerFunc) http.Handler {
		return ownerAuth(shopScope(hf))
	}
	admin := func(hf http.HandlerFunc) http.Handler {
		return adminAuth(hf)
	}

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Owner login
	mux.Handle("POST /api/auth/login", http.HandlerFunc(h.Auth.Login))
	mux.Handle("POST /api/auth/otp/request", http.HandlerFunc(h.Auth.RequestOTP))
	mux.Handle("POST /api/auth/otp/verify", http.HandlerFunc(h.Auth.VerifyOTP))

	// Shop management
	mux.Handle("GET /api/shops", owner(h.Shop.GetAll))
	mux.Handle("POST /api/shops", owner(h.Shop.Create))

	// Customers
	mux.Handle("POST /api/customers", shop(h.Customer.Create))
	mux.Handle("GET /api/customers", shop(h.Customer.GetAll))
	mux.Handle("GET /api/customers/{id}", shop(h.Customer.GetByID))
	mux.Handle("PUT /api/customers/{id}", shop(h.Customer.Update))
	mux.Handle("DELETE /api/customers/{id}", shop(h.Customer.Delete))
	mux.Handle("GET /api/customers/{id}/invoices", shop(h.Customer.Invoices))

	// Products
	mux.Handle("POST /api/products", shop(h.Product.Create))
	mux.Handle("GET /api/products", shop(h.Product.GetAll))
	mux.Handle("GET /api/products/{id}", shop(h.Product.GetByID))
	mux.Handle("PUT /api/products/{id}", shop(h.Product.Update))
	mux.Handle("DELETE /api/products/{id}", shop(h.Product.Delete))
	mux.Handle("PUT /api/products/{id}/image", shop(h.Product.UploadImage))
	mux.Handle("GET /api/products/{id}/image", shop(h.Product.GetImage))

	// Invoices
	mux.Handle("POST /api/invoices", shop(h.Invoice.Create))
	mux.Handle("GET /api/invoices", shop(h.Invoice.GetAll))
	mux.Handle("GET /api/invoices/{id}", shop(h.Invoice.GetByID))
	mux.Handle("DELETE /api/invoices/{id}", shop(h.Invoice.Delete))
	mux.Handle("GET /api/invoices/{id}/document", shop(h.Invoice.Document))

	// Offers
	mux.Handle("POST /api/offers", shop(h.Offer.Create))
	mux.Handle("GET /api/offers", shop(h.Offer.GetAll))
	mux.Handle("PUT /api/offers/{id}", shop(h.Offer.Update))
	mux.Handle("DELETE /api/offers/{id}", shop(h.Offer.Delete))

	// Dashboard
	mux.Handle("GET /api/dashboard", shop(h.Dashboard.Metrics))

	// CSV import/export
	mux.Handle("POST /api/import/customers", shop(h.Transfer.ImportCustomers))
	mux.Handle("POST /api/import/products", shop(h.Transfer.ImportProducts))
	mux.Handle("GET /api/export/customers", shop(h.Transfer.ExportCustomers))
	mux.Handle("GET /api/export/invoices", shop(h.Transfer.ExportInvoices))

	// Company admin
	mux.Handle("POST /api/admin/owners", admin(h.Owner.Create))
	mux.Handle("GET /api/admin/owners", admin(h.Owner.GetAll))
	mux.Handle("PUT /api/admin/owners/{id}", admin(h.Owner.Update))
	mux.Handle("DELETE /api/admin/owners/{id}", admin(h.Owner.Delete))
	mux.Handle("GET /api/admin/inquiries", admin(h.Inquiry.GetAll))

	// Public storefront
	mux.Handle("GET /api/public/shops/{shopId}/products", http.HandlerFunc(h.Storefront.Products))
	mux.Handle("GET /api/public/shops/{shopId}/offers", http.HandlerFunc(h.Storefront.Offers))
	mux.Handle("POST /api/public/inquiries", http.HandlerFunc(h.Inquiry.Create))

	// Apply middleware in order: Recovery -> Logging -> CORS
	var root http.Handler = mux
	root = middleware.CORS(root)
	root = middleware.Logging(logger)(root)
	root = middleware.Recovery(logger)(root)

	return root
}
