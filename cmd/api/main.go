package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopdesk/internal/auth"
	"shopdesk/internal/billing"
	"shopdesk/internal/config"
	"shopdesk/internal/database"
	"shopdesk/internal/handler"
	"shopdesk/internal/notify"
	"shopdesk/internal/repository"
	"shopdesk/internal/router"
	"shopdesk/internal/service"
	"shopdesk/internal/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting shopdesk API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	ownerRepo := repository.NewOwnerRepository(pool, logger)
	shopRepo := repository.NewShopRepository(pool, logger)
	customerRepo := repository.NewCustomerRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	invoiceRepo := repository.NewInvoiceRepository(pool, logger)
	offerRepo := repository.NewOfferRepository(pool, logger)
	inquiryRepo := repository.NewInquiryRepository(pool, logger)

	// Initialize image storage with S3 or local filesystem backing
	var images storage.ImageStore
	if cfg.Images.S3Enabled {
		images, err = storage.NewS3Store(ctx, cfg.Images.S3Bucket, cfg.Images.S3Region, cfg.Images.S3Prefix, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 image store: %w", err)
		}
	} else {
		images, err = storage.NewFileStore(cfg.Images.Dir, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize image store: %w", err)
		}
		logger.Info().Str("dir", cfg.Images.Dir).Msg("using local file system for product images (S3 disabled)")
	}

	// Initialize auth and notification plumbing
	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	notifier := notify.NewSMSLogNotifier(logger)
	clock := billing.SystemClock{}

	// Initialize services
	ownerService := service.NewOwnerService(ownerRepo, shopRepo, logger)
	shopService := service.NewShopService(shopRepo, logger)
	authService := service.NewAuthService(ownerRepo, tokens, time.Duration(cfg.Auth.OTPTTLMinutes)*time.Minute, clock, logger)
	customerService := service.NewCustomerService(customerRepo, logger)
	productService := service.NewProductService(productRepo, images, logger)
	invoiceService := service.NewInvoiceService(invoiceRepo, customerRepo, productRepo, shopRepo, clock, logger)
	offerService := service.NewOfferService(offerRepo, customerRepo, notifier, clock, logger)
	dashboardService := service.NewDashboardService(invoiceRepo, offerRepo, clock, logger)
	inquiryService := service.NewInquiryService(inquiryRepo, logger)
	transferService := service.NewTransferService(customerService, productService, invoiceRepo, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Auth:       handler.NewAuthHandler(authService, logger),
		Shop:       handler.NewShopHandler(shopService, logger),
		Customer:   handler.NewCustomerHandler(customerService, invoiceService, logger),
		Product:    handler.NewProductHandler(productService, images, logger),
		Invoice:    handler.NewInvoiceHandler(invoiceService, logger),
		Offer:      handler.NewOfferHandler(offerService, logger),
		Dashboard:  handler.NewDashboardHandler(dashboardService, logger),
		Transfer:   handler.NewTransferHandler(transferService, logger),
		Owner:      handler.NewOwnerHandler(ownerService, logger),
		Inquiry:    handler.NewInquiryHandler(inquiryService, logger),
		Storefront: handler.NewStorefrontHandler(shopService, productService, offerService, logger),
	}

	// Initialize router
	mux := router.New(handlers, tokens, shopService, cfg.Auth.AdminAPIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
