package server

import (
	"fmt"
	"net/http"
	"time"

	"petal-atelier/internal/assistant"
	"petal-atelier/internal/cart"
	"petal-atelier/internal/catalog"
	"petal-atelier/internal/config"
	"petal-atelier/internal/ledger"
	custommiddleware "petal-atelier/internal/middleware"
	"petal-atelier/internal/storage"
	"petal-atelier/internal/transport"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type Server struct {
	*http.Server
	config *config.Config
	logger *zap.Logger
}

func NewServer(cfg *config.Config, logger *zap.Logger, store storage.Store) *Server {
	// Create router
	router := chi.NewRouter()

	// Add basic middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(custommiddleware.CORSMiddleware(cfg.Server.AllowedOrigins, cfg.Server.Env == "development"))
	router.Use(custommiddleware.LoggingMiddleware(logger))
	router.Use(custommiddleware.ErrorHandlingMiddleware(logger))

	// Health check endpoint
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Shop contact info for the storefront footer
	router.Get("/api/info", func(w http.ResponseWriter, r *http.Request) {
		custommiddleware.RespondWithJSON(w, http.StatusOK, map[string]string{
			"whatsapp": cfg.Shop.WhatsApp,
			"location": cfg.Shop.Location,
		})
	})

	// Initialize services
	catalogService := catalog.New(store, logger)
	ledgerService := ledger.New(store, logger)
	cartEngine := cart.New(store, logger)

	var provider assistant.Provider
	if cfg.Assistant.Endpoint != "" && cfg.Assistant.APIKey != "" {
		provider = assistant.NewRemote(
			cfg.Assistant.Endpoint,
			cfg.Assistant.APIKey,
			cfg.Assistant.Model,
			time.Duration(cfg.Assistant.TimeoutSeconds)*time.Second,
		)
		logger.Info("Assistant using remote generation service")
	} else {
		logger.Info("Assistant running on local suggestions only")
	}
	assistantService := assistant.New(provider, logger)

	// Initialize handlers
	catalogHandler := transport.NewCatalogHandler(catalogService, logger)
	cartHandler := transport.NewCartHandler(cartEngine, catalogService, logger)
	orderHandler := transport.NewOrderHandler(ledgerService, cartEngine, logger)
	assistantHandler := transport.NewAssistantHandler(assistantService, logger)
	adminHandler := transport.NewAdminHandler(cfg.Admin.Password, ledgerService, logger)

	// Admin gate and assistant rate limit
	adminGate := custommiddleware.AdminAuthMiddleware(cfg.Admin.Password, logger)
	limiter := custommiddleware.NewRateLimiter(custommiddleware.RateLimitConfig{
		RequestsPerWindow: 20,
		Window:            time.Minute,
	}, logger)

	// Register routes
	catalogHandler.RegisterRoutes(router, adminGate)
	cartHandler.RegisterRoutes(router)
	orderHandler.RegisterRoutes(router, adminGate)
	assistantHandler.RegisterRoutes(router, limiter.Handler)
	adminHandler.RegisterRoutes(router, adminGate)

	server := &Server{
		Server: &http.Server{
			Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
			Handler:      router,
			IdleTimeout:  time.Minute,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		config: cfg,
		logger: logger,
	}

	return server
}

func (s *Server) Close() error {
	s.logger.Info("Closing server resources")
	s.logger.Sync()
	return nil
}
