package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"contentnav/internal/auth"
	"contentnav/internal/config"
	"contentnav/internal/handler"
	"contentnav/internal/mcp"
	"contentnav/internal/middleware"
	"contentnav/internal/repository"
	"contentnav/internal/service/importer"
	"contentnav/internal/service/importer/converter"
	"contentnav/internal/service/navigation"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logOutput, closeLog, err := config.LogWriter(cfg, "server")
	if err != nil {
		log.Fatalf("Failed to set up log file: %v", err)
	}
	defer closeLog()

	logger := config.NewLogger(cfg, logOutput)
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Load collection definitions
	collections, err := config.LoadCollections(cfg.ContentConfig, cfg.TablePrefix)
	if err != nil {
		log.Fatalf("Failed to load collections: %v", err)
	}

	// Content database connects lazily on first query
	ctx := context.Background()
	db := repository.NewContentDatabase(cfg, collections, logger)
	defer db.Close()

	logger.Info("content database selected",
		"backend", db.Backend(),
		"collections", len(collections),
	)

	// Create repositories
	contentRepo := repository.NewContentRepository(db, collections)
	contentStore := repository.NewContentStore(db, logger)

	for i := range collections {
		if err := contentStore.EnsureSchema(ctx, &collections[i]); err != nil {
			log.Fatalf("Failed to prepare collection %s: %v", collections[i].Name, err)
		}
	}

	// Create services
	navService := navigation.NewNavigationService(contentRepo, logger)
	importService := importer.NewImportService(contentRepo, contentStore, converter.NewConverterRegistry(), logger)

	// Optional JWT verification for write routes
	var verifier auth.JWTVerifier
	if cfg.JWKSURL != "" {
		verifier, err = auth.NewJWTVerifier(ctx, cfg.JWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWT verifier: %v", err)
		}
		defer verifier.Close()
	} else {
		logger.Warn("JWKS_URL not set: import route is unauthenticated")
	}
	requireAuth := middleware.RequireAuth(verifier, logger)

	// Create handlers
	navHandler := handler.NewNavigationHandler(navService, logger)
	collectionHandler := handler.NewCollectionHandler(contentRepo, logger)
	importHandler := handler.NewImportHandler(importService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", collectionHandler.HealthCheck)

	// Collection routes
	mux.HandleFunc("GET /api/collections", collectionHandler.ListCollections)
	mux.HandleFunc("GET /api/collections/{name}/navigation", navHandler.GetNavigation)
	mux.HandleFunc("GET /api/collections/{name}/surround", navHandler.GetSurround)

	// Import route (protected when JWKS_URL is set)
	mux.Handle("POST /api/collections/{name}/import", requireAuth(http.HandlerFunc(importHandler.Import)))

	// MCP tools over streamable HTTP
	mux.Handle(mcp.EndpointPath, mcp.NewHTTPServer(mcp.NewServer(navService, logger)))

	// Build middleware chain
	var handler http.Handler = mux

	// Order: CORS → Recovery → Routes
	handler = middleware.Recovery(logger)(handler)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "Mcp-Session-Id"},
		AllowCredentials: true,
	})
	handler = corsHandler.Handler(handler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived MCP streams
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
