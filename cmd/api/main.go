package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amacity/storefront/internal/adapters/cache"
	"github.com/amacity/storefront/internal/adapters/database"
	"github.com/amacity/storefront/internal/adapters/search"
	"github.com/amacity/storefront/internal/api/handlers"
	"github.com/amacity/storefront/internal/api/routes"
	"github.com/amacity/storefront/internal/application/services"
	"github.com/amacity/storefront/internal/domain/providers"
	"github.com/amacity/storefront/internal/domain/repositories"
	"github.com/amacity/storefront/internal/infrastructure/clients/postgres"
	"github.com/amacity/storefront/internal/infrastructure/clients/redis"
	"github.com/amacity/storefront/internal/infrastructure/clients/typesense"
	"github.com/amacity/storefront/internal/infrastructure/observability"
	"github.com/amacity/storefront/internal/session"
	"github.com/amacity/storefront/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Server.Env)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize PostgreSQL client: %v", err)
	}
	defer pgClient.Close()
	log.Println("PostgreSQL client initialized successfully")

	// Initialize Redis client; the service works without it, just uncached
	// and with an ephemeral session token
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize Typesense client for the suggest path
	typesenseClient, err := typesense.NewClient(&cfg.Typesense)
	if err != nil {
		log.Printf("Warning: Failed to initialize Typesense client: %v", err)
		typesenseClient = nil
	} else {
		log.Println("Typesense client initialized successfully")
	}

	// Initialize adapters
	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	baseStoreAdapter := database.NewStoreAdapter(pgClient)

	var storeAdapter repositories.StoreRepository
	if cacheProvider != nil {
		storeAdapter = database.NewCachedStoreAdapter(baseStoreAdapter, cacheProvider)
		log.Println("Store adapter wrapped with caching layer")
	} else {
		storeAdapter = baseStoreAdapter
		log.Println("Store adapter running without cache (Redis unavailable)")
	}

	productAdapter := database.NewProductAdapter(pgClient)
	analyticsAdapter := database.NewSearchAnalyticsAdapter(pgClient)

	var indexRepo repositories.ProductIndexRepository
	if typesenseClient != nil {
		if err := typesenseClient.InitSchema(context.Background()); err != nil {
			log.Printf("Warning: Failed to init Typesense schema: %v", err)
		}
		indexRepo = search.NewTypesenseAdapter(typesenseClient)
	}

	// Session identity: redis-backed when available, in-memory otherwise
	var sessionStore session.Store
	if redisClient != nil {
		sessionStore = session.NewRedisStore(redisClient)
	} else {
		sessionStore = session.NewMemoryStore()
	}
	sessions := session.NewManager(sessionStore, cfg.Session.Key)

	// Initialize services
	catalogService := services.NewCatalogService(storeAdapter, productAdapter)
	analyticsService := services.NewAnalyticsService(analyticsAdapter, productAdapter)
	searchService := services.NewSearchService(productAdapter, indexRepo, analyticsService, metrics)

	// Initialize handlers
	storeHandler := handlers.NewStoreHandler(catalogService)
	productHandler := handlers.NewProductHandler(catalogService, searchService, sessions)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsService, sessions)

	// Set up router
	router := routes.NewRouter(
		storeHandler,
		productHandler,
		analyticsHandler,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
