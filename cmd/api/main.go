package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/foodsentry/backend/internal/adapters/cache"
	"github.com/foodsentry/backend/internal/adapters/catalog"
	"github.com/foodsentry/backend/internal/adapters/database"
	"github.com/foodsentry/backend/internal/adapters/events"
	"github.com/foodsentry/backend/internal/adapters/providers/descriptors"
	"github.com/foodsentry/backend/internal/adapters/providers/structure"
	"github.com/foodsentry/backend/internal/api/handlers"
	"github.com/foodsentry/backend/internal/api/middleware"
	"github.com/foodsentry/backend/internal/api/routes"
	"github.com/foodsentry/backend/internal/application/services"
	"github.com/foodsentry/backend/internal/domain/providers"
	"github.com/foodsentry/backend/internal/infrastructure/clients/postgres"
	"github.com/foodsentry/backend/internal/infrastructure/clients/redis"
	"github.com/foodsentry/backend/internal/infrastructure/observability"
	"github.com/foodsentry/backend/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, os.Getenv("APP_ENV"))

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	var shutdown func(context.Context) error
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err = observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up OpenTelemetry")
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Error().Err(err).Msg("error shutting down OpenTelemetry")
				}
			}()
			log.Info().Msg("OpenTelemetry initialized")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	// Initialize database client
	pgClient, err := postgres.NewClient(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize PostgreSQL client")
	}
	defer pgClient.Close()
	log.Info().Msg("PostgreSQL client initialized")

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		// Continue without Redis; caching and live events degrade gracefully
		log.Warn().Err(err).Msg("failed to initialize Redis client, continuing without cache")
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Info().Msg("Redis client initialized")
	}

	// Initialize adapters
	assessmentRepo := database.NewAssessmentAdapter(pgClient)

	var cacheProvider providers.CacheProvider
	if redisClient != nil {
		cacheProvider = cache.NewRedisAdapter(redisClient)
	}

	// Initialize event bus for real-time analysis updates
	var eventBus providers.EventBus
	if redisClient != nil {
		eventBus = events.NewRedisEventBus(redisClient)
		log.Info().Msg("event bus initialized")
	} else {
		log.Info().Msg("event bus disabled (Redis not available)")
	}

	// Reference catalogs
	proteinCatalog := catalog.NewMemoryProteinCatalog()
	toxinCatalog := catalog.NewMemoryToxinCatalog()
	enzymeCatalog := catalog.NewMemoryEnzymeCatalog()
	regulatoryCatalog := catalog.NewMemoryRegulatoryCatalog()

	// Resolve the seed once so every stage shares it and the assessment
	// can record the value actually used.
	seed := cfg.Analysis.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info().Int64("seed", seed).Str("default_region", cfg.Analysis.DefaultRegion).Msg("analysis configuration resolved")

	structureProvider := structure.NewHeuristicProvider(seed)
	descriptorProvider := descriptors.NewFallbackProvider(seed)

	// Initialize services
	proteinService := services.NewProteinAnalysisService(proteinCatalog, structureProvider, seed)
	interactionService := services.NewInteractionService(toxinCatalog, proteinCatalog, descriptorProvider, seed)
	kineticsService := services.NewKineticsService(enzymeCatalog)
	complianceService := services.NewComplianceService(regulatoryCatalog)
	riskService := services.NewRiskScoringService()
	advisoryService := services.NewAdvisoryService()

	pipelineService := services.NewPipelineService(
		proteinService,
		interactionService,
		kineticsService,
		complianceService,
		riskService,
		advisoryService,
		assessmentRepo,
		eventBus,
		metrics,
		seed,
		cfg.Analysis.DefaultRegion,
		cfg.Analysis.MaxWorkers,
	)

	// Initialize handlers
	analysisHandler := handlers.NewAnalysisHandler(pipelineService, assessmentRepo)
	toolsHandler := handlers.NewToolsHandler(proteinService, interactionService, kineticsService, complianceService, riskService, advisoryService)
	catalogHandler := handlers.NewCatalogHandler(proteinCatalog, toxinCatalog, regulatoryCatalog)

	// Initialize cache middleware
	var cacheMiddleware *middleware.CacheMiddleware
	if cacheProvider != nil {
		cacheMiddleware = middleware.NewCacheMiddleware(cacheProvider)
		log.Info().Msg("cache middleware initialized")
	}

	// Set up router
	router := routes.NewRouter(
		analysisHandler,
		toolsHandler,
		catalogHandler,
		cacheMiddleware,
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
		log.Info().Str("addr", serverAddr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("error during server shutdown")
	}

	// Close event bus
	if eventBus != nil {
		if err := eventBus.Close(); err != nil {
			log.Error().Err(err).Msg("error closing event bus")
		}
	}

	log.Info().Msg("server stopped")
}
