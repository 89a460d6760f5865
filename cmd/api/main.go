package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "github.com/johnquangdev/meeting-analyzer/docs"
	pkgvalidator "github.com/johnquangdev/meeting-analyzer/pkg/validator"

	"github.com/johnquangdev/meeting-analyzer/internal/adapter/handler"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/repository"
	"github.com/johnquangdev/meeting-analyzer/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-analyzer/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-analyzer/internal/infrastructure/metrics"
	appmiddleware "github.com/johnquangdev/meeting-analyzer/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-analyzer/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-analyzer/internal/usecase/analysis"
	pkgai "github.com/johnquangdev/meeting-analyzer/pkg/ai"
	"github.com/johnquangdev/meeting-analyzer/pkg/config"
)

// @title           Meeting Analyzer API
// @version         1.0
// @description     Turns meeting transcripts into action items, key decisions, sentiment and a summary using an LLM provider with automatic fallback.

// @BasePath  /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler(logger)

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.RequestID())
	e.Use(appmiddleware.RequestContext())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// SQLite files are always migrated on start, PostgreSQL only when asked to
	if cfg.Database.AutoMigrate || cfg.Database.Driver == config.DriverSQLite {
		log.Println("🔄 Applying embedded migrations...")
		if _, err := database.Migrate(db, cfg.Database.Driver); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; run cmd/migrate to manage the schema")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	analysisRepo := repository.NewAnalysisRepository(db)

	// Initialize LLM adapters
	log.Println("🤖 Initializing LLM adapters...")
	primary, fallback := pkgai.SelectAdapters(cfg.LLMConfig())
	switch {
	case primary == nil:
		log.Println("⚠️  No LLM API key configured; /api/analyze will fail until one is set")
	case fallback == nil:
		log.Printf("✅ Primary LLM: %s (%s), no fallback", primary.Provider(), primary.Model())
	default:
		log.Printf("✅ Primary LLM: %s (%s), fallback: %s (%s)", primary.Provider(), primary.Model(), fallback.Provider(), fallback.Model())
	}

	recorder := metrics.NewRecorder()
	opts := []analysis.Option{analysis.WithMetrics(recorder)}

	// Initialize read cache
	switch cfg.Cache.Driver {
	case config.CacheRedis:
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(context.Background(), cfg, logger)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		opts = append(opts, analysis.WithCache(redisStore, cfg.Cache.TTL))
	case config.CacheMemory:
		memoryStore := cache.NewMemoryStore()
		defer memoryStore.Close()
		opts = append(opts, analysis.WithCache(memoryStore, cfg.Cache.TTL))
	}

	// Initialize analysis archive
	if cfg.Archive.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		archive, err := storage.NewMinIOArchive(context.Background(), &cfg.Archive)
		if err != nil {
			log.Fatalf("Failed to initialize archive: %v", err)
		}
		opts = append(opts, analysis.WithArchiver(archive))
	}

	analysisService := analysis.NewService(analysisRepo, primary, fallback, logger, opts...)
	analysisHandler := handler.NewAnalysisHandler(analysisService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, analysisHandler, recorder.Handler())
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Server.Environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
