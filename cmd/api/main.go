package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docchat/internal/config"
	"docchat/internal/database"
	"docchat/internal/database/migration"
	handlers "docchat/internal/http/handler"
	"docchat/internal/http/middleware"
	"docchat/internal/otel"
	"docchat/internal/repository"
	"docchat/internal/repository/memory"
	pgrepo "docchat/internal/repository/postgres"
	"docchat/internal/service"
	"docchat/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Initialize OTLP tracing (no-op when OTEL_SDK_DISABLED=true)
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		_ = shutdownTracing(context.Background())
	}()

	// Pick the document store: PostgreSQL when configured, otherwise the
	// in-memory simulated dataset (optionally loaded from a JSON file).
	var (
		db      *sql.DB
		docRepo repository.DocumentRepository
	)
	if cfg.Database.Host != "" {
		db, err = database.NewPostgres(cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
			log.Fatalf("failed to migrate database: %v", err)
		}
		docRepo = pgrepo.NewDocumentPostgres(db)
	} else if cfg.DatasetPath != "" {
		docRepo, err = memory.NewFromFile(cfg.DatasetPath)
		if err != nil {
			log.Fatalf("failed to load dataset: %v", err)
		}
	} else {
		docRepo = memory.Default()
	}

	// Object storage is optional: without it document links are raw paths
	// and the download route is disabled.
	var objStore storage.Storage
	if cfg.MinIO.Endpoint != "" {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			log.Fatalf("failed to initialize object storage: %v", err)
		}
	}

	// Initialize services
	querySvc := service.NewQueryService(docRepo)
	presenter := service.NewPresenter(objStore, time.Duration(cfg.LinkExpirySec)*time.Second)
	chatSvc := service.NewChatService(querySvc, presenter)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// Per-request tracing spans
	app.Use(otelfiber.Middleware())

	// Prometheus request metrics plus runtime collectors, exposed on /metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(prom.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	// Register HTTP routes with injected services
	handlers.RegisterRoutes(app, db, chatSvc, querySvc, objStore)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
