package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/receipts-api/internal/application/service"
	"github.com/sangkips/receipts-api/internal/config"
	"github.com/sangkips/receipts-api/internal/infrastructure/database"
	"github.com/sangkips/receipts-api/internal/infrastructure/repository"
	"github.com/sangkips/receipts-api/internal/presentation/http/handler"
	"github.com/sangkips/receipts-api/internal/presentation/http/routes"
	"github.com/sangkips/receipts-api/pkg/render"
	"github.com/sangkips/receipts-api/pkg/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Open the database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize asset and export storage
	store, err := storage.New(cfg.Storage.Path, cfg.Storage.ExportPath)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// PDF renderer
	renderer := render.NewPDFRenderer()

	// Initialize repositories
	receiptRepo := repository.NewReceiptRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	// Initialize services
	receiptService := service.NewReceiptService(receiptRepo, settingsRepo)
	settingsService := service.NewSettingsService(settingsRepo, store)
	reportService := service.NewReportService(receiptRepo, store, renderer)
	exportService := service.NewExportService(receiptRepo, store, renderer)

	// Initialize handlers
	handlers := &routes.Handlers{
		Receipt:  handler.NewReceiptHandler(receiptService, exportService),
		Report:   handler.NewReportHandler(reportService),
		Settings: handler.NewSettingsHandler(settingsService, &cfg.Storage),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg: cfg,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
