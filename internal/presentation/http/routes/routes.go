package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/receipts-api/internal/config"
	"github.com/sangkips/receipts-api/internal/presentation/http/handler"
	"github.com/sangkips/receipts-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Receipt  *handler.ReceiptHandler
	Report   *handler.ReportHandler
	Settings *handler.SettingsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg *config.Config
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerReceiptRoutes(v1, h)
		registerSettingsRoutes(v1, h)
		registerReportRoutes(v1, h)
	}

	return router
}

func registerReceiptRoutes(v1 *gin.RouterGroup, h *Handlers) {
	receipts := v1.Group("/receipts")
	{
		receipts.GET("", h.Receipt.List)
		receipts.POST("", h.Receipt.Create)
		receipts.GET("/:id", h.Receipt.Get)
		receipts.DELETE("/:id", h.Receipt.Delete)
		receipts.GET("/:id/pdf", h.Receipt.ExportPDF)
		receipts.GET("/:id/html", h.Receipt.ExportHTML)
	}
}

func registerSettingsRoutes(v1 *gin.RouterGroup, h *Handlers) {
	settings := v1.Group("/settings")
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", h.Settings.Update)
		settings.POST("/logo", h.Settings.UploadLogo)
		settings.POST("/signature", h.Settings.SaveSignature)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("", h.Report.Get)
		reports.GET("/summary", h.Report.Summary)
		reports.GET("/export/csv", h.Report.ExportCSV)
		reports.GET("/export/pdf", h.Report.ExportPDF)
		reports.GET("/export/xlsx", h.Report.ExportXLSX)
	}
}
