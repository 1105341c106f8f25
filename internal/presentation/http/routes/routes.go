package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/haussigns/signquote-api/internal/config"
	"github.com/haussigns/signquote-api/internal/presentation/http/handler"
	"github.com/haussigns/signquote-api/internal/presentation/http/middleware"
	"github.com/haussigns/signquote-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Estimate  *handler.EstimateHandler
	Settings  *handler.SettingsHandler
	Quotation *handler.QuotationHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Logger     *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
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
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)
		registerEstimateRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerSettingsRoutes(protected, h)
		registerQuotationRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
	}
}

// Estimates are stateless and require no login; the public calculator page
// uses them directly.
func registerEstimateRoutes(v1 *gin.RouterGroup, h *Handlers) {
	v1.GET("/catalog", h.Estimate.GetCatalog)
	v1.POST("/convert", h.Estimate.Convert)

	estimates := v1.Group("/estimates")
	{
		estimates.POST("/letter", h.Estimate.EstimateLetter)
		estimates.POST("/logo", h.Estimate.EstimateLogo)
		estimates.POST("/panel", h.Estimate.EstimatePanel)
		estimates.POST("/lightbox", h.Estimate.EstimateLightbox)
		estimates.POST("/signage", h.Estimate.EstimateSignage)
	}
}

func registerSettingsRoutes(protected *gin.RouterGroup, h *Handlers) {
	settings := protected.Group("/settings")
	{
		settings.GET("/prices", h.Settings.GetPrices)
		settings.PUT("/prices", h.Settings.UpdatePrices)
		settings.DELETE("/prices", h.Settings.ResetPrices)

		settings.GET("/formulas", h.Settings.GetFormulas)
		settings.DELETE("/formulas", h.Settings.ResetFormulas)
		settings.POST("/formulas/test", h.Settings.TestFormula)
		settings.PUT("/formulas/:id", h.Settings.UpdateFormula)
	}
}

func registerQuotationRoutes(protected *gin.RouterGroup, h *Handlers) {
	quotations := protected.Group("/quotations")
	{
		quotations.POST("", h.Quotation.CreateQuotation)
		quotations.GET("", h.Quotation.ListQuotations)
		quotations.GET("/:id", h.Quotation.GetQuotation)
		quotations.PUT("/:id", h.Quotation.UpdateQuotation)
		quotations.DELETE("/:id", h.Quotation.DeleteQuotation)
		quotations.PATCH("/:id/status", h.Quotation.UpdateStatus)
		quotations.POST("/:id/signage", h.Quotation.AddSignage)
		quotations.POST("/:id/lightbox", h.Quotation.AddLightbox)
		quotations.DELETE("/:id/items/:itemId", h.Quotation.RemoveItem)
		quotations.GET("/:id/export", h.Quotation.ExportQuotation)
	}
}
