package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/haussigns/signquote-api/internal/application/service"
	"github.com/haussigns/signquote-api/internal/config"
	"github.com/haussigns/signquote-api/internal/infrastructure/database"
	"github.com/haussigns/signquote-api/internal/infrastructure/repository"
	"github.com/haussigns/signquote-api/internal/presentation/http/handler"
	"github.com/haussigns/signquote-api/internal/presentation/http/routes"
	"github.com/haussigns/signquote-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize logger
	var logger *zap.Logger
	var err error
	if cfg.App.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Seed the admin account
	if err := database.SeedAdminUser(db, &cfg.Admin); err != nil {
		logger.Warn("Failed to seed admin user", zap.Error(err))
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	quotationRepo := repository.NewQuotationRepository(db)
	quotationItemRepo := repository.NewQuotationItemRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	formulaRepo := repository.NewFormulaRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	settingsService := service.NewSettingsService(settingsRepo, formulaRepo)
	estimateService := service.NewEstimateService(settingsService)
	quotationService := service.NewQuotationService(quotationRepo, quotationItemRepo, settingsService)
	exportService := service.NewExportService(quotationRepo, cfg.Export.Dir)

	// Build the pricing engine from persisted settings
	if err := settingsService.Load(context.Background()); err != nil {
		logger.Fatal("Failed to load pricing settings", zap.Error(err))
	}

	// Initialize handlers
	h := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Estimate:  handler.NewEstimateHandler(estimateService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Quotation: handler.NewQuotationHandler(quotationService, exportService),
	}

	router := routes.Setup(h, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Logger:     logger,
	})

	logger.Info("Starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", cfg.App.Port),
		zap.String("env", cfg.App.Env),
	)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
