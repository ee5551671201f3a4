package main

import (
	"fmt"
	"os"

	"github.com/doualadrive/backend-go/internal/api"
	"github.com/doualadrive/backend-go/internal/config"
	"github.com/doualadrive/backend-go/internal/database"
	"github.com/doualadrive/backend-go/internal/database/repository"
	"github.com/doualadrive/backend-go/internal/database/service"
	"github.com/doualadrive/backend-go/internal/handler"
	"github.com/doualadrive/backend-go/internal/logger"
	"github.com/doualadrive/backend-go/internal/middleware"
)

func main() {
	// 1. Config
	cfg := config.LoadConfig()

	// 2. Logger
	appLogger := logger.New(cfg)

	appLogger.Info("🚀 [Go] Starting Douala Drive API...",
		"environment", cfg.AppEnv,
		"port", cfg.HTTPPort,
	)

	// 3. Connect to Database
	db, err := database.Connect(cfg, appLogger)
	if err != nil {
		appLogger.Error("❌ Failed to connect to database", "error", err)
		os.Exit(1)
	}

	// 4. Seed reference data
	if err := database.Seed(db, appLogger); err != nil {
		appLogger.Error("❌ Failed to seed database", "error", err)
		os.Exit(1)
	}

	// 5. Initialize Repositories
	vehicleRepo := repository.NewVehicleRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	statusRepo := repository.NewStatusRepository(db)
	categoryArticleRepo := repository.NewCategoryArticleRepository(db)
	statusArticleRepo := repository.NewStatusArticleRepository(db)
	tagRepo := repository.NewTagRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	userRepo := repository.NewUserRepository(db)
	configurationRepo := repository.NewConfigurationRepository(db)

	// 6. Initialize Services
	vehicleService := service.NewVehicleService(vehicleRepo, categoryRepo, appLogger)
	articleService := service.NewArticleService(articleRepo, tagRepo, appLogger)
	userService := service.NewUserService(userRepo, appLogger)
	configurationService := service.NewConfigurationService(configurationRepo, appLogger)
	lookupService := service.NewLookupService(categoryRepo, statusRepo, categoryArticleRepo, statusArticleRepo, tagRepo)

	// 7. Initialize Handlers & Middleware
	uploader := handler.NewUploader(cfg, appLogger)
	publicHandler := handler.NewPublicHandler(cfg, vehicleService, articleService, lookupService, appLogger)
	vehicleHandler := handler.NewVehicleHandler(vehicleService, uploader, appLogger)
	articleHandler := handler.NewArticleHandler(articleService, uploader, appLogger)
	configurationHandler := handler.NewConfigurationHandler(configurationService, appLogger)
	userHandler := handler.NewUserHandler(userService, uploader, appLogger)
	keycloak := middleware.NewKeycloakMiddleware(cfg, userService, appLogger)

	// 8. Initialize Rate Limiter
	rateLimiter, err := middleware.NewRateLimiter(cfg, appLogger)
	if err != nil {
		appLogger.Warn("⚠️ Failed to connect to Redis, using no-op rate limiter", "error", err)
		rateLimiter = middleware.NewNoOpRateLimiter(appLogger)
	}
	defer rateLimiter.Close()

	// 9. Setup Router and start HTTP Server
	r := api.SetupRouter(cfg, publicHandler, vehicleHandler, articleHandler, configurationHandler, userHandler, keycloak, rateLimiter, appLogger)

	addr := fmt.Sprintf(":%s", cfg.HTTPPort)
	appLogger.Info("🌍 [Go] HTTP Server running...", "addr", addr)
	if err := r.Run(addr); err != nil {
		appLogger.Error("❌ HTTP Server failed to start", "error", err)
		os.Exit(1)
	}
}
