package app

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"bitskill_backend/database"
	"bitskill_backend/internal/config"
	"bitskill_backend/internal/handlers"
	"bitskill_backend/internal/logger"
	"bitskill_backend/internal/middleware"
	"bitskill_backend/internal/routes"
	"bitskill_backend/internal/services"
	"bitskill_backend/internal/validator"
	"bitskill_backend/pkg/apperrors"
)

func Run() {
	config.LoadConfig()
	cfg := config.GetConfig()

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...", "driver", cfg.Database.Driver)
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("Failed to run migrations", "error", err)
	}
	if err := database.SeedCategories(gormDB); err != nil {
		logger.Fatal("Failed to seed categories", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("🚀 Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

// SetupRouter собирает gin.Engine со всеми middleware и маршрутами.
// Вынесен отдельно от Run, чтобы тесты могли поднять сервер поверх
// httptest без реального listen.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	// В продакшене тела ошибок не несут внутренних деталей
	apperrors.SetDebug(cfg.Server.Env != "production")

	serviceContainer := services.NewServiceContainer()
	appHandlers := handlers.NewAppHandlers(serviceContainer, validator.New())

	ginRouter := initializeGinRouter(cfg, gormDB)

	authLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.AuthRequestsPerSecond,
		Burst:             cfg.RateLimit.AuthBurst,
	})
	routes.RegisterRoutes(ginRouter, appHandlers, authLimiter)

	return ginRouter
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Request-ID")
	router.Use(cors.New(corsConfig))

	router.Use(middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	}))
	router.Use(middleware.DBMiddleware(db))

	return router
}
