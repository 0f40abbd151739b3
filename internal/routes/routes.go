package routes

import (
	"time"

	"jobportal/docs"
	"jobportal/internal/auth"
	"jobportal/internal/handlers"
	"jobportal/internal/logger"
	"jobportal/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Options - то, что отличает процессы друг от друга при сборке роутера
type Options struct {
	Service     string
	Swagger     bool
	RequireAuth bool

	Limiter    middleware.Limiter
	RateLimit  int
	RateWindow time.Duration

	// Раздача локального хранилища резюме; пустой UploadsDir отключает
	UploadsURL string
	UploadsDir string
}

// NewEngine собирает gin.Engine с общей цепочкой middleware
func NewEngine(service string, db *gorm.DB, tokens *auth.TokenManager) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware(service))
	router.Use(middleware.DBMiddleware(db))
	router.Use(middleware.AuthMiddleware(tokens))
	return router
}

// RegisterRoutes регистрирует маршруты тех хэндлеров, что заданы в appHandlers.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, opts Options) {
	if appHandlers.HealthHandler != nil {
		router.GET("/health", appHandlers.HealthHandler.Health)
	}
	router.GET("/metrics", middleware.MetricsHandler())

	if opts.Swagger {
		docs.SwaggerInfo.Title = "Job Portal " + opts.Service + " API"
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if opts.UploadsDir != "" && opts.UploadsURL != "" {
		router.Static(opts.UploadsURL, opts.UploadsDir)
	}

	requireAuth := middleware.RequireAuth(opts.RequireAuth)

	api := router.Group("/api")
	{
		if appHandlers.UserHandler != nil {
			appHandlers.UserHandler.RegisterRoutes(api, requireAuth)
		}
		if appHandlers.JobHandler != nil {
			appHandlers.JobHandler.RegisterRoutes(api, requireAuth)
		}
		if appHandlers.ApplicationHandler != nil {
			createLimit := middleware.RateLimitMiddleware(opts.Limiter, "applications", opts.RateLimit, opts.RateWindow)
			appHandlers.ApplicationHandler.RegisterRoutes(api, requireAuth, createLimit)
		}
	}

	logger.Info("HTTP routes registered", "service", opts.Service, "swagger", opts.Swagger)
}
