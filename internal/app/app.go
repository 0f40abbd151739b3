package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"jobportal/database"
	"jobportal/internal/auth"
	"jobportal/internal/config"
	"jobportal/internal/handlers"
	"jobportal/internal/logger"
	"jobportal/internal/routes"
	"jobportal/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	UserServicePort        = 8081
	JobServicePort         = 8082
	ApplicationServicePort = 8083
	GatewayPort            = 8080
)

const shutdownTimeout = 15 * time.Second

// runtime - общее для трех сервисов с БД
type runtime struct {
	cfg     *config.Config
	db      *gorm.DB
	tokens  *auth.TokenManager
	base    *handlers.BaseHandler
	service string
}

// bootstrap читает конфиг, поднимает логгер и БД, прогоняет миграцию сервиса
func bootstrap(service string, migrate func(db *gorm.DB) error) *runtime {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env, service)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("Connecting to database...")
	db, err := database.Connect(cfg)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := migrate(db); err != nil {
			logger.Fatal("Migration failed", "error", err)
		}
		logger.Info("Migrations applied")
	}

	if cfg.JWT.Secret == config.Default().JWT.Secret && cfg.Server.Env == "production" {
		logger.Warn("JWT secret is the built-in default, set JWT_SECRET")
	}

	return &runtime{
		cfg:     cfg,
		db:      db,
		tokens:  auth.NewTokenManager(cfg.JWT.Secret, cfg.TokenTTL()),
		base:    handlers.NewBaseHandler(validator.New()),
		service: service,
	}
}

func (rt *runtime) routeOptions() routes.Options {
	return routes.Options{
		Service:     rt.service,
		Swagger:     rt.cfg.Server.Swagger,
		RequireAuth: rt.cfg.JWT.RequireAuth,
	}
}

func (rt *runtime) close() {
	if sqlDB, err := rt.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// serve запускает HTTP-сервер и останавливает его по SIGINT/SIGTERM.
// onShutdown вызывается после остановки приема запросов.
func serve(address string, handler http.Handler, onShutdown ...func()) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              address,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "address", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("Server startup error", "error", err)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}

	for _, fn := range onShutdown {
		fn()
	}
	logger.Info("Server stopped")
}
