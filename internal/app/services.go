package app

import (
	"context"
	"net/http"
	"time"

	"jobportal/database"
	"jobportal/internal/client"
	"jobportal/internal/config"
	"jobportal/internal/email"
	"jobportal/internal/gateway"
	"jobportal/internal/handlers"
	"jobportal/internal/logger"
	"jobportal/internal/middleware"
	"jobportal/internal/repositories"
	"jobportal/internal/routes"
	"jobportal/internal/services"
	"jobportal/internal/storage"

	"github.com/redis/go-redis/v9"
)

func RunUserService() {
	rt := bootstrap("user-service", database.MigrateUsers)
	defer rt.close()

	userRepo := repositories.NewUserRepository()
	container := &services.ServiceContainer{
		UserService: services.NewUserService(userRepo),
		AuthService: services.NewAuthService(userRepo, rt.tokens),
	}

	appHandlers := &handlers.AppHandlers{
		HealthHandler: handlers.NewHealthHandler(rt.base, rt.service),
		UserHandler:   handlers.NewUserHandler(rt.base, container.UserService, container.AuthService),
	}

	router := routes.NewEngine(rt.service, rt.db, rt.tokens)
	routes.RegisterRoutes(router, appHandlers, rt.routeOptions())

	serve(rt.cfg.Address(UserServicePort), router)
}

func RunJobService() {
	rt := bootstrap("job-service", database.MigrateJobs)
	defer rt.close()

	httpClient := &http.Client{}
	userClient := client.NewUserClient(rt.cfg.Services.UserURL, rt.cfg.UpstreamTimeout(), httpClient)

	container := &services.ServiceContainer{
		JobService: services.NewJobService(repositories.NewJobRepository(), userClient),
	}

	appHandlers := &handlers.AppHandlers{
		HealthHandler: handlers.NewHealthHandler(rt.base, rt.service),
		JobHandler:    handlers.NewJobHandler(rt.base, container.JobService),
	}

	router := routes.NewEngine(rt.service, rt.db, rt.tokens)
	routes.RegisterRoutes(router, appHandlers, rt.routeOptions())

	serve(rt.cfg.Address(JobServicePort), router)
}

func RunApplicationService() {
	rt := bootstrap("application-service", database.MigrateApplications)
	defer rt.close()
	cfg := rt.cfg

	httpClient := &http.Client{}
	userClient := client.NewUserClient(cfg.Services.UserURL, cfg.UpstreamTimeout(), httpClient)
	jobClient := client.NewJobClient(cfg.Services.JobURL, cfg.UpstreamTimeout(), httpClient)

	store, err := storage.NewStorage(storageConfig(cfg))
	if err != nil {
		logger.Fatal("Failed to initialize storage", "error", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	notifier := services.NewNotificationService(newEmailSender(cfg), jobClient, 0)

	container := &services.ServiceContainer{
		ApplicationService: services.NewApplicationService(
			repositories.NewApplicationRepository(), userClient, jobClient, notifier,
		),
		NotificationService: notifier,
		UploadService: services.NewUploadService(store, services.UploadConfig{
			MaxSize:      cfg.Upload.MaxSize,
			AllowedTypes: cfg.Upload.AllowedTypes,
		}),
	}

	appHandlers := &handlers.AppHandlers{
		HealthHandler:      handlers.NewHealthHandler(rt.base, rt.service),
		ApplicationHandler: handlers.NewApplicationHandler(rt.base, container.ApplicationService, container.UploadService),
	}

	limiter, closeLimiter := newLimiter(cfg)
	defer closeLimiter()

	opts := rt.routeOptions()
	if cfg.RateLimit.Enabled {
		opts.Limiter = limiter
		opts.RateLimit = cfg.RateLimit.Limit
		opts.RateWindow = cfg.RateLimitWindow()
	}
	if cfg.Storage.Type == "" || cfg.Storage.Type == "local" {
		opts.UploadsDir = cfg.Storage.BasePath
		opts.UploadsURL = cfg.Storage.BaseURL
	}

	router := routes.NewEngine(rt.service, rt.db, rt.tokens)
	routes.RegisterRoutes(router, appHandlers, opts)

	// письма, отправленные до остановки, дожидаемся
	serve(cfg.Address(ApplicationServicePort), router, notifier.Wait)
}

func RunGateway() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env, "gateway")

	gw, err := gateway.New(cfg.Gateway.Target)
	if err != nil {
		logger.Fatal("Gateway misconfigured", "error", err)
	}
	logger.Info("Gateway target", "target", gw.Target())

	serve(cfg.Address(GatewayPort), gw.NewRouter())
}

func storageConfig(cfg *config.Config) storage.Config {
	return storage.Config{
		Type:       cfg.Storage.Type,
		BasePath:   cfg.Storage.BasePath,
		BaseURL:    cfg.Storage.BaseURL,
		Bucket:     cfg.Storage.Bucket,
		Region:     cfg.Storage.Region,
		AccessKey:  cfg.Storage.AccessKey,
		SecretKey:  cfg.Storage.SecretKey,
		Endpoint:   cfg.Storage.Endpoint,
		PublicRead: cfg.Storage.PublicRead,
	}
}

// newEmailSender - SMTP, если он настроен, иначе письма только пишутся в лог
func newEmailSender(cfg *config.Config) email.Sender {
	if !cfg.Email.Enabled {
		logger.Warn("SMTP is not configured, status emails go to the log")
		return email.NewLogSender()
	}
	sender, err := email.NewGomailSender(email.Config{
		Host:      cfg.Email.SMTPHost,
		Port:      cfg.Email.SMTPPort,
		Username:  cfg.Email.SMTPUsername,
		Password:  cfg.Email.SMTPPassword,
		FromEmail: cfg.Email.FromEmail,
		FromName:  cfg.Email.FromName,
	})
	if err != nil {
		logger.Warn("SMTP sender unavailable, status emails go to the log", "error", err)
		return email.NewLogSender()
	}
	return sender
}

// newLimiter - Redis, если задан redis.addr и он отвечает, иначе счетчики в памяти процесса
func newLimiter(cfg *config.Config) (middleware.Limiter, func()) {
	if cfg.Redis.Addr == "" {
		return middleware.NewMemoryLimiter(), func() {}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unavailable, using in-memory rate limiter", "addr", cfg.Redis.Addr, "error", err)
		_ = rdb.Close()
		return middleware.NewMemoryLimiter(), func() {}
	}

	logger.Info("Redis connected", "addr", cfg.Redis.Addr)
	return middleware.NewRedisLimiter(rdb), func() { _ = rdb.Close() }
}
