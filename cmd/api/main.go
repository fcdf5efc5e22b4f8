package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/department-store/internal/api/http"
	"github.com/spec-kit/department-store/internal/api/http/handlers"
	"github.com/spec-kit/department-store/internal/auth"
	"github.com/spec-kit/department-store/internal/config"
	"github.com/spec-kit/department-store/internal/events"
	"github.com/spec-kit/department-store/internal/observability"
	"github.com/spec-kit/department-store/internal/persistence"
	"github.com/spec-kit/department-store/internal/repository"
	"github.com/spec-kit/department-store/internal/service"
	"github.com/spec-kit/department-store/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	store := repository.NewDepartmentStore()
	if cfg.Postgres.EnsureSchema {
		if err := persistence.EnsureSchema(ctx, pg, store, logger); err != nil {
			logger.Fatal("failed to prepare schema", zap.Error(err))
		}
	}

	dependencies := map[string]handlers.Pinger{"postgres": pg}

	var dispatcher events.Dispatcher
	if cfg.Events.RedisEnabled {
		redis := persistence.NewRedis(cfg.Redis, logger)
		defer redis.Close()
		dependencies["redis"] = redis
		dispatcher = events.NewRedisDispatcher(redis, cfg.Events.Channel)
	} else {
		dispatcher = events.NewInMemoryDispatcher()
	}
	worker.StartNotificationWorker(dispatcher, logger)

	departmentService := service.NewDepartmentService(pg, store, dispatcher, logger)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	if cfg.Auth.AdminPasswordHash == "" {
		logger.Warn("AUTH_ADMIN_PASSWORD_HASH not provided; admin login disabled")
	}

	metrics := observability.NewMetrics()
	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies, metrics),
		Departments:    handlers.NewDepartmentsHandler(departmentService),
		Auth:           handlers.NewAuthHandler(tokens, cfg.Auth.AdminPasswordHash),
		AuthMiddleware: auth.NewAuthMiddleware(tokens),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("fiber shutdown", zap.Error(err))
	}
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
