package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/subplan/notification-dispatch/internal/config"
	"github.com/subplan/notification-dispatch/internal/handler"
	"github.com/subplan/notification-dispatch/internal/health"
	"github.com/subplan/notification-dispatch/internal/infra/feed"
	"github.com/subplan/notification-dispatch/internal/infra/push"
	"github.com/subplan/notification-dispatch/internal/infra/repository"
	"github.com/subplan/notification-dispatch/internal/infra/timetablestore"
	"github.com/subplan/notification-dispatch/internal/middleware"
	"github.com/subplan/notification-dispatch/internal/observability"
	"github.com/subplan/notification-dispatch/internal/observability/logging"
	"github.com/subplan/notification-dispatch/internal/observability/metrics"
	obsmiddleware "github.com/subplan/notification-dispatch/internal/observability/middleware"
	"github.com/subplan/notification-dispatch/internal/ratelimit"
	"github.com/subplan/notification-dispatch/internal/service/dispatch"
)

// Version is set via ldflags at build time
var Version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	environment := logging.EnvDev
	if os.Getenv("ENVIRONMENT") == "prod" {
		environment = logging.EnvProd
	}

	obs, err := observability.Init(ctx, observability.Config{
		ServiceName: "notification-dispatch",
		Version:     Version,
		Environment: environment,
		LogLevel:    slog.LevelInfo,
	})
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	dispatchMetrics, err := metrics.NewDispatchMetrics()
	if err != nil {
		slog.Error("failed to initialize dispatch metrics", slog.String("error", err.Error()))
		return 1
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing", slog.String("error", err.Error()))
		return 1
	}
	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics", slog.String("error", err.Error()))
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("addr", cfg.Redis.Addr),
			slog.String("error", err.Error()),
		)
		return 1
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected", slog.String("addr", cfg.Redis.Addr))

	db, err := timetablestore.NewDB(cfg.Database.DSN())
	if err != nil {
		slog.Error("failed to connect postgres",
			slog.String("host", cfg.Database.Host),
			slog.String("error", err.Error()),
		)
		return 1
	}

	slog.Info("postgres connected",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Name),
	)

	store := timetablestore.NewStore(db)
	stateRepo := repository.NewNotificationStateRepository(redisClient)

	feedClient := feed.NewClient(cfg.Feed.BaseURL, cfg.Feed.MaxRetries, cfg.Feed.RequestTimeout)
	pushClient := push.NewClient(cfg.Push.GatewayURL, cfg.Push.RequestTimeout)

	limiter := ratelimit.NewLimiter(ratelimit.WithMaxEntries(cfg.RateLimit.MaxEntries))

	dispatchService := dispatch.NewService(
		store,
		store,
		store,
		stateRepo,
		feedClient,
		pushClient,
		limiter,
		dispatchMetrics,
		cfg.Dispatch,
	)

	dispatchHandler := handler.NewDispatchHandler(dispatchService)
	deviceHandler := handler.NewDeviceHandler(store, store)
	timetableHandler := handler.NewTimetableHandler(store, store)

	r := gin.New()
	r.Use(obsmiddleware.Gin(obsmiddleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready"},
		HTTPMetrics: httpMetrics,
	}))
	r.Use(obsmiddleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, db, Version)
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	registerLimit := middleware.RateLimit(limiter, cfg.RateLimit.RegisterLimit, cfg.RateLimit.RegisterWindow)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/dispatch", dispatchHandler.HandleDispatch)
		v1.POST("/devices", registerLimit, deviceHandler.HandleRegister)
		v1.DELETE("/devices/:id", registerLimit, deviceHandler.HandleDelete)
		v1.PUT("/users/:id/timetable", timetableHandler.HandleReplace)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Int("user_concurrency", cfg.Dispatch.UserConcurrency),
			slog.Int("window_from_minute", cfg.Dispatch.WindowFromMinute),
			slog.Int("window_to_minute", cfg.Dispatch.WindowToMinute),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
