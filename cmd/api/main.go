// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/angelamos/streamora/internal/admin"
	"github.com/angelamos/streamora/internal/auth"
	"github.com/angelamos/streamora/internal/comment"
	"github.com/angelamos/streamora/internal/config"
	"github.com/angelamos/streamora/internal/core"
	"github.com/angelamos/streamora/internal/health"
	"github.com/angelamos/streamora/internal/media"
	"github.com/angelamos/streamora/internal/middleware"
	"github.com/angelamos/streamora/internal/notification"
	"github.com/angelamos/streamora/internal/server"
	"github.com/angelamos/streamora/internal/user"
	"github.com/angelamos/streamora/internal/video"
)

const (
	drainDelay = 5 * time.Second
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if err := db.RunMigrations(ctx); err != nil {
		return err
	}
	logger.Info("migrations applied")

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	tokenManager, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"token_expire", cfg.JWT.TokenExpire,
	)

	var storage *media.Storage
	if cfg.Storage.Enabled {
		storage, err = media.NewStorage(ctx, cfg.Storage)
		if err != nil {
			return err
		}
		logger.Info("object storage configured",
			"bucket", cfg.Storage.Bucket,
		)
	}

	var sender notification.Sender
	if cfg.FCM.Enabled {
		sender = notification.NewFCMSender(cfg.FCM)
		logger.Info("push sender configured",
			"project_id", cfg.FCM.ProjectID,
		)
	}

	userRepo := user.NewRepository(db.DB)
	userSvc := user.NewService(userRepo)
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(userSvc, tokenManager)
	authHandler := auth.NewHandler(authSvc)

	videoRepo := video.NewRepository(db.DB)
	videoSvc := video.NewService(videoRepo, storage)
	videoHandler := video.NewHandler(videoSvc)

	commentRepo := comment.NewRepository(db.DB)
	commentSvc := comment.NewService(commentRepo, videoSvc)
	commentHandler := comment.NewHandler(commentSvc)

	notificationSvc := notification.NewService(userSvc, sender)
	notificationHandler := notification.NewHandler(notificationSvc)

	healthHandler := health.NewHandler()
	healthHandler.AddDependency("database", db)
	healthHandler.AddDependency("redis", redis)

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		DB:         db.DB,
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: middleware.PerMinute(
				cfg.RateLimit.Requests,
				cfg.RateLimit.Burst,
			),
			FailOpen: true,
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.App.Environment == "production"))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)

	authenticator := middleware.Authenticator(tokenManager, userSvc)
	optionalAuth := middleware.OptionalAuth(tokenManager, userSvc)
	adminOnly := middleware.RequireAdmin

	router.Route("/v1", func(r chi.Router) {
		authHandler.RegisterRoutes(r, authenticator)
		userHandler.RegisterRoutes(r, authenticator)
		videoHandler.RegisterRoutes(r, authenticator, optionalAuth)
		commentHandler.RegisterRoutes(r, authenticator)
		notificationHandler.RegisterRoutes(r, authenticator, adminOnly)
		adminHandler.RegisterRoutes(r, authenticator, adminOnly)
	})

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
