package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/fastygo/todo/api/handler"
	"github.com/fastygo/todo/internal/config"
	"github.com/fastygo/todo/internal/infrastructure/journal"
	"github.com/fastygo/todo/internal/infrastructure/monitor"
	pgInfra "github.com/fastygo/todo/internal/infrastructure/postgres"
	redisInfra "github.com/fastygo/todo/internal/infrastructure/redis"
	"github.com/fastygo/todo/internal/middleware"
	"github.com/fastygo/todo/internal/router"
	"github.com/fastygo/todo/internal/services"
	"github.com/fastygo/todo/internal/services/lifecycle"
	"github.com/fastygo/todo/pkg/httpcontext"
	"github.com/fastygo/todo/pkg/logger"
	"github.com/fastygo/todo/pkg/token"
	"github.com/fastygo/todo/repository"
	"github.com/fastygo/todo/repository/postgres"
	redisRepo "github.com/fastygo/todo/repository/redis"
	activityUC "github.com/fastygo/todo/usecase/activity"
	authUC "github.com/fastygo/todo/usecase/auth"
	taskUC "github.com/fastygo/todo/usecase/task"
	themeUC "github.com/fastygo/todo/usecase/theme"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	if cfg.JWT.UsingDevSecret && !cfg.IsDevelopment() {
		zapLogger.Warn("JWT_SECRET is not set, signing tokens with the development secret",
			zap.String("env", cfg.Environment))
	}

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	appCtx, cancel := manager.SignalContext(context.Background())
	defer cancel()

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	taskRepo := postgres.NewTaskRepository(pool)
	themeRepo := postgres.NewThemeRepository(pool)

	monOpts := monitor.Options{
		Database: pool.Ping,
		Interval: 10 * time.Second,
		Logger:   zapLogger,
	}

	if cfg.Redis.Enabled {
		redisClient, err := redisInfra.NewClient(appCtx, cfg.Redis)
		if err != nil {
			zapLogger.Fatal("redis connection failed", zap.Error(err))
		}
		manager.Register("redis", func(ctx context.Context) error {
			return redisClient.Close()
		})
		themeRepo = redisRepo.NewThemeCache(redisClient, themeRepo, cfg.Redis.ThemeTTL, zapLogger)
		monOpts.Cache = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
	}

	var activityRepo repository.ActivityRepository
	if cfg.Activity.Enabled {
		store, err := journal.Open(cfg.Activity.Path, "")
		if err != nil {
			zapLogger.Fatal("failed to open activity journal", zap.Error(err))
		}
		manager.Register("activity_journal", func(ctx context.Context) error {
			return store.Close()
		})
		activityRepo = store
		monOpts.Journal = store

		pruner := services.NewActivityPruner(store, zapLogger, services.PrunerConfig{
			Interval:  cfg.Activity.PruneInterval,
			Retention: cfg.Activity.Retention,
		})
		pruner.Start()
		manager.Register("activity_pruner", pruner.Stop)
	}

	mon := monitor.New(monOpts)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	issuer, err := token.NewIssuer(cfg.JWT.Secret,
		token.WithIssuer(cfg.JWT.Issuer),
		token.WithTTL(cfg.JWT.TTL),
	)
	if err != nil {
		zapLogger.Fatal("token issuer setup failed", zap.Error(err))
	}

	authUseCase := authUC.New(issuer, zapLogger)
	taskUseCase := taskUC.New(taskRepo, activityRepo, zapLogger)
	themeUseCase := themeUC.New(themeRepo, zapLogger)
	activityUseCase := activityUC.New(activityRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Auth:     apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger),
		Task:     apiHandler.NewTaskHandler(taskUseCase, ctxAdapter, zapLogger),
		Theme:    apiHandler.NewThemeHandler(themeUseCase, ctxAdapter, zapLogger),
		Activity: apiHandler.NewActivityHandler(activityUseCase, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, cfg.AppName, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.JWTAuth(issuer, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler: middleware.Chain(r.Handler,
			middleware.AccessLog(zapLogger),
			middleware.CORS(cfg.CORS.AllowedOrigins),
		),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Concurrency:  cfg.HTTP.MaxConn,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Error("server stopped listening", zap.Error(err))
			cancel()
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.ShutdownWithContext(ctx)
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
