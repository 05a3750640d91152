package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aouiniamine/devbox/docs"

	"github.com/aouiniamine/devbox/internal/cache"
	"github.com/aouiniamine/devbox/internal/config"
	"github.com/aouiniamine/devbox/internal/database"
	"github.com/aouiniamine/devbox/internal/features/health"
	"github.com/aouiniamine/devbox/internal/features/health/service"
	"github.com/aouiniamine/devbox/internal/features/root"
	"github.com/aouiniamine/devbox/internal/logger"
	"github.com/aouiniamine/devbox/internal/server"
	"github.com/joho/godotenv"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

// @title DevBox API
// @version 1.0
// @description Liveness of the API and of its database and cache dependencies

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:5000
// @BasePath /

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	if envErr != nil {
		appLogger.Info("No .env file found, using environment variables")
	}

	db := database.New(cfg.Database.Driver, cfg.Database.DSN())

	cache.SetLogger(appLogger.Named("redis"))
	redisCache := cache.NewRedis(cache.RedisConfig{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisCache.Close()

	pingCtx, pingCancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisCache.Ping(pingCtx); err != nil {
		appLogger.Warn("Redis not reachable at startup", zap.String("addr", redisCache.Addr()), zap.Error(err))
	}
	pingCancel()

	srv := server.New(cfg, appLogger)

	srv.Echo().GET("/swagger/*", echoSwagger.WrapHandler)

	rootFeature := root.New()
	rootFeature.RegisterRoutes(srv.Echo())

	healthFeature := health.New(db, redisCache, service.Options{
		Timeout:  cfg.Health.Timeout,
		Parallel: cfg.Health.Parallel,
	}, appLogger.Named("health"))
	healthFeature.RegisterRoutes(srv.Echo())

	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Fatal("Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	appLogger.Info("Server exited gracefully")
}
