// @title AI Tutor Analytics API
// @version 1.0
// @description Per-student accuracy, response time and concept-mastery analytics over recorded quiz attempts.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"ai-tutor/internal/adapter"
	"ai-tutor/internal/cache"
	"ai-tutor/internal/config"
	"ai-tutor/internal/dataset"
	"ai-tutor/internal/domain"
	"ai-tutor/internal/logger"
	"ai-tutor/internal/store"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	source, closeSource, err := dataset.OpenSource(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to open attempt source", zap.Error(err))
	}
	defer closeSource()

	holder, err := store.NewHolder(ctx, source)
	if err != nil {
		appLogger.Fatal("Failed to load attempts", zap.String("source", source.Name()), zap.Error(err))
	}
	snap := holder.Current()
	appLogger.Info("Attempt snapshot loaded",
		zap.String("source", snap.Source()),
		zap.String("version", snap.Version()),
		zap.Int("attempts", snap.AttemptCount()),
		zap.Int("students", snap.StudentCount()),
		zap.Int("concepts", snap.ConceptCount()),
	)

	// Redis is optional; without it the rate limiter keeps counters in memory.
	var redisStorage *adapter.RedisStorage
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			appLogger.Warn("Redis unavailable, continuing without it", zap.Error(err))
		} else {
			defer redisClient.Close()
			redisStorage = adapter.NewRedisStorage(redisClient)
			appLogger.Info("Successfully connected to Redis", zap.String("address", cfg.Redis.Address))
		}
	}

	app := newApp(cfg, holder, redisStorage)

	stopReload := watchReloadSignal(holder, cfg.Dataset.AllowReload)
	defer stopReload()

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}

// watchReloadSignal reloads the dataset on SIGHUP. The returned func stops watching.
func watchReloadSignal(holder *store.Holder, allowed bool) func() {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-done:
				return
			case <-hup:
				appLogger := logger.Get()
				if !allowed {
					appLogger.Warn("SIGHUP received but dataset reload is disabled")
					continue
				}
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
				snap, err := holder.Reload(ctx)
				cancel()
				var domainErr *domain.DomainError
				if errors.As(err, &domainErr) {
					appLogger.Error("SIGHUP reload failed, keeping previous snapshot", zap.String("code", string(domainErr.Code)))
					continue
				}
				if err != nil {
					appLogger.Error("SIGHUP reload failed, keeping previous snapshot", zap.Error(err))
					continue
				}
				appLogger.Info("SIGHUP reload complete", zap.String("version", snap.Version()))
			}
		}
	}()

	return func() {
		signal.Stop(hup)
		close(done)
	}
}
