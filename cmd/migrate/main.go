package main

import (
	"context"
	"log"

	"ai-tutor/internal/config"
	"ai-tutor/internal/database"
	"ai-tutor/internal/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	l := logger.Get()
	defer logger.Sync()

	ctx := context.Background()
	db, err := database.Open(ctx, cfg.DB.Driver, cfg.GetDSN())
	if err != nil {
		l.Fatal("Failed to connect to database", zap.String("driver", cfg.DB.Driver), zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db, cfg.DB.Driver); err != nil {
		l.Fatal("Failed to run migrations", zap.Error(err))
	}
}
