// Package dataset builds the configured attempt source.
package dataset

import (
	"context"
	"fmt"

	"ai-tutor/internal/config"
	"ai-tutor/internal/database"
	"ai-tutor/internal/domain"
	"ai-tutor/internal/logger"
	"ai-tutor/internal/repository"

	"go.uber.org/zap"
)

// OpenSource returns the AttemptSource selected by cfg.Dataset.Source and a close func
// releasing any database connection behind it. The close func is never nil.
func OpenSource(ctx context.Context, cfg *config.Config) (domain.AttemptSource, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Dataset.Source {
	case config.SourceCSV:
		logger.Get().Info("Using CSV attempt source", zap.String("path", cfg.Dataset.Path))
		return repository.NewCSVAttemptSource(cfg.Dataset.Path), noop, nil
	case config.SourceSQLite, config.SourceOracle:
		db, err := database.Open(ctx, cfg.DB.Driver, cfg.GetDSN())
		if err != nil {
			return nil, noop, domain.NewDataLoadError(cfg.DB.Driver, err)
		}
		logger.Get().Info("Using SQL attempt source", zap.String("driver", cfg.DB.Driver))
		return repository.NewSQLAttemptSource(db, cfg.DB.Driver), db.Close, nil
	default:
		return nil, noop, fmt.Errorf("unsupported dataset source: %q", cfg.Dataset.Source)
	}
}

// Policy builds the weakness policy from the mastery section of cfg.
func Policy(cfg *config.Config) domain.WeaknessPolicy {
	return domain.WeaknessPolicy{
		AccuracyThreshold: cfg.Mastery.WeakAccuracyThreshold,
		MinAttempts:       cfg.Mastery.WeakMinAttempts,
	}
}
