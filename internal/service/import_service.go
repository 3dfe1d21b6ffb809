package service

import (
	"context"
	"fmt"

	"ai-tutor/internal/domain"
	"ai-tutor/internal/logger"

	"go.uber.org/zap"
)

const defaultImportBatchSize = 1000

// ImportService copies attempts into a SQL-backed dataset in a single transaction.
type ImportService interface {
	Import(ctx context.Context, attempts []domain.Attempt, replace bool) (int, error)
}

type importService struct {
	writer    domain.AttemptWriter
	txManager domain.TransactionManager
	batchSize int
}

// NewImportService creates an ImportService. batchSize below 1 uses the default.
func NewImportService(writer domain.AttemptWriter, txManager domain.TransactionManager, batchSize int) ImportService {
	if batchSize < 1 {
		batchSize = defaultImportBatchSize
	}
	return &importService{writer: writer, txManager: txManager, batchSize: batchSize}
}

// Import inserts attempts, deleting existing rows first when replace is set. Either every
// row lands or none do.
func (s *importService) Import(ctx context.Context, attempts []domain.Attempt, replace bool) (int, error) {
	log := logger.Get()
	inserted := 0

	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if replace {
			if err := s.writer.DeleteAllAttempts(txCtx); err != nil {
				return err
			}
			log.Info("Existing attempts deleted")
		}

		for start := 0; start < len(attempts); start += s.batchSize {
			end := start + s.batchSize
			if end > len(attempts) {
				end = len(attempts)
			}
			n, err := s.writer.InsertAttempts(txCtx, attempts[start:end])
			inserted += n
			if err != nil {
				return err
			}
			log.Info("Inserted attempt batch", zap.Int("inserted", inserted), zap.Int("total", len(attempts)))
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import rolled back after %d rows: %w", inserted, err)
	}

	total, err := s.writer.CountAttempts(ctx)
	if err != nil {
		return inserted, err
	}
	log.Info("Import committed", zap.Int("inserted", inserted), zap.Int("rows_in_table", total))
	return inserted, nil
}
