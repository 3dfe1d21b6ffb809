package repository

import (
	"context"
	"fmt"

	"ai-tutor/internal/domain"
	"ai-tutor/internal/repository/models"
)

const (
	insertAttemptQuery  = `INSERT INTO ATTEMPTS (STUDENT_ID, CONCEPT_TAGS, CORRECT, RESPONSE_TIME) VALUES (:STUDENT_ID, :CONCEPT_TAGS, :CORRECT, :RESPONSE_TIME)`
	countAttemptsQuery  = `SELECT COUNT(*) FROM ATTEMPTS`
	deleteAttemptsQuery = `DELETE FROM ATTEMPTS`
)

// SQLAttemptWriter writes attempts into the ATTEMPTS table. Calls made inside
// TransactionManager.WithTransaction use the surrounding transaction.
type SQLAttemptWriter struct {
	db DBTX
}

func NewSQLAttemptWriter(db DBTX) domain.AttemptWriter {
	return &SQLAttemptWriter{db: db}
}

// InsertAttempts inserts one row per attempt and returns the number written.
func (w *SQLAttemptWriter) InsertAttempts(ctx context.Context, attempts []domain.Attempt) (int, error) {
	exec := GetExecutor(ctx, w.db)
	for i, a := range attempts {
		record := models.AttemptRecord{
			StudentID:    a.StudentID,
			ConceptTags:  models.TagList(a.ConceptTags),
			Correct:      models.Flag(a.Correct),
			ResponseTime: a.ResponseTime,
		}
		if _, err := exec.NamedExecContext(ctx, insertAttemptQuery, record); err != nil {
			return i, fmt.Errorf("failed to insert attempt %d for student %d: %w", i, a.StudentID, err)
		}
	}
	return len(attempts), nil
}

func (w *SQLAttemptWriter) CountAttempts(ctx context.Context) (int, error) {
	var count int
	if err := GetExecutor(ctx, w.db).GetContext(ctx, &count, countAttemptsQuery); err != nil {
		return 0, fmt.Errorf("failed to count attempts: %w", err)
	}
	return count, nil
}

func (w *SQLAttemptWriter) DeleteAllAttempts(ctx context.Context) error {
	if _, err := GetExecutor(ctx, w.db).ExecContext(ctx, deleteAttemptsQuery); err != nil {
		return fmt.Errorf("failed to delete attempts: %w", err)
	}
	return nil
}
