package repository

import (
	"context"
	"fmt"

	"ai-tutor/internal/domain"
	"ai-tutor/internal/logger"
	"ai-tutor/internal/repository/models"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const selectAttemptsQuery = `SELECT STUDENT_ID, CONCEPT_TAGS, CORRECT, RESPONSE_TIME FROM ATTEMPTS ORDER BY ID`

// SQLAttemptSource loads attempts from the ATTEMPTS table of a SQLite or Oracle database.
type SQLAttemptSource struct {
	db   *sqlx.DB
	name string
}

// NewSQLAttemptSource wraps db. name is reported in logs and dataset info (e.g. "sqlite").
func NewSQLAttemptSource(db *sqlx.DB, name string) *SQLAttemptSource {
	return &SQLAttemptSource{db: db, name: name}
}

func (s *SQLAttemptSource) Name() string {
	return s.name
}

func (s *SQLAttemptSource) Load(ctx context.Context) ([]domain.Attempt, error) {
	var rows []models.AttemptRow
	if err := s.db.SelectContext(ctx, &rows, selectAttemptsQuery); err != nil {
		return nil, domain.NewDataLoadError(s.name, fmt.Errorf("failed to select attempts: %w", err))
	}

	attempts := make([]domain.Attempt, 0, len(rows))
	fallbacks := 0
	for i, row := range rows {
		a, fellBack, err := toDomainAttempt(row)
		if err != nil {
			return nil, domain.NewDataLoadError(s.name, fmt.Errorf("row %d: %w", i+1, err))
		}
		if fellBack {
			fallbacks++
		}
		attempts = append(attempts, a)
	}

	if fallbacks > 0 {
		logger.Get().Warn("Some concept_tags values could not be parsed and were kept as single tags",
			zap.String("source", s.name),
			zap.Int("fallbacks", fallbacks),
			zap.Int("attempts", len(attempts)),
		)
	}
	return attempts, nil
}

// toDomainAttempt converts a stored row. NULL tags mean an untagged attempt; a NULL
// response time is rejected like a blank one in CSV.
func toDomainAttempt(row models.AttemptRow) (domain.Attempt, bool, error) {
	if !row.ResponseTime.Valid {
		return domain.Attempt{}, false, fmt.Errorf("student %d: RESPONSE_TIME is NULL", row.StudentID)
	}

	a := domain.Attempt{
		StudentID:    row.StudentID,
		Correct:      bool(row.Correct),
		ResponseTime: row.ResponseTime.Float64,
		ConceptTags:  []string{},
	}
	if !row.ConceptTags.Valid {
		return a, false, nil
	}

	parsed := domain.ParseConceptTags(row.ConceptTags.String)
	a.ConceptTags = parsed.Tags
	return a, parsed.Fallback, nil
}
