package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"ai-tutor/internal/domain"
	"ai-tutor/internal/logger"
	"ai-tutor/internal/repository/models"

	"go.uber.org/zap"
)

// Column names expected in the attempts CSV header. Extra columns are ignored.
const (
	ColumnStudentID    = "student_id"
	ColumnConceptTags  = "concept_tags"
	ColumnCorrect      = "correct"
	ColumnResponseTime = "response_time"
)

var requiredColumns = []string{ColumnStudentID, ColumnConceptTags, ColumnCorrect, ColumnResponseTime}

// CSVAttemptSource loads attempts from a flat CSV export.
type CSVAttemptSource struct {
	path string
}

// NewCSVAttemptSource creates a source reading the CSV file at path.
func NewCSVAttemptSource(path string) *CSVAttemptSource {
	return &CSVAttemptSource{path: path}
}

func (s *CSVAttemptSource) Name() string {
	return "csv:" + s.path
}

// Load reads the whole file. Any I/O or row error is a DATA_LOAD_ERROR.
func (s *CSVAttemptSource) Load(ctx context.Context) ([]domain.Attempt, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, domain.NewDataLoadError(s.Name(), err)
	}
	defer f.Close()

	attempts, err := ReadAttemptsCSV(ctx, f)
	if err != nil {
		return nil, domain.NewDataLoadError(s.Name(), err)
	}
	return attempts, nil
}

// ReadAttemptsCSV parses attempts from r. Unparseable concept_tags values are kept as a
// single synthetic tag; every other malformed field fails the whole read.
func ReadAttemptsCSV(ctx context.Context, r io.Reader) ([]domain.Attempt, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header row")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	appLogger := logger.Get()
	attempts := make([]domain.Attempt, 0)
	fallbacks := 0
	line := 1
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		a, fellBack, err := parseAttemptRecord(record, index)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if fellBack != nil {
			fallbacks++
			appLogger.Debug("Concept tags fell back to raw value",
				zap.Int("line", line),
				zap.Int64("student_id", a.StudentID),
				zap.Error(fellBack),
			)
		}
		attempts = append(attempts, a)
	}

	if fallbacks > 0 {
		appLogger.Warn("Some concept_tags values could not be parsed and were kept as single tags",
			zap.Int("fallbacks", fallbacks),
			zap.Int("attempts", len(attempts)),
		)
	}
	return attempts, nil
}

func columnIndex(header []string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := index[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return index, nil
}

func field(record []string, index map[string]int, col string) (string, error) {
	i := index[col]
	if i >= len(record) {
		return "", fmt.Errorf("missing value for %s", col)
	}
	return record[i], nil
}

func parseAttemptRecord(record []string, index map[string]int) (domain.Attempt, *domain.UnparseableTagError, error) {
	var a domain.Attempt

	rawID, err := field(record, index, ColumnStudentID)
	if err != nil {
		return a, nil, err
	}
	if a.StudentID, err = parseStudentID(rawID); err != nil {
		return a, nil, err
	}

	rawCorrect, err := field(record, index, ColumnCorrect)
	if err != nil {
		return a, nil, err
	}
	if a.Correct, err = models.ParseFlag(rawCorrect); err != nil {
		return a, nil, fmt.Errorf("invalid %s: %w", ColumnCorrect, err)
	}

	rawTime, err := field(record, index, ColumnResponseTime)
	if err != nil {
		return a, nil, err
	}
	if a.ResponseTime, err = strconv.ParseFloat(strings.TrimSpace(rawTime), 64); err != nil || math.IsNaN(a.ResponseTime) {
		return a, nil, fmt.Errorf("invalid %s %q", ColumnResponseTime, rawTime)
	}

	rawTags, err := field(record, index, ColumnConceptTags)
	if err != nil {
		return a, nil, err
	}
	parsed := domain.ParseConceptTags(rawTags)
	a.ConceptTags = parsed.Tags
	return a, parsed.Err, nil
}

// parseStudentID accepts integers, including spreadsheet-style "12.0".
func parseStudentID(raw string) (int64, error) {
	raw = strings.TrimSpace(raw)
	if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return id, nil
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil && f == math.Trunc(f) && !math.IsInf(f, 0) {
		return int64(f), nil
	}
	return 0, fmt.Errorf("invalid %s %q", ColumnStudentID, raw)
}
