package domain

import "context"

// Attempt is one recorded quiz response by a student.
type Attempt struct {
	StudentID    int64
	ConceptTags  []string
	Correct      bool
	ResponseTime float64 // seconds
}

// AttemptSource produces the raw attempt records a snapshot is built from.
type AttemptSource interface {
	// Name identifies the source in logs and dataset info (e.g. "csv:data/x.csv").
	Name() string

	// Load reads every attempt. Missing or malformed sources return a DATA_LOAD_ERROR.
	Load(ctx context.Context) ([]Attempt, error)
}

// AttemptWriter persists attempts into a SQL-backed dataset (used by the importer).
type AttemptWriter interface {
	InsertAttempts(ctx context.Context, attempts []Attempt) (int, error)
	CountAttempts(ctx context.Context) (int, error)
	DeleteAllAttempts(ctx context.Context) error
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
