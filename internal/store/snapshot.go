// Package store holds the immutable, load-once view of the attempt dataset.
package store

import (
	"context"
	"sort"
	"time"

	"ai-tutor/internal/domain"
	"ai-tutor/internal/util"
)

// Snapshot is an immutable attempt dataset with its derived concept catalog.
// Accessors return fresh slices; nothing mutates a Snapshot after NewSnapshot returns.
type Snapshot struct {
	version    string
	source     string
	loadedAt   time.Time
	attempts   []domain.Attempt
	byStudent  map[int64][]domain.Attempt
	studentIDs []int64
	catalog    []string
}

// NewSnapshot indexes attempts by student and derives the catalog once.
func NewSnapshot(source string, attempts []domain.Attempt) *Snapshot {
	owned := make([]domain.Attempt, len(attempts))
	for i, a := range attempts {
		tags := make([]string, len(a.ConceptTags))
		copy(tags, a.ConceptTags)
		a.ConceptTags = tags
		owned[i] = a
	}

	byStudent := make(map[int64][]domain.Attempt)
	for _, a := range owned {
		byStudent[a.StudentID] = append(byStudent[a.StudentID], a)
	}
	studentIDs := make([]int64, 0, len(byStudent))
	for id := range byStudent {
		studentIDs = append(studentIDs, id)
	}
	sort.Slice(studentIDs, func(i, j int) bool { return studentIDs[i] < studentIDs[j] })

	now := time.Now().UTC()
	return &Snapshot{
		version:    util.NewULIDAt(now),
		source:     source,
		loadedAt:   now,
		attempts:   owned,
		byStudent:  byStudent,
		studentIDs: studentIDs,
		catalog:    domain.DeriveCatalog(owned),
	}
}

// Load reads src and builds a snapshot from it.
func Load(ctx context.Context, src domain.AttemptSource) (*Snapshot, error) {
	attempts, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(src.Name(), attempts), nil
}

func (s *Snapshot) Version() string     { return s.version }
func (s *Snapshot) Source() string      { return s.source }
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }
func (s *Snapshot) AttemptCount() int   { return len(s.attempts) }
func (s *Snapshot) StudentCount() int   { return len(s.studentIDs) }
func (s *Snapshot) ConceptCount() int   { return len(s.catalog) }
func (s *Snapshot) HasStudent(id int64) bool {
	_, ok := s.byStudent[id]
	return ok
}

// AttemptsForStudent returns the student's attempts, or an empty slice when unknown.
func (s *Snapshot) AttemptsForStudent(id int64) []domain.Attempt {
	attempts := s.byStudent[id]
	out := make([]domain.Attempt, len(attempts))
	copy(out, attempts)
	return out
}

// StudentIDs returns every student ID in ascending order.
func (s *Snapshot) StudentIDs() []int64 {
	out := make([]int64, len(s.studentIDs))
	copy(out, s.studentIDs)
	return out
}

// Catalog returns the sorted concept catalog.
func (s *Snapshot) Catalog() []string {
	out := make([]string, len(s.catalog))
	copy(out, s.catalog)
	return out
}
