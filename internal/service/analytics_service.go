package service

import (
	"context"
	"sort"

	"ai-tutor/internal/config"
	"ai-tutor/internal/domain"
	"ai-tutor/internal/dto"
	"ai-tutor/internal/logger"
	"ai-tutor/internal/store"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// SnapshotProvider hands out the dataset snapshot to query against. *store.Holder implements it.
type SnapshotProvider interface {
	Current() *store.Snapshot
	Reload(ctx context.Context) (*store.Snapshot, error)
}

// AnalyticsService defines the read-only queries over the attempt dataset
type AnalyticsService interface {
	ListStudents(ctx context.Context) (*dto.StudentsResponse, error)
	GetStudentSummary(ctx context.Context, studentID int64) (*dto.StudentSummaryResponse, error)
	GetWeakTopics(ctx context.Context, studentID int64) (*dto.WeakTopicsResponse, error)
	GetConceptCatalog(ctx context.Context) (*dto.ConceptCatalogResponse, error)
	GetCohortWeakTopics(ctx context.Context) (*dto.CohortWeakTopicsResponse, error)
	GetDatasetInfo(ctx context.Context) (*dto.DatasetInfoResponse, error)
	ReloadDataset(ctx context.Context) (*dto.DatasetInfoResponse, error)
}

type analyticsService struct {
	snapshots   SnapshotProvider
	aggregator  *domain.MasteryAggregator
	allowReload bool
	concurrency int
}

// NewAnalyticsService creates a new instance of analyticsService
func NewAnalyticsService(snapshots SnapshotProvider, aggregator *domain.MasteryAggregator, cfg *config.Config) AnalyticsService {
	concurrency := cfg.Analytics.CohortConcurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &analyticsService{
		snapshots:   snapshots,
		aggregator:  aggregator,
		allowReload: cfg.Dataset.AllowReload,
		concurrency: concurrency,
	}
}

func (s *analyticsService) ListStudents(ctx context.Context) (*dto.StudentsResponse, error) {
	return &dto.StudentsResponse{Students: s.snapshots.Current().StudentIDs()}, nil
}

// GetStudentSummary implements AnalyticsService. A student with no attempts is STUDENT_NOT_FOUND.
func (s *analyticsService) GetStudentSummary(ctx context.Context, studentID int64) (*dto.StudentSummaryResponse, error) {
	snap := s.snapshots.Current()
	if !snap.HasStudent(studentID) {
		return nil, domain.NewStudentNotFoundError(studentID)
	}

	attempts := snap.AttemptsForStudent(studentID)
	overall := domain.ComputeOverallStats(attempts)
	perConcept := s.aggregator.ComputePerConceptStats(attempts, snap.Catalog())

	logger.Get().Debug("Computed student summary",
		zap.Int64("student_id", studentID),
		zap.Int("attempts", overall.Attempts),
		zap.Int("concepts", len(perConcept)),
		zap.String("dataset_version", snap.Version()),
	)

	return &dto.StudentSummaryResponse{
		StudentID:       studentID,
		Attempts:        overall.Attempts,
		OverallAccuracy: overall.Accuracy,
		AvgResponseTime: overall.AvgResponseTime,
		PerConcept:      toConceptStatResponses(perConcept),
	}, nil
}

func (s *analyticsService) GetWeakTopics(ctx context.Context, studentID int64) (*dto.WeakTopicsResponse, error) {
	snap := s.snapshots.Current()
	if !snap.HasStudent(studentID) {
		return nil, domain.NewStudentNotFoundError(studentID)
	}

	perConcept := s.aggregator.ComputePerConceptStats(snap.AttemptsForStudent(studentID), snap.Catalog())
	return &dto.WeakTopicsResponse{
		StudentID:   studentID,
		WeakTopics:  toConceptStatResponses(domain.WeakConcepts(perConcept)),
		AllConcepts: toConceptStatResponses(perConcept),
	}, nil
}

func (s *analyticsService) GetConceptCatalog(ctx context.Context) (*dto.ConceptCatalogResponse, error) {
	return &dto.ConceptCatalogResponse{Concepts: s.snapshots.Current().Catalog()}, nil
}

// GetCohortWeakTopics computes every student's weak topics in parallel. All students are
// read from one snapshot, so a concurrent reload cannot mix datasets in a single report.
func (s *analyticsService) GetCohortWeakTopics(ctx context.Context) (*dto.CohortWeakTopicsResponse, error) {
	snap := s.snapshots.Current()
	catalog := snap.Catalog()
	ids := snap.StudentIDs()
	rows := make([]dto.CohortStudentWeakTopics, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			attempts := snap.AttemptsForStudent(id)
			weak := domain.WeakConcepts(s.aggregator.ComputePerConceptStats(attempts, catalog))
			rows[i] = dto.CohortStudentWeakTopics{
				StudentID:  id,
				Attempts:   len(attempts),
				WeakTopics: toConceptStatResponses(weak),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, domain.NewInternalError("cohort report aborted", err)
	}

	weakCounts := make(map[string]int)
	for _, row := range rows {
		for _, stat := range row.WeakTopics {
			weakCounts[stat.Concept]++
		}
	}

	logger.Get().Info("Computed cohort weak-topic report",
		zap.Int("students", len(rows)),
		zap.Int("weak_concepts", len(weakCounts)),
		zap.String("dataset_version", snap.Version()),
	)

	return &dto.CohortWeakTopicsResponse{
		DatasetVersion: snap.Version(),
		Students:       rows,
		WeakCounts:     weakCounts,
	}, nil
}

func (s *analyticsService) GetDatasetInfo(ctx context.Context) (*dto.DatasetInfoResponse, error) {
	return s.datasetInfo(s.snapshots.Current()), nil
}

// ReloadDataset swaps in a freshly loaded snapshot. It is refused unless reloads are enabled.
func (s *analyticsService) ReloadDataset(ctx context.Context) (*dto.DatasetInfoResponse, error) {
	if !s.allowReload {
		return nil, domain.NewReloadDisabledError()
	}
	snap, err := s.snapshots.Reload(ctx)
	if err != nil {
		return nil, err
	}
	return s.datasetInfo(snap), nil
}

func (s *analyticsService) datasetInfo(snap *store.Snapshot) *dto.DatasetInfoResponse {
	return &dto.DatasetInfoResponse{
		Version:       snap.Version(),
		Source:        snap.Source(),
		LoadedAt:      snap.LoadedAt(),
		Attempts:      snap.AttemptCount(),
		Students:      snap.StudentCount(),
		Concepts:      snap.ConceptCount(),
		ReloadAllowed: s.allowReload,
	}
}

func toConceptStatResponses(stats []domain.ConceptStat) []dto.ConceptStatResponse {
	out := make([]dto.ConceptStatResponse, 0, len(stats))
	for _, st := range stats {
		out = append(out, dto.ConceptStatResponse{
			Concept:  st.Concept,
			Accuracy: st.Accuracy,
			Attempts: st.Attempts,
			IsWeak:   st.IsWeak,
		})
	}
	return out
}

// SortedWeakCounts returns the cohort weak counts ordered by count descending, then concept.
func SortedWeakCounts(counts map[string]int) []string {
	concepts := make([]string, 0, len(counts))
	for c := range counts {
		concepts = append(concepts, c)
	}
	sort.Slice(concepts, func(i, j int) bool {
		if counts[concepts[i]] != counts[concepts[j]] {
			return counts[concepts[i]] > counts[concepts[j]]
		}
		return concepts[i] < concepts[j]
	})
	return concepts
}
