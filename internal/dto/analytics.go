package dto

import "time"

// StudentsResponse lists every student ID present in the dataset
// @Description Sorted student identifiers
type StudentsResponse struct {
	Students []int64 `json:"students"`
}

// ConceptStatResponse is the mastery signal for one concept
// @Description Per-concept accuracy and weakness flag
type ConceptStatResponse struct {
	Concept  string  `json:"concept"`
	Accuracy float64 `json:"accuracy"` // 0.0 ~ 1.0
	Attempts int     `json:"attempts"`
	IsWeak   bool    `json:"is_weak"`
}

// StudentSummaryResponse represents overall and per-concept stats for a student
// @Description Student summary
type StudentSummaryResponse struct {
	StudentID       int64                 `json:"student_id"`
	Attempts        int                   `json:"attempts"`
	OverallAccuracy *float64              `json:"overall_accuracy"`  // null when there are no attempts
	AvgResponseTime *float64              `json:"avg_response_time"` // seconds, null when there are no attempts
	PerConcept      []ConceptStatResponse `json:"per_concept"`
}

// WeakTopicsResponse holds the weak subset next to the full per-concept list
// @Description Weak topics for a student
type WeakTopicsResponse struct {
	StudentID   int64                 `json:"student_id"`
	WeakTopics  []ConceptStatResponse `json:"weak_topics"`
	AllConcepts []ConceptStatResponse `json:"all_concepts"`
}

// ConceptCatalogResponse lists every concept label in the dataset
type ConceptCatalogResponse struct {
	Concepts []string `json:"concepts"`
}

// CohortStudentWeakTopics is one row of the cohort report
type CohortStudentWeakTopics struct {
	StudentID  int64                 `json:"student_id"`
	Attempts   int                   `json:"attempts"`
	WeakTopics []ConceptStatResponse `json:"weak_topics"`
}

// CohortWeakTopicsResponse aggregates weak topics across all students
// @Description Cohort weak-topic report
type CohortWeakTopicsResponse struct {
	DatasetVersion string                    `json:"dataset_version"`
	Students       []CohortStudentWeakTopics `json:"students"`
	WeakCounts     map[string]int            `json:"weak_counts"` // concept -> number of students weak in it
}

// DatasetInfoResponse describes the snapshot currently being served
// @Description Dataset snapshot information
type DatasetInfoResponse struct {
	Version       string    `json:"version"`
	Source        string    `json:"source"`
	LoadedAt      time.Time `json:"loaded_at"`
	Attempts      int       `json:"attempts"`
	Students      int       `json:"students"`
	Concepts      int       `json:"concepts"`
	ReloadAllowed bool      `json:"reload_allowed"`
}

// HealthResponse is returned by GET /health
type HealthResponse struct {
	Status         string `json:"status"`
	DatasetVersion string `json:"dataset_version"`
	Redis          string `json:"redis,omitempty"` // ok | unavailable; omitted when not configured
}
