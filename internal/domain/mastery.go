package domain

const (
	// DefaultWeakAccuracyThreshold is the accuracy below which a concept may be weak.
	DefaultWeakAccuracyThreshold = 0.6
	// DefaultWeakMinAttempts is the attempt floor a concept needs before it can be weak.
	DefaultWeakMinAttempts = 3
)

// ConceptStat is one student's mastery of one concept.
type ConceptStat struct {
	Concept  string
	Accuracy float64
	Attempts int
	IsWeak   bool
}

// OverallStats aggregates all of a student's attempts regardless of concept.
// Accuracy and AvgResponseTime are nil when there are no attempts.
type OverallStats struct {
	Attempts        int
	Accuracy        *float64
	AvgResponseTime *float64
}

// WeaknessPolicy decides when a concept is flagged weak.
type WeaknessPolicy struct {
	AccuracyThreshold float64
	MinAttempts       int
}

// DefaultWeaknessPolicy returns the policy built from the package defaults.
func DefaultWeaknessPolicy() WeaknessPolicy {
	return WeaknessPolicy{
		AccuracyThreshold: DefaultWeakAccuracyThreshold,
		MinAttempts:       DefaultWeakMinAttempts,
	}
}

// IsWeak is true iff accuracy < threshold and attempts >= the floor.
func (p WeaknessPolicy) IsWeak(accuracy float64, attempts int) bool {
	return accuracy < p.AccuracyThreshold && attempts >= p.MinAttempts
}

// MasteryAggregator computes per-concept statistics. It holds no mutable state and is
// safe for concurrent use.
type MasteryAggregator struct {
	policy WeaknessPolicy
}

func NewMasteryAggregator(policy WeaknessPolicy) *MasteryAggregator {
	return &MasteryAggregator{policy: policy}
}

// Policy returns the weakness policy in effect.
func (m *MasteryAggregator) Policy() WeaknessPolicy {
	return m.policy
}

type conceptTally struct {
	correct  int
	attempts int
}

// ComputePerConceptStats returns one ConceptStat per catalog concept that at least one of
// attempts is tagged with, in catalog order. An attempt counts toward every concept it carries.
func (m *MasteryAggregator) ComputePerConceptStats(attempts []Attempt, catalog []string) []ConceptStat {
	tallies := make(map[string]*conceptTally)
	for _, a := range attempts {
		for i, tag := range a.ConceptTags {
			if repeatsEarlierTag(a.ConceptTags, i) {
				continue
			}
			t, ok := tallies[tag]
			if !ok {
				t = &conceptTally{}
				tallies[tag] = t
			}
			t.attempts++
			if a.Correct {
				t.correct++
			}
		}
	}

	stats := make([]ConceptStat, 0, len(tallies))
	for _, concept := range catalog {
		t, ok := tallies[concept]
		if !ok || t.attempts == 0 {
			continue
		}
		accuracy := float64(t.correct) / float64(t.attempts)
		stats = append(stats, ConceptStat{
			Concept:  concept,
			Accuracy: accuracy,
			Attempts: t.attempts,
			IsWeak:   m.policy.IsWeak(accuracy, t.attempts),
		})
	}
	return stats
}

// repeatsEarlierTag keeps an attempt with a duplicated tag from counting twice.
func repeatsEarlierTag(tags []string, i int) bool {
	for j := 0; j < i; j++ {
		if tags[j] == tags[i] {
			return true
		}
	}
	return false
}

// ComputePerConceptStats uses the default weakness policy.
func ComputePerConceptStats(attempts []Attempt, catalog []string) []ConceptStat {
	return NewMasteryAggregator(DefaultWeaknessPolicy()).ComputePerConceptStats(attempts, catalog)
}

// ComputeOverallStats returns the attempt count, mean correctness and mean response time.
func ComputeOverallStats(attempts []Attempt) OverallStats {
	if len(attempts) == 0 {
		return OverallStats{}
	}

	var correct int
	var totalTime float64
	for _, a := range attempts {
		if a.Correct {
			correct++
		}
		totalTime += a.ResponseTime
	}

	n := float64(len(attempts))
	accuracy := float64(correct) / n
	avgTime := totalTime / n
	return OverallStats{
		Attempts:        len(attempts),
		Accuracy:        &accuracy,
		AvgResponseTime: &avgTime,
	}
}

// WeakConcepts filters stats down to those flagged weak, preserving order.
func WeakConcepts(stats []ConceptStat) []ConceptStat {
	weak := make([]ConceptStat, 0)
	for _, s := range stats {
		if s.IsWeak {
			weak = append(weak, s)
		}
	}
	return weak
}
