package services

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"futnews-backend/models"
	"futnews-backend/utils"
)

// ErrTestExists is returned when creating a test whose name is already active
var ErrTestExists = errors.New("test already exists")

// ErrTestNotFound is returned for operations on a test that is not active
var ErrTestNotFound = errors.New("test not found")

// timeSpentReference normalizes avg time spent in the composite score:
// five minutes on page counts as 1.0. Values above it are not clamped.
const timeSpentReference = 300.0

type variantResult struct {
	impressions    int
	clicks         float64
	shares         float64
	comments       float64
	totalTimeSpent float64
	avgTimeSpent   float64
}

// ABTest accumulates engagement metrics per variant and decides a winner
// once enough samples are in. Variants[0] is the baseline/control.
type ABTest struct {
	Name       string
	Variants   []string
	MinSamples int
	StartTime  time.Time

	mu      sync.Mutex
	results map[string]*variantResult

	// now is swappable for duration tests
	now func() time.Time
}

// NewABTest creates a test with zeroed accumulators for every variant
func NewABTest(name string, variants []string, minSamples int) *ABTest {
	results := make(map[string]*variantResult, len(variants))
	for _, v := range variants {
		results[v] = &variantResult{}
	}
	return &ABTest{
		Name:       name,
		Variants:   variants,
		MinSamples: minSamples,
		StartTime:  time.Now(),
		results:    results,
		now:        time.Now,
	}
}

// AddResult records one impression for a variant. Unknown variants are
// ignored: one mistagged telemetry event must not poison the test.
func (t *ABTest) AddResult(variant string, metrics models.VariantMetrics) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.results[variant]
	if !ok {
		return
	}

	r.impressions++
	r.clicks += metrics.Clicks
	r.shares += metrics.Shares
	r.comments += metrics.Comments
	r.totalTimeSpent += metrics.TimeSpent
	r.avgTimeSpent = r.totalTimeSpent / float64(r.impressions)
}

// Stats computes per-variant rates, picks a winner once the sample
// threshold is met and at least two variants have data, and attaches the
// chi-square confidence of winner vs control.
func (t *ABTest) Stats() models.TestStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	stats := models.TestStats{
		TestName: t.Name,
		Duration: int(t.now().Sub(t.StartTime).Hours() / 24),
		Variants: make(map[string]models.VariantStats),
		Status:   models.TestStatusCollecting,
	}

	for _, variant := range t.Variants {
		r := t.results[variant]
		stats.TotalSamples += r.impressions

		// Zero-impression variants carry no rates and are excluded
		if r.impressions == 0 {
			continue
		}

		impressions := float64(r.impressions)
		stats.Variants[variant] = models.VariantStats{
			Impressions:    r.impressions,
			CTR:            r.clicks / impressions,
			EngagementRate: (r.shares + r.comments) / impressions,
			AvgTimeSpent:   r.avgTimeSpent,
		}
	}

	if stats.TotalSamples < t.MinSamples {
		return stats
	}

	// Winner: strictly highest composite score, first seen wins on ties.
	// Iteration follows variant declaration order so the tie-break is
	// deterministic.
	bestVariant := ""
	bestScore := -1.0
	for _, variant := range t.Variants {
		data, ok := stats.Variants[variant]
		if !ok {
			continue
		}
		score := data.CTR*0.4 +
			data.EngagementRate*0.4 +
			(data.AvgTimeSpent/timeSpentReference)*0.2
		if score > bestScore {
			bestScore = score
			bestVariant = variant
		}
	}

	// Fewer than two variants with data: no winner, keep collecting even
	// though the sample threshold is met.
	if bestVariant == "" || len(stats.Variants) < 2 {
		return stats
	}

	control, ok := stats.Variants[t.Variants[0]]
	if !ok {
		// Control has no impressions yet; significance vs control is
		// undefined, so the test stays open.
		return stats
	}
	winner := stats.Variants[bestVariant]

	// Chi-square on engaged vs not-engaged impressions. The engaged cell
	// is impressions * engagement_rate, a continuous pseudo-count fed to
	// the test as-is.
	controlEngaged := float64(control.Impressions) * control.EngagementRate
	winnerEngaged := float64(winner.Impressions) * winner.EngagementRate

	_, pValue, err := utils.ChiSquare2x2(
		controlEngaged, float64(control.Impressions)-controlEngaged,
		winnerEngaged, float64(winner.Impressions)-winnerEngaged,
	)
	if err != nil {
		// Degenerate table (no engagement signal anywhere): keep collecting
		return stats
	}

	stats.Winner = bestVariant
	stats.Confidence = (1 - pValue) * 100
	stats.Status = models.TestStatusCompleted

	return stats
}

// ABTestManager owns the test lifecycle: active tests accept telemetry,
// completed ones are frozen with their final stats snapshot in history.
type ABTestManager struct {
	mu        sync.Mutex
	active    map[string]*ABTest
	completed map[string]*ABTest
	history   []models.TestStats
}

// NewABTestManager creates an empty manager
func NewABTestManager() *ABTestManager {
	return &ABTestManager{
		active:    make(map[string]*ABTest),
		completed: make(map[string]*ABTest),
	}
}

// CreateTest registers a new active test. The name must not collide with
// an active test.
func (m *ABTestManager) CreateTest(name string, variants []string, minSamples int) (*ABTest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.active[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrTestExists, name)
	}

	test := NewABTest(name, variants, minSamples)
	m.active[name] = test
	return test, nil
}

// RecordResult feeds one observation into an active test and returns the
// updated stats. The first observation that completes the test moves it to
// the completed set and appends the final snapshot to history; after that
// the test no longer accepts results through the manager.
func (m *ABTestManager) RecordResult(testName, variant string, metrics models.VariantMetrics) (models.TestStats, error) {
	m.mu.Lock()
	test, ok := m.active[testName]
	m.mu.Unlock()
	if !ok {
		return models.TestStats{}, fmt.Errorf("%w: %q", ErrTestNotFound, testName)
	}

	test.AddResult(variant, metrics)

	stats := test.Stats()
	if stats.Status == models.TestStatusCompleted {
		m.mu.Lock()
		// Re-check under the lock; a concurrent recorder may have moved it
		if _, stillActive := m.active[testName]; stillActive {
			m.completed[testName] = test
			delete(m.active, testName)
			m.history = append(m.history, stats)
		}
		m.mu.Unlock()
	}

	return stats, nil
}

// GetTestStats returns current statistics for an active or completed test
func (m *ABTestManager) GetTestStats(testName string) (models.TestStats, error) {
	m.mu.Lock()
	test, ok := m.active[testName]
	if !ok {
		test, ok = m.completed[testName]
	}
	m.mu.Unlock()

	if !ok {
		return models.TestStats{}, fmt.Errorf("%w: %q", ErrTestNotFound, testName)
	}
	return test.Stats(), nil
}

// ActiveTests returns statistics for every active test
func (m *ABTestManager) ActiveTests() []models.TestStats {
	m.mu.Lock()
	tests := make([]*ABTest, 0, len(m.active))
	for _, test := range m.active {
		tests = append(tests, test)
	}
	m.mu.Unlock()

	stats := make([]models.TestStats, 0, len(tests))
	for _, test := range tests {
		stats = append(stats, test.Stats())
	}
	return stats
}

// History returns the final snapshots of completed tests, oldest first
func (m *ABTestManager) History() []models.TestStats {
	m.mu.Lock()
	defer m.mu.Unlock()

	history := make([]models.TestStats, len(m.history))
	copy(history, m.history)
	return history
}

// SelectVariant picks a variant for a new reader, uniformly at random.
// TODO: replace with a multi-armed bandit once enough completed tests
// exist to validate it against.
func (m *ABTestManager) SelectVariant(testName string) (string, error) {
	m.mu.Lock()
	test, ok := m.active[testName]
	m.mu.Unlock()

	if !ok {
		return "", fmt.Errorf("%w: %q", ErrTestNotFound, testName)
	}
	return test.Variants[rand.Intn(len(test.Variants))], nil
}
