package models

// VariantMetrics carries one observation for an A/B test variant.
// Each call counts as exactly one impression.
type VariantMetrics struct {
	Clicks    float64 `json:"clicks"`
	Shares    float64 `json:"shares"`
	Comments  float64 `json:"comments"`
	TimeSpent float64 `json:"time_spent"` // seconds
}

// VariantStats is the derived per-variant view returned by a test
type VariantStats struct {
	Impressions    int     `json:"impressions"`
	CTR            float64 `json:"ctr"`
	EngagementRate float64 `json:"engagement_rate"`
	AvgTimeSpent   float64 `json:"avg_time_spent"`
}

// Test status values
const (
	TestStatusCollecting = "collecting_data"
	TestStatusCompleted  = "completed"
)

// TestStats is the full statistics snapshot for an A/B test
type TestStats struct {
	TestName     string                  `json:"test_name"`
	Duration     int                     `json:"duration"` // whole days since start
	TotalSamples int                     `json:"total_samples"`
	Variants     map[string]VariantStats `json:"variants"`
	Winner       string                  `json:"winner,omitempty"`
	Confidence   float64                 `json:"confidence"`
	Status       string                  `json:"status"`
}

// CreateTestRequest is the payload for creating an A/B test
type CreateTestRequest struct {
	Name       string   `json:"name" binding:"required"`
	Variants   []string `json:"variants" binding:"required,min=2"`
	MinSamples int      `json:"min_samples"`
}

// RecordResultRequest is the payload for recording a variant observation
type RecordResultRequest struct {
	Variant string         `json:"variant" binding:"required"`
	Metrics VariantMetrics `json:"metrics"`
}
