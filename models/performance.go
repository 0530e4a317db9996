package models

// InteractionMetrics describes one reader interaction as fed to the
// performance monitor.
type InteractionMetrics struct {
	TimeSpent      float64 `json:"time_spent"` // seconds
	Bounced        bool    `json:"bounced"`
	Shared         bool    `json:"shared"`
	Commented      bool    `json:"commented"`
	SocialPlatform string  `json:"social_platform,omitempty"`
}

// ContentPerformance is the derived metrics snapshot for one piece of
// content or one author style.
type ContentPerformance struct {
	Views          int            `json:"views"`
	UniqueVisitors int            `json:"unique_visitors"`
	Shares         int            `json:"shares"`
	Comments       int            `json:"comments"`
	AvgTimeSpent   float64        `json:"avg_time_spent"`   // seconds, 2 decimals
	TotalTimeSpent float64        `json:"total_time_spent"` // seconds, 2 decimals
	BounceRate     float64        `json:"bounce_rate"`      // percent, 2 decimals
	Social         map[string]int `json:"social_interactions"`
}

// PeriodCounts are the per-day or per-hour interaction counters
type PeriodCounts struct {
	Views    int `json:"views"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
}

// ContentRank is one entry in a top-performing-content listing
type ContentRank struct {
	ContentID string `json:"content_id"`
	Metric    string `json:"metric"`
	Value     int    `json:"value"`
}

// PerformanceOverview totals the daily counters
type PerformanceOverview struct {
	TotalViews    int `json:"total_views"`
	TotalShares   int `json:"total_shares"`
	TotalComments int `json:"total_comments"`
}

// PerformanceDashboard is the aggregate view for the dashboard endpoint
type PerformanceDashboard struct {
	Overview        PerformanceOverview           `json:"overview"`
	DailySummary    map[string]PeriodCounts       `json:"daily_summary"`
	HourlySummary   map[string]PeriodCounts       `json:"hourly_summary"`
	TopContent      map[string][]ContentRank      `json:"top_content"`
	StyleComparison map[string]ContentPerformance `json:"style_comparison"`
}
