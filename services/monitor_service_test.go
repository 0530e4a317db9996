package services

import (
	"testing"
	"time"

	"futnews-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackInteraction_ContentMetrics(t *testing.T) {
	monitor := NewPerformanceMonitor(30 * 24 * time.Hour)

	monitor.TrackInteraction("art-1", "user-a", "narracao", models.InteractionMetrics{
		TimeSpent: 120, Shared: true, SocialPlatform: "twitter",
	})
	monitor.TrackInteraction("art-1", "user-a", "narracao", models.InteractionMetrics{
		TimeSpent: 60, Bounced: true,
	})
	monitor.TrackInteraction("art-1", "user-b", "narracao", models.InteractionMetrics{
		Commented: true,
	})

	perf, ok := monitor.ContentPerformance("art-1")
	require.True(t, ok)
	assert.Equal(t, 3, perf.Views)
	assert.Equal(t, 2, perf.UniqueVisitors, "repeat visits count once")
	assert.Equal(t, 1, perf.Shares)
	assert.Equal(t, 1, perf.Comments)
	assert.Equal(t, 60.0, perf.AvgTimeSpent)
	assert.Equal(t, 180.0, perf.TotalTimeSpent)
	assert.InDelta(t, 33.33, perf.BounceRate, 0.01)
	assert.Equal(t, 1, perf.Social["twitter"])

	_, ok = monitor.ContentPerformance("art-unknown")
	assert.False(t, ok)
}

func TestStyleComparison(t *testing.T) {
	monitor := NewPerformanceMonitor(30 * 24 * time.Hour)

	monitor.TrackInteraction("art-1", "u1", "narracao", models.InteractionMetrics{Shared: true})
	monitor.TrackInteraction("art-2", "u2", "zoacao", models.InteractionMetrics{})
	monitor.TrackInteraction("art-3", "u3", "zoacao", models.InteractionMetrics{Commented: true})
	// Style-less interactions stay out of the comparison
	monitor.TrackInteraction("art-4", "u4", "", models.InteractionMetrics{})

	comparison := monitor.StyleComparison()
	require.Len(t, comparison, 2)
	assert.Equal(t, 1, comparison["narracao"].Views)
	assert.Equal(t, 1, comparison["narracao"].Shares)
	assert.Equal(t, 2, comparison["zoacao"].Views)
	assert.Equal(t, 1, comparison["zoacao"].Comments)
}

func TestTopContent(t *testing.T) {
	monitor := NewPerformanceMonitor(30 * 24 * time.Hour)

	for i := 0; i < 5; i++ {
		monitor.TrackInteraction("popular", "u", "", models.InteractionMetrics{})
	}
	for i := 0; i < 2; i++ {
		monitor.TrackInteraction("middling", "u", "", models.InteractionMetrics{})
	}
	monitor.TrackInteraction("quiet", "u", "", models.InteractionMetrics{})

	top := monitor.TopContent("views", 2)
	require.Len(t, top, 2)
	assert.Equal(t, "popular", top[0].ContentID)
	assert.Equal(t, 5, top[0].Value)
	assert.Equal(t, "middling", top[1].ContentID)

	// Unknown metrics rank nothing
	assert.Empty(t, monitor.TopContent("bounces", 10))
}

func TestPeriodSummariesAndRetention(t *testing.T) {
	monitor := NewPerformanceMonitor(30 * 24 * time.Hour)
	now := time.Date(2026, 8, 28, 14, 30, 0, 0, time.Local)
	monitor.now = func() time.Time { return now }

	monitor.TrackInteraction("art-1", "u1", "", models.InteractionMetrics{Shared: true})
	monitor.TrackInteraction("art-1", "u2", "", models.InteractionMetrics{})

	daily := monitor.DailySummary(7)
	require.Len(t, daily, 1)
	assert.Equal(t, 2, daily["2026-08-28"].Views)
	assert.Equal(t, 1, daily["2026-08-28"].Shares)

	hourly := monitor.HourlySummary(24)
	require.Len(t, hourly, 1)
	assert.Equal(t, 2, hourly["2026-08-28 14:00"].Views)

	// Beyond the retention window, old buckets are swept on read
	now = now.Add(31 * 24 * time.Hour)
	assert.Empty(t, monitor.DailySummary(7))
	assert.Empty(t, monitor.HourlySummary(24))
}

func TestDashboard(t *testing.T) {
	monitor := NewPerformanceMonitor(30 * 24 * time.Hour)

	monitor.TrackInteraction("art-1", "u1", "tatico", models.InteractionMetrics{Shared: true})
	monitor.TrackInteraction("art-1", "u2", "tatico", models.InteractionMetrics{Commented: true})
	monitor.TrackInteraction("art-2", "u3", "zoacao", models.InteractionMetrics{})

	dashboard := monitor.Dashboard()
	assert.Equal(t, 3, dashboard.Overview.TotalViews)
	assert.Equal(t, 1, dashboard.Overview.TotalShares)
	assert.Equal(t, 1, dashboard.Overview.TotalComments)

	require.NotEmpty(t, dashboard.TopContent["by_views"])
	assert.Equal(t, "art-1", dashboard.TopContent["by_views"][0].ContentID)

	require.Contains(t, dashboard.StyleComparison, "tatico")
	assert.Equal(t, 2, dashboard.StyleComparison["tatico"].Views)
}
