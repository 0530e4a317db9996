package services

import (
	"math"
	"sort"
	"sync"
	"time"

	"futnews-backend/models"
	"futnews-backend/utils"
)

// contentCounters accumulates raw interaction data for one piece of
// content or one author style.
type contentCounters struct {
	views          int
	visitors       map[string]bool
	shares         int
	comments       int
	bounces        int
	totalTimeSpent float64
	social         map[string]int
}

func newContentCounters() *contentCounters {
	return &contentCounters{
		visitors: map[string]bool{},
		social:   map[string]int{},
	}
}

func (c *contentCounters) update(userID string, m models.InteractionMetrics) {
	c.views++
	c.visitors[userID] = true
	if m.Bounced {
		c.bounces++
	}
	if m.Shared {
		c.shares++
	}
	if m.Commented {
		c.comments++
	}
	if m.SocialPlatform != "" {
		c.social[m.SocialPlatform]++
	}
	c.totalTimeSpent += m.TimeSpent
}

func (c *contentCounters) snapshot() models.ContentPerformance {
	avg := 0.0
	bounceRate := 0.0
	if c.views > 0 {
		avg = c.totalTimeSpent / float64(c.views)
		bounceRate = float64(c.bounces) / float64(c.views)
	}

	social := make(map[string]int, len(c.social))
	for platform, count := range c.social {
		social[platform] = count
	}

	return models.ContentPerformance{
		Views:          c.views,
		UniqueVisitors: len(c.visitors),
		Shares:         c.shares,
		Comments:       c.comments,
		AvgTimeSpent:   round2(avg),
		TotalTimeSpent: round2(c.totalTimeSpent),
		BounceRate:     round2(bounceRate * 100),
		Social:         social,
	}
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// PerformanceMonitor keeps in-process interaction metrics per content ID,
// per author style, and per day/hour, with a rolling retention window.
// It complements the persisted user_events table with cheap aggregate
// reads for the dashboard.
type PerformanceMonitor struct {
	mu        sync.Mutex
	content   map[string]*contentCounters
	styles    map[string]*contentCounters
	daily     map[string]*models.PeriodCounts // "YYYY-MM-DD"
	hourly    map[string]*models.PeriodCounts // "YYYY-MM-DD HH:00"
	retention time.Duration

	// now is swappable for retention tests
	now func() time.Time
}

// NewPerformanceMonitor creates a monitor with the given retention window
func NewPerformanceMonitor(retention time.Duration) *PerformanceMonitor {
	return &PerformanceMonitor{
		content:   map[string]*contentCounters{},
		styles:    map[string]*contentCounters{},
		daily:     map[string]*models.PeriodCounts{},
		hourly:    map[string]*models.PeriodCounts{},
		retention: retention,
		now:       time.Now,
	}
}

// TrackInteraction records one reader interaction against the content,
// its author style, and the daily/hourly counters.
func (p *PerformanceMonitor) TrackInteraction(contentID, userID, style string, m models.InteractionMetrics) {
	p.mu.Lock()
	defer p.mu.Unlock()

	counters, ok := p.content[contentID]
	if !ok {
		counters = newContentCounters()
		p.content[contentID] = counters
	}
	counters.update(userID, m)

	if style != "" {
		styleCounters, ok := p.styles[style]
		if !ok {
			styleCounters = newContentCounters()
			p.styles[style] = styleCounters
		}
		styleCounters.update(userID, m)
	}

	now := p.now()
	p.bumpPeriod(p.daily, now.Format("2006-01-02"), m)
	p.bumpPeriod(p.hourly, now.Format("2006-01-02 15:00"), m)
}

func (p *PerformanceMonitor) bumpPeriod(periods map[string]*models.PeriodCounts, key string, m models.InteractionMetrics) {
	counts, ok := periods[key]
	if !ok {
		counts = &models.PeriodCounts{}
		periods[key] = counts
	}
	counts.Views++
	if m.Shared {
		counts.Shares++
	}
	if m.Commented {
		counts.Comments++
	}
}

// cleanupLocked drops period buckets older than the retention window.
// Caller holds the mutex.
func (p *PerformanceMonitor) cleanupLocked() {
	cutoff := p.now().Add(-p.retention)

	for date := range p.daily {
		if day, err := time.ParseInLocation("2006-01-02", date, time.Local); err == nil && day.Before(cutoff) {
			delete(p.daily, date)
		}
	}
	for hour := range p.hourly {
		if h, err := time.ParseInLocation("2006-01-02 15:00", hour, time.Local); err == nil && h.Before(cutoff) {
			delete(p.hourly, hour)
		}
	}
}

// ContentPerformance returns the metrics snapshot for one piece of content
func (p *PerformanceMonitor) ContentPerformance(contentID string) (models.ContentPerformance, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	counters, ok := p.content[contentID]
	if !ok {
		return models.ContentPerformance{}, false
	}
	return counters.snapshot(), true
}

// StyleComparison returns the metrics snapshot per author style
func (p *PerformanceMonitor) StyleComparison() map[string]models.ContentPerformance {
	p.mu.Lock()
	defer p.mu.Unlock()

	comparison := make(map[string]models.ContentPerformance, len(p.styles))
	for style, counters := range p.styles {
		comparison[style] = counters.snapshot()
	}
	return comparison
}

// DailySummary returns the most recent daily counters, at most days entries
func (p *PerformanceMonitor) DailySummary(days int) map[string]models.PeriodCounts {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cleanupLocked()
	return lastPeriods(p.daily, days)
}

// HourlySummary returns the most recent hourly counters, at most hours entries
func (p *PerformanceMonitor) HourlySummary(hours int) map[string]models.PeriodCounts {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.cleanupLocked()
	return lastPeriods(p.hourly, hours)
}

func lastPeriods(periods map[string]*models.PeriodCounts, n int) map[string]models.PeriodCounts {
	keys := make([]string, 0, len(periods))
	for key := range periods {
		keys = append(keys, key)
	}
	// Period keys sort chronologically as strings
	sort.Strings(keys)

	if len(keys) > n {
		keys = keys[len(keys)-n:]
	}

	out := make(map[string]models.PeriodCounts, len(keys))
	for _, key := range keys {
		out[key] = *periods[key]
	}
	return out
}

// TopContent ranks content by one of the counter metrics, best first
func (p *PerformanceMonitor) TopContent(metric string, limit int) []models.ContentRank {
	p.mu.Lock()
	defer p.mu.Unlock()

	ranks := []models.ContentRank{}
	for contentID, counters := range p.content {
		var value int
		switch metric {
		case "views":
			value = counters.views
		case "shares":
			value = counters.shares
		case "comments":
			value = counters.comments
		default:
			continue
		}
		ranks = append(ranks, models.ContentRank{ContentID: contentID, Metric: metric, Value: value})
	}

	// Map iteration order is random; rank by value desc, ID asc on ties
	// for a stable listing.
	sort.Slice(ranks, func(i, j int) bool {
		if ranks[i].Value == ranks[j].Value {
			return ranks[i].ContentID < ranks[j].ContentID
		}
		return ranks[i].Value > ranks[j].Value
	})
	return utils.TopN(ranks, limit)
}

// Dashboard assembles the aggregate dashboard payload
func (p *PerformanceMonitor) Dashboard() models.PerformanceDashboard {
	daily := p.DailySummary(7)
	hourly := p.HourlySummary(24)

	overview := models.PerformanceOverview{}
	for _, counts := range daily {
		overview.TotalViews += counts.Views
		overview.TotalShares += counts.Shares
		overview.TotalComments += counts.Comments
	}

	return models.PerformanceDashboard{
		Overview:      overview,
		DailySummary:  daily,
		HourlySummary: hourly,
		TopContent: map[string][]models.ContentRank{
			"by_views":    p.TopContent("views", 10),
			"by_shares":   p.TopContent("shares", 10),
			"by_comments": p.TopContent("comments", 10),
		},
		StyleComparison: p.StyleComparison(),
	}
}
