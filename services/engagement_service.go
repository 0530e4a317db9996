package services

import (
	"fmt"
	"log"
	"time"

	"futnews-backend/models"

	"gorm.io/gorm"
)

// EngagementService records post-publication reader interactions. Events
// update the article's engagement counters, feed the in-process
// performance monitor, and, when tagged with an A/B test variant, feed
// the experiment telemetry.
type EngagementService struct {
	db      *gorm.DB
	abTests *ABTestManager
	monitor *PerformanceMonitor
}

// NewEngagementService creates an engagement service instance
func NewEngagementService(db *gorm.DB, abTests *ABTestManager, monitor *PerformanceMonitor) *EngagementService {
	return &EngagementService{db: db, abTests: abTests, monitor: monitor}
}

// RecordEvent persists a user interaction and updates the counters
func (s *EngagementService) RecordEvent(event models.UserEvent) error {
	switch event.EventType {
	case models.EventTypeView, models.EventTypeClick, models.EventTypeShare, models.EventTypeComment:
	default:
		return fmt.Errorf("invalid event type: %s", event.EventType)
	}

	event.Timestamp = time.Now()
	if err := s.db.Create(&event).Error; err != nil {
		return fmt.Errorf("failed to record user event: %w", err)
	}

	s.bumpArticleCounter(event.ArticleID, event.EventType)

	s.monitor.TrackInteraction(event.ArticleID, event.UserID, s.articleStyle(event.ArticleID), models.InteractionMetrics{
		TimeSpent:      event.TimeSpent,
		Bounced:        event.Bounced,
		Shared:         event.EventType == models.EventTypeShare,
		Commented:      event.EventType == models.EventTypeComment,
		SocialPlatform: event.SocialPlatform,
	})

	// Forward to the experiment, if the impression was part of one.
	// Completed or unknown tests just drop the event.
	if event.TestName != "" && event.Variant != "" {
		metrics := models.VariantMetrics{TimeSpent: event.TimeSpent}
		switch event.EventType {
		case models.EventTypeClick:
			metrics.Clicks = 1
		case models.EventTypeShare:
			metrics.Shares = 1
		case models.EventTypeComment:
			metrics.Comments = 1
		}
		if _, err := s.abTests.RecordResult(event.TestName, event.Variant, metrics); err != nil {
			log.Printf("A/B telemetry dropped for test %q: %v", event.TestName, err)
		}
	}

	return nil
}

// articleStyle looks up the author style the article was written in, so
// the monitor can compare styles. Unknown articles track style-less.
func (s *EngagementService) articleStyle(articleID string) string {
	var styles []string
	err := s.db.Model(&models.Article{}).
		Where("id = ?", articleID).
		Limit(1).
		Pluck("author_style", &styles).Error
	if err != nil || len(styles) == 0 {
		return ""
	}
	return styles[0]
}

func (s *EngagementService) bumpArticleCounter(articleID, eventType string) {
	column := map[string]string{
		models.EventTypeView:    "views_count",
		models.EventTypeClick:   "likes_count",
		models.EventTypeShare:   "shares_count",
		models.EventTypeComment: "comments_count",
	}[eventType]

	err := s.db.Model(&models.Article{}).
		Where("id = ?", articleID).
		UpdateColumn(column, gorm.Expr(column+" + 1")).Error
	if err != nil {
		log.Printf("Failed to bump %s for article %s: %v", column, articleID, err)
	}
}

// GetEventStats returns statistics about recorded user events
func (s *EngagementService) GetEventStats() (map[string]interface{}, error) {
	var totalEvents, uniqueArticles, uniqueUsers int64

	s.db.Model(&models.UserEvent{}).Count(&totalEvents)
	s.db.Model(&models.UserEvent{}).Distinct("article_id").Count(&uniqueArticles)
	s.db.Model(&models.UserEvent{}).Distinct("user_id").Count(&uniqueUsers)

	counts := map[string]int64{}
	weightedEngagement := 0.0
	for _, eventType := range []string{
		models.EventTypeView, models.EventTypeClick, models.EventTypeShare, models.EventTypeComment,
	} {
		var c int64
		s.db.Model(&models.UserEvent{}).Where("event_type = ?", eventType).Count(&c)
		counts[eventType+"s"] = c
		weightedEngagement += float64(c) * models.GetEventWeight(eventType)
	}

	stats := map[string]interface{}{
		"total_events":     totalEvents,
		"unique_articles":  uniqueArticles,
		"unique_users":     uniqueUsers,
		"engagement_score": weightedEngagement,
	}
	for k, v := range counts {
		stats[k] = v
	}
	return stats, nil
}
