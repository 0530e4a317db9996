package services

import (
	"sync"
	"time"

	"futnews-backend/models"
)

type dailyStats struct {
	articles  int
	summaries int
	social    int
	date      string // "YYYY-MM-DD"
}

// ContentScheduler wraps the scorer with daily per-type publish quotas and
// the publishing queues. All methods are safe for concurrent use; the HTTP
// layer and the pipeline loop both drive it.
type ContentScheduler struct {
	mu     sync.Mutex
	scorer *ContentScorer
	queue  *PublishQueue
	stats  dailyStats

	maxDailyArticles int
	maxDailySocial   int

	// now is swappable so tests can simulate a date rollover
	now func() time.Time
}

// NewContentScheduler creates a scheduler with fresh queues and zeroed
// daily stats for today.
func NewContentScheduler(scorer *ContentScorer, maxDailyArticles, maxDailySocial int) *ContentScheduler {
	s := &ContentScheduler{
		scorer:           scorer,
		queue:            NewPublishQueue(),
		maxDailyArticles: maxDailyArticles,
		maxDailySocial:   maxDailySocial,
		now:              time.Now,
	}
	s.stats.date = s.today()
	return s
}

func (s *ContentScheduler) today() string {
	return s.now().Format("2006-01-02")
}

// resetDailyStatsLocked zeroes the counters once the calendar date has
// advanced past the stored one. Caller must hold the mutex.
func (s *ContentScheduler) resetDailyStatsLocked() {
	today := s.today()
	if s.stats.date != today {
		s.stats = dailyStats{date: today}
	}
}

// CanPublishMore reports whether another item of the given publish type
// fits into today's quota. Full articles and summaries share the article
// cap; social posts have their own. Any other publish type has no quota
// entry and is never publishable.
func (s *ContentScheduler) CanPublishMore(publishType models.PublishType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canPublishMoreLocked(publishType)
}

func (s *ContentScheduler) canPublishMoreLocked(publishType models.PublishType) bool {
	s.resetDailyStatsLocked()

	switch publishType {
	case models.PublishTypeFullArticle:
		return s.stats.articles < s.maxDailyArticles
	case models.PublishTypeSummary:
		return s.stats.summaries < s.maxDailyArticles
	case models.PublishTypeSocial:
		return s.stats.social < s.maxDailySocial
	}
	return false
}

// ScheduleContent evaluates content and, if today's quota allows, enqueues
// it for publication. A rejected item is dropped, not retried; the caller
// decides whether to resubmit. An unknown content type is a configuration
// error and returned as such.
func (s *ContentScheduler) ScheduleContent(content interface{}, contentType models.ContentType, engagementCount int, isTrending, hasEngagement bool) (models.ScheduleResult, error) {
	evaluation, err := s.scorer.EvaluateContent(contentType, engagementCount, isTrending, hasEngagement)
	if err != nil {
		return models.ScheduleResult{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// DISCARD has no quota entry, so it fails this check and is dropped.
	if !s.canPublishMoreLocked(evaluation.PublishType) {
		return models.ScheduleResult{
			Scheduled:  false,
			Reason:     "Daily limit reached for this content type",
			Evaluation: &evaluation,
		}, nil
	}

	item := &models.ContentItem{
		Content:     content,
		Score:       evaluation.Score,
		PublishTime: evaluation.PublishTime,
		PublishType: evaluation.PublishType,
		CreatedAt:   s.now(),
	}
	s.queue.Add(item)

	switch evaluation.PublishType {
	case models.PublishTypeFullArticle:
		s.stats.articles++
	case models.PublishTypeSummary:
		s.stats.summaries++
	case models.PublishTypeSocial:
		s.stats.social++
	}

	return models.ScheduleResult{
		Scheduled:   true,
		PublishTime: evaluation.PublishTime,
		ContentType: contentType,
		PublishType: evaluation.PublishType,
		Score:       evaluation.Score,
		Priority:    evaluation.Recommendation.Priority,
	}, nil
}

// GetPublishingSchedule drains all three queues in priority order and
// returns their contents.
//
// This is a consuming read: the queues are empty afterwards, and a second
// call returns an empty schedule. Callers polling for display should use
// a single consumer that owns the drained snapshot.
func (s *ContentScheduler) GetPublishingSchedule() models.PublishingSchedule {
	s.mu.Lock()
	defer s.mu.Unlock()

	schedule := models.PublishingSchedule{
		Articles:  []models.ScheduledEntry{},
		Summaries: []models.ScheduledEntry{},
		Social:    []models.ScheduledEntry{},
	}

	for item := s.queue.NextArticle(); item != nil; item = s.queue.NextArticle() {
		schedule.Articles = append(schedule.Articles, entryFromItem(item))
	}
	for item := s.queue.NextSummary(); item != nil; item = s.queue.NextSummary() {
		schedule.Summaries = append(schedule.Summaries, entryFromItem(item))
	}
	for item := s.queue.NextSocial(); item != nil; item = s.queue.NextSocial() {
		schedule.Social = append(schedule.Social, entryFromItem(item))
	}

	return schedule
}

// GetDailyStats reports today's published and remaining counts per type
func (s *ContentScheduler) GetDailyStats() models.DailyStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.resetDailyStatsLocked()

	return models.DailyStats{
		Date:               s.stats.date,
		ArticlesPublished:  s.stats.articles,
		ArticlesRemaining:  s.maxDailyArticles - s.stats.articles,
		SummariesPublished: s.stats.summaries,
		SummariesRemaining: s.maxDailyArticles - s.stats.summaries,
		SocialPublished:    s.stats.social,
		SocialRemaining:    s.maxDailySocial - s.stats.social,
	}
}

func entryFromItem(item *models.ContentItem) models.ScheduledEntry {
	return models.ScheduledEntry{
		Time:    item.PublishTime,
		Score:   item.Score,
		Content: item.Content,
	}
}
