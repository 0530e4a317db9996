package services

import (
	"testing"
	"time"

	"futnews-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScheduler(maxArticles, maxSocial int) *ContentScheduler {
	scorer := NewContentScorer(DefaultScoringConfig(maxArticles, maxSocial))
	return NewContentScheduler(scorer, maxArticles, maxSocial)
}

func TestPublishQueue_Ordering(t *testing.T) {
	queue := NewPublishQueue()
	base := time.Now()

	// Pushed with increasing created_at; the two 9s must drain in push order
	scores := []float64{5, 9, 9, 3}
	for i, score := range scores {
		queue.Add(&models.ContentItem{
			Content:     i,
			Score:       score,
			PublishType: models.PublishTypeFullArticle,
			CreatedAt:   base.Add(time.Duration(i) * time.Millisecond),
		})
	}

	var drained []float64
	var contents []interface{}
	for item := queue.NextArticle(); item != nil; item = queue.NextArticle() {
		drained = append(drained, item.Score)
		contents = append(contents, item.Content)
	}

	assert.Equal(t, []float64{9, 9, 5, 3}, drained)
	// FIFO tie-break: item 1 before item 2
	assert.Equal(t, []interface{}{1, 2, 0, 3}, contents)
}

func TestPublishQueue_FIFOTieBreakOnEqualTimestamps(t *testing.T) {
	queue := NewPublishQueue()
	now := time.Now()

	for i := 0; i < 5; i++ {
		queue.Add(&models.ContentItem{
			Content:     i,
			Score:       8.0,
			PublishType: models.PublishTypeSummary,
			CreatedAt:   now, // identical timestamps
		})
	}

	for i := 0; i < 5; i++ {
		item := queue.NextSummary()
		require.NotNil(t, item)
		assert.Equal(t, i, item.Content, "push order must survive equal scores and timestamps")
	}
}

func TestPublishQueue_DiscardNeverEnqueued(t *testing.T) {
	queue := NewPublishQueue()
	queue.Add(&models.ContentItem{Score: 2, PublishType: models.PublishTypeDiscard})

	articles, summaries, social := queue.Pending()
	assert.Zero(t, articles+summaries+social)
}

func TestScheduleContent_Success(t *testing.T) {
	scheduler := newTestScheduler(10, 5)

	// Transfer news scoring 7.0 lands in the summaries queue
	result, err := scheduler.ScheduleContent("article payload", models.ContentTypeTransferNews, 1500, false, true)
	require.NoError(t, err)

	assert.True(t, result.Scheduled)
	assert.Equal(t, "10:00", result.PublishTime)
	assert.Equal(t, models.ContentTypeTransferNews, result.ContentType)
	assert.Equal(t, models.PublishTypeSummary, result.PublishType)
	assert.Equal(t, 7.0, result.Score)
	assert.Equal(t, "medium", result.Priority)

	stats := scheduler.GetDailyStats()
	assert.Equal(t, 1, stats.SummariesPublished)
	assert.Equal(t, 9, stats.SummariesRemaining)
}

func TestScheduleContent_DiscardRejected(t *testing.T) {
	scheduler := newTestScheduler(10, 5)

	result, err := scheduler.ScheduleContent("weak rumor", models.ContentTypeRumor, 0, false, false)
	require.NoError(t, err)

	assert.False(t, result.Scheduled)
	assert.NotEmpty(t, result.Reason)
	require.NotNil(t, result.Evaluation)
	assert.False(t, result.Evaluation.Recommendation.ShouldPublish)

	// Nothing queued, nothing counted
	schedule := scheduler.GetPublishingSchedule()
	assert.Empty(t, schedule.Articles)
	assert.Empty(t, schedule.Summaries)
	assert.Empty(t, schedule.Social)
}

func TestScheduleContent_UnknownTypeFailsFast(t *testing.T) {
	scheduler := newTestScheduler(10, 5)

	_, err := scheduler.ScheduleContent("payload", models.ContentType("gossip"), 100, false, false)
	assert.ErrorIs(t, err, models.ErrUnknownContentType)
}

func TestDailyQuotaEnforcement(t *testing.T) {
	scheduler := newTestScheduler(2, 5)

	day := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	scheduler.now = func() time.Time { return day }
	scheduler.stats.date = scheduler.today()

	// Match results score 10.0: full articles
	for i := 0; i < 2; i++ {
		result, err := scheduler.ScheduleContent(i, models.ContentTypeMatchResult, 15000, true, true)
		require.NoError(t, err)
		require.True(t, result.Scheduled, "submission %d should fit the quota", i)
	}

	// Third submission on the same day hits the cap and is dropped
	result, err := scheduler.ScheduleContent(2, models.ContentTypeMatchResult, 15000, true, true)
	require.NoError(t, err)
	assert.False(t, result.Scheduled)
	assert.Contains(t, result.Reason, "Daily limit reached")
	require.NotNil(t, result.Evaluation)

	// After the calendar date rolls over, the same submission succeeds
	scheduler.now = func() time.Time { return day.AddDate(0, 0, 1) }
	result, err = scheduler.ScheduleContent(3, models.ContentTypeMatchResult, 15000, true, true)
	require.NoError(t, err)
	assert.True(t, result.Scheduled)

	stats := scheduler.GetDailyStats()
	assert.Equal(t, 1, stats.ArticlesPublished, "counters reset on rollover")
}

func TestSocialQuotaIndependent(t *testing.T) {
	scheduler := newTestScheduler(10, 1)

	// Team update with 1000 engagement scores 4*0.5 + 6*0.3 + 6*0.2 = 5.0,
	// which lands in the social bucket
	result, err := scheduler.ScheduleContent("post", models.ContentTypeTeamUpdate, 1000, false, true)
	require.NoError(t, err)
	require.True(t, result.Scheduled)
	require.Equal(t, models.PublishTypeSocial, result.PublishType)

	result, err = scheduler.ScheduleContent("post2", models.ContentTypeTeamUpdate, 1000, false, true)
	require.NoError(t, err)
	assert.False(t, result.Scheduled, "social cap of 1 reached")

	// Articles are unaffected by the social cap
	result, err = scheduler.ScheduleContent("big", models.ContentTypeMatchResult, 15000, true, true)
	require.NoError(t, err)
	assert.True(t, result.Scheduled)
}

func TestGetPublishingSchedule_DrainIsDestructive(t *testing.T) {
	scheduler := newTestScheduler(10, 5)

	_, err := scheduler.ScheduleContent("a", models.ContentTypeMatchResult, 15000, true, true)
	require.NoError(t, err)
	_, err = scheduler.ScheduleContent("b", models.ContentTypeTransferNews, 1500, false, true)
	require.NoError(t, err)

	first := scheduler.GetPublishingSchedule()
	assert.Len(t, first.Articles, 1)
	assert.Len(t, first.Summaries, 1)
	assert.Equal(t, "20:00", first.Articles[0].Time)
	assert.Equal(t, 10.0, first.Articles[0].Score)

	// The read consumed the queues
	second := scheduler.GetPublishingSchedule()
	assert.Empty(t, second.Articles)
	assert.Empty(t, second.Summaries)
	assert.Empty(t, second.Social)

	// Daily counters are unaffected by draining
	stats := scheduler.GetDailyStats()
	assert.Equal(t, 1, stats.ArticlesPublished)
	assert.Equal(t, 1, stats.SummariesPublished)
}
