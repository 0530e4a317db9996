package services

import (
	"fmt"
	"math"

	"futnews-backend/models"
)

// ScoringConfig holds the weight tables used by the content scorer.
// It is built once and never mutated, so alternate tables can be passed
// in for testing without touching package state.
type ScoringConfig struct {
	// Base importance per content type
	NewsImportance map[models.ContentType]float64

	// Engagement tiers, checked high-to-low
	EngagementTiers []EngagementTier

	// Trend scores
	TrendingScore float64
	EngagingScore float64
	NoTrendScore  float64

	// Weights of the final linear formula
	NewsWeight       float64
	EngagementWeight float64
	TrendWeight      float64

	MaxDailyArticles int
	MaxDailySocial   int
}

// EngagementTier maps a minimum engagement count to a score
type EngagementTier struct {
	MinEngagement int
	Score         float64
}

// DefaultScoringConfig returns the production weight tables
func DefaultScoringConfig(maxDailyArticles, maxDailySocial int) ScoringConfig {
	return ScoringConfig{
		NewsImportance: map[models.ContentType]float64{
			models.ContentTypeMatchResult:      10, // Major match results
			models.ContentTypeTransferNews:     8,  // Breaking transfer news
			models.ContentTypeTacticalAnalysis: 6,  // Tactical analysis & previews
			models.ContentTypeTeamUpdate:       4,  // General updates
			models.ContentTypeRumor:            2,  // Minor rumors
		},
		EngagementTiers: []EngagementTier{
			{MinEngagement: 10000, Score: 10},
			{MinEngagement: 1000, Score: 6},
			{MinEngagement: 0, Score: 2},
		},
		TrendingScore:    10,
		EngagingScore:    6,
		NoTrendScore:     2,
		NewsWeight:       0.5,
		EngagementWeight: 0.3,
		TrendWeight:      0.2,
		MaxDailyArticles: maxDailyArticles,
		MaxDailySocial:   maxDailySocial,
	}
}

// timeSlotRanges maps each slot to its start/end hour
var timeSlotRanges = map[models.TimeSlot][2]int{
	models.TimeSlotMorning:   {8, 12},
	models.TimeSlotAfternoon: {12, 18},
	models.TimeSlotEvening:   {18, 23},
}

// optimalTimeSlots maps content types to their preferred publish slot
var optimalTimeSlots = map[models.ContentType]models.TimeSlot{
	models.ContentTypeTacticalAnalysis: models.TimeSlotMorning,
	models.ContentTypeTransferNews:     models.TimeSlotMorning,
	models.ContentTypeTeamUpdate:       models.TimeSlotAfternoon,
	models.ContentTypeMatchResult:      models.TimeSlotEvening,
	models.ContentTypeRumor:            models.TimeSlotAfternoon,
}

// ContentScorer turns raw engagement/type/freshness signals into a 0-10
// score, a publish-type decision and a recommended publish time.
type ContentScorer struct {
	cfg ScoringConfig
}

// NewContentScorer creates a scorer with the given weight tables
func NewContentScorer(cfg ScoringConfig) *ContentScorer {
	return &ContentScorer{cfg: cfg}
}

// EngagementScore maps a raw engagement count onto the tiered score.
// Counts below every tier floor (a negative count from a buggy scraper)
// still get the lowest tier score, keeping the final score in domain.
func (s *ContentScorer) EngagementScore(engagementCount int) float64 {
	for _, tier := range s.cfg.EngagementTiers {
		if engagementCount >= tier.MinEngagement {
			return tier.Score
		}
	}
	return s.cfg.EngagementTiers[len(s.cfg.EngagementTiers)-1].Score
}

// TrendScore maps trending flags onto the trend score
func (s *ContentScorer) TrendScore(isTrending, hasEngagement bool) float64 {
	if isTrending {
		return s.cfg.TrendingScore
	}
	if hasEngagement {
		return s.cfg.EngagingScore
	}
	return s.cfg.NoTrendScore
}

// CalculateContentScore computes the final weighted score, rounded to one
// decimal. Deterministic, no side effects.
func (s *ContentScorer) CalculateContentScore(contentType models.ContentType, engagementCount int, isTrending, hasEngagement bool) (float64, error) {
	newsScore, ok := s.cfg.NewsImportance[contentType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", models.ErrUnknownContentType, contentType)
	}

	engagementScore := s.EngagementScore(engagementCount)
	trendScore := s.TrendScore(isTrending, hasEngagement)

	finalScore := newsScore*s.cfg.NewsWeight +
		engagementScore*s.cfg.EngagementWeight +
		trendScore*s.cfg.TrendWeight

	return math.Round(finalScore*10) / 10, nil
}

// DeterminePublishType routes a score onto the publish-type ladder
func (s *ContentScorer) DeterminePublishType(score float64) models.PublishType {
	switch {
	case score >= 8:
		return models.PublishTypeFullArticle
	case score >= 6:
		return models.PublishTypeSummary
	case score >= 4:
		return models.PublishTypeSocial
	}
	return models.PublishTypeDiscard
}

// OptimalTimeSlot returns the preferred publish slot for a content type.
// Types without an entry default to the afternoon slot.
func (s *ContentScorer) OptimalTimeSlot(contentType models.ContentType) models.TimeSlot {
	if slot, ok := optimalTimeSlots[contentType]; ok {
		return slot
	}
	return models.TimeSlotAfternoon
}

// PublishTime picks the concrete time within a slot: the integer-truncated
// midpoint hour, minute zero. EVENING spans 18-23, so its midpoint is 20,
// not 20.5 rounded up.
func (s *ContentScorer) PublishTime(slot models.TimeSlot) string {
	r, ok := timeSlotRanges[slot]
	if !ok {
		r = timeSlotRanges[models.TimeSlotAfternoon]
	}
	hour := (r[0] + r[1]) / 2
	return fmt.Sprintf("%02d:00", hour)
}

// EvaluateContent is the single entry point used by the scheduler. It
// composes the scoring steps into a full publishing recommendation.
func (s *ContentScorer) EvaluateContent(contentType models.ContentType, engagementCount int, isTrending, hasEngagement bool) (models.Evaluation, error) {
	score, err := s.CalculateContentScore(contentType, engagementCount, isTrending, hasEngagement)
	if err != nil {
		return models.Evaluation{}, err
	}

	publishType := s.DeterminePublishType(score)
	timeSlot := s.OptimalTimeSlot(contentType)
	publishTime := s.PublishTime(timeSlot)

	priority := "low"
	if score >= 8 {
		priority = "high"
	} else if score >= 6 {
		priority = "medium"
	}

	return models.Evaluation{
		Score:       score,
		PublishType: publishType,
		TimeSlot:    timeSlot,
		PublishTime: publishTime,
		Recommendation: models.Recommendation{
			ShouldPublish: publishType != models.PublishTypeDiscard,
			Format:        string(publishType),
			Priority:      priority,
		},
	}, nil
}

// CalculateDailyVolume recommends how many articles/posts to generate for
// the day, capped at the configured maximum. Used for capacity planning,
// not for gating individual items.
func (s *ContentScorer) CalculateDailyVolume(contentVolume int, engagementScore, trendScore float64, timeSensitivity int) int {
	score := (float64(contentVolume)*0.4 +
		engagementScore*0.3 +
		trendScore*0.2 +
		float64(timeSensitivity)*0.1) / 10

	volume := int(math.Ceil(score))
	if volume > s.cfg.MaxDailyArticles {
		return s.cfg.MaxDailyArticles
	}
	return volume
}
