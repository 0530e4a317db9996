package models

import (
	"errors"
	"fmt"
	"time"
)

// ContentType classifies a scraped item before scoring
type ContentType string

const (
	ContentTypeMatchResult      ContentType = "match_result"
	ContentTypeTransferNews     ContentType = "transfer_news"
	ContentTypeTacticalAnalysis ContentType = "tactical_analysis"
	ContentTypeTeamUpdate       ContentType = "team_update"
	ContentTypeRumor            ContentType = "rumor"
)

// PublishType is the bucket a scored item is routed to
type PublishType string

const (
	PublishTypeFullArticle PublishType = "full_article" // Score 8-10
	PublishTypeSummary     PublishType = "summary"      // Score 6-7.9
	PublishTypeSocial      PublishType = "social"       // Score 4-5.9
	PublishTypeDiscard     PublishType = "discard"      // Score < 4
)

// TimeSlot is the coarse part-of-day window used to pick a publish time
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"   // 8AM - 12PM
	TimeSlotAfternoon TimeSlot = "afternoon" // 12PM - 6PM
	TimeSlotEvening   TimeSlot = "evening"   // 6PM - 12AM
)

// ErrUnknownContentType is returned when a content type has no configured
// importance weight. Misconfiguration fails loud instead of defaulting.
var ErrUnknownContentType = errors.New("unknown content type")

// ParseContentType validates a raw content type string from a collaborator
func ParseContentType(s string) (ContentType, error) {
	switch ContentType(s) {
	case ContentTypeMatchResult, ContentTypeTransferNews, ContentTypeTacticalAnalysis,
		ContentTypeTeamUpdate, ContentTypeRumor:
		return ContentType(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownContentType, s)
}

// SourceItem is a raw item handed over by a scraping collaborator
type SourceItem struct {
	Title           string `json:"title"`
	Content         string `json:"content"`
	ContentType     string `json:"content_type"`
	Source          string `json:"source"`
	SourceType      string `json:"source_type"`
	URL             string `json:"url"`
	ScrapedAt       string `json:"scraped_at"` // ISO-8601
	EngagementCount int    `json:"engagement_count"`
	IsTrending      bool   `json:"is_trending"`
	HasEngagement   bool   `json:"has_engagement"`
}

// Recommendation is the publish advice attached to an evaluation
type Recommendation struct {
	ShouldPublish bool   `json:"should_publish"`
	Format        string `json:"format"`
	Priority      string `json:"priority"` // "high", "medium", "low"
}

// Evaluation is the scorer's full verdict on a piece of content
type Evaluation struct {
	Score          float64        `json:"score"`
	PublishType    PublishType    `json:"publish_type"`
	TimeSlot       TimeSlot       `json:"time_slot"`
	PublishTime    string         `json:"publish_time"` // "HH:MM"
	Recommendation Recommendation `json:"recommendation"`
}

// ScheduleResult is returned by the scheduler for every submission
type ScheduleResult struct {
	Scheduled   bool        `json:"scheduled"`
	Reason      string      `json:"reason,omitempty"`
	Evaluation  *Evaluation `json:"evaluation,omitempty"`
	PublishTime string      `json:"publish_time,omitempty"`
	ContentType ContentType `json:"content_type,omitempty"`
	PublishType PublishType `json:"publish_type,omitempty"`
	Score       float64     `json:"score,omitempty"`
	Priority    string      `json:"priority,omitempty"`
}

// ContentItem is a queued, scored piece of content awaiting publication.
// Ordering is total: higher score first, earlier creation first on ties.
type ContentItem struct {
	Content     interface{} `json:"content"`
	Score       float64     `json:"score"`
	PublishTime string      `json:"publish_time"`
	PublishType PublishType `json:"publish_type"`
	CreatedAt   time.Time   `json:"created_at"`

	// Seq preserves push order when CreatedAt collides at nanosecond
	// resolution; assigned by the queue.
	Seq uint64 `json:"-"`
}

// Less reports whether i has strictly higher publish priority than other
func (i *ContentItem) Less(other *ContentItem) bool {
	if i.Score == other.Score {
		if i.CreatedAt.Equal(other.CreatedAt) {
			return i.Seq < other.Seq
		}
		return i.CreatedAt.Before(other.CreatedAt)
	}
	return i.Score > other.Score
}

// ScheduledEntry is one drained queue entry as exposed to the API layer
type ScheduledEntry struct {
	Time    string      `json:"time"` // "HH:MM"
	Score   float64     `json:"score"`
	Content interface{} `json:"content"`
}

// PublishingSchedule is the full drained schedule, one list per publish type
type PublishingSchedule struct {
	Articles  []ScheduledEntry `json:"articles"`
	Summaries []ScheduledEntry `json:"summaries"`
	Social    []ScheduledEntry `json:"social"`
}

// DailyStats reports today's published/remaining counts per publish type
type DailyStats struct {
	Date               string `json:"date"` // "YYYY-MM-DD"
	ArticlesPublished  int    `json:"articles_published"`
	ArticlesRemaining  int    `json:"articles_remaining"`
	SummariesPublished int    `json:"summaries_published"`
	SummariesRemaining int    `json:"summaries_remaining"`
	SocialPublished    int    `json:"social_published"`
	SocialRemaining    int    `json:"social_remaining"`
}
