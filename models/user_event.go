package models

import (
	"time"
)

// UserEvent represents a reader interaction with a published article
type UserEvent struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ArticleID      string    `gorm:"index:idx_article_events" json:"article_id"`
	UserID         string    `gorm:"index:idx_user_events" json:"user_id"`
	EventType      string    `gorm:"index:idx_event_type" json:"event_type"` // "view", "click", "share", "comment"
	TestName       string    `json:"test_name,omitempty"`                    // A/B test the impression belongs to, if any
	Variant        string    `json:"variant,omitempty"`
	TimeSpent      float64   `json:"time_spent,omitempty"`      // seconds on page
	Bounced        bool      `json:"bounced,omitempty"`         // left without further interaction
	SocialPlatform string    `json:"social_platform,omitempty"` // platform a share happened on
	Timestamp      time.Time `gorm:"index:idx_timestamp" json:"timestamp"`
}

// EventType constants
const (
	EventTypeView    = "view"
	EventTypeClick   = "click"
	EventTypeShare   = "share"
	EventTypeComment = "comment"
)

// GetEventWeight returns the engagement weight for an event type
func GetEventWeight(eventType string) float64 {
	switch eventType {
	case EventTypeView:
		return 1.0
	case EventTypeClick:
		return 2.0
	case EventTypeShare:
		return 3.0
	case EventTypeComment:
		return 3.0
	default:
		return 1.0
	}
}
