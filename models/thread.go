package models

import "time"

// ThreadEngagement accumulates reader engagement across a story thread
type ThreadEngagement struct {
	Views    int `json:"views"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
}

// TimelineEntry is one article in a thread's chronological timeline
type TimelineEntry struct {
	Content   interface{} `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

// ThreadData is the API-facing snapshot of a story thread
type ThreadData struct {
	ThreadID     int              `json:"thread_id"`
	Title        string           `json:"title"`
	MainKeywords []string         `json:"main_keywords"`
	ArticleCount int              `json:"article_count"`
	CreatedAt    time.Time        `json:"created_at"`
	LastUpdated  time.Time        `json:"last_updated"`
	Engagement   ThreadEngagement `json:"engagement_stats"`
	Timeline     []TimelineEntry  `json:"timeline"`
}

// ThreadAssignment reports where processed content ended up
type ThreadAssignment struct {
	ThreadID    int        `json:"thread_id"`
	IsNewThread bool       `json:"is_new_thread"`
	Thread      ThreadData `json:"thread_data"`
}
