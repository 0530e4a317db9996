package models

import (
	"time"
)

// ArticleStatus lifecycle values
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// AuthorStyle values used by the AI writer
const (
	AuthorStyleNarracao = "narracao" // Narration style
	AuthorStyleTatico   = "tatico"   // Tactical analysis style
	AuthorStyleZoacao   = "zoacao"   // Humorous style
)

// Article is a generated news article in the database
type Article struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Slug            string    `gorm:"uniqueIndex:idx_slug" json:"slug"`
	Title           string    `gorm:"index:idx_title" json:"title"`
	Content         string    `json:"content"`
	Summary         string    `json:"summary"`
	Category        string    `gorm:"index:idx_category" json:"category"`
	AuthorName      string    `json:"author_name"`
	AuthorStyle     string    `json:"author_style"`
	SourceURL       string    `json:"source_url,omitempty"`
	SourceType      string    `json:"source_type,omitempty"`
	Status          string    `gorm:"index:idx_status" json:"status"`
	MetaDescription string    `json:"meta_description,omitempty"`
	MetaKeywords    string    `json:"meta_keywords,omitempty"`
	TeamTags        string    `json:"team_tags,omitempty"`   // comma-separated
	PlayerTags      string    `json:"player_tags,omitempty"` // comma-separated
	IsFeatured      bool      `json:"is_featured"`
	IsTrending      bool      `json:"is_trending"`
	LikesCount      int       `json:"likes_count"`
	CommentsCount   int       `json:"comments_count"`
	SharesCount     int       `json:"shares_count"`
	ViewsCount      int       `json:"views_count"`
	CreatedAt       time.Time `gorm:"index:idx_created" json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PublishedAt     time.Time `json:"published_at,omitempty"`
}

// ArticleResponse is the API-facing shape of an article
type ArticleResponse struct {
	Slug          string    `json:"slug"`
	Title         string    `json:"title"`
	Content       string    `json:"content,omitempty"`
	Summary       string    `json:"summary"`
	Category      string    `json:"category"`
	AuthorName    string    `json:"author_name"`
	AuthorStyle   string    `json:"author_style"`
	Status        string    `json:"status"`
	SourceType    string    `json:"source_type,omitempty"`
	IsTrending    bool      `json:"is_trending"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	SharesCount   int       `json:"shares_count"`
	ViewsCount    int       `json:"views_count"`
	PublishedAt   time.Time `json:"published_at,omitempty"`
}

// ToResponse converts an Article to ArticleResponse
func (a *Article) ToResponse() ArticleResponse {
	return ArticleResponse{
		Slug:          a.Slug,
		Title:         a.Title,
		Content:       a.Content,
		Summary:       a.Summary,
		Category:      a.Category,
		AuthorName:    a.AuthorName,
		AuthorStyle:   a.AuthorStyle,
		Status:        a.Status,
		SourceType:    a.SourceType,
		IsTrending:    a.IsTrending,
		LikesCount:    a.LikesCount,
		CommentsCount: a.CommentsCount,
		SharesCount:   a.SharesCount,
		ViewsCount:    a.ViewsCount,
		PublishedAt:   a.PublishedAt,
	}
}

// GeneratedArticle is the AI writer's output before persistence
type GeneratedArticle struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	Content         string `json:"content"`
	Summary         string `json:"summary"`
	Category        string `json:"category"`
	AuthorName      string `json:"author_name"`
	AuthorStyle     string `json:"author_style"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
}

// ArticleListResponse wraps a paginated article listing
type ArticleListResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PageSize int               `json:"page_size"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
