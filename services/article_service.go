package services

import (
	"fmt"
	"time"

	"futnews-backend/models"

	"gorm.io/gorm"
)

// ArticleService exposes the persisted articles to the API layer
type ArticleService struct {
	db *gorm.DB
}

// NewArticleService creates an article service instance
func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

// ListParams filters and paginates an article listing
type ListParams struct {
	Category string
	Status   string
	Page     int
	PageSize int
}

// ListArticles returns published articles, newest first
func (s *ArticleService) ListArticles(params ListParams) (models.ArticleListResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 || params.PageSize > 100 {
		params.PageSize = 20
	}
	if params.Status == "" {
		params.Status = models.ArticleStatusPublished
	}

	query := s.db.Model(&models.Article{}).Where("status = ?", params.Status)
	if params.Category != "" {
		query = query.Where("category = ?", params.Category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return models.ArticleListResponse{}, fmt.Errorf("failed to count articles: %w", err)
	}

	var articles []models.Article
	err := query.
		Order("published_at DESC").
		Offset((params.Page - 1) * params.PageSize).
		Limit(params.PageSize).
		Find(&articles).Error
	if err != nil {
		return models.ArticleListResponse{}, fmt.Errorf("failed to list articles: %w", err)
	}

	responses := make([]models.ArticleResponse, len(articles))
	for i := range articles {
		responses[i] = articles[i].ToResponse()
		responses[i].Content = "" // listing omits full bodies
	}

	return models.ArticleListResponse{
		Articles: responses,
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

// GetBySlug returns a single article by its slug
func (s *ArticleService) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	if err := s.db.Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, fmt.Errorf("article not found: %w", err)
	}
	return &article, nil
}

// ListCategories returns the distinct categories of published articles
func (s *ArticleService) ListCategories() ([]string, error) {
	var categories []string
	err := s.db.Model(&models.Article{}).
		Where("status = ?", models.ArticleStatusPublished).
		Distinct("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// GetArticleStats returns statistics about the article database
func (s *ArticleService) GetArticleStats() (map[string]interface{}, error) {
	var totalCount, publishedCount int64
	var categories []string

	s.db.Model(&models.Article{}).Count(&totalCount)
	s.db.Model(&models.Article{}).Where("status = ?", models.ArticleStatusPublished).Count(&publishedCount)
	s.db.Model(&models.Article{}).Distinct("category").Pluck("category", &categories)

	var oldest, newest models.Article
	s.db.Order("created_at ASC").First(&oldest)
	s.db.Order("created_at DESC").First(&newest)

	stats := map[string]interface{}{
		"total_articles":    totalCount,
		"published":         publishedCount,
		"unique_categories": len(categories),
		"oldest_article":    oldest.CreatedAt.Format(time.RFC3339),
		"newest_article":    newest.CreatedAt.Format(time.RFC3339),
	}
	return stats, nil
}

// CleanupOldDrafts removes draft articles older than the cutoff
func (s *ArticleService) CleanupOldDrafts(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	result := s.db.Where("status = ? AND created_at < ?", models.ArticleStatusDraft, cutoff).
		Delete(&models.Article{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to cleanup drafts: %w", result.Error)
	}
	return result.RowsAffected, nil
}
