package handlers

import (
	"net/http"
	"strconv"

	"futnews-backend/models"
	"futnews-backend/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articles   *services.ArticleService
	engagement *services.EngagementService
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(articles *services.ArticleService, engagement *services.EngagementService) *ArticleHandler {
	return &ArticleHandler{articles: articles, engagement: engagement}
}

// ListArticles returns published articles, paginated
// GET /api/v1/articles?category=...&page=1&page_size=20
func (h *ArticleHandler) ListArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	result, err := h.articles.ListArticles(services.ListParams{
		Category: c.Query("category"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetArticleBySlug returns a single article
// GET /api/v1/article/:slug
func (h *ArticleHandler) GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		respondMissingParam(c, "Article slug")
		return
	}

	article, err := h.articles.GetBySlug(slug)
	if err != nil {
		respondNotFound(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, article.ToResponse())
}

// ListCategories returns the distinct published categories
// GET /api/v1/categories
func (h *ArticleHandler) ListCategories(c *gin.Context) {
	categories, err := h.articles.ListCategories()
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// GetStats returns statistics about the article database
// GET /api/v1/articles/stats
func (h *ArticleHandler) GetStats(c *gin.Context) {
	stats, err := h.articles.GetArticleStats()
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// RecordEvent records a reader interaction with an article
// POST /api/v1/events
func (h *ArticleHandler) RecordEvent(c *gin.Context) {
	var req struct {
		ArticleID      string  `json:"article_id" binding:"required"`
		UserID         string  `json:"user_id" binding:"required"`
		EventType      string  `json:"event_type" binding:"required"`
		TestName       string  `json:"test_name"`
		Variant        string  `json:"variant"`
		TimeSpent      float64 `json:"time_spent"`
		Bounced        bool    `json:"bounced"`
		SocialPlatform string  `json:"social_platform"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	err := h.engagement.RecordEvent(models.UserEvent{
		ArticleID:      req.ArticleID,
		UserID:         req.UserID,
		EventType:      req.EventType,
		TestName:       req.TestName,
		Variant:        req.Variant,
		TimeSpent:      req.TimeSpent,
		Bounced:        req.Bounced,
		SocialPlatform: req.SocialPlatform,
	})
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Event recorded successfully",
	})
}

// GetEventStats returns statistics about recorded events
// GET /api/v1/events/stats
func (h *ArticleHandler) GetEventStats(c *gin.Context) {
	stats, err := h.engagement.GetEventStats()
	if err != nil {
		respondInternalError(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// HealthCheck is a simple health check endpoint
// GET /api/v1/health
func (h *ArticleHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "futnews-backend",
		"version": "1.0.0",
	})
}
