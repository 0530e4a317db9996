package handlers

import (
	"errors"
	"net/http"

	"futnews-backend/models"
	"futnews-backend/services"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduler *services.ContentScheduler
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(scheduler *services.ContentScheduler) *ScheduleHandler {
	return &ScheduleHandler{scheduler: scheduler}
}

// scheduleContentRequest pairs an opaque content payload with the
// classification signals the scorer needs.
type scheduleContentRequest struct {
	Content         interface{} `json:"content" binding:"required"`
	ContentType     string      `json:"content_type" binding:"required"`
	EngagementCount int         `json:"engagement_count"`
	IsTrending      bool        `json:"is_trending"`
	HasEngagement   bool        `json:"has_engagement"`
}

// ScheduleContent evaluates and enqueues a piece of content
// POST /api/v1/schedule/content
func (h *ScheduleHandler) ScheduleContent(c *gin.Context) {
	var req scheduleContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	contentType, err := models.ParseContentType(req.ContentType)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.scheduler.ScheduleContent(
		req.Content,
		contentType,
		req.EngagementCount,
		req.IsTrending,
		req.HasEngagement,
	)
	if err != nil {
		if errors.Is(err, models.ErrUnknownContentType) {
			respondBadRequest(c, err.Error())
			return
		}
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetSchedule drains and returns the current publishing schedule.
// This read CONSUMES the queues: a second call returns empty lists.
// GET /api/v1/schedule
func (h *ScheduleHandler) GetSchedule(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduler.GetPublishingSchedule())
}

// GetDailyStats reports today's published/remaining counts
// GET /api/v1/schedule/stats
func (h *ScheduleHandler) GetDailyStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.scheduler.GetDailyStats())
}
