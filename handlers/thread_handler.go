package handlers

import (
	"net/http"
	"strconv"

	"futnews-backend/services"

	"github.com/gin-gonic/gin"
)

type ThreadHandler struct {
	clusterer *services.ContentClusterer
}

// NewThreadHandler creates a new story thread handler
func NewThreadHandler(clusterer *services.ContentClusterer) *ThreadHandler {
	return &ThreadHandler{clusterer: clusterer}
}

// ListThreads returns all active story threads
// GET /api/v1/threads
func (h *ThreadHandler) ListThreads(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"threads": h.clusterer.ActiveThreads()})
}

// GetThread returns one story thread with its timeline
// GET /api/v1/thread/:id
func (h *ThreadHandler) GetThread(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "thread id must be an integer")
		return
	}

	thread, err := h.clusterer.ThreadByID(id)
	if err != nil {
		respondNotFound(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, thread)
}

// threadEngagementRequest carries engagement deltas for a story thread
type threadEngagementRequest struct {
	Views    int `json:"views"`
	Shares   int `json:"shares"`
	Comments int `json:"comments"`
}

// UpdateThreadEngagement adds engagement counts to a story thread
// POST /api/v1/thread/:id/engagement
func (h *ThreadHandler) UpdateThreadEngagement(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "thread id must be an integer")
		return
	}

	var req threadEngagementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.clusterer.UpdateThreadEngagement(id, req.Views, req.Shares, req.Comments); err != nil {
		respondNotFound(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
