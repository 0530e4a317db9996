package handlers

import (
	"net/http"

	"futnews-backend/services"

	"github.com/gin-gonic/gin"
)

type PerformanceHandler struct {
	monitor *services.PerformanceMonitor
}

// NewPerformanceHandler creates a new performance metrics handler
func NewPerformanceHandler(monitor *services.PerformanceMonitor) *PerformanceHandler {
	return &PerformanceHandler{monitor: monitor}
}

// GetDashboard returns the aggregate performance dashboard
// GET /api/v1/performance/dashboard
func (h *PerformanceHandler) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.monitor.Dashboard())
}

// GetContentPerformance returns metrics for one piece of content
// GET /api/v1/performance/content/:id
func (h *PerformanceHandler) GetContentPerformance(c *gin.Context) {
	performance, ok := h.monitor.ContentPerformance(c.Param("id"))
	if !ok {
		respondNotFound(c, "no metrics recorded for this content")
		return
	}
	c.JSON(http.StatusOK, performance)
}

// GetStyleComparison returns metrics broken down by author style
// GET /api/v1/performance/styles
func (h *PerformanceHandler) GetStyleComparison(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"styles": h.monitor.StyleComparison()})
}
