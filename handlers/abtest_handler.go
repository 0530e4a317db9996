package handlers

import (
	"errors"
	"net/http"

	"futnews-backend/models"
	"futnews-backend/services"

	"github.com/gin-gonic/gin"
)

type ABTestHandler struct {
	manager *services.ABTestManager

	// defaultMinSamples is applied when a create request omits min_samples
	defaultMinSamples int
}

// NewABTestHandler creates a new A/B test handler
func NewABTestHandler(manager *services.ABTestManager, defaultMinSamples int) *ABTestHandler {
	return &ABTestHandler{manager: manager, defaultMinSamples: defaultMinSamples}
}

// CreateTest registers a new experiment
// POST /api/v1/abtests
func (h *ABTestHandler) CreateTest(c *gin.Context) {
	var req models.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if req.MinSamples <= 0 {
		req.MinSamples = h.defaultMinSamples
	}

	test, err := h.manager.CreateTest(req.Name, req.Variants, req.MinSamples)
	if err != nil {
		if errors.Is(err, services.ErrTestExists) {
			respondConflict(c, err.Error())
			return
		}
		respondInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":      "created",
		"test_name":   test.Name,
		"variants":    test.Variants,
		"min_samples": test.MinSamples,
	})
}

// RecordResult records one observation for a variant
// POST /api/v1/abtest/:name/results
func (h *ABTestHandler) RecordResult(c *gin.Context) {
	name := c.Param("name")

	var req models.RecordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	stats, err := h.manager.RecordResult(name, req.Variant, req.Metrics)
	if err != nil {
		respondNotFound(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "recorded",
		"test_stats": stats,
	})
}

// GetTestStats returns current statistics for a test
// GET /api/v1/abtest/:name
func (h *ABTestHandler) GetTestStats(c *gin.Context) {
	stats, err := h.manager.GetTestStats(c.Param("name"))
	if err != nil {
		respondNotFound(c, err.Error())
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListActiveTests returns statistics for all active tests
// GET /api/v1/abtests
func (h *ABTestHandler) ListActiveTests(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"tests": h.manager.ActiveTests()})
}

// GetHistory returns final snapshots of completed tests
// GET /api/v1/abtests/history
func (h *ABTestHandler) GetHistory(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"history": h.manager.History()})
}

// SelectVariant assigns a variant to a new reader
// GET /api/v1/abtest/:name/variant
func (h *ABTestHandler) SelectVariant(c *gin.Context) {
	name := c.Param("name")

	variant, err := h.manager.SelectVariant(name)
	if err != nil {
		respondNotFound(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"test_name": name,
		"variant":   variant,
	})
}
