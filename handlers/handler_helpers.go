package handlers

import (
	"net/http"

	"futnews-backend/models"

	"github.com/gin-gonic/gin"
)

// respondError sends a structured error response
func respondError(c *gin.Context, code int, errType, message string) {
	c.JSON(code, models.ErrorResponse{
		Error:   errType,
		Message: message,
		Code:    code,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "bad_request", message)
}

func respondMissingParam(c *gin.Context, param string) {
	respondError(c, http.StatusBadRequest, "missing_parameter", param+" is required")
}

func respondNotFound(c *gin.Context, message string) {
	respondError(c, http.StatusNotFound, "not_found", message)
}

func respondConflict(c *gin.Context, message string) {
	respondError(c, http.StatusConflict, "conflict", message)
}

func respondInternalError(c *gin.Context, message string) {
	respondError(c, http.StatusInternalServerError, "internal_error", message)
}
