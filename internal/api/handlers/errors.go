package handlers

import (
	"errors"
	"net/http"

	"ats-api/internal/services"
	"ats-api/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// respondError writes the status and body matching err. action completes
// the "Failed to ..." message of unexpected errors.
func respondError(c *gin.Context, err error, action string) {
	var fieldErrors validation.FieldErrors
	switch {
	case errors.As(err, &fieldErrors):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": fieldErrors})
	case errors.Is(err, services.ErrValidation):
		logrus.WithError(err).Infof("Rejected request to %s", action)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, services.ErrTransport):
		logrus.WithError(err).Warn("data store unavailable")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Service temporarily unavailable"})
	default:
		logrus.WithError(err).Errorf("Failed to %s", action)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// bindJSON decodes the request body into req and answers 400 on malformed
// input.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	return true
}

// bindQuery decodes and validates the list filters.
func bindQuery(c *gin.Context, v *validation.Validator, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return false
	}
	if v == nil {
		return true
	}
	if err := v.Validate(req); err != nil {
		respondError(c, err, "validate filters")
		return false
	}
	return true
}
