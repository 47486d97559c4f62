package handlers

import (
	"net/http"

	"ats-api/internal/services"
	"ats-api/internal/transport/dto"
	"ats-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler holds dependencies for feedback operations.
type FeedbackHandler struct {
	service   services.FeedbackService
	validator *validation.Validator
}

// NewFeedbackHandler creates a new FeedbackHandler.
func NewFeedbackHandler(service services.FeedbackService, v *validation.Validator) *FeedbackHandler {
	return &FeedbackHandler{service: service, validator: v}
}

// ListFeedback godoc
// @Summary      List feedback
// @Description  Newest first, optionally filtered by search, stage and rating.
// @Tags         feedback
// @Produce      json
// @Success      200 {array} models.Feedback
// @Router       /feedback [get]
func (h *FeedbackHandler) ListFeedback(c *gin.Context) {
	var req dto.ListFeedbackRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	feedback, err := h.service.ListFeedback(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "list feedback")
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(feedback))
}

func (h *FeedbackHandler) GetFeedbackByID(c *gin.Context) {
	fb, err := h.service.GetFeedback(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve feedback")
		return
	}
	c.JSON(http.StatusOK, fb)
}

// SubmitFeedback godoc
// @Summary      Submit interview feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Param        feedback body dto.CreateFeedbackRequest true "Rating and notes"
// @Success      201 {object} models.Feedback
// @Failure      400 {object} map[string]any "Validation failed"
// @Router       /feedback [post]
func (h *FeedbackHandler) SubmitFeedback(c *gin.Context) {
	var req dto.CreateFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	fb, err := h.service.SubmitFeedback(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "submit feedback")
		return
	}
	c.JSON(http.StatusCreated, fb)
}

func (h *FeedbackHandler) UpdateFeedback(c *gin.Context) {
	var req dto.UpdateFeedbackRequest
	if !bindJSON(c, &req) {
		return
	}

	fb, err := h.service.UpdateFeedback(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "update feedback")
		return
	}
	c.JSON(http.StatusOK, fb)
}

func (h *FeedbackHandler) DeleteFeedback(c *gin.Context) {
	if err := h.service.DeleteFeedback(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete feedback")
		return
	}
	c.Status(http.StatusNoContent)
}
