package handlers

import (
	"net/http"

	"ats-api/internal/services"
	"ats-api/internal/transport/dto"
	"ats-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// InterviewHandler holds dependencies for interview operations.
type InterviewHandler struct {
	service   services.InterviewService
	validator *validation.Validator
}

// NewInterviewHandler creates a new InterviewHandler.
func NewInterviewHandler(service services.InterviewService, v *validation.Validator) *InterviewHandler {
	return &InterviewHandler{service: service, validator: v}
}

// ListInterviews godoc
// @Summary      List interviews
// @Description  Earliest first, optionally filtered by search, stage and status.
// @Tags         interviews
// @Produce      json
// @Success      200 {array} models.Interview
// @Router       /interviews [get]
func (h *InterviewHandler) ListInterviews(c *gin.Context) {
	var req dto.ListInterviewsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	interviews, err := h.service.ListInterviews(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "list interviews")
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(interviews))
}

func (h *InterviewHandler) GetInterviewByID(c *gin.Context) {
	interview, err := h.service.GetInterview(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve interview")
		return
	}
	c.JSON(http.StatusOK, interview)
}

// ScheduleInterview godoc
// @Summary      Schedule an interview
// @Description  The candidate name and job title are copied from the referenced records.
// @Tags         interviews
// @Accept       json
// @Produce      json
// @Param        interview body dto.CreateInterviewRequest true "Interview details"
// @Success      201 {object} models.Interview
// @Failure      400 {object} map[string]any "Validation failed"
// @Router       /interviews [post]
func (h *InterviewHandler) ScheduleInterview(c *gin.Context) {
	var req dto.CreateInterviewRequest
	if !bindJSON(c, &req) {
		return
	}

	interview, err := h.service.ScheduleInterview(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "schedule interview")
		return
	}
	c.JSON(http.StatusCreated, interview)
}

func (h *InterviewHandler) UpdateInterview(c *gin.Context) {
	var req dto.UpdateInterviewRequest
	if !bindJSON(c, &req) {
		return
	}

	interview, err := h.service.UpdateInterview(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "update interview")
		return
	}
	c.JSON(http.StatusOK, interview)
}

func (h *InterviewHandler) DeleteInterview(c *gin.Context) {
	if err := h.service.DeleteInterview(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete interview")
		return
	}
	c.Status(http.StatusNoContent)
}
