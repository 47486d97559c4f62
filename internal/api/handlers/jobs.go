package handlers

import (
	"net/http"

	"ats-api/internal/services"
	"ats-api/internal/transport/dto"
	"ats-api/internal/validation"

	"github.com/gin-gonic/gin"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validation.Validator
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, v *validation.Validator) *JobHandler {
	return &JobHandler{service: service, validator: v}
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Newest posting first, optionally filtered by search, status and department.
// @Tags         jobs
// @Produce      json
// @Param        search query string false "Matches title, department or location"
// @Param        status query string false "active, paused, closed or all"
// @Param        department query string false "Exact department or all"
// @Success      200 {array} models.Job
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var req dto.ListJobsRequest
	if !bindQuery(c, h.validator, &req) {
		return
	}

	jobs, err := h.service.ListJobs(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "list jobs")
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(jobs))
}

// ListDepartments returns the distinct departments for the filter menu.
func (h *JobHandler) ListDepartments(c *gin.Context) {
	departments, err := h.service.Departments(c.Request.Context())
	if err != nil {
		respondError(c, err, "list departments")
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(departments))
}

// GetJobByID godoc
// @Summary      Get a job by ID
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job ID"
// @Success      200 {object} models.Job
// @Failure      404 {object} map[string]string "Job Not Found"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	job, err := h.service.GetJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "retrieve job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary      Create a job posting
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body dto.CreateJobRequest true "Job details"
// @Success      201 {object} models.Job
// @Failure      400 {object} map[string]any "Validation failed"
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "create job")
		return
	}
	c.JSON(http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Only the submitted fields change.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path string true "Job ID"
// @Param        job body dto.UpdateJobRequest true "Fields to change"
// @Success      200 {object} models.Job
// @Router       /jobs/{id} [patch]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !bindJSON(c, &req) {
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondError(c, err, "update job")
		return
	}
	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Tags         jobs
// @Param        id path string true "Job ID"
// @Success      204 "No Content"
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.service.DeleteJob(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "delete job")
		return
	}
	c.Status(http.StatusNoContent)
}
