// internal/transport/dto/job_dto.go
package dto

import (
	"ats-api/internal/models"
	"ats-api/internal/storage"
)

// --- Job Request DTOs ---

// CreateJobRequest is the job form. Applicants and the posting date are
// never accepted from clients.
type CreateJobRequest struct {
	Title      string           `json:"title" validate:"required,min=2"`
	Department string           `json:"department" validate:"required"`
	Location   string           `json:"location" validate:"required"`
	Type       string           `json:"type" validate:"required"`
	Status     models.JobStatus `json:"status" validate:"required,jobstatus"`
}

// UpdateJobRequest carries the fields to change; absent fields are kept.
type UpdateJobRequest struct {
	Title      *string           `json:"title,omitempty" validate:"omitempty,min=2"`
	Department *string           `json:"department,omitempty" validate:"omitempty,min=1"`
	Location   *string           `json:"location,omitempty" validate:"omitempty,min=1"`
	Type       *string           `json:"type,omitempty" validate:"omitempty,min=1"`
	Status     *models.JobStatus `json:"status,omitempty" validate:"omitempty,jobstatus"`
}

// ListJobsRequest holds the list-screen filters.
type ListJobsRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status" validate:"omitempty,oneof=all active paused closed"`
	Department string `form:"department"`
}

func (r *CreateJobRequest) ToDraft() *storage.JobDraft {
	return &storage.JobDraft{
		Title:      r.Title,
		Department: r.Department,
		Location:   r.Location,
		Type:       r.Type,
		Status:     r.Status,
	}
}

func (r *UpdateJobRequest) ToPatch() *storage.JobPatch {
	return &storage.JobPatch{
		Title:      r.Title,
		Department: r.Department,
		Location:   r.Location,
		Type:       r.Type,
		Status:     r.Status,
	}
}
