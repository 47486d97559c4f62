package dto

import (
	"ats-api/internal/models"
	"ats-api/internal/storage"
)

// CreateCandidateRequest is the candidate form.
type CreateCandidateRequest struct {
	Name         string                `json:"name" validate:"min=2"`
	Email        string                `json:"email" validate:"email"`
	Phone        string                `json:"phone" validate:"min=5"`
	Role         string                `json:"role" validate:"min=1"`
	CurrentStage models.InterviewStage `json:"currentStage" validate:"required,stage"`
	Tags         []string              `json:"tags" validate:"dive,required"`
}

type UpdateCandidateRequest struct {
	Name         *string                `json:"name,omitempty" validate:"omitempty,min=2"`
	Email        *string                `json:"email,omitempty" validate:"omitempty,email"`
	Phone        *string                `json:"phone,omitempty" validate:"omitempty,min=5"`
	Role         *string                `json:"role,omitempty" validate:"omitempty,min=1"`
	CurrentStage *models.InterviewStage `json:"currentStage,omitempty" validate:"omitempty,stage"`
	Tags         []string               `json:"tags,omitempty" validate:"omitempty,dive,required"`
}

type ListCandidatesRequest struct {
	Search string `form:"search"`
	Stage  string `form:"stage"`
	Role   string `form:"role"`
}

func (r *CreateCandidateRequest) ToDraft() *storage.CandidateDraft {
	return &storage.CandidateDraft{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Role:         r.Role,
		CurrentStage: r.CurrentStage,
		Tags:         r.Tags,
	}
}

func (r *UpdateCandidateRequest) ToPatch() *storage.CandidatePatch {
	return &storage.CandidatePatch{
		Name:         r.Name,
		Email:        r.Email,
		Phone:        r.Phone,
		Role:         r.Role,
		CurrentStage: r.CurrentStage,
		Tags:         r.Tags,
	}
}
