package dto

import (
	"ats-api/internal/models"
	"ats-api/internal/storage"
)

// CreateFeedbackRequest is the feedback form. InterviewerID is optional;
// a fresh id is assigned when it is missing.
type CreateFeedbackRequest struct {
	CandidateID     string                `json:"candidateId" validate:"required"`
	InterviewerID   string                `json:"interviewerId,omitempty"`
	InterviewerName string                `json:"interviewerName" validate:"min=2"`
	Stage           models.InterviewStage `json:"stage" validate:"required,stage"`
	Rating          int                   `json:"rating" validate:"min=1,max=5"`
	Notes           string                `json:"notes" validate:"min=10"`
}

type UpdateFeedbackRequest struct {
	InterviewerName *string                `json:"interviewerName,omitempty" validate:"omitempty,min=2"`
	Stage           *models.InterviewStage `json:"stage,omitempty" validate:"omitempty,stage"`
	Rating          *int                   `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Notes           *string                `json:"notes,omitempty" validate:"omitempty,min=10"`
}

type ListFeedbackRequest struct {
	Search string `form:"search"`
	Stage  string `form:"stage"`
	Rating string `form:"rating" validate:"omitempty,oneof=all 1 2 3 4 5"`
}

func (r *CreateFeedbackRequest) ToDraft(interviewerID string) *storage.FeedbackDraft {
	return &storage.FeedbackDraft{
		CandidateID:     r.CandidateID,
		InterviewerID:   interviewerID,
		InterviewerName: r.InterviewerName,
		Stage:           r.Stage,
		Rating:          r.Rating,
		Notes:           r.Notes,
	}
}

func (r *UpdateFeedbackRequest) ToPatch() *storage.FeedbackPatch {
	return &storage.FeedbackPatch{
		InterviewerName: r.InterviewerName,
		Stage:           r.Stage,
		Rating:          r.Rating,
		Notes:           r.Notes,
	}
}
