package dto

import (
	"fmt"
	"time"

	"ats-api/internal/models"
	"ats-api/internal/storage"
)

// Layouts of the interview form's separate date and time inputs.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// CreateInterviewRequest is the interview scheduling form. The candidate
// name and job title are looked up from the ids, not taken from the client.
type CreateInterviewRequest struct {
	CandidateID   string                 `json:"candidateId" validate:"required"`
	JobID         string                 `json:"jobId" validate:"required"`
	Interviewers  []string               `json:"interviewers" validate:"dive,required"`
	Stage         models.InterviewStage  `json:"stage" validate:"required,stage"`
	ScheduledDate string                 `json:"scheduledDate" validate:"required,datetime=2006-01-02"`
	ScheduledTime string                 `json:"scheduledTime" validate:"required,datetime=15:04"`
	Duration      int                    `json:"duration" validate:"min=15"`
	Status        models.InterviewStatus `json:"status" validate:"required,interviewstatus"`
	Notes         string                 `json:"notes,omitempty"`
}

// UpdateInterviewRequest changes an interview. ScheduledDate and
// ScheduledTime must be sent together.
type UpdateInterviewRequest struct {
	Interviewers  []string                `json:"interviewers,omitempty" validate:"omitempty,dive,required"`
	Stage         *models.InterviewStage  `json:"stage,omitempty" validate:"omitempty,stage"`
	ScheduledDate *string                 `json:"scheduledDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	ScheduledTime *string                 `json:"scheduledTime,omitempty" validate:"omitempty,datetime=15:04"`
	Duration      *int                    `json:"duration,omitempty" validate:"omitempty,min=15"`
	Status        *models.InterviewStatus `json:"status,omitempty" validate:"omitempty,interviewstatus"`
	Notes         *string                 `json:"notes,omitempty"`
}

type ListInterviewsRequest struct {
	Search string `form:"search"`
	Stage  string `form:"stage"`
	Status string `form:"status" validate:"omitempty,oneof=all scheduled completed cancelled"`
}

// CombineSchedule joins a form date and time-of-day into one UTC timestamp.
func CombineSchedule(date, clock string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid schedule %q %q: %w", date, clock, err)
	}
	return t, nil
}

// ToDraft builds the gateway draft with the snapshots taken at scheduling time.
func (r *CreateInterviewRequest) ToDraft(candidateName, jobTitle string) (*storage.InterviewDraft, error) {
	scheduled, err := CombineSchedule(r.ScheduledDate, r.ScheduledTime)
	if err != nil {
		return nil, err
	}
	return &storage.InterviewDraft{
		CandidateID:   r.CandidateID,
		CandidateName: candidateName,
		JobID:         r.JobID,
		JobTitle:      jobTitle,
		Interviewers:  r.Interviewers,
		Stage:         r.Stage,
		ScheduledDate: scheduled,
		Duration:      r.Duration,
		Status:        r.Status,
		Notes:         r.Notes,
	}, nil
}

func (r *UpdateInterviewRequest) ToPatch() (*storage.InterviewPatch, error) {
	patch := &storage.InterviewPatch{
		Interviewers: r.Interviewers,
		Stage:        r.Stage,
		Duration:     r.Duration,
		Status:       r.Status,
		Notes:        r.Notes,
	}
	if r.ScheduledDate != nil && r.ScheduledTime != nil {
		scheduled, err := CombineSchedule(*r.ScheduledDate, *r.ScheduledTime)
		if err != nil {
			return nil, err
		}
		patch.ScheduledDate = &scheduled
	}
	return patch, nil
}
