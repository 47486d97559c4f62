package services

import (
	"context"
	"io"

	"ats-api/internal/models"
	"ats-api/internal/transport/dto"
)

// JobService defines the cached reads and invalidating writes for jobs.
type JobService interface {
	ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error)
	Departments(ctx context.Context) ([]string, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id string) error
	IsPending(op Op) bool
}

// CandidateService defines the cached reads and invalidating writes for candidates.
type CandidateService interface {
	ListCandidates(ctx context.Context, req *dto.ListCandidatesRequest) ([]models.Candidate, error)
	Roles(ctx context.Context) ([]string, error)
	GetCandidate(ctx context.Context, id string) (*models.Candidate, error)
	CreateCandidate(ctx context.Context, req *dto.CreateCandidateRequest) (*models.Candidate, error)
	UpdateCandidate(ctx context.Context, id string, req *dto.UpdateCandidateRequest) (*models.Candidate, error)
	DeleteCandidate(ctx context.Context, id string) error
	UploadImage(ctx context.Context, id, filename, contentType string, body io.Reader) (string, error)
	IsPending(op Op) bool
}

// InterviewService defines the cached reads and invalidating writes for interviews.
type InterviewService interface {
	ListInterviews(ctx context.Context, req *dto.ListInterviewsRequest) ([]models.Interview, error)
	GetInterview(ctx context.Context, id string) (*models.Interview, error)
	ScheduleInterview(ctx context.Context, req *dto.CreateInterviewRequest) (*models.Interview, error)
	UpdateInterview(ctx context.Context, id string, req *dto.UpdateInterviewRequest) (*models.Interview, error)
	DeleteInterview(ctx context.Context, id string) error
	IsPending(op Op) bool
}

// FeedbackService defines the cached reads and invalidating writes for feedback.
type FeedbackService interface {
	ListFeedback(ctx context.Context, req *dto.ListFeedbackRequest) ([]models.Feedback, error)
	GetFeedback(ctx context.Context, id string) (*models.Feedback, error)
	SubmitFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error)
	UpdateFeedback(ctx context.Context, id string, req *dto.UpdateFeedbackRequest) (*models.Feedback, error)
	DeleteFeedback(ctx context.Context, id string) error
	IsPending(op Op) bool
}

// StageService reads and redecorates the pipeline stages.
type StageService interface {
	ListStages(ctx context.Context) ([]models.StageConfig, error)
	GetStage(ctx context.Context, id models.InterviewStage) (*models.StageConfig, error)
	UpdateStage(ctx context.Context, id models.InterviewStage, req *dto.UpdateStageConfigRequest) (*models.StageConfig, error)
}

// DashboardService serves the summary screen.
type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	Pipeline(ctx context.Context) ([]models.StageCount, error)
}
