package storage

import (
	"context"
	"io"
	"time"

	"ats-api/internal/models"
)

// JobDraft holds the client-writable fields of a new job.
// Applicants and DatePosted are assigned by the store.
type JobDraft struct {
	Title      string
	Department string
	Location   string
	Type       string
	Status     models.JobStatus
}

// JobPatch is a partial update; nil fields are left unchanged.
type JobPatch struct {
	Title      *string
	Department *string
	Location   *string
	Type       *string
	Status     *models.JobStatus
}

type CandidateDraft struct {
	Name         string
	Email        string
	Phone        string
	Role         string
	CurrentStage models.InterviewStage
	Tags         []string
}

type CandidatePatch struct {
	Name         *string
	Email        *string
	Phone        *string
	Role         *string
	CurrentStage *models.InterviewStage
	Tags         []string // nil means unchanged, empty means clear
}

// InterviewDraft carries the candidate name and job title snapshots taken
// when the interview is scheduled.
type InterviewDraft struct {
	CandidateID   string
	CandidateName string
	JobID         string
	JobTitle      string
	Interviewers  []string
	Stage         models.InterviewStage
	ScheduledDate time.Time
	Duration      int
	Status        models.InterviewStatus
	Notes         string
}

type InterviewPatch struct {
	Interviewers  []string
	Stage         *models.InterviewStage
	ScheduledDate *time.Time
	Duration      *int
	Status        *models.InterviewStatus
	Notes         *string
}

type FeedbackDraft struct {
	CandidateID     string
	InterviewerID   string
	InterviewerName string
	Stage           models.InterviewStage
	Rating          int
	Notes           string
}

type FeedbackPatch struct {
	InterviewerName *string
	Stage           *models.InterviewStage
	Rating          *int
	Notes           *string
}

type StageConfigPatch struct {
	Label     *string
	Color     *string
	SortOrder *int
}

// JobRepository defines the gateway for the jobs table.
type JobRepository interface {
	List(ctx context.Context) ([]models.Job, error)
	GetByID(ctx context.Context, id string) (*models.Job, error)
	Create(ctx context.Context, draft *JobDraft) (*models.Job, error)
	Update(ctx context.Context, id string, patch *JobPatch) (*models.Job, error)
	Delete(ctx context.Context, id string) error
}

// CandidateRepository defines the gateway for the candidates table.
type CandidateRepository interface {
	List(ctx context.Context) ([]models.Candidate, error)
	GetByID(ctx context.Context, id string) (*models.Candidate, error)
	Create(ctx context.Context, draft *CandidateDraft) (*models.Candidate, error)
	Update(ctx context.Context, id string, patch *CandidatePatch) (*models.Candidate, error)
	UpdateImageURL(ctx context.Context, id, imageURL string) error
	Delete(ctx context.Context, id string) error
}

// InterviewRepository defines the gateway for the interviews table.
type InterviewRepository interface {
	List(ctx context.Context) ([]models.Interview, error)
	GetByID(ctx context.Context, id string) (*models.Interview, error)
	Create(ctx context.Context, draft *InterviewDraft) (*models.Interview, error)
	Update(ctx context.Context, id string, patch *InterviewPatch) (*models.Interview, error)
	Delete(ctx context.Context, id string) error
}

// FeedbackRepository defines the gateway for the feedback table.
type FeedbackRepository interface {
	List(ctx context.Context) ([]models.Feedback, error)
	GetByID(ctx context.Context, id string) (*models.Feedback, error)
	Create(ctx context.Context, draft *FeedbackDraft) (*models.Feedback, error)
	Update(ctx context.Context, id string, patch *FeedbackPatch) (*models.Feedback, error)
	Delete(ctx context.Context, id string) error
}

// StageConfigRepository reads and decorates the fixed set of stages.
type StageConfigRepository interface {
	List(ctx context.Context) ([]models.StageConfig, error)
	GetByID(ctx context.Context, id models.InterviewStage) (*models.StageConfig, error)
	Update(ctx context.Context, id models.InterviewStage, patch *StageConfigPatch) (*models.StageConfig, error)
}

// StatsRepository reads the precomputed dashboard summary.
type StatsRepository interface {
	Get(ctx context.Context) (*models.DashboardStats, error)
}

// ImageStore is the binary bucket holding candidate pictures.
type ImageStore interface {
	// Upload writes body under key, replacing any existing object.
	Upload(ctx context.Context, key, contentType string, body io.Reader) error
	PublicURL(key string) string
}
