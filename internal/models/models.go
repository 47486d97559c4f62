package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusActive JobStatus = "active"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
)

// JobStatuses lists every job status value.
var JobStatuses = []JobStatus{JobStatusActive, JobStatusPaused, JobStatusClosed}

// Valid reports whether s is a known job status.
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusActive, JobStatusPaused, JobStatusClosed:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for JobStatus
func (s *JobStatus) Scan(value interface{}) error {
	strVal, err := scanString("JobStatus", value)
	if err != nil {
		return err
	}
	v := JobStatus(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid JobStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for JobStatus
func (s JobStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Interview Stage Enum ---
type InterviewStage string

const (
	StageApplied         InterviewStage = "applied"
	StageScreening       InterviewStage = "screening"
	StageFirstInterview  InterviewStage = "first_interview"
	StageSecondInterview InterviewStage = "second_interview"
	StageFinalInterview  InterviewStage = "final_interview"
	StageOffer           InterviewStage = "offer"
	StageHired           InterviewStage = "hired"
	StageRejected        InterviewStage = "rejected"
)

// InterviewStages is the pipeline in display order. Any stage may be
// assigned from any other; the order is only used for presentation.
var InterviewStages = []InterviewStage{
	StageApplied,
	StageScreening,
	StageFirstInterview,
	StageSecondInterview,
	StageFinalInterview,
	StageOffer,
	StageHired,
	StageRejected,
}

// Valid reports whether s is one of the pipeline stages.
func (s InterviewStage) Valid() bool {
	return s.Position() >= 0
}

// Position returns the index of s in the pipeline, or -1.
func (s InterviewStage) Position() int {
	for i, stage := range InterviewStages {
		if stage == s {
			return i
		}
	}
	return -1
}

// Scan implements the sql.Scanner interface for InterviewStage
func (s *InterviewStage) Scan(value interface{}) error {
	strVal, err := scanString("InterviewStage", value)
	if err != nil {
		return err
	}
	v := InterviewStage(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid InterviewStage value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for InterviewStage
func (s InterviewStage) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Interview Status Enum ---
type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "scheduled"
	InterviewStatusCompleted InterviewStatus = "completed"
	InterviewStatusCancelled InterviewStatus = "cancelled"
)

// Valid reports whether s is a known interview status.
func (s InterviewStatus) Valid() bool {
	switch s {
	case InterviewStatusScheduled, InterviewStatusCompleted, InterviewStatusCancelled:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for InterviewStatus
func (s *InterviewStatus) Scan(value interface{}) error {
	strVal, err := scanString("InterviewStatus", value)
	if err != nil {
		return err
	}
	v := InterviewStatus(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid InterviewStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for InterviewStatus
func (s InterviewStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func scanString(typeName string, value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to scan %s: value is not string or []byte", typeName)
	}
}

// Job is an open (or formerly open) position.
type Job struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Department string    `json:"department"`
	Location   string    `json:"location"`
	Type       string    `json:"type"`
	Status     JobStatus `json:"status"`
	Applicants int       `json:"applicants"` // Maintained by the store, never written by clients
	DatePosted time.Time `json:"datePosted"`
}

// Candidate is a person moving through the hiring pipeline.
type Candidate struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Email        string         `json:"email"`
	Phone        string         `json:"phone"`
	Role         string         `json:"role"`
	CurrentStage InterviewStage `json:"currentStage"`
	AppliedDate  time.Time      `json:"appliedDate"`
	Tags         []string       `json:"tags"`
	ImageURL     string         `json:"imageUrl,omitempty"`
}

// StageConfig decorates a pipeline stage for display.
type StageConfig struct {
	ID        InterviewStage `json:"id"`
	Label     string         `json:"label"`
	Color     string         `json:"color"`
	SortOrder int            `json:"sortOrder"`
}

// Interview is a scheduled conversation between a candidate and interviewers.
// CandidateName and JobTitle are copied when the interview is scheduled and
// are not updated if the candidate or job is renamed later.
type Interview struct {
	ID            string          `json:"id"`
	CandidateID   string          `json:"candidateId"`
	CandidateName string          `json:"candidateName"`
	JobID         string          `json:"jobId"`
	JobTitle      string          `json:"jobTitle"`
	Interviewers  []string        `json:"interviewers"`
	Stage         InterviewStage  `json:"stage"`
	ScheduledDate time.Time       `json:"scheduledDate"`
	Duration      int             `json:"duration"` // Minutes
	Status        InterviewStatus `json:"status"`
	Notes         string          `json:"notes,omitempty"`
}

// Feedback is an interviewer's rating of a candidate at a stage.
type Feedback struct {
	ID              string         `json:"id"`
	CandidateID     string         `json:"candidateId"`
	InterviewerID   string         `json:"interviewerId"`
	InterviewerName string         `json:"interviewerName"`
	Stage           InterviewStage `json:"stage"`
	Rating          int            `json:"rating"`
	Notes           string         `json:"notes"`
	Date            time.Time      `json:"date"`
}

// DashboardStats is the precomputed summary row kept by the store.
type DashboardStats struct {
	TotalJobs             int       `json:"totalJobs"`
	ActiveJobs            int       `json:"activeJobs"`
	TotalCandidates       int       `json:"totalCandidates"`
	NewCandidatesThisWeek int       `json:"newCandidatesThisWeek"`
	ScheduledInterviews   int       `json:"scheduledInterviews"`
	AverageDaysToHire     float64   `json:"averageDaysToHire"`
	LastUpdated           time.Time `json:"lastUpdated"`
}

// StageCount is the number of candidates currently at a stage.
type StageCount struct {
	Stage InterviewStage `json:"stage"`
	Label string         `json:"label"`
	Color string         `json:"color"`
	Count int            `json:"count"`
}
