package validation_test

import (
	"errors"
	"strings"
	"testing"

	"ats-api/internal/models"
	"ats-api/internal/transport/dto"
	"ats-api/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldErrors(t *testing.T, err error) validation.FieldErrors {
	t.Helper()
	require.Error(t, err)
	var fe validation.FieldErrors
	require.True(t, errors.As(err, &fe), "expected FieldErrors, got %T", err)
	return fe
}

func validFeedback() *dto.CreateFeedbackRequest {
	return &dto.CreateFeedbackRequest{
		CandidateID:     "c1",
		InterviewerName: "Sam Park",
		Stage:           models.StageScreening,
		Rating:          4,
		Notes:           "Strong communication and system design.",
	}
}

func TestFeedbackForm(t *testing.T) {
	v := validation.New()

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, v.Validate(validFeedback()))
	})

	t.Run("rating above five", func(t *testing.T) {
		req := validFeedback()
		req.Rating = 6
		fe := fieldErrors(t, v.Validate(req))
		assert.Equal(t, "Maximum rating is 5.", fe["rating"])
	})

	t.Run("missing rating", func(t *testing.T) {
		req := validFeedback()
		req.Rating = 0
		fe := fieldErrors(t, v.Validate(req))
		assert.Equal(t, "Rating is required.", fe["rating"])
	})

	t.Run("short notes", func(t *testing.T) {
		req := validFeedback()
		req.Notes = "ok"
		fe := fieldErrors(t, v.Validate(req))
		assert.Equal(t, "Please provide detailed feedback (minimum 10 characters).", fe["notes"])
	})

	t.Run("unknown stage", func(t *testing.T) {
		req := validFeedback()
		req.Stage = "lunch"
		fe := fieldErrors(t, v.Validate(req))
		assert.Contains(t, fe["stage"], "unknown value")
	})
}

func TestCandidateForm(t *testing.T) {
	v := validation.New()
	valid := dto.CreateCandidateRequest{
		Name:         "Ana Li",
		Email:        "ana@x.io",
		Phone:        "5551234",
		Role:         "Engineer",
		CurrentStage: models.StageApplied,
		Tags:         []string{"go"},
	}
	require.NoError(t, v.Validate(&valid))

	bad := valid
	bad.Name = "A"
	bad.Email = "not-an-email"
	bad.Phone = "12"
	bad.Role = ""
	bad.Tags = []string{"go", ""}

	fe := fieldErrors(t, v.Validate(&bad))
	assert.Equal(t, "Name must be at least 2 characters.", fe["name"])
	assert.Equal(t, "Invalid email address.", fe["email"])
	assert.Equal(t, "Phone number is required.", fe["phone"])
	assert.Equal(t, "Role is required.", fe["role"])
	assert.Contains(t, fe, "tags[1]")
}

func TestJobForm(t *testing.T) {
	v := validation.New()
	req := &dto.CreateJobRequest{
		Title:      "Go Engineer",
		Department: "Engineering",
		Location:   "Remote",
		Type:       "Full-time",
		Status:     models.JobStatusActive,
	}
	require.NoError(t, v.Validate(req))

	req.Status = "archived"
	req.Title = "G"
	fe := fieldErrors(t, v.Validate(req))
	assert.Equal(t, "Title must be at least 2 characters.", fe["title"])
	assert.Contains(t, fe, "status")
}

func TestInterviewForm(t *testing.T) {
	v := validation.New()
	req := &dto.CreateInterviewRequest{
		CandidateID:   "c1",
		JobID:         "j1",
		Interviewers:  []string{"Sam"},
		Stage:         models.StageFirstInterview,
		ScheduledDate: "2024-03-05",
		ScheduledTime: "14:30",
		Duration:      45,
		Status:        models.InterviewStatusScheduled,
	}
	require.NoError(t, v.Validate(req))

	req.Duration = 10
	req.ScheduledDate = "05/03/2024"
	fe := fieldErrors(t, v.Validate(req))
	assert.Equal(t, "Duration must be at least 15 minutes.", fe["duration"])
	assert.Equal(t, "Date must be in YYYY-MM-DD format.", fe["scheduledDate"])
}

func TestInterviewUpdate_DateAndTimeTogether(t *testing.T) {
	v := validation.New()
	date := "2024-03-05"
	clock := "09:00"

	assert.NoError(t, v.Validate(&dto.UpdateInterviewRequest{}))
	assert.NoError(t, v.Validate(&dto.UpdateInterviewRequest{ScheduledDate: &date, ScheduledTime: &clock}))

	fe := fieldErrors(t, v.Validate(&dto.UpdateInterviewRequest{ScheduledDate: &date}))
	assert.Equal(t, "Date and time must be changed together.", fe["scheduledTime"])
}

func TestUpdateForms_OnlyCheckPresentFields(t *testing.T) {
	v := validation.New()
	short := "x"

	assert.NoError(t, v.Validate(&dto.UpdateCandidateRequest{}))
	fe := fieldErrors(t, v.Validate(&dto.UpdateCandidateRequest{Name: &short}))
	assert.Len(t, fe, 1)
	assert.Equal(t, "Name must be at least 2 characters.", fe["name"])
}

func TestListFilters(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Validate(&dto.ListFeedbackRequest{Rating: "all"}))
	assert.NoError(t, v.Validate(&dto.ListFeedbackRequest{Rating: "5"}))
	assert.Error(t, v.Validate(&dto.ListFeedbackRequest{Rating: "9"}))

	t.Run("keyed by query name", func(t *testing.T) {
		fe := fieldErrors(t, v.Validate(&dto.ListJobsRequest{Status: "archived"}))
		assert.Equal(t, "Field 'status' has an unknown value 'archived'", fe["status"])
		assert.NotContains(t, fe, "Status")

		fe = fieldErrors(t, v.Validate(&dto.ListInterviewsRequest{Status: "lost"}))
		assert.Contains(t, fe, "status")

		fe = fieldErrors(t, v.Validate(&dto.ListFeedbackRequest{Rating: "9"}))
		assert.Contains(t, fe, "rating")
	})
}

func TestFieldErrors_ErrorIsSorted(t *testing.T) {
	fe := validation.FieldErrors{"rating": "Maximum rating is 5.", "notes": "too short"}
	msg := fe.Error()
	assert.True(t, strings.HasPrefix(msg, "validation failed: notes:"), msg)
}
