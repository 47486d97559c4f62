package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"ats-api/internal/models"
	"ats-api/internal/services"
	"ats-api/internal/storage"
	"ats-api/internal/transport/dto"
	"ats-api/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestJobService_StatusChangeIsVisibleAfterInvalidation(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockJobRepo)
	client := newQueryClient(t)
	service := services.NewJobService(mockRepo, client, newValidator())

	active := models.Job{ID: "j1", Title: "Go Engineer", Department: "Engineering", Status: models.JobStatusActive}
	closed := active
	closed.Status = models.JobStatusClosed

	mockRepo.On("List", mock.Anything).Return([]models.Job{active}, nil).Once()
	mockRepo.On("Update", mock.Anything, "j1", mock.MatchedBy(func(p *storage.JobPatch) bool {
		return p.Status != nil && *p.Status == models.JobStatusClosed && p.Title == nil && p.Department == nil
	})).Return(&closed, nil).Once()
	mockRepo.On("List", mock.Anything).Return([]models.Job{closed}, nil).Once()

	jobs, err := service.ListJobs(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusActive, jobs[0].Status)

	// Served from cache.
	_, err = service.ListJobs(ctx, nil)
	require.NoError(t, err)

	status := models.JobStatusClosed
	updated, err := service.UpdateJob(ctx, "j1", &dto.UpdateJobRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, updated.Status)

	jobs, err = service.ListJobs(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusClosed, jobs[0].Status)

	mockRepo.AssertExpectations(t)
	mockRepo.AssertNumberOfCalls(t, "List", 2)
}

func TestJobService_CreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		service := services.NewJobService(mockRepo, newQueryClient(t), newValidator())
		req := &dto.CreateJobRequest{Title: "Designer", Department: "Design", Location: "Lisbon", Type: "Full-time", Status: models.JobStatusActive}

		mockRepo.On("Create", mock.Anything, &storage.JobDraft{
			Title: "Designer", Department: "Design", Location: "Lisbon", Type: "Full-time", Status: models.JobStatusActive,
		}).Return(&models.Job{ID: "j9", Title: "Designer", Status: models.JobStatusActive}, nil).Once()

		job, err := service.CreateJob(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "j9", job.ID)
		assert.False(t, service.IsPending(services.OpCreate))
		mockRepo.AssertExpectations(t)
	})

	t.Run("invalid form never reaches the gateway", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		service := services.NewJobService(mockRepo, newQueryClient(t), newValidator())

		_, err := service.CreateJob(ctx, &dto.CreateJobRequest{Title: "X", Status: "open"})
		require.Error(t, err)
		assert.ErrorIs(t, err, services.ErrValidation)

		var fe validation.FieldErrors
		require.True(t, errors.As(err, &fe))
		assert.Contains(t, fe, "title")
		assert.Contains(t, fe, "department")
		assert.Contains(t, fe, "status")
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store constraint violation", func(t *testing.T) {
		mockRepo := new(MockJobRepo)
		service := services.NewJobService(mockRepo, newQueryClient(t), newValidator())
		storeErr := fmt.Errorf("%w: check constraint", storage.ErrValidation)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, storeErr).Once()

		_, err := service.CreateJob(ctx, &dto.CreateJobRequest{Title: "Designer", Department: "D", Location: "L", Type: "T", Status: models.JobStatusPaused})
		assert.ErrorIs(t, err, services.ErrValidation)
		assert.ErrorIs(t, err, storeErr, "store error stays in the chain")
	})
}

func TestJobService_GetJob(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockJobRepo)
	service := services.NewJobService(mockRepo, newQueryClient(t), newValidator())

	mockRepo.On("GetByID", mock.Anything, "missing").Return(nil, storage.ErrNotFound).Once()
	mockRepo.On("GetByID", mock.Anything, "j1").Return(&models.Job{ID: "j1"}, nil).Once()

	_, err := service.GetJob(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)

	job, err := service.GetJob(ctx, "j1")
	require.NoError(t, err)
	assert.Equal(t, "j1", job.ID)
	mockRepo.AssertExpectations(t)
}

func TestJobService_DeleteJobIsIdempotent(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockJobRepo)
	service := services.NewJobService(mockRepo, newQueryClient(t), newValidator())

	mockRepo.On("Delete", mock.Anything, "j1").Return(nil).Once()
	mockRepo.On("Delete", mock.Anything, "j1").Return(storage.ErrNotFound).Once()

	assert.NoError(t, service.DeleteJob(ctx, "j1"))
	assert.NoError(t, service.DeleteJob(ctx, "j1"))
	mockRepo.AssertExpectations(t)
}

func TestJobService_TransportFailure(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockJobRepo)
	service := services.NewJobService(mockRepo, newQueryClient(t), newValidator())

	mockRepo.On("List", mock.Anything).Return(nil, fmt.Errorf("%w: connection refused", storage.ErrTransport)).Once()

	_, err := service.ListJobs(ctx, nil)
	assert.ErrorIs(t, err, services.ErrTransport)
	assert.ErrorIs(t, err, storage.ErrTransport)
}

func TestJobService_UnknownErrorIsWrapped(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockJobRepo)
	service := services.NewJobService(mockRepo, newQueryClient(t), newValidator())
	boom := errors.New("boom")

	mockRepo.On("Delete", mock.Anything, "j1").Return(boom).Once()

	err := service.DeleteJob(ctx, "j1")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, services.ErrNotFound)
	assert.NotErrorIs(t, err, services.ErrTransport)
}

func TestJobService_ListFiltersAndDepartments(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockJobRepo)
	service := services.NewJobService(mockRepo, newQueryClient(t), newValidator())

	mockRepo.On("List", mock.Anything).Return([]models.Job{
		{ID: "1", Title: "Go Engineer", Department: "Engineering", Location: "Remote", Status: models.JobStatusActive},
		{ID: "2", Title: "Designer", Department: "Design", Location: "Lisbon", Status: models.JobStatusPaused},
		{ID: "3", Title: "SRE", Department: "Engineering", Location: "Berlin", Status: models.JobStatusClosed},
	}, nil).Once()

	jobs, err := service.ListJobs(ctx, &dto.ListJobsRequest{Department: "Engineering", Status: "all"})
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	jobs, err = service.ListJobs(ctx, &dto.ListJobsRequest{Search: "LISBON"})
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "2", jobs[0].ID)

	departments, err := service.Departments(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Design", "Engineering"}, departments)

	mockRepo.AssertNumberOfCalls(t, "List", 1)
}
