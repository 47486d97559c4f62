package services_test

import (
	"context"
	"errors"
	"testing"

	"ats-api/internal/models"
	"ats-api/internal/services"
	"ats-api/internal/storage"
	"ats-api/internal/transport/dto"
	"ats-api/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func feedbackRequest() *dto.CreateFeedbackRequest {
	return &dto.CreateFeedbackRequest{
		CandidateID:     "c1",
		InterviewerName: "Sam Park",
		Stage:           models.StageFirstInterview,
		Rating:          4,
		Notes:           "Clear thinker, good Go knowledge.",
	}
}

func TestFeedbackService_RatingAboveFiveNeverReachesGateway(t *testing.T) {
	mockRepo := new(MockFeedbackRepo)
	service := services.NewFeedbackService(mockRepo, new(MockCandidateRepo), newQueryClient(t), newValidator())

	req := feedbackRequest()
	req.Rating = 6
	_, err := service.SubmitFeedback(context.Background(), req)

	require.ErrorIs(t, err, services.ErrValidation)
	var fe validation.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "Maximum rating is 5.", fe["rating"])
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFeedbackService_InterviewerID(t *testing.T) {
	ctx := context.Background()

	t.Run("generated when absent", func(t *testing.T) {
		mockRepo := new(MockFeedbackRepo)
		service := services.NewFeedbackService(mockRepo, new(MockCandidateRepo), newQueryClient(t), newValidator())

		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *storage.FeedbackDraft) bool {
			_, err := uuid.Parse(d.InterviewerID)
			return err == nil && d.Rating == 4
		})).Return(&models.Feedback{ID: "f1"}, nil).Once()

		_, err := service.SubmitFeedback(ctx, feedbackRequest())
		require.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("kept when submitted", func(t *testing.T) {
		mockRepo := new(MockFeedbackRepo)
		service := services.NewFeedbackService(mockRepo, new(MockCandidateRepo), newQueryClient(t), newValidator())

		req := feedbackRequest()
		req.InterviewerID = "u-42"
		mockRepo.On("Create", mock.Anything, mock.MatchedBy(func(d *storage.FeedbackDraft) bool {
			return d.InterviewerID == "u-42"
		})).Return(&models.Feedback{ID: "f1", InterviewerID: "u-42"}, nil).Once()

		fb, err := service.SubmitFeedback(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "u-42", fb.InterviewerID)
	})
}

func TestFeedbackService_SearchByCandidateName(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFeedbackRepo)
	mockCandidates := new(MockCandidateRepo)
	service := services.NewFeedbackService(mockRepo, mockCandidates, newQueryClient(t), newValidator())

	mockRepo.On("List", mock.Anything).Return([]models.Feedback{
		{ID: "f1", CandidateID: "c1", InterviewerName: "Sam Park", Rating: 5, Stage: models.StageScreening},
		{ID: "f2", CandidateID: "c2", InterviewerName: "Lee Wong", Rating: 3, Stage: models.StageOffer},
		{ID: "f3", CandidateID: "gone", InterviewerName: "Ana Torres", Rating: 5, Stage: models.StageOffer},
	}, nil).Once()
	mockCandidates.On("List", mock.Anything).Return([]models.Candidate{
		{ID: "c1", Name: "Ana Li"},
		{ID: "c2", Name: "Bo Chen"},
	}, nil).Once()

	list, err := service.ListFeedback(ctx, &dto.ListFeedbackRequest{Search: "ana"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "f1", list[0].ID)
	assert.Equal(t, "f3", list[1].ID)

	list, err = service.ListFeedback(ctx, &dto.ListFeedbackRequest{Rating: "5", Stage: "offer"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "f3", list[0].ID)

	mockCandidates.AssertNumberOfCalls(t, "List", 1)
}

func TestFeedbackService_UpdateInvalidatesOnlyFeedback(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFeedbackRepo)
	mockStats := new(MockStatsRepo)
	client := newQueryClient(t)
	service := services.NewFeedbackService(mockRepo, new(MockCandidateRepo), client, newValidator())
	dashboard := services.NewDashboardService(mockStats, new(MockCandidateRepo), new(MockStageConfigRepo), client)

	mockStats.On("Get", mock.Anything).Return(&models.DashboardStats{}, nil).Once()
	mockRepo.On("Update", mock.Anything, "f1", mock.MatchedBy(func(p *storage.FeedbackPatch) bool {
		return p.Rating != nil && *p.Rating == 2 && p.Notes == nil
	})).Return(&models.Feedback{ID: "f1", Rating: 2}, nil).Once()

	_, err := dashboard.Stats(ctx)
	require.NoError(t, err)

	fb, err := service.UpdateFeedback(ctx, "f1", &dto.UpdateFeedbackRequest{Rating: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, fb.Rating)

	_, err = dashboard.Stats(ctx)
	require.NoError(t, err)
	mockStats.AssertNumberOfCalls(t, "Get", 1)
}

func TestFeedbackService_GetAndDelete(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockFeedbackRepo)
	service := services.NewFeedbackService(mockRepo, new(MockCandidateRepo), newQueryClient(t), newValidator())

	mockRepo.On("GetByID", mock.Anything, "f1").Return(&models.Feedback{ID: "f1"}, nil).Once()
	mockRepo.On("Delete", mock.Anything, "f1").Return(nil).Once()
	mockRepo.On("GetByID", mock.Anything, "f1").Return(nil, storage.ErrNotFound).Once()

	fb, err := service.GetFeedback(ctx, "f1")
	require.NoError(t, err)
	assert.Equal(t, "f1", fb.ID)

	require.NoError(t, service.DeleteFeedback(ctx, "f1"))

	_, err = service.GetFeedback(ctx, "f1")
	assert.ErrorIs(t, err, services.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
