package services_test

import (
	"context"
	"io"
	"testing"

	"ats-api/internal/models"
	"ats-api/internal/query"
	"ats-api/internal/storage"
	"ats-api/internal/validation"

	"github.com/stretchr/testify/mock"
)

// --- Mock Job Repository ---

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) List(ctx context.Context) ([]models.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepo) Create(ctx context.Context, draft *storage.JobDraft) (*models.Job, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, id string, patch *storage.JobPatch) (*models.Job, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ storage.JobRepository = (*MockJobRepo)(nil)

// --- Mock Candidate Repository ---

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) List(ctx context.Context) ([]models.Candidate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, draft *storage.CandidateDraft) (*models.Candidate, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) Update(ctx context.Context, id string, patch *storage.CandidatePatch) (*models.Candidate, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateRepo) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	args := m.Called(ctx, id, imageURL)
	return args.Error(0)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ storage.CandidateRepository = (*MockCandidateRepo)(nil)

// --- Mock Interview Repository ---

type MockInterviewRepo struct {
	mock.Mock
}

func (m *MockInterviewRepo) List(ctx context.Context) ([]models.Interview, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Interview), args.Error(1)
}

func (m *MockInterviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepo) Create(ctx context.Context, draft *storage.InterviewDraft) (*models.Interview, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepo) Update(ctx context.Context, id string, patch *storage.InterviewPatch) (*models.Interview, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Interview), args.Error(1)
}

func (m *MockInterviewRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ storage.InterviewRepository = (*MockInterviewRepo)(nil)

// --- Mock Feedback Repository ---

type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) List(ctx context.Context) ([]models.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepo) GetByID(ctx context.Context, id string) (*models.Feedback, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepo) Create(ctx context.Context, draft *storage.FeedbackDraft) (*models.Feedback, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepo) Update(ctx context.Context, id string, patch *storage.FeedbackPatch) (*models.Feedback, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Feedback), args.Error(1)
}

func (m *MockFeedbackRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ storage.FeedbackRepository = (*MockFeedbackRepo)(nil)

// --- Mock Stage Config Repository ---

type MockStageConfigRepo struct {
	mock.Mock
}

func (m *MockStageConfigRepo) List(ctx context.Context) ([]models.StageConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StageConfig), args.Error(1)
}

func (m *MockStageConfigRepo) GetByID(ctx context.Context, id models.InterviewStage) (*models.StageConfig, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StageConfig), args.Error(1)
}

func (m *MockStageConfigRepo) Update(ctx context.Context, id models.InterviewStage, patch *storage.StageConfigPatch) (*models.StageConfig, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StageConfig), args.Error(1)
}

var _ storage.StageConfigRepository = (*MockStageConfigRepo)(nil)

// --- Mock Stats Repository ---

type MockStatsRepo struct {
	mock.Mock
}

func (m *MockStatsRepo) Get(ctx context.Context) (*models.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.DashboardStats), args.Error(1)
}

var _ storage.StatsRepository = (*MockStatsRepo)(nil)

// --- Mock Image Store ---

type MockImageStore struct {
	mock.Mock
}

func (m *MockImageStore) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	args := m.Called(ctx, key, contentType, body)
	return args.Error(0)
}

func (m *MockImageStore) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

var _ storage.ImageStore = (*MockImageStore)(nil)

// --- Helpers ---

func newQueryClient(t *testing.T) *query.Client {
	t.Helper()
	return query.NewClient(query.NewMemoryStore())
}

func newValidator() *validation.Validator {
	return validation.New()
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
