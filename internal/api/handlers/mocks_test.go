package handlers_test

import (
	"context"
	"errors"
	"io"

	"ats-api/internal/models"
	"ats-api/internal/services"
	"ats-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

// --- Mock Job Service ---

type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Job), args.Error(1)
}

func (m *MockJobService) Departments(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockJobService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Job), args.Error(1)
}

func (m *MockJobService) DeleteJob(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockJobService) IsPending(op services.Op) bool {
	return m.Called(op).Bool(0)
}

var _ services.JobService = (*MockJobService)(nil)

// --- Mock Candidate Service ---

type MockCandidateService struct {
	mock.Mock
}

func (m *MockCandidateService) ListCandidates(ctx context.Context, req *dto.ListCandidatesRequest) ([]models.Candidate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Candidate), args.Error(1)
}

func (m *MockCandidateService) Roles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCandidateService) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) CreateCandidate(ctx context.Context, req *dto.CreateCandidateRequest) (*models.Candidate, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) UpdateCandidate(ctx context.Context, id string, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Candidate), args.Error(1)
}

func (m *MockCandidateService) DeleteCandidate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCandidateService) UploadImage(ctx context.Context, id, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, id, filename, contentType, body)
	return args.String(0), args.Error(1)
}

func (m *MockCandidateService) IsPending(op services.Op) bool {
	return m.Called(op).Bool(0)
}

var _ services.CandidateService = (*MockCandidateService)(nil)

// --- Mock Stage Service ---

type MockStageService struct {
	mock.Mock
}

func (m *MockStageService) ListStages(ctx context.Context) ([]models.StageConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StageConfig), args.Error(1)
}

func (m *MockStageService) GetStage(ctx context.Context, id models.InterviewStage) (*models.StageConfig, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StageConfig), args.Error(1)
}

func (m *MockStageService) UpdateStage(ctx context.Context, id models.InterviewStage, req *dto.UpdateStageConfigRequest) (*models.StageConfig, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StageConfig), args.Error(1)
}

var _ services.StageService = (*MockStageService)(nil)

// --- Fake Pinger ---

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error { return p.err }

var errDown = errors.New("connection refused")

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}
