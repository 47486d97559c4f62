package services

import (
	"context"

	"ats-api/internal/models"
	"ats-api/internal/query"
	"ats-api/internal/storage"
	"ats-api/internal/transport/dto"
	"ats-api/internal/validation"

	"github.com/sirupsen/logrus"
)

type stageService struct {
	stageRepo storage.StageConfigRepository
	client    *query.Client
	validator *validation.Validator

	update *query.Mutation[stageUpdate, *models.StageConfig]
}

type stageUpdate struct {
	id    models.InterviewStage
	patch *storage.StageConfigPatch
}

// NewStageService creates a new instance of StageService.
func NewStageService(stageRepo storage.StageConfigRepository, client *query.Client, v *validation.Validator) StageService {
	s := &stageService{stageRepo: stageRepo, client: client, validator: v}
	s.update = query.NewMutation(client, func(ctx context.Context, in stageUpdate) (*models.StageConfig, error) {
		return stageRepo.Update(ctx, in.id, in.patch)
	}, query.EntityStageConfig)
	return s
}

func (s *stageService) ListStages(ctx context.Context) ([]models.StageConfig, error) {
	stages, err := fetchStageConfig(ctx, s.client, s.stageRepo)
	if err != nil {
		return nil, MapRepoError(err, "listing stages")
	}
	return stages, nil
}

func (s *stageService) GetStage(ctx context.Context, id models.InterviewStage) (*models.StageConfig, error) {
	if !id.Valid() {
		return nil, ErrNotFound
	}
	stage, err := query.Fetch(ctx, s.client, query.Detail(query.EntityStageConfig, string(id)), func(ctx context.Context) (*models.StageConfig, error) {
		return s.stageRepo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, MapRepoError(err, "getting stage by ID")
	}
	return stage, nil
}

// UpdateStage changes a stage's label, color or position. Stages cannot be
// added or removed.
func (s *stageService) UpdateStage(ctx context.Context, id models.InterviewStage, req *dto.UpdateStageConfigRequest) (*models.StageConfig, error) {
	if !id.Valid() {
		return nil, ErrNotFound
	}
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	stage, err := s.update.Mutate(ctx, stageUpdate{id: id, patch: req.ToPatch()})
	if err != nil {
		logrus.WithField("id", id).WithError(err).Error("StageService: error updating stage")
		return nil, MapRepoError(err, "updating stage")
	}
	return stage, nil
}
