package services

import (
	"context"
	"errors"

	"ats-api/internal/models"
	"ats-api/internal/query"
	"ats-api/internal/storage"
	"ats-api/internal/transport/dto"
	"ats-api/internal/validation"

	"github.com/sirupsen/logrus"
)

type jobService struct {
	jobRepo   storage.JobRepository
	client    *query.Client
	validator *validation.Validator

	create *query.Mutation[*storage.JobDraft, *models.Job]
	update *query.Mutation[updateArgs[*storage.JobPatch], *models.Job]
	remove *query.Mutation[string, struct{}]
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository, client *query.Client, v *validation.Validator) JobService {
	s := &jobService{jobRepo: jobRepo, client: client, validator: v}

	s.create = query.NewMutation(client, jobRepo.Create, query.EntityJobs, query.EntityStats)
	s.update = query.NewMutation(client, func(ctx context.Context, in updateArgs[*storage.JobPatch]) (*models.Job, error) {
		return jobRepo.Update(ctx, in.id, in.patch)
	}, query.EntityJobs, query.EntityStats)
	s.remove = query.NewMutation(client, func(ctx context.Context, id string) (struct{}, error) {
		err := jobRepo.Delete(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return struct{}{}, nil
		}
		return struct{}{}, err
	}, query.EntityJobs, query.EntityStats)

	return s
}

func (s *jobService) ListJobs(ctx context.Context, req *dto.ListJobsRequest) ([]models.Job, error) {
	jobs, err := query.Fetch(ctx, s.client, query.List(query.EntityJobs), s.jobRepo.List)
	if err != nil {
		return nil, MapRepoError(err, "listing jobs")
	}
	return FilterJobs(jobs, req), nil
}

func (s *jobService) Departments(ctx context.Context) ([]string, error) {
	jobs, err := s.ListJobs(ctx, nil)
	if err != nil {
		return nil, err
	}
	return Departments(jobs), nil
}

func (s *jobService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	job, err := fetchJob(ctx, s.client, s.jobRepo, id)
	if err != nil {
		return nil, MapRepoError(err, "getting job by ID")
	}
	return job, nil
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	job, err := s.create.Mutate(ctx, req.ToDraft())
	if err != nil {
		logrus.WithError(err).Error("JobService: error creating job")
		return nil, MapRepoError(err, "creating job")
	}
	return job, nil
}

// UpdateJob merges the submitted fields. Status may move between any two
// values.
func (s *jobService) UpdateJob(ctx context.Context, id string, req *dto.UpdateJobRequest) (*models.Job, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	job, err := s.update.Mutate(ctx, updateArgs[*storage.JobPatch]{id: id, patch: req.ToPatch()})
	if err != nil {
		logrus.WithField("id", id).WithError(err).Error("JobService: error updating job")
		return nil, MapRepoError(err, "updating job")
	}
	return job, nil
}

// DeleteJob removes the job. Deleting an id that is already gone succeeds.
func (s *jobService) DeleteJob(ctx context.Context, id string) error {
	if _, err := s.remove.Mutate(ctx, id); err != nil {
		logrus.WithField("id", id).WithError(err).Error("JobService: error deleting job")
		return MapRepoError(err, "deleting job")
	}
	return nil
}

func (s *jobService) IsPending(op Op) bool {
	switch op {
	case OpCreate:
		return s.create.IsPending()
	case OpUpdate:
		return s.update.IsPending()
	case OpDelete:
		return s.remove.IsPending()
	}
	return false
}
