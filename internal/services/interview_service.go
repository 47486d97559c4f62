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

type interviewService struct {
	interviewRepo storage.InterviewRepository
	candidateRepo storage.CandidateRepository
	jobRepo       storage.JobRepository
	client        *query.Client
	validator     *validation.Validator

	create *query.Mutation[*storage.InterviewDraft, *models.Interview]
	update *query.Mutation[updateArgs[*storage.InterviewPatch], *models.Interview]
	remove *query.Mutation[string, struct{}]
}

// NewInterviewService creates a new instance of InterviewService. The
// candidate and job repositories are used to resolve the snapshots copied
// onto new interviews.
func NewInterviewService(
	interviewRepo storage.InterviewRepository,
	candidateRepo storage.CandidateRepository,
	jobRepo storage.JobRepository,
	client *query.Client,
	v *validation.Validator,
) InterviewService {
	s := &interviewService{
		interviewRepo: interviewRepo,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		client:        client,
		validator:     v,
	}

	s.create = query.NewMutation(client, interviewRepo.Create, query.EntityInterviews, query.EntityStats)
	s.update = query.NewMutation(client, func(ctx context.Context, in updateArgs[*storage.InterviewPatch]) (*models.Interview, error) {
		return interviewRepo.Update(ctx, in.id, in.patch)
	}, query.EntityInterviews, query.EntityStats)
	s.remove = query.NewMutation(client, func(ctx context.Context, id string) (struct{}, error) {
		err := interviewRepo.Delete(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return struct{}{}, nil
		}
		return struct{}{}, err
	}, query.EntityInterviews, query.EntityStats)

	return s
}

func (s *interviewService) ListInterviews(ctx context.Context, req *dto.ListInterviewsRequest) ([]models.Interview, error) {
	interviews, err := query.Fetch(ctx, s.client, query.List(query.EntityInterviews), s.interviewRepo.List)
	if err != nil {
		return nil, MapRepoError(err, "listing interviews")
	}
	return FilterInterviews(interviews, req), nil
}

func (s *interviewService) GetInterview(ctx context.Context, id string) (*models.Interview, error) {
	interview, err := query.Fetch(ctx, s.client, query.Detail(query.EntityInterviews, id), func(ctx context.Context) (*models.Interview, error) {
		return s.interviewRepo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, MapRepoError(err, "getting interview by ID")
	}
	return interview, nil
}

// ScheduleInterview copies the current candidate name and job title onto the
// new interview. Unknown candidate or job ids fail validation.
func (s *interviewService) ScheduleInterview(ctx context.Context, req *dto.CreateInterviewRequest) (*models.Interview, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	candidateName, jobTitle, err := s.resolveSnapshots(ctx, req.CandidateID, req.JobID)
	if err != nil {
		return nil, err
	}

	draft, err := req.ToDraft(candidateName, jobTitle)
	if err != nil {
		return nil, invalidForm(validation.FieldErrors{"scheduledDate": "Invalid date or time."})
	}

	interview, err := s.create.Mutate(ctx, draft)
	if err != nil {
		logrus.WithError(err).Error("InterviewService: error scheduling interview")
		return nil, MapRepoError(err, "scheduling interview")
	}
	return interview, nil
}

func (s *interviewService) resolveSnapshots(ctx context.Context, candidateID, jobID string) (string, string, error) {
	missing := validation.FieldErrors{}

	candidate, err := fetchCandidate(ctx, s.client, s.candidateRepo, candidateID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		missing["candidateId"] = "Candidate not found."
	case err != nil:
		return "", "", MapRepoError(err, "resolving interview candidate")
	}

	job, err := fetchJob(ctx, s.client, s.jobRepo, jobID)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		missing["jobId"] = "Job not found."
	case err != nil:
		return "", "", MapRepoError(err, "resolving interview job")
	}

	if len(missing) > 0 {
		return "", "", invalidForm(missing)
	}
	return candidate.Name, job.Title, nil
}

// UpdateInterview merges the submitted fields. The name and title snapshots
// are never refreshed.
func (s *interviewService) UpdateInterview(ctx context.Context, id string, req *dto.UpdateInterviewRequest) (*models.Interview, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	patch, err := req.ToPatch()
	if err != nil {
		return nil, invalidForm(validation.FieldErrors{"scheduledDate": "Invalid date or time."})
	}

	interview, err := s.update.Mutate(ctx, updateArgs[*storage.InterviewPatch]{id: id, patch: patch})
	if err != nil {
		logrus.WithField("id", id).WithError(err).Error("InterviewService: error updating interview")
		return nil, MapRepoError(err, "updating interview")
	}
	return interview, nil
}

func (s *interviewService) DeleteInterview(ctx context.Context, id string) error {
	if _, err := s.remove.Mutate(ctx, id); err != nil {
		logrus.WithField("id", id).WithError(err).Error("InterviewService: error deleting interview")
		return MapRepoError(err, "deleting interview")
	}
	return nil
}

func (s *interviewService) IsPending(op Op) bool {
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
