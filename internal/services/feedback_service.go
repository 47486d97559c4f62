package services

import (
	"context"
	"errors"

	"ats-api/internal/models"
	"ats-api/internal/query"
	"ats-api/internal/storage"
	"ats-api/internal/transport/dto"
	"ats-api/internal/validation"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type feedbackService struct {
	feedbackRepo  storage.FeedbackRepository
	candidateRepo storage.CandidateRepository
	client        *query.Client
	validator     *validation.Validator
	newID         func() string

	create *query.Mutation[*storage.FeedbackDraft, *models.Feedback]
	update *query.Mutation[updateArgs[*storage.FeedbackPatch], *models.Feedback]
	remove *query.Mutation[string, struct{}]
}

// NewFeedbackService creates a new instance of FeedbackService. The
// candidate repository backs the search by candidate name.
func NewFeedbackService(feedbackRepo storage.FeedbackRepository, candidateRepo storage.CandidateRepository, client *query.Client, v *validation.Validator) FeedbackService {
	s := &feedbackService{
		feedbackRepo:  feedbackRepo,
		candidateRepo: candidateRepo,
		client:        client,
		validator:     v,
		newID:         uuid.NewString,
	}

	s.create = query.NewMutation(client, feedbackRepo.Create, query.EntityFeedback)
	s.update = query.NewMutation(client, func(ctx context.Context, in updateArgs[*storage.FeedbackPatch]) (*models.Feedback, error) {
		return feedbackRepo.Update(ctx, in.id, in.patch)
	}, query.EntityFeedback)
	s.remove = query.NewMutation(client, func(ctx context.Context, id string) (struct{}, error) {
		err := feedbackRepo.Delete(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return struct{}{}, nil
		}
		return struct{}{}, err
	}, query.EntityFeedback)

	return s
}

func (s *feedbackService) ListFeedback(ctx context.Context, req *dto.ListFeedbackRequest) ([]models.Feedback, error) {
	feedback, err := query.Fetch(ctx, s.client, query.List(query.EntityFeedback), s.feedbackRepo.List)
	if err != nil {
		return nil, MapRepoError(err, "listing feedback")
	}
	if req == nil || req.Search == "" {
		return FilterFeedback(feedback, nil, req), nil
	}

	candidates, err := fetchCandidates(ctx, s.client, s.candidateRepo)
	if err != nil {
		return nil, MapRepoError(err, "listing candidates for feedback search")
	}
	return FilterFeedback(feedback, candidateNames(candidates), req), nil
}

func (s *feedbackService) GetFeedback(ctx context.Context, id string) (*models.Feedback, error) {
	fb, err := query.Fetch(ctx, s.client, query.Detail(query.EntityFeedback, id), func(ctx context.Context) (*models.Feedback, error) {
		return s.feedbackRepo.GetByID(ctx, id)
	})
	if err != nil {
		return nil, MapRepoError(err, "getting feedback by ID")
	}
	return fb, nil
}

// SubmitFeedback records a rating. A fresh interviewer id is generated when
// the form does not carry one.
func (s *feedbackService) SubmitFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*models.Feedback, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	interviewerID := req.InterviewerID
	if interviewerID == "" {
		interviewerID = s.newID()
	}

	fb, err := s.create.Mutate(ctx, req.ToDraft(interviewerID))
	if err != nil {
		logrus.WithError(err).Error("FeedbackService: error submitting feedback")
		return nil, MapRepoError(err, "submitting feedback")
	}
	return fb, nil
}

func (s *feedbackService) UpdateFeedback(ctx context.Context, id string, req *dto.UpdateFeedbackRequest) (*models.Feedback, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	fb, err := s.update.Mutate(ctx, updateArgs[*storage.FeedbackPatch]{id: id, patch: req.ToPatch()})
	if err != nil {
		logrus.WithField("id", id).WithError(err).Error("FeedbackService: error updating feedback")
		return nil, MapRepoError(err, "updating feedback")
	}
	return fb, nil
}

func (s *feedbackService) DeleteFeedback(ctx context.Context, id string) error {
	if _, err := s.remove.Mutate(ctx, id); err != nil {
		logrus.WithField("id", id).WithError(err).Error("FeedbackService: error deleting feedback")
		return MapRepoError(err, "deleting feedback")
	}
	return nil
}

func (s *feedbackService) IsPending(op Op) bool {
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
