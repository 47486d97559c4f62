package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"ats-api/internal/models"
	"ats-api/internal/query"
	"ats-api/internal/storage"
	"ats-api/internal/storage/blob"
	"ats-api/internal/transport/dto"
	"ats-api/internal/validation"

	"github.com/sirupsen/logrus"
)

// imageUpload is the input of the picture upload mutation.
type imageUpload struct {
	candidateID string
	key         string
	contentType string
	body        io.Reader
}

type candidateService struct {
	candidateRepo storage.CandidateRepository
	images        storage.ImageStore
	client        *query.Client
	validator     *validation.Validator

	create *query.Mutation[*storage.CandidateDraft, *models.Candidate]
	update *query.Mutation[updateArgs[*storage.CandidatePatch], *models.Candidate]
	remove *query.Mutation[string, struct{}]
	upload *query.Mutation[imageUpload, string]
}

// NewCandidateService creates a new instance of CandidateService. images may
// be nil when no bucket is configured; uploads then fail.
func NewCandidateService(candidateRepo storage.CandidateRepository, images storage.ImageStore, client *query.Client, v *validation.Validator) CandidateService {
	s := &candidateService{candidateRepo: candidateRepo, images: images, client: client, validator: v}

	s.create = query.NewMutation(client, candidateRepo.Create, query.EntityCandidates, query.EntityStats)
	s.update = query.NewMutation(client, func(ctx context.Context, in updateArgs[*storage.CandidatePatch]) (*models.Candidate, error) {
		return candidateRepo.Update(ctx, in.id, in.patch)
	}, query.EntityCandidates, query.EntityStats)
	s.remove = query.NewMutation(client, func(ctx context.Context, id string) (struct{}, error) {
		err := candidateRepo.Delete(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return struct{}{}, nil
		}
		return struct{}{}, err
	}, query.EntityCandidates, query.EntityStats)
	s.upload = query.NewMutation(client, s.storeImage, query.EntityCandidates)

	return s
}

func (s *candidateService) ListCandidates(ctx context.Context, req *dto.ListCandidatesRequest) ([]models.Candidate, error) {
	candidates, err := fetchCandidates(ctx, s.client, s.candidateRepo)
	if err != nil {
		return nil, MapRepoError(err, "listing candidates")
	}
	return FilterCandidates(candidates, req), nil
}

func (s *candidateService) Roles(ctx context.Context) ([]string, error) {
	candidates, err := s.ListCandidates(ctx, nil)
	if err != nil {
		return nil, err
	}
	return Roles(candidates), nil
}

func (s *candidateService) GetCandidate(ctx context.Context, id string) (*models.Candidate, error) {
	c, err := fetchCandidate(ctx, s.client, s.candidateRepo, id)
	if err != nil {
		return nil, MapRepoError(err, "getting candidate by ID")
	}
	return c, nil
}

func (s *candidateService) CreateCandidate(ctx context.Context, req *dto.CreateCandidateRequest) (*models.Candidate, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	c, err := s.create.Mutate(ctx, req.ToDraft())
	if err != nil {
		logrus.WithError(err).Error("CandidateService: error creating candidate")
		return nil, MapRepoError(err, "creating candidate")
	}
	return c, nil
}

// UpdateCandidate merges the submitted fields. Any stage may be set
// directly; there is no forward-only rule.
func (s *candidateService) UpdateCandidate(ctx context.Context, id string, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	if err := validate(s.validator, req); err != nil {
		return nil, err
	}

	c, err := s.update.Mutate(ctx, updateArgs[*storage.CandidatePatch]{id: id, patch: req.ToPatch()})
	if err != nil {
		logrus.WithField("id", id).WithError(err).Error("CandidateService: error updating candidate")
		return nil, MapRepoError(err, "updating candidate")
	}
	return c, nil
}

// DeleteCandidate removes the candidate only; interviews and feedback that
// reference it are kept.
func (s *candidateService) DeleteCandidate(ctx context.Context, id string) error {
	if _, err := s.remove.Mutate(ctx, id); err != nil {
		logrus.WithField("id", id).WithError(err).Error("CandidateService: error deleting candidate")
		return MapRepoError(err, "deleting candidate")
	}
	return nil
}

// UploadImage stores the picture as <id>.<ext>, replacing any previous one,
// and records its public URL on the candidate. If recording fails the
// uploaded object stays in the bucket unreferenced; it is not retried.
func (s *candidateService) UploadImage(ctx context.Context, id, filename, contentType string, body io.Reader) (string, error) {
	key, err := blob.ImageKey(id, filename)
	if err != nil {
		return "", invalidForm(validation.FieldErrors{"file": "Image file must have an extension."})
	}

	url, err := s.upload.Mutate(ctx, imageUpload{candidateID: id, key: key, contentType: contentType, body: body})
	if err != nil {
		logrus.WithFields(logrus.Fields{"id": id, "key": key}).WithError(err).Error("CandidateService: error uploading image")
		return "", MapRepoError(err, "uploading candidate image")
	}
	return url, nil
}

func (s *candidateService) storeImage(ctx context.Context, in imageUpload) (string, error) {
	if s.images == nil {
		return "", fmt.Errorf("%w: no image bucket configured", storage.ErrTransport)
	}
	if err := s.images.Upload(ctx, in.key, in.contentType, in.body); err != nil {
		return "", err
	}
	url := s.images.PublicURL(in.key)
	if err := s.candidateRepo.UpdateImageURL(ctx, in.candidateID, url); err != nil {
		logrus.WithFields(logrus.Fields{"id": in.candidateID, "key": in.key}).Warn("image uploaded but candidate record not updated")
		return "", err
	}
	return url, nil
}

func (s *candidateService) IsPending(op Op) bool {
	switch op {
	case OpCreate:
		return s.create.IsPending()
	case OpUpdate:
		return s.update.IsPending()
	case OpDelete:
		return s.remove.IsPending()
	case OpUpload:
		return s.upload.IsPending()
	}
	return false
}
