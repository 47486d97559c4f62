package services

import (
	"context"
	"errors"
	"fmt"

	"ats-api/internal/models"
	"ats-api/internal/query"
	"ats-api/internal/storage"
	"ats-api/internal/validation"

	"github.com/sirupsen/logrus"
)

// Mutation kinds reported by IsPending.
type Op string

const (
	OpCreate Op = "create"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
	OpUpload Op = "upload"
)

// MapRepoError maps storage errors to service errors. The storage error
// stays in the chain.
func MapRepoError(err error, operation string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	case errors.Is(err, storage.ErrValidation):
		return fmt.Errorf("%w: %s: %w", ErrValidation, operation, err)
	case errors.Is(err, storage.ErrTransport):
		return fmt.Errorf("%w: %s: %w", ErrTransport, operation, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}
	// Log other unexpected errors
	logrus.WithField("op", operation).WithError(err).Error("unexpected repository error")
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// invalidForm wraps local validation failures so handlers can recover the
// per-field messages with errors.As.
func invalidForm(err error) error {
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// validate runs the form validator. A nil validator accepts everything.
func validate(v *validation.Validator, form any) error {
	if v == nil {
		return nil
	}
	if err := v.Validate(form); err != nil {
		return invalidForm(err)
	}
	return nil
}

// updateArgs is the input of an update mutation.
type updateArgs[P any] struct {
	id    string
	patch P
}

// fetchCandidates is shared by every service that needs the candidates
// list so they all hit the same cache entry.
func fetchCandidates(ctx context.Context, client *query.Client, repo storage.CandidateRepository) ([]models.Candidate, error) {
	return query.Fetch(ctx, client, query.List(query.EntityCandidates), repo.List)
}

func fetchCandidate(ctx context.Context, client *query.Client, repo storage.CandidateRepository, id string) (*models.Candidate, error) {
	return query.Fetch(ctx, client, query.Detail(query.EntityCandidates, id), func(ctx context.Context) (*models.Candidate, error) {
		return repo.GetByID(ctx, id)
	})
}

func fetchJob(ctx context.Context, client *query.Client, repo storage.JobRepository, id string) (*models.Job, error) {
	return query.Fetch(ctx, client, query.Detail(query.EntityJobs, id), func(ctx context.Context) (*models.Job, error) {
		return repo.GetByID(ctx, id)
	})
}

func fetchStageConfig(ctx context.Context, client *query.Client, repo storage.StageConfigRepository) ([]models.StageConfig, error) {
	return query.Fetch(ctx, client, query.List(query.EntityStageConfig), repo.List)
}
