// internal/storage/postgres/jobs.go
package postgres

import (
	"context"
	"time"

	"ats-api/internal/models"
	"ats-api/internal/storage"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, title, department, location, type, status, applicants, date_posted`

// jobRow is the wire shape of a jobs row.
type jobRow struct {
	ID         string           `db:"id"`
	Title      string           `db:"title"`
	Department string           `db:"department"`
	Location   string           `db:"location"`
	Type       string           `db:"type"`
	Status     models.JobStatus `db:"status"`
	Applicants *int             `db:"applicants"`
	DatePosted *time.Time       `db:"date_posted"`
}

func (r jobRow) toModel() models.Job {
	job := models.Job{
		ID:         r.ID,
		Title:      r.Title,
		Department: r.Department,
		Location:   r.Location,
		Type:       r.Type,
		Status:     r.Status,
		Applicants: derefInt(r.Applicants),
	}
	if r.DatePosted != nil {
		job.DatePosted = r.DatePosted.UTC()
	}
	return job
}

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// WithTx creates a new JobRepo bound to the transaction.
func (r *JobRepo) WithTx(tx pgx.Tx) storage.JobRepository {
	return &JobRepo{db: tx}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

// List returns every job, newest posting first.
func (r *JobRepo) List(ctx context.Context) ([]models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY date_posted DESC NULLS LAST`
	jobs, err := listRows(ctx, r.db, query, jobRow.toModel)
	if err != nil {
		logFailure("jobs", "list", "", err)
		return nil, err
	}
	return jobs, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*models.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := oneRow(ctx, r.db, query, jobRow.toModel, id)
	if err != nil {
		logFailure("jobs", "get", id, err)
		return nil, err
	}
	return job, nil
}

// Create saves a new job posting. Applicants starts at zero and the posting
// date is assigned by the store.
func (r *JobRepo) Create(ctx context.Context, draft *storage.JobDraft) (*models.Job, error) {
	query := `
		INSERT INTO jobs (id, title, department, location, type, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + jobColumns

	job, err := oneRow(ctx, r.db, query, jobRow.toModel,
		uuid.NewString(),
		draft.Title,
		draft.Department,
		draft.Location,
		draft.Type,
		draft.Status,
	)
	if err != nil {
		logFailure("jobs", "create", "", err)
		return nil, err
	}
	return job, nil
}

// Update merges the non-nil fields of patch into the job.
func (r *JobRepo) Update(ctx context.Context, id string, patch *storage.JobPatch) (*models.Job, error) {
	var b setBuilder
	if patch.Title != nil {
		b.set("title", *patch.Title)
	}
	if patch.Department != nil {
		b.set("department", *patch.Department)
	}
	if patch.Location != nil {
		b.set("location", *patch.Location)
	}
	if patch.Type != nil {
		b.set("type", *patch.Type)
	}
	if patch.Status != nil {
		b.set("status", *patch.Status)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.updateQuery("jobs", jobColumns, id, true)
	job, err := oneRow(ctx, r.db, query, jobRow.toModel, args...)
	if err != nil {
		logFailure("jobs", "update", id, err)
		return nil, err
	}
	return job, nil
}

// Delete removes a job by its ID. Interviews referencing it are kept.
func (r *JobRepo) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.db, "jobs", id); err != nil {
		logFailure("jobs", "delete", id, err)
		return err
	}
	return nil
}
