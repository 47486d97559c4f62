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

const interviewColumns = `id, candidate_id, candidate_name, job_id, job_title, interviewers, stage, scheduled_date, duration, status, notes`

type interviewRow struct {
	ID            string                 `db:"id"`
	CandidateID   string                 `db:"candidate_id"`
	CandidateName string                 `db:"candidate_name"`
	JobID         string                 `db:"job_id"`
	JobTitle      string                 `db:"job_title"`
	Interviewers  []string               `db:"interviewers"`
	Stage         models.InterviewStage  `db:"stage"`
	ScheduledDate time.Time              `db:"scheduled_date"`
	Duration      int                    `db:"duration"`
	Status        models.InterviewStatus `db:"status"`
	Notes         *string                `db:"notes"`
}

func (r interviewRow) toModel() models.Interview {
	return models.Interview{
		ID:            r.ID,
		CandidateID:   r.CandidateID,
		CandidateName: r.CandidateName,
		JobID:         r.JobID,
		JobTitle:      r.JobTitle,
		Interviewers:  nonNil(r.Interviewers),
		Stage:         r.Stage,
		ScheduledDate: r.ScheduledDate.UTC(),
		Duration:      r.Duration,
		Status:        r.Status,
		Notes:         derefString(r.Notes),
	}
}

// InterviewRepo implements the storage.InterviewRepository interface using PostgreSQL.
type InterviewRepo struct {
	db Querier
}

func NewInterviewRepo(db *pgxpool.Pool) *InterviewRepo {
	return &InterviewRepo{db: db}
}

func (r *InterviewRepo) WithTx(tx pgx.Tx) storage.InterviewRepository {
	return &InterviewRepo{db: tx}
}

var _ storage.InterviewRepository = (*InterviewRepo)(nil)

// List returns interviews in calendar order, earliest first.
func (r *InterviewRepo) List(ctx context.Context) ([]models.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews ORDER BY scheduled_date ASC`
	interviews, err := listRows(ctx, r.db, query, interviewRow.toModel)
	if err != nil {
		logFailure("interviews", "list", "", err)
		return nil, err
	}
	return interviews, nil
}

func (r *InterviewRepo) GetByID(ctx context.Context, id string) (*models.Interview, error) {
	query := `SELECT ` + interviewColumns + ` FROM interviews WHERE id = $1`
	interview, err := oneRow(ctx, r.db, query, interviewRow.toModel, id)
	if err != nil {
		logFailure("interviews", "get", id, err)
		return nil, err
	}
	return interview, nil
}

func (r *InterviewRepo) Create(ctx context.Context, draft *storage.InterviewDraft) (*models.Interview, error) {
	var notes *string
	if draft.Notes != "" {
		notes = &draft.Notes
	}

	query := `
		INSERT INTO interviews (id, candidate_id, candidate_name, job_id, job_title, interviewers, stage, scheduled_date, duration, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + interviewColumns

	interview, err := oneRow(ctx, r.db, query, interviewRow.toModel,
		uuid.NewString(),
		draft.CandidateID,
		draft.CandidateName,
		draft.JobID,
		draft.JobTitle,
		nonNil(draft.Interviewers),
		draft.Stage,
		draft.ScheduledDate,
		draft.Duration,
		draft.Status,
		notes,
	)
	if err != nil {
		logFailure("interviews", "create", "", err)
		return nil, err
	}
	return interview, nil
}

// Update merges patch into the interview. The candidate and job snapshots
// are never rewritten.
func (r *InterviewRepo) Update(ctx context.Context, id string, patch *storage.InterviewPatch) (*models.Interview, error) {
	var b setBuilder
	if patch.Interviewers != nil {
		b.set("interviewers", patch.Interviewers)
	}
	if patch.Stage != nil {
		b.set("stage", *patch.Stage)
	}
	if patch.ScheduledDate != nil {
		b.set("scheduled_date", *patch.ScheduledDate)
	}
	if patch.Duration != nil {
		b.set("duration", *patch.Duration)
	}
	if patch.Status != nil {
		b.set("status", *patch.Status)
	}
	if patch.Notes != nil {
		b.set("notes", *patch.Notes)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.updateQuery("interviews", interviewColumns, id, true)
	interview, err := oneRow(ctx, r.db, query, interviewRow.toModel, args...)
	if err != nil {
		logFailure("interviews", "update", id, err)
		return nil, err
	}
	return interview, nil
}

func (r *InterviewRepo) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.db, "interviews", id); err != nil {
		logFailure("interviews", "delete", id, err)
		return err
	}
	return nil
}
