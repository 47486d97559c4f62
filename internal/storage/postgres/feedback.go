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

const feedbackColumns = `id, candidate_id, interviewer_id, interviewer_name, stage, rating, notes, date`

type feedbackRow struct {
	ID              string                `db:"id"`
	CandidateID     string                `db:"candidate_id"`
	InterviewerID   string                `db:"interviewer_id"`
	InterviewerName string                `db:"interviewer_name"`
	Stage           models.InterviewStage `db:"stage"`
	Rating          int                   `db:"rating"`
	Notes           *string               `db:"notes"`
	Date            *time.Time            `db:"date"`
}

func (r feedbackRow) toModel() models.Feedback {
	f := models.Feedback{
		ID:              r.ID,
		CandidateID:     r.CandidateID,
		InterviewerID:   r.InterviewerID,
		InterviewerName: r.InterviewerName,
		Stage:           r.Stage,
		Rating:          r.Rating,
		Notes:           derefString(r.Notes),
	}
	if r.Date != nil {
		f.Date = r.Date.UTC()
	}
	return f
}

// FeedbackRepo implements the storage.FeedbackRepository interface using PostgreSQL.
type FeedbackRepo struct {
	db Querier
}

func NewFeedbackRepo(db *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{db: db}
}

func (r *FeedbackRepo) WithTx(tx pgx.Tx) storage.FeedbackRepository {
	return &FeedbackRepo{db: tx}
}

var _ storage.FeedbackRepository = (*FeedbackRepo)(nil)

// List returns feedback, most recent first.
func (r *FeedbackRepo) List(ctx context.Context) ([]models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback ORDER BY date DESC NULLS LAST`
	feedback, err := listRows(ctx, r.db, query, feedbackRow.toModel)
	if err != nil {
		logFailure("feedback", "list", "", err)
		return nil, err
	}
	return feedback, nil
}

func (r *FeedbackRepo) GetByID(ctx context.Context, id string) (*models.Feedback, error) {
	query := `SELECT ` + feedbackColumns + ` FROM feedback WHERE id = $1`
	f, err := oneRow(ctx, r.db, query, feedbackRow.toModel, id)
	if err != nil {
		logFailure("feedback", "get", id, err)
		return nil, err
	}
	return f, nil
}

func (r *FeedbackRepo) Create(ctx context.Context, draft *storage.FeedbackDraft) (*models.Feedback, error) {
	query := `
		INSERT INTO feedback (id, candidate_id, interviewer_id, interviewer_name, stage, rating, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + feedbackColumns

	f, err := oneRow(ctx, r.db, query, feedbackRow.toModel,
		uuid.NewString(),
		draft.CandidateID,
		draft.InterviewerID,
		draft.InterviewerName,
		draft.Stage,
		draft.Rating,
		draft.Notes,
	)
	if err != nil {
		logFailure("feedback", "create", "", err)
		return nil, err
	}
	return f, nil
}

func (r *FeedbackRepo) Update(ctx context.Context, id string, patch *storage.FeedbackPatch) (*models.Feedback, error) {
	var b setBuilder
	if patch.InterviewerName != nil {
		b.set("interviewer_name", *patch.InterviewerName)
	}
	if patch.Stage != nil {
		b.set("stage", *patch.Stage)
	}
	if patch.Rating != nil {
		b.set("rating", *patch.Rating)
	}
	if patch.Notes != nil {
		b.set("notes", *patch.Notes)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.updateQuery("feedback", feedbackColumns, id, true)
	f, err := oneRow(ctx, r.db, query, feedbackRow.toModel, args...)
	if err != nil {
		logFailure("feedback", "update", id, err)
		return nil, err
	}
	return f, nil
}

func (r *FeedbackRepo) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.db, "feedback", id); err != nil {
		logFailure("feedback", "delete", id, err)
		return err
	}
	return nil
}
