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

const candidateColumns = `id, name, email, phone, role, current_stage, applied_date, tags, image_url`

type candidateRow struct {
	ID           string                `db:"id"`
	Name         string                `db:"name"`
	Email        string                `db:"email"`
	Phone        *string               `db:"phone"`
	Role         string                `db:"role"`
	CurrentStage models.InterviewStage `db:"current_stage"`
	AppliedDate  *time.Time            `db:"applied_date"`
	Tags         []string              `db:"tags"`
	ImageURL     *string               `db:"image_url"`
}

func (r candidateRow) toModel() models.Candidate {
	c := models.Candidate{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Phone:        derefString(r.Phone),
		Role:         r.Role,
		CurrentStage: r.CurrentStage,
		Tags:         nonNil(r.Tags),
		ImageURL:     derefString(r.ImageURL),
	}
	if r.AppliedDate != nil {
		c.AppliedDate = r.AppliedDate.UTC()
	}
	return c
}

// CandidateRepo implements the storage.CandidateRepository interface using PostgreSQL.
type CandidateRepo struct {
	db Querier
}

// NewCandidateRepo creates a new CandidateRepo.
func NewCandidateRepo(db *pgxpool.Pool) *CandidateRepo {
	return &CandidateRepo{db: db}
}

func (r *CandidateRepo) WithTx(tx pgx.Tx) storage.CandidateRepository {
	return &CandidateRepo{db: tx}
}

var _ storage.CandidateRepository = (*CandidateRepo)(nil)

// List returns every candidate, most recent application first.
func (r *CandidateRepo) List(ctx context.Context) ([]models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY applied_date DESC NULLS LAST`
	candidates, err := listRows(ctx, r.db, query, candidateRow.toModel)
	if err != nil {
		logFailure("candidates", "list", "", err)
		return nil, err
	}
	return candidates, nil
}

func (r *CandidateRepo) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`
	c, err := oneRow(ctx, r.db, query, candidateRow.toModel, id)
	if err != nil {
		logFailure("candidates", "get", id, err)
		return nil, err
	}
	return c, nil
}

// Create inserts a candidate; applied_date defaults to now in the store.
func (r *CandidateRepo) Create(ctx context.Context, draft *storage.CandidateDraft) (*models.Candidate, error) {
	query := `
		INSERT INTO candidates (id, name, email, phone, role, current_stage, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + candidateColumns

	c, err := oneRow(ctx, r.db, query, candidateRow.toModel,
		uuid.NewString(),
		draft.Name,
		draft.Email,
		draft.Phone,
		draft.Role,
		draft.CurrentStage,
		nonNil(draft.Tags),
	)
	if err != nil {
		logFailure("candidates", "create", "", err)
		return nil, err
	}
	return c, nil
}

func (r *CandidateRepo) Update(ctx context.Context, id string, patch *storage.CandidatePatch) (*models.Candidate, error) {
	var b setBuilder
	if patch.Name != nil {
		b.set("name", *patch.Name)
	}
	if patch.Email != nil {
		b.set("email", *patch.Email)
	}
	if patch.Phone != nil {
		b.set("phone", *patch.Phone)
	}
	if patch.Role != nil {
		b.set("role", *patch.Role)
	}
	if patch.CurrentStage != nil {
		b.set("current_stage", *patch.CurrentStage)
	}
	if patch.Tags != nil {
		b.set("tags", patch.Tags)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.updateQuery("candidates", candidateColumns, id, true)
	c, err := oneRow(ctx, r.db, query, candidateRow.toModel, args...)
	if err != nil {
		logFailure("candidates", "update", id, err)
		return nil, err
	}
	return c, nil
}

// UpdateImageURL records the public URL of an uploaded picture.
func (r *CandidateRepo) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	cmdTag, err := r.db.Exec(ctx,
		`UPDATE candidates SET image_url = $1, updated_at = NOW() WHERE id = $2`, imageURL, id)
	if err != nil {
		err = mapError(err)
		logFailure("candidates", "update_image", id, err)
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// Delete removes the candidate. Interviews and feedback that reference it
// are left in place.
func (r *CandidateRepo) Delete(ctx context.Context, id string) error {
	if err := deleteByID(ctx, r.db, "candidates", id); err != nil {
		logFailure("candidates", "delete", id, err)
		return err
	}
	return nil
}
