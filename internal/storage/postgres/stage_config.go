package postgres

import (
	"context"

	"ats-api/internal/models"
	"ats-api/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const stageConfigColumns = `id, label, color, sort_order`

type stageConfigRow struct {
	ID        models.InterviewStage `db:"id"`
	Label     string                `db:"label"`
	Color     string                `db:"color"`
	SortOrder int                   `db:"sort_order"`
}

func (r stageConfigRow) toModel() models.StageConfig {
	return models.StageConfig{
		ID:        r.ID,
		Label:     r.Label,
		Color:     r.Color,
		SortOrder: r.SortOrder,
	}
}

// StageConfigRepo reads the stage_config lookup table.
type StageConfigRepo struct {
	db Querier
}

func NewStageConfigRepo(db *pgxpool.Pool) *StageConfigRepo {
	return &StageConfigRepo{db: db}
}

func (r *StageConfigRepo) WithTx(tx pgx.Tx) storage.StageConfigRepository {
	return &StageConfigRepo{db: tx}
}

var _ storage.StageConfigRepository = (*StageConfigRepo)(nil)

func (r *StageConfigRepo) List(ctx context.Context) ([]models.StageConfig, error) {
	query := `SELECT ` + stageConfigColumns + ` FROM stage_config ORDER BY sort_order ASC`
	stages, err := listRows(ctx, r.db, query, stageConfigRow.toModel)
	if err != nil {
		logFailure("stage_config", "list", "", err)
		return nil, err
	}
	return stages, nil
}

func (r *StageConfigRepo) GetByID(ctx context.Context, id models.InterviewStage) (*models.StageConfig, error) {
	query := `SELECT ` + stageConfigColumns + ` FROM stage_config WHERE id = $1`
	stage, err := oneRow(ctx, r.db, query, stageConfigRow.toModel, id)
	if err != nil {
		logFailure("stage_config", "get", string(id), err)
		return nil, err
	}
	return stage, nil
}

// Update changes how a stage is displayed. Stages themselves are fixed.
func (r *StageConfigRepo) Update(ctx context.Context, id models.InterviewStage, patch *storage.StageConfigPatch) (*models.StageConfig, error) {
	var b setBuilder
	if patch.Label != nil {
		b.set("label", *patch.Label)
	}
	if patch.Color != nil {
		b.set("color", *patch.Color)
	}
	if patch.SortOrder != nil {
		b.set("sort_order", *patch.SortOrder)
	}
	if b.empty() {
		return r.GetByID(ctx, id)
	}

	query, args := b.updateQuery("stage_config", stageConfigColumns, string(id), false)
	stage, err := oneRow(ctx, r.db, query, stageConfigRow.toModel, args...)
	if err != nil {
		logFailure("stage_config", "update", string(id), err)
		return nil, err
	}
	return stage, nil
}
