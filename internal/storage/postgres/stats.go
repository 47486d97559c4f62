package postgres

import (
	"context"
	"time"

	"ats-api/internal/models"
	"ats-api/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

// globalStatsID is the id of the single summary row.
const globalStatsID = "global"

type statsRow struct {
	ID                    string     `db:"id"`
	TotalJobs             *int       `db:"total_jobs"`
	ActiveJobs            *int       `db:"active_jobs"`
	TotalCandidates       *int       `db:"total_candidates"`
	NewCandidatesThisWeek *int       `db:"new_candidates_this_week"`
	ScheduledInterviews   *int       `db:"scheduled_interviews"`
	AverageDaysToHire     *float64   `db:"average_days_to_hire"`
	LastUpdated           *time.Time `db:"last_updated"`
}

func (r statsRow) toModel() models.DashboardStats {
	s := models.DashboardStats{
		TotalJobs:             derefInt(r.TotalJobs),
		ActiveJobs:            derefInt(r.ActiveJobs),
		TotalCandidates:       derefInt(r.TotalCandidates),
		NewCandidatesThisWeek: derefInt(r.NewCandidatesThisWeek),
		ScheduledInterviews:   derefInt(r.ScheduledInterviews),
	}
	if r.AverageDaysToHire != nil {
		s.AverageDaysToHire = *r.AverageDaysToHire
	}
	if r.LastUpdated != nil {
		s.LastUpdated = r.LastUpdated.UTC()
	}
	return s
}

// StatsRepo reads the precomputed summary row. The application never
// writes it.
type StatsRepo struct {
	db Querier
}

func NewStatsRepo(db *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{db: db}
}

var _ storage.StatsRepository = (*StatsRepo)(nil)

func (r *StatsRepo) Get(ctx context.Context) (*models.DashboardStats, error) {
	query := `
		SELECT id, total_jobs, active_jobs, total_candidates, new_candidates_this_week,
		       scheduled_interviews, average_days_to_hire, last_updated
		FROM stats
		WHERE id = $1
	`
	stats, err := oneRow(ctx, r.db, query, statsRow.toModel, globalStatsID)
	if err != nil {
		logFailure("stats", "get", globalStatsID, err)
		return nil, err
	}
	return stats, nil
}
