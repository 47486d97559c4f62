package postgres

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories groups the gateway for every table.
type Repositories struct {
	Jobs        *JobRepo
	Candidates  *CandidateRepo
	Interviews  *InterviewRepo
	Feedback    *FeedbackRepo
	StageConfig *StageConfigRepo
	Stats       *StatsRepo
}

func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		Jobs:        NewJobRepo(db),
		Candidates:  NewCandidateRepo(db),
		Interviews:  NewInterviewRepo(db),
		Feedback:    NewFeedbackRepo(db),
		StageConfig: NewStageConfigRepo(db),
		Stats:       NewStatsRepo(db),
	}
}
