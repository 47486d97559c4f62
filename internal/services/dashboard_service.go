package services

import (
	"context"
	"sort"

	"ats-api/internal/models"
	"ats-api/internal/query"
	"ats-api/internal/storage"
)

type dashboardService struct {
	statsRepo     storage.StatsRepository
	candidateRepo storage.CandidateRepository
	stageRepo     storage.StageConfigRepository
	client        *query.Client
}

// NewDashboardService creates a new instance of DashboardService.
func NewDashboardService(statsRepo storage.StatsRepository, candidateRepo storage.CandidateRepository, stageRepo storage.StageConfigRepository, client *query.Client) DashboardService {
	return &dashboardService{
		statsRepo:     statsRepo,
		candidateRepo: candidateRepo,
		stageRepo:     stageRepo,
		client:        client,
	}
}

// Stats returns the store's precomputed summary. It is refreshed whenever a
// job, candidate or interview mutation invalidates it.
func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	stats, err := query.Fetch(ctx, s.client, query.List(query.EntityStats), s.statsRepo.Get)
	if err != nil {
		return nil, MapRepoError(err, "getting dashboard stats")
	}
	return stats, nil
}

// Pipeline counts candidates per stage. Every stage is present, ordered by
// its configured sort order.
func (s *dashboardService) Pipeline(ctx context.Context) ([]models.StageCount, error) {
	candidates, err := fetchCandidates(ctx, s.client, s.candidateRepo)
	if err != nil {
		return nil, MapRepoError(err, "listing candidates for pipeline")
	}
	stages, err := fetchStageConfig(ctx, s.client, s.stageRepo)
	if err != nil {
		return nil, MapRepoError(err, "listing stages for pipeline")
	}
	return PipelineCounts(candidates, stages), nil
}

// PipelineCounts groups candidates by current stage. Stages missing from
// configs keep their enum position after the configured ones and use the
// stage id as label.
func PipelineCounts(candidates []models.Candidate, configs []models.StageConfig) []models.StageCount {
	counts := make(map[models.InterviewStage]int, len(models.InterviewStages))
	for _, c := range candidates {
		counts[c.CurrentStage]++
	}

	byStage := make(map[models.InterviewStage]models.StageConfig, len(configs))
	for _, cfg := range configs {
		byStage[cfg.ID] = cfg
	}

	out := make([]models.StageCount, 0, len(models.InterviewStages))
	for _, stage := range models.InterviewStages {
		sc := models.StageCount{Stage: stage, Label: string(stage), Count: counts[stage]}
		if cfg, ok := byStage[stage]; ok {
			sc.Label = cfg.Label
			sc.Color = cfg.Color
		}
		out = append(out, sc)
	}

	sort.SliceStable(out, func(i, j int) bool {
		ci, iok := byStage[out[i].Stage]
		cj, jok := byStage[out[j].Stage]
		switch {
		case iok && jok:
			return ci.SortOrder < cj.SortOrder
		case iok != jok:
			return iok
		}
		return out[i].Stage.Position() < out[j].Stage.Position()
	})
	return out
}
