package app

import (
	"context"
	"fmt"

	"ats-api/config"
	"ats-api/internal/database"
	"ats-api/internal/query"
	"ats-api/internal/query/redisstore"
	"ats-api/internal/services"
	"ats-api/internal/storage"
	"ats-api/internal/storage/blob"
	"ats-api/internal/storage/postgres"
	"ats-api/internal/validation"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Application holds core application dependencies.
type Application struct {
	Config      *config.Config
	DBPool      *pgxpool.Pool
	RedisClient *redis.Client // nil unless cache.backend is redis
	QueryClient *query.Client
	Validator   *validation.Validator

	JobService       services.JobService
	CandidateService services.CandidateService
	InterviewService services.InterviewService
	FeedbackService  services.FeedbackService
	StageService     services.StageService
	DashboardService services.DashboardService
}

// New connects to the database, the cache backend and the image bucket, and
// wires the services on top of them.
func New(ctx context.Context, cfg *config.Config) (*Application, error) {
	dbPool, err := database.NewConnectionPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	a := &Application{Config: cfg, DBPool: dbPool, Validator: validation.New()}

	var store query.Store
	switch cfg.Cache.Backend {
	case config.CacheBackendRedis:
		a.RedisClient, err = database.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			a.Close()
			return nil, err
		}
		store = redisstore.New(a.RedisClient, cfg.Cache.RedisTTL)
	case "", config.CacheBackendMemory:
		store = query.NewMemoryStore()
	default:
		a.Close()
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
	a.QueryClient = query.NewClient(store, query.WithStaleTime(cfg.Cache.StaleTime))

	var images storage.ImageStore
	if cfg.Storage.Bucket != "" {
		s3Store, err := blob.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to configure image storage: %w", err)
		}
		images = s3Store
	} else {
		logrus.Warn("storage.bucket is empty, candidate image uploads are disabled")
	}

	a.wireServices(postgres.NewRepositories(dbPool), images)
	return a, nil
}

func (a *Application) wireServices(repos *postgres.Repositories, images storage.ImageStore) {
	a.JobService = services.NewJobService(repos.Jobs, a.QueryClient, a.Validator)
	a.CandidateService = services.NewCandidateService(repos.Candidates, images, a.QueryClient, a.Validator)
	a.InterviewService = services.NewInterviewService(repos.Interviews, repos.Candidates, repos.Jobs, a.QueryClient, a.Validator)
	a.FeedbackService = services.NewFeedbackService(repos.Feedback, repos.Candidates, a.QueryClient, a.Validator)
	a.StageService = services.NewStageService(repos.StageConfig, a.QueryClient, a.Validator)
	a.DashboardService = services.NewDashboardService(repos.Stats, repos.Candidates, repos.StageConfig, a.QueryClient)
}

// Close releases the database pool and the Redis connection.
func (a *Application) Close() {
	if a.RedisClient != nil {
		if err := a.RedisClient.Close(); err != nil {
			logrus.WithError(err).Warn("error closing Redis client")
		}
	}
	if a.DBPool != nil {
		a.DBPool.Close()
	}
}
