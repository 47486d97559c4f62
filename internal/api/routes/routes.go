package routes

import (
	"ats-api/internal/api/handlers"
	"ats-api/internal/app"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// RegisterRoutes sets up the API routes by calling resource-specific registration functions
func RegisterRoutes(router *gin.Engine, app *app.Application) {
	var db handlers.Pinger
	if app.DBPool != nil {
		db = app.DBPool
	}
	health := handlers.NewHealthHandler(db)
	router.GET("/health", health.HealthCheck)

	apiV1 := router.Group("/api/v1")

	RegisterJobRoutes(apiV1, handlers.NewJobHandler(app.JobService, app.Validator))
	RegisterCandidateRoutes(apiV1, handlers.NewCandidateHandler(app.CandidateService, app.Validator))
	RegisterInterviewRoutes(apiV1, handlers.NewInterviewHandler(app.InterviewService, app.Validator))
	RegisterFeedbackRoutes(apiV1, handlers.NewFeedbackHandler(app.FeedbackService, app.Validator))
	RegisterStageRoutes(apiV1, handlers.NewStageHandler(app.StageService))
	RegisterDashboardRoutes(apiV1, handlers.NewDashboardHandler(app.DashboardService))
	RegisterQueryRoutes(apiV1, handlers.NewQueryHandler(app.QueryClient))

	logrus.Info("API routes registered")
}
