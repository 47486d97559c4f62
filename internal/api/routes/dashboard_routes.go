package routes

import (
	"ats-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterStageRoutes registers the pipeline stage configuration routes.
// Stages can be redecorated but not created or deleted.
func RegisterStageRoutes(rg *gin.RouterGroup, stageHandler handlers.StageHandlerInterface) {
	stages := rg.Group("/stages")
	{
		stages.GET("", stageHandler.ListStages)
		stages.GET("/:id", stageHandler.GetStageByID)
		stages.PATCH("/:id", stageHandler.UpdateStage)
	}
}

// RegisterDashboardRoutes registers the summary screen routes.
func RegisterDashboardRoutes(rg *gin.RouterGroup, dashboardHandler handlers.DashboardHandlerInterface) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
		dashboard.GET("/pipeline", dashboardHandler.GetPipeline)
	}
}

// RegisterQueryRoutes exposes the cache state of each collection.
func RegisterQueryRoutes(rg *gin.RouterGroup, queryHandler *handlers.QueryHandler) {
	rg.GET("/queries/:entity", queryHandler.GetQueryState)
}
