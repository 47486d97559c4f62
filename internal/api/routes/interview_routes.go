package routes

import (
	"ats-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterInterviewRoutes registers all routes related to interviews.
func RegisterInterviewRoutes(rg *gin.RouterGroup, interviewHandler handlers.InterviewHandlerInterface) {
	interviews := rg.Group("/interviews")
	{
		interviews.GET("", interviewHandler.ListInterviews)
		interviews.GET("/:id", interviewHandler.GetInterviewByID)
		interviews.POST("", interviewHandler.ScheduleInterview)
		interviews.PATCH("/:id", interviewHandler.UpdateInterview)
		interviews.DELETE("/:id", interviewHandler.DeleteInterview)
	}
}
