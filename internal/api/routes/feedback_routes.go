package routes

import (
	"ats-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterFeedbackRoutes registers all routes related to interview feedback.
func RegisterFeedbackRoutes(rg *gin.RouterGroup, feedbackHandler handlers.FeedbackHandlerInterface) {
	feedback := rg.Group("/feedback")
	{
		feedback.GET("", feedbackHandler.ListFeedback)
		feedback.GET("/:id", feedbackHandler.GetFeedbackByID)
		feedback.POST("", feedbackHandler.SubmitFeedback)
		feedback.PATCH("/:id", feedbackHandler.UpdateFeedback)
		feedback.DELETE("/:id", feedbackHandler.DeleteFeedback)
	}
}
