package routes

import (
	"ats-api/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterCandidateRoutes registers all routes related to candidates.
func RegisterCandidateRoutes(rg *gin.RouterGroup, candidateHandler handlers.CandidateHandlerInterface) {
	candidates := rg.Group("/candidates")
	{
		candidates.GET("", candidateHandler.ListCandidates)
		candidates.GET("/roles", candidateHandler.ListRoles)
		candidates.GET("/:id", candidateHandler.GetCandidateByID)
		candidates.POST("", candidateHandler.CreateCandidate)
		candidates.PATCH("/:id", candidateHandler.UpdateCandidate)
		candidates.DELETE("/:id", candidateHandler.DeleteCandidate)
		candidates.POST("/:id/image", candidateHandler.UploadImage) // multipart field "file"
	}
}
