package handlers

import (
	"net/http"

	"ats-api/internal/services"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the summary screen.
type DashboardHandler struct {
	service services.DashboardService
}

func NewDashboardHandler(service services.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetStats godoc
// @Summary      Dashboard counters
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} models.DashboardStats
// @Router       /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "retrieve dashboard stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetPipeline godoc
// @Summary      Candidates per stage
// @Tags         dashboard
// @Produce      json
// @Success      200 {array} models.StageCount
// @Router       /dashboard/pipeline [get]
func (h *DashboardHandler) GetPipeline(c *gin.Context) {
	pipeline, err := h.service.Pipeline(c.Request.Context())
	if err != nil {
		respondError(c, err, "retrieve pipeline")
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(pipeline))
}
