package handlers

import (
	"net/http"

	"ats-api/internal/services"
	"ats-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// StageHandler serves the pipeline stage configuration.
type StageHandler struct {
	service services.StageService
}

func NewStageHandler(service services.StageService) *StageHandler {
	return &StageHandler{service: service}
}

// ListStages godoc
// @Summary      List pipeline stages
// @Tags         stages
// @Produce      json
// @Success      200 {array} models.StageConfig
// @Router       /stages [get]
func (h *StageHandler) ListStages(c *gin.Context) {
	stages, err := h.service.ListStages(c.Request.Context())
	if err != nil {
		respondError(c, err, "list stages")
		return
	}
	c.JSON(http.StatusOK, emptyIfNil(stages))
}

func (h *StageHandler) GetStageByID(c *gin.Context) {
	id, ok := parseStage(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stage not found"})
		return
	}

	stage, err := h.service.GetStage(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve stage")
		return
	}
	c.JSON(http.StatusOK, stage)
}

// UpdateStage godoc
// @Summary      Change a stage's label, color or order
// @Tags         stages
// @Accept       json
// @Produce      json
// @Param        id path string true "Stage ID"
// @Param        stage body dto.UpdateStageConfigRequest true "Fields to change"
// @Success      200 {object} models.StageConfig
// @Router       /stages/{id} [patch]
func (h *StageHandler) UpdateStage(c *gin.Context) {
	id, ok := parseStage(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Stage not found"})
		return
	}

	var req dto.UpdateStageConfigRequest
	if !bindJSON(c, &req) {
		return
	}

	stage, err := h.service.UpdateStage(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err, "update stage")
		return
	}
	c.JSON(http.StatusOK, stage)
}
