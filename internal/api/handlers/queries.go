package handlers

import (
	"encoding/json"
	"net/http"

	"ats-api/internal/query"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// QueryStateResponse is the loading/error view of a cached collection.
type QueryStateResponse struct {
	Entity    string          `json:"entity"`
	Status    string          `json:"status"`
	Fetching  bool            `json:"fetching"`
	IsLoading bool            `json:"isLoading"`
	IsError   bool            `json:"isError"`
	Error     string          `json:"error,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

// QueryHandler exposes the cache state of each collection without
// triggering a fetch.
type QueryHandler struct {
	client *query.Client
}

func NewQueryHandler(client *query.Client) *QueryHandler {
	return &QueryHandler{client: client}
}

// GetQueryState godoc
// @Summary      Cache state of a collection
// @Tags         queries
// @Produce      json
// @Param        entity path string true "jobs, candidates, interviews, feedback, stage_config or stats"
// @Success      200 {object} QueryStateResponse
// @Router       /queries/{entity} [get]
func (h *QueryHandler) GetQueryState(c *gin.Context) {
	entity := c.Param("entity")
	if !query.KnownEntity(entity) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown query"})
		return
	}

	ctx := c.Request.Context()
	key := query.List(entity)
	st := h.client.State(ctx, key)
	res, err := query.Decode[json.RawMessage](key, st)
	if err != nil {
		logrus.WithField("entity", entity).WithError(err).Error("Failed to decode cached query")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read query state"})
		return
	}

	resp := QueryStateResponse{
		Entity:    entity,
		Status:    string(st.Status),
		Fetching:  st.Fetching,
		IsLoading: res.IsLoading,
		IsError:   res.IsError,
		Data:      res.Data,
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	c.JSON(http.StatusOK, resp)
}
