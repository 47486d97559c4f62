package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ats-api/internal/api/handlers"
	"ats-api/internal/models"
	"ats-api/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryHandler_GetQueryState(t *testing.T) {
	client := query.NewClient(query.NewMemoryStore())
	router := newTestRouter()
	router.GET("/queries/:entity", handlers.NewQueryHandler(client).GetQueryState)

	get := func(path string) (*httptest.ResponseRecorder, handlers.QueryStateResponse) {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(recorder, request)
		var resp handlers.QueryStateResponse
		if recorder.Code == http.StatusOK {
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		}
		return recorder, resp
	}

	t.Run("Unknown entity", func(t *testing.T) {
		recorder, _ := get("/queries/users")
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("Never fetched", func(t *testing.T) {
		recorder, resp := get("/queries/jobs")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, resp.IsLoading)
		assert.False(t, resp.IsError)
		assert.Empty(t, resp.Data)
	})

	t.Run("After a fetch", func(t *testing.T) {
		_, err := query.Fetch(context.Background(), client, query.List(query.EntityJobs), func(context.Context) ([]models.Job, error) {
			return []models.Job{{ID: "j1"}}, nil
		})
		require.NoError(t, err)

		recorder, resp := get("/queries/jobs")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, string(query.StatusSuccess), resp.Status)
		assert.False(t, resp.IsLoading)
		assert.Contains(t, string(resp.Data), `"id":"j1"`)
	})

	t.Run("After a failure", func(t *testing.T) {
		_, err := query.Fetch(context.Background(), client, query.List(query.EntityStats), func(context.Context) (*models.DashboardStats, error) {
			return nil, errors.New("timeout")
		})
		require.Error(t, err)

		recorder, resp := get("/queries/stats")
		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Equal(t, string(query.StatusError), resp.Status)
		assert.False(t, resp.Fetching)
		assert.True(t, resp.IsError)
		assert.False(t, resp.IsLoading)
		assert.Equal(t, "timeout", resp.Error)
	})
}

func TestHealthHandler(t *testing.T) {
	router := newTestRouter()
	router.GET("/up", handlers.NewHealthHandler(fakePinger{}).HealthCheck)
	router.GET("/down", handlers.NewHealthHandler(fakePinger{err: errDown}).HealthCheck)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/up", nil)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())

	recorder = httptest.NewRecorder()
	request, _ = http.NewRequest(http.MethodGet, "/down", nil)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
