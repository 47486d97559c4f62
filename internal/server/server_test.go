package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"ats-api/config"
	"ats-api/internal/app"
	"ats-api/internal/query"
	"ats-api/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestServer() *Server {
	cfg := &config.Config{
		Server: config.ServerConfig{Host: "localhost", Port: 0, Mode: gin.TestMode},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}
	return NewServer(&app.Application{
		Config:      cfg,
		QueryClient: query.NewClient(query.NewMemoryStore()),
		Validator:   validation.New(),
	})
}

func TestServer_MiddlewareChain(t *testing.T) {
	srv := newTestServer()

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodGet, "/api/v1/queries/stats", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	srv.Handler().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"))
	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_RejectsUnknownOrigin(t *testing.T) {
	srv := newTestServer()

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodOptions, "/api/v1/jobs", nil)
	request.Header.Set("Origin", "https://evil.example.com")
	request.Header.Set("Access-Control-Request-Method", http.MethodGet)
	srv.Handler().ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsConfig_Wildcard(t *testing.T) {
	cfg := corsConfig([]string{"*"})
	assert.True(t, cfg.AllowOriginFunc("https://anything.example.com"))
	assert.False(t, corsConfig(nil).AllowOriginFunc("https://anything.example.com"))
}
