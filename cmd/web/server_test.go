package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"items-backend/internal/config"
)

func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/items", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Widget","description":null,"created_at":"2024-05-01T10:30:00Z"}]`))
	}))
	defer api.Close()

	router, err := SetupRouter(&config.Config{
		Web: config.WebConfig{Port: "3000", APIBaseURL: api.URL, APITimeout: time.Second},
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Widget")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
