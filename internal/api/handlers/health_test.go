package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajeev970/smartagri-go/internal/forecast"
	"github.com/rajeev970/smartagri-go/internal/repository"
	"github.com/rajeev970/smartagri-go/internal/services"
)

func TestHealthDemoMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := newTestLogger()

	dir := t.TempDir()
	writeModelArtifacts(t, dir, "Rice", 0.5, 0, 1)

	repo := repository.NewPriceRepositoryWithQuerier(nil, logger)
	svc := services.NewForecastService(repo, forecast.NewArtifactStore(dir), 60, logger)
	handler := NewHealthHandler(nil, nil, svc)

	router := gin.New()
	router.GET("/health", handler.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Status   string `json:"status"`
		Services struct {
			Database string `json:"database"`
			Redis    string `json:"redis"`
			Models   string `json:"models"`
		} `json:"services"`
		TrainedModels int `json:"trained_models"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "disabled", resp.Services.Database)
	assert.Equal(t, "disabled", resp.Services.Redis)
	assert.Equal(t, "healthy", resp.Services.Models)
	assert.Equal(t, 1, resp.TrainedModels)
}
