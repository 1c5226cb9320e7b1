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

func newCropsRouter(t *testing.T, dir string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := newTestLogger()
	repo := repository.NewPriceRepositoryWithQuerier(nil, logger)
	svc := services.NewForecastService(repo, forecast.NewArtifactStore(dir), 60, logger)
	handler := NewCropsHandler(svc, logger)

	router := gin.New()
	router.GET("/api/crops/popular", handler.GetPopular)
	router.GET("/api/crops/trained", handler.GetTrained)
	return router
}

func TestGetPopular(t *testing.T) {
	router := newCropsRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/crops/popular", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 30)
}

func TestGetTrained(t *testing.T) {
	dir := t.TempDir()
	writeModelArtifacts(t, dir, "Rice", 0.5, 0, 1)
	writeModelArtifacts(t, dir, "Black_Pepper", 0.5, 0, 1)

	router := newCropsRouter(t, dir)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/crops/trained", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"Black Pepper", "Rice"}, resp.Data)
}

func TestGetTrainedEmpty(t *testing.T) {
	router := newCropsRouter(t, t.TempDir())

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/crops/trained", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Data)
}
