package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rajeev970/smartagri-go/internal/database"
	"github.com/rajeev970/smartagri-go/internal/services"
)

// HealthHandler reports service and dependency status.
type HealthHandler struct {
	db              *database.PostgresDB
	redis           *database.RedisClient
	forecastService *services.ForecastService
}

// NewHealthHandler creates a health handler. Either dependency may be nil
// when the service runs in demo mode.
func NewHealthHandler(db *database.PostgresDB, redis *database.RedisClient, forecastService *services.ForecastService) *HealthHandler {
	return &HealthHandler{db: db, redis: redis, forecastService: forecastService}
}

// Health handles GET /health. Dependency failures degrade the status but
// never fail the endpoint: the service keeps answering with synthetic data.
func (h *HealthHandler) Health(c *gin.Context) {
	status := "healthy"
	checks := gin.H{}

	if h.db != nil {
		if err := h.db.HealthCheck(c.Request.Context()); err != nil {
			checks["database"] = "unhealthy: " + err.Error()
			status = "degraded"
		} else {
			checks["database"] = "healthy"
		}
	} else {
		checks["database"] = "disabled"
	}

	if h.redis != nil {
		if err := h.redis.HealthCheck(c.Request.Context()); err != nil {
			checks["redis"] = "unhealthy: " + err.Error()
			status = "degraded"
		} else {
			checks["redis"] = "healthy"
		}
	} else {
		checks["redis"] = "disabled"
	}

	trained, err := h.forecastService.ListTrained()
	if err != nil {
		checks["models"] = "unhealthy: " + err.Error()
		status = "degraded"
	} else {
		checks["models"] = "healthy"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         status,
		"timestamp":      time.Now().UTC().Format(time.RFC3339),
		"services":       checks,
		"trained_models": len(trained),
	})
}
