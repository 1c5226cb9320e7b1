package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rajeev970/smartagri-go/internal/commodity"
	"github.com/rajeev970/smartagri-go/internal/services"
)

// CropsHandler serves commodity catalog endpoints.
type CropsHandler struct {
	forecastService *services.ForecastService
	logger          *logrus.Logger
}

// NewCropsHandler creates a crops handler.
func NewCropsHandler(forecastService *services.ForecastService, logger *logrus.Logger) *CropsHandler {
	return &CropsHandler{forecastService: forecastService, logger: logger}
}

// GetPopular handles GET /api/crops/popular.
func (h *CropsHandler) GetPopular(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": commodity.Popular()})
}

// GetTrained handles GET /api/crops/trained, listing commodities with a
// complete artifact pair on disk.
func (h *CropsHandler) GetTrained(c *gin.Context) {
	crops, err := h.forecastService.ListTrained()
	if err != nil {
		h.logger.WithError(err).Error("Failed to list trained models")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": crops})
}
