package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rajeev970/smartagri-go/internal/commodity"
	"github.com/rajeev970/smartagri-go/internal/services"
)

const defaultGraphDays = 30

// GraphHandler serves historical price graphs with statistics.
type GraphHandler struct {
	graphService *services.GraphService
	logger       *logrus.Logger
}

// NewGraphHandler creates a graph handler.
func NewGraphHandler(graphService *services.GraphService, logger *logrus.Logger) *GraphHandler {
	return &GraphHandler{graphService: graphService, logger: logger}
}

// GetCropGraph handles GET /api/graphs/crop/:cropName (and the /test alias).
// The endpoint always succeeds: missing data degrades to a synthetic demo
// series.
func (h *GraphHandler) GetCropGraph(c *gin.Context) {
	crop := commodity.Normalize(c.Param("cropName"))
	if crop == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "crop name is required"})
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultGraphDays)))
	if err != nil || days < 1 {
		days = defaultGraphDays
	}

	data, err := h.graphService.GetGraphData(
		c.Request.Context(), crop, c.Query("state"), c.Query("district"), days)
	if err != nil {
		h.logger.WithError(err).Error("Graph request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, data)
}
