package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/rajeev970/smartagri-go/internal/commodity"
	"github.com/rajeev970/smartagri-go/internal/services"
	"github.com/rajeev970/smartagri-go/internal/utils"
)

const defaultForecastDays = 7

// ForecastHandler serves model forecasts.
type ForecastHandler struct {
	forecastService *services.ForecastService
	logger          *logrus.Logger
}

// NewForecastHandler creates a forecast handler.
func NewForecastHandler(forecastService *services.ForecastService, logger *logrus.Logger) *ForecastHandler {
	return &ForecastHandler{forecastService: forecastService, logger: logger}
}

// TargetDateRequest is the body of a target-date prediction request.
type TargetDateRequest struct {
	Category       string `json:"category"`
	Commodity      string `json:"commodity"`
	State          string `json:"state"`
	District       string `json:"district"`
	PredictionDate string `json:"predictionDate"`
}

// GetPredict handles GET /predict?commodity=X&days=N. Day counts outside
// 1..30 fall back to the default of 7.
func (h *ForecastHandler) GetPredict(c *gin.Context) {
	name := commodity.Normalize(c.Query("commodity"))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "commodity is required"})
		return
	}

	days, err := strconv.Atoi(c.DefaultQuery("days", strconv.Itoa(defaultForecastDays)))
	if err != nil || days < 1 || days > 30 {
		days = defaultForecastDays
	}

	result, err := h.forecastService.Predict(c.Request.Context(), name, days)
	if err != nil {
		h.respondForecastError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// PredictForTargetDate handles POST /api/user-predictions/test/predict.
// The horizon is derived from the requested prediction date, clamped to
// 1..365 days; unparseable dates substitute today + 30 days.
func (h *ForecastHandler) PredictForTargetDate(c *gin.Context) {
	var req TargetDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	name := commodity.Normalize(strings.TrimSpace(req.Commodity))
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "commodity is required"})
		return
	}
	if req.State == "" {
		req.State = "All India"
	}
	if req.District == "" {
		req.District = "All districts"
	}

	prediction, err := h.forecastService.PredictForTargetDate(
		c.Request.Context(), name, req.Category, req.State, req.District, req.PredictionDate)
	if err != nil {
		h.respondForecastError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Prediction generated",
		"prediction": gin.H{
			"prediction": prediction,
		},
	})
}

// ListCommodities handles GET /commodities.
func (h *ForecastHandler) ListCommodities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commodities": commodity.Popular()})
}

// respondForecastError maps the pipeline's terminal error kinds onto
// structured responses. All three kinds are client-visible conditions; only
// unexpected failures surface as 500.
func (h *ForecastHandler) respondForecastError(c *gin.Context, err error) {
	var modelErr *utils.ModelUnavailableError
	var dataErr *utils.InsufficientDataError
	var reqErr *utils.InvalidRequestError
	switch {
	case errors.As(err, &modelErr), errors.As(err, &dataErr), errors.As(err, &reqErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
	default:
		h.logger.WithError(err).Error("Forecast request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}
