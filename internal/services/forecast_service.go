package services

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rajeev970/smartagri-go/internal/commodity"
	"github.com/rajeev970/smartagri-go/internal/forecast"
	"github.com/rajeev970/smartagri-go/internal/models"
	"github.com/rajeev970/smartagri-go/internal/repository"
	"github.com/rajeev970/smartagri-go/internal/utils"
)

// Fixed display confidence attached to target-date predictions.
const targetDateConfidence = 0.85

// ForecastService orchestrates the forecasting pipeline: alias resolution,
// seed-window extraction, scaling, autoregressive prediction and de-scaling.
// It is stateless; model and scaler artifacts are loaded per request and no
// state is shared across invocations.
type ForecastService struct {
	repo       *repository.PriceRepository
	artifacts  *forecast.ArtifactStore
	forecaster *forecast.Forecaster
	lookback   int
	logger     *logrus.Logger
}

// NewForecastService creates a forecast service.
func NewForecastService(repo *repository.PriceRepository, artifacts *forecast.ArtifactStore, lookback int, logger *logrus.Logger) *ForecastService {
	return &ForecastService{
		repo:       repo,
		artifacts:  artifacts,
		forecaster: forecast.NewForecaster(logger),
		lookback:   lookback,
		logger:     logger,
	}
}

// Predict forecasts daysAhead daily prices for a commodity. It fails with
// ModelUnavailableError when no trained artifact pair exists and with
// InsufficientDataError when fewer valid historical points exist than the
// model lookback. Failures are terminal; there is no partial result.
func (s *ForecastService) Predict(ctx context.Context, name string, daysAhead int) (*models.ForecastResult, error) {
	model, scaler, err := s.artifacts.Load(name)
	if err != nil {
		if errors.Is(err, forecast.ErrArtifactNotFound) {
			return nil, utils.NewModelUnavailableError(name)
		}
		return nil, err
	}

	aliases := commodity.Resolve(name)
	points, err := s.repo.LastPrices(ctx, aliases, s.lookback)
	if err != nil {
		return nil, err
	}
	if len(points) < s.lookback {
		return nil, utils.NewInsufficientDataError(name, s.lookback, len(points))
	}

	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.Price
	}
	scaled := scaler.Scale(values)
	lastDate := points[len(points)-1].Date

	preds, err := s.forecaster.Forecast(model, scaler, scaled, s.lookback, daysAhead, lastDate)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"commodity":  name,
		"days_ahead": daysAhead,
		"last_date":  lastDate,
	}).Info("Forecast generated")

	return &models.ForecastResult{Commodity: name, Predictions: preds}, nil
}

// PredictForTargetDate forecasts up to a target calendar date and condenses
// the path into a single headline prediction with a [min,max] band over the
// whole path. The horizon is clamped to 1..365 days; an unparseable target
// date substitutes today + 30 days.
func (s *ForecastService) PredictForTargetDate(ctx context.Context, name, category, state, district, targetDate string) (*models.TargetDatePrediction, error) {
	target := s.parseTargetDate(targetDate)
	daysAhead := int(time.Until(target).Hours() / 24)
	if daysAhead < 1 {
		daysAhead = 1
	}
	if daysAhead > 365 {
		daysAhead = 365
	}

	result, err := s.Predict(ctx, name, daysAhead)
	if err != nil {
		return nil, err
	}
	preds := result.Predictions
	if len(preds) == 0 {
		return nil, utils.NewInvalidRequestError("No predictions")
	}

	band := models.PriceRange{Min: preds[0].ModalPrice, Max: preds[0].ModalPrice}
	for _, p := range preds[1:] {
		if p.ModalPrice < band.Min {
			band.Min = p.ModalPrice
		}
		if p.ModalPrice > band.Max {
			band.Max = p.ModalPrice
		}
	}

	return &models.TargetDatePrediction{
		PredictedPrice:  preds[0].ModalPrice,
		ConfidenceScore: targetDateConfidence,
		CropName:        name,
		Category:        category,
		Commodity:       name,
		State:           state,
		District:        district,
		PredictionDate:  targetDate,
		PriceRange:      band,
		ModelType:       "LSTM",
	}, nil
}

// ListTrained returns the sorted commodities that have both model and
// scaler artifacts.
func (s *ForecastService) ListTrained() ([]string, error) {
	return s.artifacts.ListTrained()
}

func (s *ForecastService) parseTargetDate(raw string) time.Time {
	if len(raw) >= 10 {
		if t, err := time.Parse("2006-01-02", raw[:10]); err == nil {
			return t
		}
	}
	return time.Now().AddDate(0, 0, 30)
}
