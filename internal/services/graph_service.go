package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/trend"
	"github.com/sirupsen/logrus"

	"github.com/rajeev970/smartagri-go/internal/commodity"
	"github.com/rajeev970/smartagri-go/internal/database"
	"github.com/rajeev970/smartagri-go/internal/models"
	"github.com/rajeev970/smartagri-go/internal/repository"
	"github.com/rajeev970/smartagri-go/internal/utils"
)

const (
	// Synthetic fallback series are capped at 30 days regardless of the
	// requested range.
	maxSyntheticDays = 30

	smaPeriod = 5
)

// GraphService serves historical price graphs with aggregate statistics. It
// never fails a request: when extraction yields nothing it falls back to a
// synthetic demo series. Responses are cached in Redis for a short TTL since
// the underlying data changes at most daily.
type GraphService struct {
	repo           *repository.PriceRepository
	redis          *database.RedisClient
	maxGraphPoints int
	cacheTTL       time.Duration
	logger         *logrus.Logger
}

// NewGraphService creates a graph service. The redis client may be nil, in
// which case caching is skipped.
func NewGraphService(repo *repository.PriceRepository, redis *database.RedisClient, maxGraphPoints int, cacheTTL time.Duration, logger *logrus.Logger) *GraphService {
	return &GraphService{
		repo:           repo,
		redis:          redis,
		maxGraphPoints: maxGraphPoints,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

// GetGraphData returns the price series of the last `days` days for a crop,
// optionally filtered by state and district, with stats and trend. Always
// succeeds: empty extraction degrades to synthetic data.
func (s *GraphService) GetGraphData(ctx context.Context, crop, state, district string, days int) (*models.GraphData, error) {
	cacheKey := fmt.Sprintf("graph:%s:%s:%s:%d", crop, state, district, days)
	if cached, ok := s.getCached(ctx, cacheKey); ok {
		return cached, nil
	}

	if !s.repo.Available() {
		result := GenerateSampleGraph(crop, state, district, minInt(days, maxSyntheticDays))
		return &result, nil
	}

	aliases := commodity.Resolve(crop)
	cutoff := time.Now().AddDate(0, 0, -days).Format("2006-01-02")
	rows, err := s.repo.GraphRows(ctx, aliases, state, district, cutoff, s.maxGraphPoints)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		result := GenerateSampleGraph(crop, state, district, minInt(days, maxSyntheticDays))
		return &result, nil
	}

	data := make([]models.GraphPoint, len(rows))
	prices := make([]float64, len(rows))
	for i, row := range rows {
		date := row.Date
		if len(date) > 10 {
			date = date[:10]
		}
		data[i] = models.GraphPoint{
			Date:     date,
			Price:    utils.Round2(row.Modal),
			MinPrice: utils.Round2(row.Min),
			MaxPrice: utils.Round2(row.Max),
			Source:   "Kaggle",
		}
		prices[i] = row.Modal
	}

	result := &models.GraphData{
		Success: true,
		Crop:    crop,
		Query:   models.GraphQuery{State: state, District: district, Days: days},
		Stats:   Summarize(prices, false),
		Data:    data,
		SMA:     smaOverlay(prices),
	}
	s.setCached(ctx, cacheKey, result)
	return result, nil
}

// smaOverlay computes a short moving-average overlay for the graph. Series
// shorter than the period get no overlay.
func smaOverlay(prices []float64) []float64 {
	if len(prices) < smaPeriod {
		return nil
	}
	sma := trend.NewSmaWithPeriod[float64](smaPeriod)
	values := helper.ChanToSlice(sma.Compute(helper.SliceToChan(prices)))
	for i, v := range values {
		values[i] = utils.Round2(v)
	}
	return values
}

func (s *GraphService) getCached(ctx context.Context, key string) (*models.GraphData, bool) {
	if s.redis == nil {
		return nil, false
	}
	raw, err := s.redis.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	var data models.GraphData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		s.logger.WithError(err).Warn("Failed to unmarshal cached graph data")
		return nil, false
	}
	return &data, true
}

func (s *GraphService) setCached(ctx context.Context, key string, data *models.GraphData) {
	if s.redis == nil {
		return
	}
	raw, err := json.Marshal(data)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to marshal graph data for caching")
		return
	}
	if err := s.redis.Set(ctx, key, string(raw), s.cacheTTL); err != nil {
		s.logger.WithError(err).Warn("Failed to cache graph data")
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
