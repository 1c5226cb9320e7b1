package services

import (
	"github.com/rajeev970/smartagri-go/internal/models"
	"github.com/rajeev970/smartagri-go/internal/utils"
)

// Trend thresholds. Real data is noisier than the generated demo series, so
// the demo path uses tighter bounds; the two paths stay separate on purpose.
const (
	realTrendUp   = 1.05
	realTrendDown = 0.95
	demoTrendUp   = 1.03
	demoTrendDown = 0.97
)

// Summarize computes aggregate statistics and the trend classification over
// a price series. Averages and extremes cover positive prices only; the
// trend compares the mean of the first half against the second half using
// integer half-length n/2 on each end, which for odd lengths leaves the
// middle point out of the first half.
func Summarize(prices []float64, demo bool) models.PriceStats {
	stats := models.PriceStats{
		TotalRecords: len(prices),
		Trend:        models.TrendStable,
	}

	var valid []float64
	for _, p := range prices {
		if p > 0 {
			valid = append(valid, p)
		}
	}
	stats.ValidRecords = len(valid)

	if len(valid) > 0 {
		sum := 0.0
		minP, maxP := valid[0], valid[0]
		for _, p := range valid {
			sum += p
			if p < minP {
				minP = p
			}
			if p > maxP {
				maxP = p
			}
		}
		stats.AvgPrice = utils.Round2(sum / float64(len(valid)))
		stats.MinPrice = utils.Round2(minP)
		stats.MaxPrice = utils.Round2(maxP)
	}

	stats.Trend = classifyTrend(prices, demo)
	return stats
}

// classifyTrend labels a series increasing, decreasing or stable. Fewer
// than 4 points is stable by definition, never an error.
func classifyTrend(prices []float64, demo bool) string {
	if len(prices) < 4 {
		return models.TrendStable
	}
	mid := len(prices) / 2
	firstAvg := mean(prices[:mid])
	lastAvg := mean(prices[len(prices)-mid:])

	if demo {
		switch {
		case lastAvg > firstAvg*demoTrendUp:
			return models.TrendIncreasing
		case lastAvg < firstAvg*demoTrendDown:
			return models.TrendDecreasing
		}
		return models.TrendStable
	}

	switch {
	case lastAvg > firstAvg*realTrendUp:
		return models.TrendIncreasing
	case lastAvg < firstAvg*realTrendDown:
		return models.TrendDecreasing
	}
	return models.TrendStable
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
