package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rajeev970/smartagri-go/internal/models"
)

func TestSummarizeAggregates(t *testing.T) {
	stats := Summarize([]float64{0, -5, 100, 200}, false)

	assert.Equal(t, 4, stats.TotalRecords)
	assert.Equal(t, 2, stats.ValidRecords)
	assert.Equal(t, 150.0, stats.AvgPrice)
	assert.Equal(t, 100.0, stats.MinPrice)
	assert.Equal(t, 200.0, stats.MaxPrice)
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil, false)

	assert.Equal(t, 0, stats.TotalRecords)
	assert.Equal(t, 0, stats.ValidRecords)
	assert.Equal(t, 0.0, stats.AvgPrice)
	assert.Equal(t, models.TrendStable, stats.Trend)
}

func TestClassifyTrend(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		demo     bool
		expected string
	}{
		{"too few points is stable", []float64{100, 200, 400}, false, models.TrendStable},
		{"real increasing", []float64{100, 100, 120, 120}, false, models.TrendIncreasing},
		{"real decreasing", []float64{100, 100, 90, 90}, false, models.TrendDecreasing},
		{"real flat", []float64{100, 100, 101, 101}, false, models.TrendStable},
		{"demo decreasing", []float64{100, 100, 96, 96}, true, models.TrendDecreasing},
		{"demo flat", []float64{100, 100, 98, 98}, true, models.TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Summarize(tt.prices, tt.demo).Trend)
		})
	}
}

// A 4% move is stable against real-data thresholds but counts as a trend on
// the tighter demo thresholds.
func TestClassifyTrendDemoThresholdsTighter(t *testing.T) {
	prices := []float64{100, 100, 104, 104}
	assert.Equal(t, models.TrendStable, Summarize(prices, false).Trend)
	assert.Equal(t, models.TrendIncreasing, Summarize(prices, true).Trend)
}

// Odd lengths leave the middle point out of both halves.
func TestClassifyTrendOddLength(t *testing.T) {
	prices := []float64{100, 100, 5000, 120, 120}
	assert.Equal(t, models.TrendIncreasing, Summarize(prices, false).Trend)
}
