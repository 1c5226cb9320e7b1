package services

import (
	"math/rand"
	"time"

	"github.com/rajeev970/smartagri-go/internal/commodity"
	"github.com/rajeev970/smartagri-go/internal/models"
	"github.com/rajeev970/smartagri-go/internal/utils"
)

// GenerateSampleGraph produces a plausible demo price series for the last
// `days` calendar days ending today, used whenever no real data exists so
// the stats and trend logic always have input. Each price is the commodity
// base price under a uniformly random factor in [0.97, 1.03), with a ±5%
// band as the daily low/high estimate. The series is intentionally not
// deterministic.
func GenerateSampleGraph(crop, state, district string, days int) models.GraphData {
	base := commodity.BasePrice(crop)
	today := time.Now()

	data := make([]models.GraphPoint, 0, days)
	prices := make([]float64, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := today.AddDate(0, 0, -i)
		price := utils.Round2(base * (0.97 + rand.Float64()*0.06))
		data = append(data, models.GraphPoint{
			Date:     d.Format("2006-01-02"),
			Price:    price,
			MinPrice: utils.Round2(price * 0.95),
			MaxPrice: utils.Round2(price * 1.05),
			Source:   "Demo",
		})
		prices = append(prices, price)
	}

	return models.GraphData{
		Success: true,
		Crop:    crop,
		Query:   models.GraphQuery{State: state, District: district, Days: days},
		Stats:   Summarize(prices, true),
		Data:    data,
	}
}
