package models

import (
	"github.com/shopspring/decimal"
)

// CropPriceRecord represents one raw mandi price record as stored in the
// crop_prices table. Prices are decimals at the storage boundary; the
// forecasting pipeline converts to float64 for its math.
type CropPriceRecord struct {
	Date       string          `json:"date" db:"date"`
	Commodity  string          `json:"commodity" db:"commodity"`
	State      string          `json:"state" db:"state"`
	District   string          `json:"district" db:"district"`
	ModalPrice decimal.Decimal `json:"modal_price" db:"modal_price"`
	MinPrice   decimal.Decimal `json:"min_price" db:"min_price"`
	MaxPrice   decimal.Decimal `json:"max_price" db:"max_price"`
}

// PricePoint is one averaged daily observation for a commodity: duplicates
// across markets/districts are collapsed to a single value per date.
type PricePoint struct {
	Date  string  `json:"date"`
	Price float64 `json:"price"`
}

// GraphPoint is one point of the historical graph series, carrying the
// averaged modal price plus the averaged daily min/max band.
type GraphPoint struct {
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
	Market   string  `json:"market"`
	Source   string  `json:"source"`
	Category string  `json:"category"`
}

// Trend labels for the historical stats summarizer.
const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendStable     = "stable"
)

// PriceStats holds aggregate statistics over a graph series.
type PriceStats struct {
	TotalRecords int     `json:"totalRecords"`
	ValidRecords int     `json:"validRecords"`
	AvgPrice     float64 `json:"avgPrice"`
	MinPrice     float64 `json:"minPrice"`
	MaxPrice     float64 `json:"maxPrice"`
	Trend        string  `json:"trend"`
}

// GraphQuery echoes the request parameters back in graph responses.
type GraphQuery struct {
	State    string `json:"state"`
	District string `json:"district"`
	Days     int    `json:"days"`
}

// GraphData is the full historical-graph response payload.
type GraphData struct {
	Success bool         `json:"success"`
	Crop    string       `json:"crop"`
	Query   GraphQuery   `json:"query"`
	Stats   PriceStats   `json:"stats"`
	Data    []GraphPoint `json:"data"`
	SMA     []float64    `json:"sma,omitempty"`
}

// Prediction is one forecasted future price. Dates are strictly increasing
// starting the day after the last known observation.
type Prediction struct {
	Date       string  `json:"date"`
	ModalPrice float64 `json:"modal_price"`
}

// ForecastResult is the payload of a multi-day forecast.
type ForecastResult struct {
	Commodity   string       `json:"commodity"`
	Predictions []Prediction `json:"predictions"`
}

// PriceRange is the [min, max] band over a full forecast path.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// TargetDatePrediction is the single-prediction payload returned for
// target-date requests, including a fixed display confidence and the band
// over the whole forecast path.
type TargetDatePrediction struct {
	PredictedPrice  float64    `json:"predictedPrice"`
	ConfidenceScore float64    `json:"confidenceScore"`
	CropName        string     `json:"cropName"`
	Category        string     `json:"category"`
	Commodity       string     `json:"commodity"`
	State           string     `json:"state"`
	District        string     `json:"district"`
	PredictionDate  string     `json:"predictionDate"`
	PriceRange      PriceRange `json:"priceRange"`
	ModelType       string     `json:"modelType"`
}
