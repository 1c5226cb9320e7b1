// Package forecast implements the sequence-model inference pipeline: min-max
// scaling with per-commodity persisted parameters, fixed-length lookback
// windows, the pure-Go LSTM forward pass, and the autoregressive multi-step
// forecaster.
package forecast

import (
	"github.com/rajeev970/smartagri-go/internal/utils"
)

// ScalerParams holds the min-max scale learned once per commodity at
// training time and persisted alongside the model weights. It is read-only
// after load.
type ScalerParams struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Degenerate reports whether the series the scaler was fit on was constant.
// Degenerate scalers map everything to zero instead of dividing by zero.
func (p ScalerParams) Degenerate() bool {
	return p.Max <= p.Min
}

// Scale applies the min-max transform elementwise. For a degenerate scaler
// every point maps to zero: the series is treated as a flat zero signal
// rather than an error.
func (p ScalerParams) Scale(values []float64) []float64 {
	scaled := make([]float64, len(values))
	if p.Degenerate() {
		return scaled
	}
	span := p.Max - p.Min
	for i, v := range values {
		scaled[i] = (v - p.Min) / span
	}
	return scaled
}

// Unscale inverts the transform for a single value. Degenerate scalers
// return the value unchanged.
func (p ScalerParams) Unscale(v float64) float64 {
	if p.Degenerate() {
		return v
	}
	return v*(p.Max-p.Min) + p.Min
}

// WindowTail returns the most recent lookback values of a scaled series.
// It fails with an InsufficientDataError when the series is shorter than
// the lookback: the model requires exactly that many inputs.
func WindowTail(scaled []float64, lookback int) ([]float64, error) {
	if len(scaled) < lookback {
		return nil, utils.NewInsufficientDataError("", lookback, len(scaled))
	}
	window := make([]float64, lookback)
	copy(window, scaled[len(scaled)-lookback:])
	return window, nil
}
