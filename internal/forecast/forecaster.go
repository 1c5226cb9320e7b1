package forecast

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/rajeev970/smartagri-go/internal/models"
	"github.com/rajeev970/smartagri-go/internal/utils"
)

// Date layouts accepted for the last historical observation, tried in order.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006"}

// Forecaster produces multi-step forecasts by pure autoregression: each
// scaled prediction is fed back into the window to produce the next, with no
// re-grounding against real data mid-sequence. Forecast error therefore
// compounds with horizon length; that is the accepted tradeoff, and the
// recurrence is bit-for-bit reproducible given a fixed model and seed.
type Forecaster struct {
	logger *logrus.Logger
}

// NewForecaster creates a forecaster.
func NewForecaster(logger *logrus.Logger) *Forecaster {
	return &Forecaster{logger: logger}
}

// Forecast runs steps sequential model evaluations starting from the most
// recent lookback values of scaledSeries. Each emitted price is the unscaled
// prediction; the scaled prediction joins the buffer for subsequent windows.
// The date cursor starts at the parsed last observation date and advances by
// exactly one calendar day per step.
func (f *Forecaster) Forecast(model Model, scaler ScalerParams, scaledSeries []float64, lookback, steps int, lastDateRaw string) ([]models.Prediction, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("forecast steps must be positive, got %d", steps)
	}

	buf := make([]float64, len(scaledSeries), len(scaledSeries)+steps)
	copy(buf, scaledSeries)

	cursor := f.parseLastDate(lastDateRaw)
	preds := make([]models.Prediction, 0, steps)
	for i := 0; i < steps; i++ {
		window, err := WindowTail(buf, lookback)
		if err != nil {
			return nil, err
		}
		out, err := model.Predict(window)
		if err != nil {
			return nil, fmt.Errorf("model evaluation failed at step %d: %w", i+1, err)
		}
		cursor = cursor.AddDate(0, 0, 1)
		preds = append(preds, models.Prediction{
			Date:       cursor.Format("2006-01-02"),
			ModalPrice: utils.Round2(scaler.Unscale(out)),
		})
		buf = append(buf, out)
	}
	return preds, nil
}

// parseLastDate bootstraps the date cursor from the raw date string of the
// last observation. Three layouts are tried in order; when all fail the
// cursor degrades to the current date. The lenient fallback masks malformed
// upstream dates on purpose, so it is logged as a named event rather than
// failing the request.
func (f *Forecaster) parseLastDate(raw string) time.Time {
	trimmed := strings.TrimSpace(raw)
	if len(trimmed) > 10 {
		trimmed = trimmed[:10]
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t
		}
	}
	if f.logger != nil {
		f.logger.WithFields(logrus.Fields{
			"event":    "date_parse_fallback",
			"raw_date": raw,
		}).Warn("Unparseable last observation date, using current date")
	}
	return time.Now()
}
