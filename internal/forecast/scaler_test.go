package forecast

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajeev970/smartagri-go/internal/utils"
)

func TestScalerScaleUnscale(t *testing.T) {
	scaler := ScalerParams{Min: 100, Max: 200}

	scaled := scaler.Scale([]float64{100, 150, 200})
	assert.Equal(t, []float64{0, 0.5, 1}, scaled)

	assert.Equal(t, 150.0, scaler.Unscale(0.5))
	assert.Equal(t, 100.0, scaler.Unscale(0))
	assert.Equal(t, 200.0, scaler.Unscale(1))
}

func TestScalerDegenerate(t *testing.T) {
	scaler := ScalerParams{Min: 5, Max: 5}
	assert.True(t, scaler.Degenerate())

	// Constant series scales to a flat zero signal, unscale is identity.
	assert.Equal(t, []float64{0, 0, 0}, scaler.Scale([]float64{5, 5, 5}))
	assert.Equal(t, 0.42, scaler.Unscale(0.42))

	inverted := ScalerParams{Min: 10, Max: 3}
	assert.True(t, inverted.Degenerate())
}

func TestWindowTail(t *testing.T) {
	series := []float64{0.1, 0.2, 0.3, 0.4, 0.5}

	window, err := WindowTail(series, 3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0.3, 0.4, 0.5}, window)

	// The window is a copy; mutating it must not touch the source.
	window[0] = 99
	assert.Equal(t, 0.3, series[2])
}

func TestWindowTailInsufficientData(t *testing.T) {
	_, err := WindowTail([]float64{0.1, 0.2}, 60)
	require.Error(t, err)

	var dataErr *utils.InsufficientDataError
	assert.True(t, errors.As(err, &dataErr))
	assert.Equal(t, 60, dataErr.Required)
	assert.Equal(t, 2, dataErr.Available)
}
