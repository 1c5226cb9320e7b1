package utils

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelUnavailableError(t *testing.T) {
	err := NewModelUnavailableError("Bajra")
	assert.Equal(t, "No trained model for Bajra", err.Error())

	var modelErr *ModelUnavailableError
	assert.True(t, errors.As(err, &modelErr))
	assert.Equal(t, "Bajra", modelErr.Commodity)
}

func TestInsufficientDataError(t *testing.T) {
	err := NewInsufficientDataError("Rice", 60, 12)
	assert.Equal(t, "Need at least 60 days of data for Rice", err.Error())

	var dataErr *InsufficientDataError
	assert.True(t, errors.As(err, &dataErr))
	assert.Equal(t, 60, dataErr.Required)
	assert.Equal(t, 12, dataErr.Available)
}

func TestInsufficientDataErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("pipeline: %w", NewInsufficientDataError("Rice", 60, 0))
	var dataErr *InsufficientDataError
	assert.True(t, errors.As(wrapped, &dataErr))
}

func TestInvalidRequestError(t *testing.T) {
	err := NewInvalidRequestError("commodity is required")
	assert.Equal(t, "commodity is required", err.Error())

	errf := NewInvalidRequestErrorf("bad days value %d", 99)
	assert.Equal(t, "bad days value 99", errf.Error())
}
