package utils

import "fmt"

// ModelUnavailableError indicates that no trained model/scaler pair exists
// for a commodity.
type ModelUnavailableError struct {
	Commodity string
}

// Error returns the user-visible error message.
func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("No trained model for %s", e.Commodity)
}

// NewModelUnavailableError creates a new ModelUnavailableError for a commodity.
func NewModelUnavailableError(commodity string) error {
	return &ModelUnavailableError{Commodity: commodity}
}

// InsufficientDataError indicates that a commodity has fewer valid historical
// points than the model lookback requires.
type InsufficientDataError struct {
	Commodity string
	Required  int
	Available int
}

// Error returns the user-visible error message.
func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("Need at least %d days of data for %s", e.Required, e.Commodity)
}

// NewInsufficientDataError creates a new InsufficientDataError.
//
// Parameters:
//   - commodity: The commodity name.
//   - required: The number of points the model requires.
//   - available: The number of valid points found.
func NewInsufficientDataError(commodity string, required, available int) error {
	return &InsufficientDataError{
		Commodity: commodity,
		Required:  required,
		Available: available,
	}
}

// InvalidRequestError represents a malformed or incomplete client request.
type InvalidRequestError struct {
	Message string
}

// Error returns the error message string.
func (e *InvalidRequestError) Error() string {
	return e.Message
}

// NewInvalidRequestError creates a new InvalidRequestError with a specific message.
func NewInvalidRequestError(message string) error {
	return &InvalidRequestError{Message: message}
}

// NewInvalidRequestErrorf creates a new InvalidRequestError with a formatted message.
func NewInvalidRequestErrorf(format string, args ...interface{}) error {
	return &InvalidRequestError{Message: fmt.Sprintf(format, args...)}
}
