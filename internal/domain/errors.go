package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidRate is matched by every InvalidRateError
	ErrInvalidRate = errors.New("invalid exchange rate")

	// ErrNotFound is wrapped by repositories when a record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is matched by every ValidationError
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidRateError is returned when a conversion needs an exchange rate that is zero or negative
type InvalidRateError struct {
	Rate decimal.Decimal
}

func (e *InvalidRateError) Error() string {
	return "invalid exchange rate " + e.Rate.String() + ": rate must be greater than 0"
}

// Is lets errors.Is(err, ErrInvalidRate) match
func (e *InvalidRateError) Is(target error) bool {
	return target == ErrInvalidRate
}

// CheckRate returns an InvalidRateError unless rate > 0
func CheckRate(rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return &InvalidRateError{Rate: rate}
	}
	return nil
}

// ValidationError describes a record rejected on the write path
type ValidationError struct {
	Message string
}

// NewValidationError creates a ValidationError with the given message
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, ErrInvalidInput) match
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}
