package aspect

import (
	"errors"
	"fmt"
)

// Sentinel errors, matched with errors.Is.
var (
	ErrResolutionMismatch = errors.New("resolution does not match")
	ErrZeroDivisor        = errors.New("greatest common divisor is zero")
	ErrDimensionRange     = errors.New("dimension out of range")
)

// ParseError reports a resolution string that does not match ResolutionPattern.
type ParseError struct {
	Input string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%v: %q", ErrResolutionMismatch, e.Input)
}

// Unwrap returns ErrResolutionMismatch.
func (e *ParseError) Unwrap() error {
	return ErrResolutionMismatch
}

// ComputationError reports a pair that cannot be reduced, which only happens
// when both sides are zero.
type ComputationError struct {
	Width  int
	Height int
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("cannot simplify %dx%d: %v", e.Width, e.Height, ErrZeroDivisor)
}

// Unwrap returns ErrZeroDivisor.
func (e *ComputationError) Unwrap() error {
	return ErrZeroDivisor
}

// RangeError reports a dimension whose magnitude exceeds MaxDimension.
type RangeError struct {
	Width  int
	Height int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: %dx%d exceeds %d", ErrDimensionRange, e.Width, e.Height, MaxDimension)
}

// Unwrap returns ErrDimensionRange.
func (e *RangeError) Unwrap() error {
	return ErrDimensionRange
}
