package edrmeta

import (
	"errors"
	"fmt"
)

var (
	// ErrLayoutMismatch means a serializer produced a payload of the wrong size.
	ErrLayoutMismatch = errors.New("sei layout mismatch")
	// ErrAllocation means the output buffer could not be provided.
	ErrAllocation = errors.New("sei buffer allocation failed")
	// ErrNumericOverflow means a quantized value does not fit its field.
	ErrNumericOverflow = errors.New("sei numeric overflow")
	// ErrInvalidMetadata means a descriptor violates its value constraints.
	ErrInvalidMetadata = errors.New("invalid hdr metadata")
)

// OverflowError reports a field whose quantized value does not fit its integer width.
type OverflowError struct {
	Field string
	Value float64 // quantized value before truncation
	Limit uint64  // largest representable value
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("%s: %s value %g exceeds [0, %d]", ErrNumericOverflow, e.Field, e.Value, e.Limit)
}

// Unwrap allows errors.Is(err, ErrNumericOverflow).
func (e *OverflowError) Unwrap() error {
	return ErrNumericOverflow
}
