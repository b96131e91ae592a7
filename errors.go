package fvec

import "errors"

// Common errors returned by the vector operations.
var (
	// ErrInvalidLength indicates a reduction was given an empty buffer.
	ErrInvalidLength = errors.New("invalid vector length")

	// ErrLengthMismatch indicates a secondary buffer is shorter than the primary one.
	ErrLengthMismatch = errors.New("vector length mismatch")

	// ErrZeroDivisor indicates a scalar division by zero. The buffer is left unmodified.
	ErrZeroDivisor = errors.New("division by zero")

	// ErrNegativeRadicand indicates Sqrt met a negative element. Elements
	// before the failing index have already been replaced by their roots.
	ErrNegativeRadicand = errors.New("square root of negative value")

	// ErrInvalidSampleRate indicates a non-positive or NaN sampling rate.
	ErrInvalidSampleRate = errors.New("invalid sample rate")
)
