// Package testutil provides reusable test helper functions for sample vector tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance  = 1e-10
	Float32Tolerance  = 1e-6
	RotationTolerance = 1e-5
	AngleTolerance    = 1e-3 // degrees
)

// Ramp returns n samples start, start+step, start+2·step, ...
func Ramp(n int, start, step float32) []float32 {
	s := make([]float32, n)
	for i := range s {
		s[i] = start + float32(i)*step
	}
	return s
}

// Sine returns n samples of amp·sin(2π·freq·t + phase) sampled at rate Hz.
func Sine(n int, amp, freq, phase, rate float64) []float32 {
	s := make([]float32, n)
	for i := range s {
		t := float64(i) / rate
		s[i] = float32(amp * math.Sin(2*math.Pi*freq*t+phase))
	}
	return s
}

// Clone returns a copy of s.
func Clone(s []float32) []float32 {
	return append([]float32(nil), s...)
}

// AssertBitsEqual verifies that two buffers are identical bit for bit,
// distinguishing signed zeros and NaN payloads.
func AssertBitsEqual(t *testing.T, expected, actual []float32, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		want, got := math.Float32bits(expected[i]), math.Float32bits(actual[i])
		if want != got {
			return assert.Fail(t, "buffers differ",
				"element %d: expected %v (%#08x), got %v (%#08x)", i, expected[i], want, actual[i], got)
		}
	}
	return true
}

// AssertSliceInDelta verifies elementwise closeness of two float32 buffers.
func AssertSliceInDelta(t *testing.T, expected, actual []float32, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance,
			"element %d: expected %v, got %v", i, expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// AssertAllZero verifies that every element is +0.
func AssertAllZero(t *testing.T, s []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.Float32bits(v) != 0 {
			return assert.Fail(t, "non-zero element", "s[%d] = %v", i, v)
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}

// AssertAngleInDelta verifies that two angles in degrees agree modulo 360.
func AssertAngleInDelta(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	d := math.Mod(actual-expected, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}
	return assert.InDelta(t, 0, d, tolerance,
		"angle %f differs from expected %f", actual, expected)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t *testing.T, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	if value < minVal || value > maxVal {
		return assert.Fail(t, "value out of range",
			"value %f is outside range [%f, %f]", value, minVal, maxVal)
	}
	return true
}
