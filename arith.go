package fvec

import (
	"fmt"
	"math"

	"github.com/tphakala/go-fvec/internal/simdops"
)

// Fill sets every element of x to value, rounded to single precision.
func Fill(x []float32, value float64) {
	v := float32(value)
	for i := range x {
		x[i] = v
	}
}

// Scale multiplies every element of x by factor.
//
// A factor of exactly 1 leaves x untouched, and a factor of exactly 0 stores
// exact zeros (even over NaN and Inf elements) instead of multiplying.
// Products are formed in double precision and rounded once.
func Scale(x []float32, factor float64) {
	switch factor {
	case identityFactor:
		return
	case zeroFactor:
		Fill(x, 0)
		return
	}
	for i := range x {
		x[i] = float32(float64(x[i]) * factor)
	}
}

// AddScalar adds delta to every element of x. A zero delta is a no-op.
func AddScalar(x []float32, delta float64) {
	if delta == zeroDelta {
		return
	}
	for i := range x {
		x[i] = float32(float64(x[i]) + delta)
	}
}

// SubScalar subtracts delta from every element of x. A zero delta is a no-op.
func SubScalar(x []float32, delta float64) {
	if delta == zeroDelta {
		return
	}
	for i := range x {
		x[i] = float32(float64(x[i]) - delta)
	}
}

// DivScalar divides every element of x by divisor.
//
// The division is carried out as Scale(x, 1/divisor), so results match a
// multiplication by the reciprocal bit for bit, not a direct division.
// A zero divisor returns ErrZeroDivisor and leaves x unmodified.
func DivScalar(x []float32, divisor float64) error {
	if divisor == 0 {
		return ErrZeroDivisor
	}
	Scale(x, 1.0/divisor)
	return nil
}

// checkLengths verifies that every buffer holds at least n elements.
func checkLengths(n int, bufs ...[]float32) error {
	for _, b := range bufs {
		if len(b) < n {
			return fmt.Errorf("%w: need %d elements, have %d", ErrLengthMismatch, n, len(b))
		}
	}
	return nil
}

// Add stores a[i] + b[i] into out for the first len(a) elements.
// out may alias a, b or both.
func Add(out, a, b []float32) error {
	n := len(a)
	if err := checkLengths(n, b, out); err != nil {
		return err
	}
	simdops.Float32Ops().Add(out[:n], a, b[:n])
	return nil
}

// Sub stores a[i] - b[i] into out for the first len(a) elements.
func Sub(out, a, b []float32) error {
	n := len(a)
	if err := checkLengths(n, b, out); err != nil {
		return err
	}
	simdops.Float32Ops().Sub(out[:n], a, b[:n])
	return nil
}

// Mul stores a[i] * b[i] into out for the first len(a) elements.
func Mul(out, a, b []float32) error {
	n := len(a)
	if err := checkLengths(n, b, out); err != nil {
		return err
	}
	simdops.Float32Ops().Mul(out[:n], a, b[:n])
	return nil
}

// Div stores a[i] / b[i] into out for the first len(a) elements.
//
// Positions where b[i] is zero are skipped: out[i] keeps whatever value it
// held before the call. Callers wanting a defined result there must
// initialise out beforehand.
func Div(out, a, b []float32) error {
	n := len(a)
	if err := checkLengths(n, b, out); err != nil {
		return err
	}
	for i := range n {
		if b[i] != 0 {
			out[i] = a[i] / b[i]
		}
	}
	return nil
}

// Abs stores |in[i]| into out for the first len(in) elements.
func Abs(out, in []float32) error {
	n := len(in)
	if err := checkLengths(n, out); err != nil {
		return err
	}
	simdops.Float32Ops().Abs(out[:n], in)
	return nil
}

// Square replaces every element of x by its square.
func Square(x []float32) {
	for i := range x {
		x[i] *= x[i]
	}
}

// Sqrt replaces every element of x by its square root.
//
// On the first negative element it stops and returns an error wrapping
// ErrNegativeRadicand. Elements before that index are already rooted and
// are not restored.
func Sqrt(x []float32) error {
	for i, v := range x {
		if v < 0 {
			return fmt.Errorf("%w: x[%d] = %g", ErrNegativeRadicand, i, v)
		}
		x[i] = float32(math.Sqrt(float64(v)))
	}
	return nil
}

// Sum returns the sum of x. The accumulation runs in single precision and
// is widened only at the end, matching historical output bit for bit.
// See Sum64 for a double precision accumulator.
func Sum(x []float32) float64 {
	var sum float32
	for _, v := range x {
		sum += v
	}
	return float64(sum)
}
