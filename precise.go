package fvec

import "math"

// Double precision reductions. These widen every element before
// accumulating and therefore differ from Sum, MeanVariance and RMS in the
// last few bits; use them when historical bit compatibility is not needed.

// Sum64 returns the sum of x accumulated in double precision.
func Sum64(x []float32) float64 {
	var sum float64
	for _, v := range x {
		sum += float64(v)
	}
	return sum
}

// Mean64 returns the mean of x computed from Sum64.
func Mean64(x []float32) (float64, error) {
	if len(x) < 1 {
		return 0, ErrInvalidLength
	}
	return Sum64(x) / float64(len(x)), nil
}

// MeanVariance64 returns the mean and population variance of x in double precision.
func MeanVariance64(x []float32) (mean, variance float64, err error) {
	m, err := Mean64(x)
	if err != nil {
		return 0, 0, err
	}

	var acc float64
	for _, v := range x {
		d := float64(v) - m
		acc += d * d
	}
	return m, acc / float64(len(x)), nil
}

// RMS64 returns the root mean square of x in double precision.
func RMS64(x []float32) (float64, error) {
	if len(x) < 1 {
		return 0, ErrInvalidLength
	}

	var sum float64
	for _, v := range x {
		w := float64(v)
		sum += w * w
	}
	return math.Sqrt(sum / float64(len(x))), nil
}
