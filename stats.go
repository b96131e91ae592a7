package fvec

import "math"

// Mean returns the arithmetic mean of x, computed as Sum(x) / len(x).
func Mean(x []float32) (float64, error) {
	if len(x) < 1 {
		return 0, ErrInvalidLength
	}
	return Sum(x) / float64(len(x)), nil
}

// MeanVariance returns the mean of x and the average squared deviation from it.
// Each squared deviation is rounded to single precision before accumulation.
func MeanVariance(x []float32) (mean, variance float64, err error) {
	m, err := Mean(x)
	if err != nil {
		return 0, 0, err
	}

	var acc float64
	for _, v := range x {
		d := float32(m - float64(v))
		acc += float64(float32(d * d))
	}
	return m, acc / float64(len(x)), nil
}

// RMS returns the root mean square of x. The sum of squares is accumulated
// in single precision before the final widen-and-sqrt.
func RMS(x []float32) (float64, error) {
	if len(x) < 1 {
		return 0, ErrInvalidLength
	}

	var sum float32
	for _, v := range x {
		sum += float32(v * v)
	}
	return math.Sqrt(float64(sum) / float64(len(x))), nil
}

// MinMax returns the smallest and largest elements of x.
func MinMax(x []float32) (minVal, maxVal float64, err error) {
	if len(x) < 1 {
		return 0, 0, ErrInvalidLength
	}

	lo, hi := x[0], x[0]
	for _, v := range x[1:] {
		if v < lo {
			lo = v
		} else if v > hi {
			hi = v
		}
	}
	return float64(lo), float64(hi), nil
}

// Max returns the largest element of x and the index of its first occurrence.
// On failure the index is -1.
func Max(x []float32) (value float64, index int, err error) {
	if len(x) < 1 {
		return 0, notFound, ErrInvalidLength
	}

	hi, at := x[0], 0
	for i, v := range x[1:] {
		if v > hi {
			hi, at = v, i+1
		}
	}
	return float64(hi), at, nil
}

// AbsMinMax returns the smallest and largest absolute values in x.
func AbsMinMax(x []float32) (minVal, maxVal float64, err error) {
	if len(x) < 1 {
		return 0, 0, ErrInvalidLength
	}

	lo := abs32(x[0])
	hi := lo
	for _, v := range x[1:] {
		a := abs32(v)
		if a < lo {
			lo = a
		} else if a > hi {
			hi = a
		}
	}
	return float64(lo), float64(hi), nil
}

// AbsMax returns the largest absolute value in x and the index of its first
// occurrence. On failure the index is -1.
func AbsMax(x []float32) (value float64, index int, err error) {
	if len(x) < 1 {
		return 0, notFound, ErrInvalidLength
	}

	hi, at := abs32(x[0]), 0
	for i, v := range x[1:] {
		if a := abs32(v); a > hi {
			hi, at = a, i+1
		}
	}
	return float64(hi), at, nil
}

func abs32(v float32) float32 {
	return math.Float32frombits(math.Float32bits(v) &^ (1 << 31))
}
