package fvec

import (
	"fmt"
	"math"
)

// AddDelayed superimposes the time series x onto z in place after shifting x
// by xdly seconds.
//
// z starts at absolute time ztime and x at xtime; both are sampled at
// samprate samples per second. Only the overlapping region is touched:
// z[i] += x[j] for every pair of samples aligned in time. Sample offsets are
// rounded to the nearest integer, which decides exactly which samples are
// considered aligned.
//
// Buffers that do not overlap leave z unchanged and return nil. A
// non-positive or NaN samprate returns ErrInvalidSampleRate before any
// mutation.
func AddDelayed(z []float32, ztime float64, x []float32, xtime, xdly, samprate float64) error {
	if !(samprate > 0) {
		return fmt.Errorf("%w: %g", ErrInvalidSampleRate, samprate)
	}

	xDelayTime := xtime + xdly

	// Advance whichever buffer starts first so both begin at the same instant.
	var xoff, zoff int
	if xDelayTime < ztime {
		xoff = roundOffset((ztime - xDelayTime) * samprate)
	} else {
		zoff = roundOffset((xDelayTime - ztime) * samprate)
	}

	n := len(x) - xoff

	xEnd := xDelayTime + float64(len(x)-1)/samprate
	zEnd := ztime + float64(len(z)-1)/samprate
	if xEnd > zEnd {
		n -= roundOffset((xEnd - zEnd) * samprate)
	}

	// Keep the loop inside both buffers when rounding lands on an edge.
	if rest := len(z) - zoff; n > rest {
		n = rest
	}
	if n <= 0 {
		return nil
	}

	xs := x[xoff : xoff+n]
	zs := z[zoff : zoff+n]
	for i, v := range xs {
		zs[i] += v
	}
	return nil
}

// roundOffset converts a sample distance to an index offset, rounding half
// away from zero. Distances too large for an int (or NaN) saturate, which
// makes the caller's overlap empty.
func roundOffset(samples float64) int {
	r := math.Round(samples)
	if math.IsNaN(r) || r >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(r)
}
