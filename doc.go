// Package fvec provides single-precision sample vector math for seismic
// waveform analysis in pure Go.
//
// Every function operates on caller-owned []float32 buffers holding
// uniformly sampled amplitudes. Nothing is allocated, retained or logged:
// results are written in place, into a caller-supplied output buffer, or
// returned as scalars.
//
// # Features
//
//   - Elementwise arithmetic: [Fill], [Scale], [AddScalar], [SubScalar],
//     [DivScalar], [Add], [Sub], [Mul], [Div], [Abs], [Square], [Sqrt], [Sum]
//   - Time-aligned delayed superposition: [AddDelayed]
//   - Coordinate rotations: [Rotate], [RotateToRT], [RotateToRTV]
//   - Reductions: [Mean], [MeanVariance], [RMS], [MinMax], [Max],
//     [AbsMinMax], [AbsMax] and the [Describe] summary
//   - Optional SIMD acceleration (AVX2/SSE/NEON) via github.com/tphakala/simd
//     for kernels whose results are identical to the scalar loop
//
// # Quick Start
//
// Rotate a two-component recording into radial/transverse for a source at
// azimuth 30° and measure the radial amplitude:
//
//	if err := fvec.RotateToRT(north, east, 30); err != nil {
//	    log.Fatal(err)
//	}
//	peak, at, err := fvec.AbsMax(north)
//
// Stack a delayed trace onto a beam:
//
//	err := fvec.AddDelayed(beam, beamStart, trace, traceStart, -2.5, 40)
//
// # Buffer Lengths
//
// The length of a buffer is its slice length. Operations over several
// buffers process len of the first input and require the others to be at
// least that long; otherwise they return [ErrLengthMismatch] without
// touching anything. Reductions require at least one element and return
// [ErrInvalidLength] for empty input.
//
// # Numeric Compatibility
//
// Results are bit-compatible with the historical single-precision
// implementation. Notably:
//
//   - [Scale] with factor 0 stores exact zeros, even over NaN and Inf.
//   - [DivScalar] multiplies by the reciprocal rather than dividing.
//   - [Div] skips elements whose divisor is zero, leaving the output as it was.
//   - [Sqrt] stops at the first negative element, leaving earlier elements rooted.
//   - [Sum], [MeanVariance] and [RMS] accumulate in single precision.
//
// The Div and Sqrt behaviours look like bugs and are reproduced on purpose;
// existing pipelines depend on them. [Sum64], [Mean64], [MeanVariance64]
// and [RMS64] (or [DescribeWith] with [PrecisionDouble]) accumulate in
// double precision.
//
// # Thread Safety
//
// The package has no global mutable state besides the SIMD dispatch table.
// Calls on disjoint buffers may run concurrently; calls sharing a buffer
// must be serialised by the caller.
//
// # Related Packages
//
// Package [github.com/tphakala/go-fvec/xcorr] computes FFT cross-correlation
// and package [github.com/tphakala/go-fvec/polar] estimates three-component
// polarization, both on the same sample buffers.
package fvec
