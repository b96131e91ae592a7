// Package xcorr computes cross-correlation of sample buffers with the FFT.
//
// Correlations are full-length: for inputs of na and nb samples the result
// holds na+nb-1 values, where index j corresponds to the lag j-(nb-1) of a
// relative to b:
//
//	c[j] = Σ a[i+lag]·b[i]
//
// A positive lag means the feature in a occurs later than in b.
package xcorr

import (
	"fmt"
	"math"

	"github.com/tphakala/simd/c128"
	"gonum.org/v1/gonum/dsp/fourier"

	fvec "github.com/tphakala/go-fvec"
	"github.com/tphakala/go-fvec/internal/simdops"
)

// minFFTSize is the smallest transform used, even for tiny inputs.
const minFFTSize = 64

// Correlator performs repeated cross-correlations of fixed input lengths.
// The transform and working buffers are allocated once.
//
// A Correlator is not safe for concurrent use.
type Correlator struct {
	fft     *fourier.FFT
	fftSize int
	na, nb  int
	scale   float64 // 1/fftSize for IFFT normalization (gonum doesn't normalize)

	aBlock  []float64
	bBlock  []float64
	aFFT    []complex128
	bFFT    []complex128
	product []complex128
	result  []float64
}

// NewCorrelator creates a correlator for inputs of na and nb samples.
func NewCorrelator(na, nb int) (*Correlator, error) {
	if na < 1 || nb < 1 {
		return nil, fmt.Errorf("%w: correlator lengths %d and %d", fvec.ErrInvalidLength, na, nb)
	}

	// Linear (not circular) correlation needs room for every lag.
	fftSize := minFFTSize
	for fftSize < na+nb-1 {
		fftSize *= 2
	}
	fftLen := fftSize/2 + 1

	return &Correlator{
		fft:     fourier.NewFFT(fftSize),
		fftSize: fftSize,
		na:      na,
		nb:      nb,
		scale:   1.0 / float64(fftSize),
		aBlock:  make([]float64, fftSize),
		bBlock:  make([]float64, fftSize),
		aFFT:    make([]complex128, fftLen),
		bFFT:    make([]complex128, fftLen),
		product: make([]complex128, fftLen),
		result:  make([]float64, fftSize),
	}, nil
}

// Len returns the number of lags produced, na+nb-1.
func (c *Correlator) Len() int {
	return c.na + c.nb - 1
}

// Correlate writes the cross-correlation of a and b into dst, which must
// hold at least Len() values. a and b must match the lengths given to
// NewCorrelator.
func (c *Correlator) Correlate(dst []float64, a, b []float32) error {
	if len(a) != c.na || len(b) != c.nb {
		return fmt.Errorf("%w: correlator expects %d and %d samples, got %d and %d",
			fvec.ErrLengthMismatch, c.na, c.nb, len(a), len(b))
	}
	if len(dst) < c.Len() {
		return fmt.Errorf("%w: destination holds %d of %d lags", fvec.ErrLengthMismatch, len(dst), c.Len())
	}

	// Correlation is convolution with the time-reversed reference,
	// zero-padded so the circular product does not wrap.
	clear(c.aBlock)
	clear(c.bBlock)
	for i, v := range a {
		c.aBlock[i] = float64(v)
	}
	for i, v := range b {
		c.bBlock[c.nb-1-i] = float64(v)
	}

	c.aFFT = c.fft.Coefficients(c.aFFT, c.aBlock)
	c.bFFT = c.fft.Coefficients(c.bFFT, c.bBlock)
	c128.Mul(c.product, c.aFFT, c.bFFT)

	c.result = c.fft.Sequence(c.result, c.product)
	simdops.Float64Ops().Scale(c.result, c.result, c.scale)

	copy(dst[:c.Len()], c.result)
	return nil
}

// Correlate returns the full cross-correlation of a and b.
func Correlate(a, b []float32) ([]float64, error) {
	c, err := NewCorrelator(len(a), len(b))
	if err != nil {
		return nil, err
	}
	out := make([]float64, c.Len())
	if err := c.Correlate(out, a, b); err != nil {
		return nil, err
	}
	return out, nil
}

// Normalized returns the cross-correlation of a and b divided by
// sqrt(Σa²·Σb²), so every coefficient lies in [-1, 1]. If either input has
// zero energy the coefficients are all zero.
func Normalized(a, b []float32) ([]float64, error) {
	out, err := Correlate(a, b)
	if err != nil {
		return nil, err
	}

	ea, _ := fvec.RMS64(a)
	eb, _ := fvec.RMS64(b)
	norm := ea * eb * math.Sqrt(float64(len(a))*float64(len(b)))
	if norm == 0 {
		clear(out)
		return out, nil
	}
	simdops.Float64Ops().Scale(out, out, 1/norm)
	return out, nil
}

// Lag describes the best alignment between two buffers.
type Lag struct {
	// Samples is the lag of a relative to b in samples.
	Samples int

	// Coefficient is the normalized correlation at that lag, in [-1, 1].
	// Negative values indicate the signals are inverted relative to each other.
	Coefficient float64
}

// Seconds converts the lag to seconds for the given sampling rate.
func (l Lag) Seconds(samprate float64) float64 {
	return float64(l.Samples) / samprate
}

// Peak returns the lag with the largest absolute normalized correlation.
// Ties resolve to the most negative lag.
func Peak(a, b []float32) (Lag, error) {
	coeffs, err := Normalized(a, b)
	if err != nil {
		return Lag{}, err
	}

	best := 0
	for i, v := range coeffs {
		if math.Abs(v) > math.Abs(coeffs[best]) {
			best = i
		}
	}
	return Lag{
		Samples:     best - (len(b) - 1),
		Coefficient: coeffs[best],
	}, nil
}
