package fvec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/tphakala/go-fvec/internal/testutil"
)

func widen(x []float32) []float64 {
	w := make([]float64, len(x))
	for i, v := range x {
		w[i] = float64(v)
	}
	return w
}

// =============================================================================
// Empty Input Tests
// =============================================================================

func TestReductions_EmptyInput(t *testing.T) {
	var empty []float32

	_, err := Mean(empty)
	require.ErrorIs(t, err, ErrInvalidLength)

	mean, variance, err := MeanVariance(empty)
	require.ErrorIs(t, err, ErrInvalidLength)
	assert.Zero(t, mean)
	assert.Zero(t, variance)

	rms, err := RMS(empty)
	require.ErrorIs(t, err, ErrInvalidLength)
	assert.Zero(t, rms)

	_, _, err = MinMax(empty)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, _, err = AbsMinMax(empty)
	require.ErrorIs(t, err, ErrInvalidLength)

	_, idx, err := Max(empty)
	require.ErrorIs(t, err, ErrInvalidLength)
	assert.Equal(t, -1, idx)

	_, idx, err = AbsMax(empty)
	require.ErrorIs(t, err, ErrInvalidLength)
	assert.Equal(t, -1, idx)

	_, err = Mean64(empty)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, _, err = MeanVariance64(empty)
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = RMS64(empty)
	require.ErrorIs(t, err, ErrInvalidLength)

	_, err = Describe(empty)
	require.ErrorIs(t, err, ErrInvalidLength)
}

// =============================================================================
// Mean, Variance, RMS
// =============================================================================

func TestMean(t *testing.T) {
	m, err := Mean([]float32{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 2.5, m)
}

func TestMeanVariance(t *testing.T) {
	m, v, err := MeanVariance([]float32{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)
	assert.Equal(t, 5.0, m)
	assert.Equal(t, 4.0, v)
}

func TestMeanVariance_SinglePrecisionTerms(t *testing.T) {
	x := testutil.Sine(777, 3.3, 4, 0.9, 200)

	m, v, err := MeanVariance(x)
	require.NoError(t, err)

	var acc float64
	for _, s := range x {
		d := float32(m - float64(s))
		acc += float64(d * d)
	}
	assert.Equal(t, math.Float64bits(acc/float64(len(x))), math.Float64bits(v))
}

func TestMeanVariance_AgreesWithGonum(t *testing.T) {
	x := testutil.Sine(2048, 1.5, 7, 0.3, 500)
	AddScalar(x, 0.25)

	m, v, err := MeanVariance(x)
	require.NoError(t, err)

	w := widen(x)
	wantMean, wantVar := stat.PopMeanVariance(w, nil)

	assert.InDelta(t, wantMean, m, 1e-5)
	testutil.AssertRelativeError(t, wantVar, v, 1e-4)

	m64, v64, err := MeanVariance64(x)
	require.NoError(t, err)
	assert.InDelta(t, wantMean, m64, 1e-12)
	testutil.AssertRelativeError(t, wantVar, v64, 1e-12)
}

func TestRMS(t *testing.T) {
	r, err := RMS([]float32{3, -4})
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt(12.5), r, testutil.DefaultTolerance)

	x := testutil.Sine(4000, 2, 5, 0, 1000)
	r, err = RMS(x)
	require.NoError(t, err)
	assert.InDelta(t, 2/math.Sqrt2, r, 1e-4)

	w := widen(x)
	want := math.Sqrt(floats.Dot(w, w) / float64(len(w)))
	r64, err := RMS64(x)
	require.NoError(t, err)
	assert.InDelta(t, want, r64, 1e-12)
}

func TestRMS_SinglePrecisionAccumulator(t *testing.T) {
	x := testutil.Sine(1001, 0.9, 11, 0.1, 300)
	r, err := RMS(x)
	require.NoError(t, err)

	var sum float32
	for _, v := range x {
		sum += float32(v * v)
	}
	assert.Equal(t, math.Sqrt(float64(sum)/float64(len(x))), r)
}

// =============================================================================
// Extremes
// =============================================================================

func TestMinMax(t *testing.T) {
	lo, hi, err := MinMax([]float32{3, -1, 7, 0, -5, 2})
	require.NoError(t, err)
	assert.Equal(t, -5.0, lo)
	assert.Equal(t, 7.0, hi)

	lo, hi, err = MinMax([]float32{4})
	require.NoError(t, err)
	assert.Equal(t, 4.0, lo)
	assert.Equal(t, 4.0, hi)

	w := widen(testutil.Sine(500, 3, 2, 0.5, 100))
	lo, hi, err = MinMax(testutil.Sine(500, 3, 2, 0.5, 100))
	require.NoError(t, err)
	assert.Equal(t, floats.Min(w), lo)
	assert.Equal(t, floats.Max(w), hi)
}

func TestMax_FirstOccurrenceOnTies(t *testing.T) {
	x := []float32{1, 3, 9, 2, 4, 9, 0}
	v, idx, err := Max(x)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
	assert.Equal(t, 2, idx)
}

func TestAbsMax_FirstOccurrenceOnTies(t *testing.T) {
	x := []float32{1, 3, -9, 2, 4, 9, 0}
	v, idx, err := AbsMax(x)
	require.NoError(t, err)
	assert.Equal(t, 9.0, v)
	assert.Equal(t, 2, idx)
}

func TestMax_FirstElement(t *testing.T) {
	v, idx, err := Max([]float32{5, 5, 1})
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)
	assert.Equal(t, 0, idx)
}

func TestAbsMinMax(t *testing.T) {
	lo, hi, err := AbsMinMax([]float32{-3, 0.5, -0.25, 2, -8})
	require.NoError(t, err)
	assert.Equal(t, 0.25, lo)
	assert.Equal(t, 8.0, hi)
}

// =============================================================================
// Describe
// =============================================================================

func TestDescribe(t *testing.T) {
	x := []float32{1, -6, 3, 2}

	s, err := Describe(x)
	require.NoError(t, err)

	assert.Equal(t, 4, s.Length)
	assert.Equal(t, 0.0, s.Mean)
	assert.Equal(t, 12.5, s.Variance)
	assert.InDelta(t, math.Sqrt(12.5), s.RMS, testutil.DefaultTolerance)
	assert.Equal(t, -6.0, s.Min)
	assert.Equal(t, 3.0, s.Max)
	assert.Equal(t, 2, s.MaxIndex)
	assert.Equal(t, 6.0, s.AbsMax)
	assert.Equal(t, 1, s.AbsMaxIndex)
}

func TestDescribeWith_Precision(t *testing.T) {
	x := []float32{1 << 24, 1, 1, 1, 1}

	legacy, err := DescribeWith(x, PrecisionLegacy)
	require.NoError(t, err)
	double, err := DescribeWith(x, PrecisionDouble)
	require.NoError(t, err)

	assert.Equal(t, float64(1<<24)/5, legacy.Mean)
	assert.Equal(t, float64(1<<24+4)/5, double.Mean)
	assert.Equal(t, legacy.Max, double.Max)

	assert.Equal(t, "legacy", PrecisionLegacy.String())
	assert.Equal(t, "double", PrecisionDouble.String())
	assert.Equal(t, "unknown", Precision(42).String())
}
