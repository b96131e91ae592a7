package xcorr

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fvec "github.com/tphakala/go-fvec"
	"github.com/tphakala/go-fvec/internal/testutil"
)

// directCorrelate is the O(N·M) reference.
func directCorrelate(a, b []float32) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for j := range out {
		lag := j - (len(b) - 1)
		var sum float64
		for i := range b {
			if k := i + lag; k >= 0 && k < len(a) {
				sum += float64(a[k]) * float64(b[i])
			}
		}
		out[j] = sum
	}
	return out
}

// pulse returns n zeros with a Ricker-like wavelet centred at pos.
func pulse(n, pos int) []float32 {
	s := make([]float32, n)
	for i := range s {
		t := float64(i-pos) / 3
		s[i] = float32((1 - 2*t*t) * math.Exp(-t*t))
	}
	return s
}

func TestCorrelate_MatchesDirect(t *testing.T) {
	testCases := []struct {
		name   string
		na, nb int
	}{
		{"equal", 50, 50},
		{"longer_a", 200, 37},
		{"longer_b", 16, 90},
		{"single_samples", 1, 1},
		{"power_of_two_boundary", 33, 32},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := testutil.Sine(tc.na, 1, 3, 0.2, 40)
			b := testutil.Sine(tc.nb, 0.5, 2, 1.1, 40)
			a[0] = 0.75 // keep single-sample inputs non-zero

			got, err := Correlate(a, b)
			require.NoError(t, err)
			want := directCorrelate(a, b)

			require.Len(t, got, tc.na+tc.nb-1)
			testutil.AssertNoNaNOrInf(t, got)
			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-9, "lag index %d", i)
			}
		})
	}
}

func TestPeak_RecoversShift(t *testing.T) {
	for _, shift := range []int{-17, -1, 0, 4, 30} {
		ref := pulse(256, 100)
		delayed := pulse(256, 100+shift)

		lag, err := Peak(delayed, ref)
		require.NoError(t, err)
		assert.Equal(t, shift, lag.Samples, "shift %d", shift)
		assert.InDelta(t, 1.0, lag.Coefficient, 1e-3)
	}
}

func TestPeak_InvertedSignal(t *testing.T) {
	ref := pulse(128, 60)
	inv := testutil.Clone(ref)
	fvec.Scale(inv, -1)

	lag, err := Peak(inv, ref)
	require.NoError(t, err)
	assert.Equal(t, 0, lag.Samples)
	assert.InDelta(t, -1.0, lag.Coefficient, 1e-6)
}

func TestNormalized_Bounds(t *testing.T) {
	a := testutil.Sine(300, 4, 3, 0, 100)
	b := testutil.Sine(120, 0.1, 7, 0.5, 100)

	coeffs, err := Normalized(a, b)
	require.NoError(t, err)
	for _, c := range coeffs {
		testutil.AssertInRange(t, c, -1-1e-9, 1+1e-9)
	}

	zero := make([]float32, 10)
	coeffs, err = Normalized(zero, b)
	require.NoError(t, err)
	for _, c := range coeffs {
		assert.Zero(t, c)
	}
}

func TestLag_Seconds(t *testing.T) {
	assert.InDelta(t, -0.25, Lag{Samples: -10}.Seconds(40), 1e-12)
}

func TestCorrelate_InvalidLength(t *testing.T) {
	_, err := Correlate(nil, []float32{1})
	require.ErrorIs(t, err, fvec.ErrInvalidLength)

	_, err = Peak([]float32{1}, nil)
	require.ErrorIs(t, err, fvec.ErrInvalidLength)
}

func TestCorrelator_Reuse(t *testing.T) {
	c, err := NewCorrelator(64, 20)
	require.NoError(t, err)
	assert.Equal(t, 83, c.Len())

	dst := make([]float64, c.Len())
	for _, phase := range []float64{0, 0.5, 1.5} {
		a := testutil.Sine(64, 1, 3, phase, 50)
		b := testutil.Sine(20, 1, 3, 0, 50)
		require.NoError(t, c.Correlate(dst, a, b))

		want := directCorrelate(a, b)
		for i := range want {
			require.InDelta(t, want[i], dst[i], 1e-9)
		}
	}

	require.ErrorIs(t, c.Correlate(dst, make([]float32, 63), make([]float32, 20)), fvec.ErrLengthMismatch)
	require.ErrorIs(t, c.Correlate(dst[:10], make([]float32, 64), make([]float32, 20)), fvec.ErrLengthMismatch)
}

func BenchmarkCorrelate(b *testing.B) {
	x := testutil.Sine(4096, 1, 3, 0, 100)
	y := testutil.Sine(512, 1, 3, 0.3, 100)
	c, err := NewCorrelator(len(x), len(y))
	require.NoError(b, err)
	dst := make([]float64, c.Len())

	b.ReportAllocs()
	for b.Loop() {
		_ = c.Correlate(dst, x, y)
	}
}
