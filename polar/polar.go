// Package polar estimates the polarization of three-component particle motion.
//
// The covariance matrix of the demeaned north, east and vertical components
// is eigen-decomposed; its principal axis gives the direction of motion and
// the eigenvalue spread measures how linear (or planar) the motion is.
package polar

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	fvec "github.com/tphakala/go-fvec"
	"github.com/tphakala/go-fvec/internal/simdops"
)

// Component count and covariance layout.
const (
	components = 3
	north      = 0
	east       = 1
	vertical   = 2
)

const (
	radToDeg      = 180.0 / math.Pi
	fullCircleDeg = 360.0
	halfCircleDeg = 180.0
)

// ErrNoMotion indicates all three components are constant over the window.
var ErrNoMotion = errors.New("no particle motion")

// ErrFactorize indicates the covariance eigen-decomposition did not converge.
var ErrFactorize = errors.New("covariance eigen-decomposition failed")

// Result holds the polarization attributes of one window.
type Result struct {
	// Eigenvalues of the covariance matrix in descending order.
	Eigenvalues [components]float64

	// Principal is the unit eigenvector (north, east, vertical) of the
	// largest eigenvalue, oriented so its vertical component is non-negative.
	Principal [components]float64

	// Rectilinearity is 1 - (λ2+λ3)/(2λ1): 1 for purely linear motion,
	// 0 for isotropic motion.
	Rectilinearity float64

	// Planarity is 1 - 2λ3/(λ1+λ2): 1 when the motion lies in a plane.
	Planarity float64

	// Azimuth of the principal axis in degrees clockwise from north, [0, 360).
	Azimuth float64

	// Incidence of the principal axis in degrees from vertical, [0, 90].
	Incidence float64
}

// SourceAzimuth returns the source azimuth implied by a compressional
// arrival: upward P motion points away from the source, so the source lies
// opposite the principal axis.
func (r Result) SourceAzimuth() float64 {
	return math.Mod(r.Azimuth+halfCircleDeg, fullCircleDeg)
}

// RotateToRTV rotates the components in place into radial, transverse and
// vertical using the estimated source azimuth and incidence.
func (r Result) RotateToRTV(n, e, z []float32) error {
	return fvec.RotateToRTV(n, e, z, r.SourceAzimuth(), r.Incidence)
}

// Analyze computes the polarization of the whole of n, e and z.
func Analyze(n, e, z []float32) (Result, error) {
	if len(n) < 1 {
		return Result{}, fvec.ErrInvalidLength
	}
	if len(e) != len(n) || len(z) != len(n) {
		return Result{}, fmt.Errorf("%w: components have %d, %d and %d samples",
			fvec.ErrLengthMismatch, len(n), len(e), len(z))
	}

	var a analyzer
	return a.analyze(n, e, z)
}

// AnalyzeWindows computes the polarization of consecutive windows of
// window samples, advancing by step samples. A trailing partial window is
// ignored. Windows without motion yield a zero Result.
func AnalyzeWindows(n, e, z []float32, window, step int) ([]Result, error) {
	if window < 1 || step < 1 {
		return nil, fmt.Errorf("%w: window %d, step %d", fvec.ErrInvalidLength, window, step)
	}
	if len(e) != len(n) || len(z) != len(n) {
		return nil, fmt.Errorf("%w: components have %d, %d and %d samples",
			fvec.ErrLengthMismatch, len(n), len(e), len(z))
	}

	var (
		a       analyzer
		results []Result
	)
	for start := 0; start+window <= len(n); start += step {
		end := start + window
		r, err := a.analyze(n[start:end], e[start:end], z[start:end])
		if err != nil && !errors.Is(err, ErrNoMotion) {
			return nil, fmt.Errorf("window at sample %d: %w", start, err)
		}
		results = append(results, r)
	}
	return results, nil
}

// analyzer keeps the demeaned working buffers between windows.
type analyzer struct {
	work [components][]float64
	eig  mat.EigenSym
	vecs mat.Dense
}

func (a *analyzer) analyze(n, e, z []float32) (Result, error) {
	comps := [components][]float32{n, e, z}
	size := len(n)

	for c := range components {
		if cap(a.work[c]) < size {
			a.work[c] = make([]float64, size)
		}
		a.work[c] = a.work[c][:size]

		mean, err := fvec.Mean64(comps[c])
		if err != nil {
			return Result{}, err
		}
		for i, v := range comps[c] {
			a.work[c][i] = float64(v) - mean
		}
	}

	dot := simdops.Float64Ops().DotProductUnsafe
	cov := mat.NewSymDense(components, nil)
	for i := range components {
		for j := i; j < components; j++ {
			cov.SetSym(i, j, dot(a.work[i], a.work[j])/float64(size))
		}
	}

	if !a.eig.Factorize(cov, true) {
		return Result{}, ErrFactorize
	}
	vals := a.eig.Values(nil) // ascending
	a.eig.VectorsTo(&a.vecs)

	var r Result
	for k := range components {
		r.Eigenvalues[k] = math.Max(vals[components-1-k], 0)
	}
	l1, l2, l3 := r.Eigenvalues[0], r.Eigenvalues[1], r.Eigenvalues[2]
	if l1 == 0 {
		return Result{}, ErrNoMotion
	}

	sign := 1.0
	if a.vecs.At(vertical, components-1) < 0 {
		sign = -1
	}
	for c := range components {
		r.Principal[c] = sign * a.vecs.At(c, components-1)
	}

	r.Rectilinearity = 1 - (l2+l3)/(2*l1)
	r.Planarity = 1 - 2*l3/(l1+l2)

	pn, pe, pz := r.Principal[north], r.Principal[east], r.Principal[vertical]
	r.Azimuth = math.Atan2(pe, pn) * radToDeg
	if r.Azimuth < 0 {
		r.Azimuth += fullCircleDeg
	}
	if r.Azimuth >= fullCircleDeg {
		r.Azimuth -= fullCircleDeg
	}
	r.Incidence = math.Atan2(math.Hypot(pn, pe), pz) * radToDeg
	return r, nil
}
