package fvec

import "math"

// Rotate rotates the component pair (x, y) in place by angle degrees:
//
//	x' =  x·cosθ + y·sinθ
//	y' = -x·sinθ + y·cosθ
//
// Positive angles rotate in the direction x̂×ẑ, measured from x̂.
// y must hold at least len(x) samples.
func Rotate(x, y []float32, angle float64) error {
	n := len(x)
	if err := checkLengths(n, y); err != nil {
		return err
	}

	sina, cosa := math.Sincos(angle * degToRad)
	rotatePair(x, y[:n], cosa, sina)
	return nil
}

// RotateToRT rotates north/east components in place into radial/transverse.
//
// azimuth is the source azimuth in degrees clockwise from north. On return
// north holds the radial component, positive away from the source, and east
// holds the transverse component, oriented so that transverse × radial
// points up.
func RotateToRT(north, east []float32, azimuth float64) error {
	n := len(north)
	if err := checkLengths(n, east); err != nil {
		return err
	}

	// The trig argument points away from the source.
	sina, cosa := math.Sincos(azimuth*degToRad - math.Pi)
	rotatePair(north, east[:n], cosa, sina)
	return nil
}

// RotateToRTV rotates north/east/vertical components in place into
// radial/transverse/vertical for a source at azimuth degrees (clockwise from
// north) and a ray arriving at incidence degrees from vertical:
//
//	r =  n·cos a·sin i + e·sin a·sin i + v·cos i
//	t = -n·sin a       + e·cos a
//	v = -n·cos a·cos i - e·sin a·cos i + v·sin i
//
// with a = azimuth - 180°. The radial axis follows the ray away from the
// source. At incidence 90° the result equals RotateToRT with the vertical
// component unchanged.
func RotateToRTV(north, east, vertical []float32, azimuth, incidence float64) error {
	n := len(north)
	if err := checkLengths(n, east, vertical); err != nil {
		return err
	}

	sina, cosa := math.Sincos(azimuth*degToRad - math.Pi)
	sini, cosi := math.Sincos(incidence * degToRad)

	// Coefficients shared by every sample; products rounded as in rotatePair.
	rn, re, rv := cosa*sini, sina*sini, cosi
	tn, te := -sina, cosa
	vn, ve, vv := -cosa*cosi, -sina*cosi, sini

	e := east[:n]
	v := vertical[:n]
	for i := range north {
		nn := float64(north[i])
		ee := float64(e[i])
		zz := float64(v[i])
		north[i] = float32(float64(nn*rn) + float64(ee*re) + float64(zz*rv))
		e[i] = float32(float64(nn*tn) + float64(ee*te))
		v[i] = float32(float64(nn*vn) + float64(ee*ve) + float64(zz*vv))
	}
	return nil
}

// rotatePair applies the 2D rotation shared by Rotate and RotateToRT.
// The explicit float64 conversions round each product on its own and rule
// out fused multiply-add.
func rotatePair(x, y []float32, cosa, sina float64) {
	for i := range x {
		xx := float64(x[i])
		yy := float64(y[i])
		x[i] = float32(float64(xx*cosa) + float64(yy*sina))
		y[i] = float32(float64(-xx*sina) + float64(yy*cosa))
	}
}
