package fvec

import "math"

// degToRad converts angles given in degrees.
const degToRad = math.Pi / 180.0

// Scalar shortcuts recognised by Scale, AddScalar and SubScalar.
const (
	identityFactor = 1.0
	zeroFactor     = 0.0
	zeroDelta      = 0.0
)

// notFound is the index returned by Max and AbsMax on failure.
const notFound = -1
