// Package simdops provides generic SIMD operations for float32 and float64 types.
// This enables a single codebase to support both precision levels without duplication.
//
// The elementwise kernels (Add, Sub, Mul, Abs, Scale) are exactly rounded per
// element, so the accelerated and pure Go paths produce identical bits.
// DotProductUnsafe reorders its accumulation and only agrees to rounding error.
package simdops

import (
	"sync/atomic"

	"github.com/tphakala/simd/cpu"
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
// Function pointers allow type-safe generic code while delegating
// to optimized type-specific implementations.
type Ops[F Float] struct {
	// Add computes dst[i] = a[i] + b[i].
	Add func(dst, a, b []F)

	// Sub computes dst[i] = a[i] - b[i].
	Sub func(dst, a, b []F)

	// Mul computes dst[i] = a[i] * b[i].
	Mul func(dst, a, b []F)

	// Abs computes dst[i] = |a[i]|.
	Abs func(dst, a []F)

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)

	// DotProductUnsafe computes the dot product without bounds checking.
	// Use only when slices are guaranteed to have equal length.
	DotProductUnsafe func(a, b []F) F
}

// Pre-instantiated operations for each float type.
// These are package-level variables to avoid repeated allocation.
var (
	ops32 = Ops[float32]{
		Add:              f32.Add,
		Sub:              f32.Sub,
		Mul:              f32.Mul,
		Abs:              f32.Abs,
		Scale:            f32.Scale,
		DotProductUnsafe: f32.DotProductUnsafe,
	}
	ops64 = Ops[float64]{
		Add:              f64.Add,
		Sub:              f64.Sub,
		Mul:              f64.Mul,
		Abs:              f64.Abs,
		Scale:            f64.Scale,
		DotProductUnsafe: f64.DotProductUnsafe,
	}

	generic32 = Ops[float32]{
		Add:              addGeneric[float32],
		Sub:              subGeneric[float32],
		Mul:              mulGeneric[float32],
		Abs:              absGeneric[float32],
		Scale:            scaleGeneric[float32],
		DotProductUnsafe: dotGeneric[float32],
	}
	generic64 = Ops[float64]{
		Add:              addGeneric[float64],
		Sub:              subGeneric[float64],
		Mul:              mulGeneric[float64],
		Abs:              absGeneric[float64],
		Scale:            scaleGeneric[float64],
		DotProductUnsafe: dotGeneric[float64],
	}
)

// forceGeneric routes For, Float32Ops and Float64Ops to the pure Go kernels.
var forceGeneric atomic.Bool

// UseGeneric forces (or releases) the pure Go kernels for all subsequent lookups.
func UseGeneric(enabled bool) {
	forceGeneric.Store(enabled)
}

// GenericEnabled reports whether the pure Go kernels are forced.
func GenericEnabled() bool {
	return forceGeneric.Load()
}

// For returns the Ops instance for type F.
// The type switch happens at instantiation time, not in hot paths.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(Float32Ops()).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(Float64Ops()).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// Type aliases for common configurations.
type (
	Ops32 = Ops[float32]
	Ops64 = Ops[float64]
)

// Float32Ops returns the float32 SIMD operations.
// Convenience function for non-generic code.
func Float32Ops() *Ops[float32] {
	if forceGeneric.Load() {
		return &generic32
	}
	return &ops32
}

// Float64Ops returns the float64 SIMD operations.
// Convenience function for non-generic code.
func Float64Ops() *Ops[float64] {
	if forceGeneric.Load() {
		return &generic64
	}
	return &ops64
}

// Generic32 returns the pure Go float32 kernels regardless of UseGeneric.
func Generic32() *Ops[float32] {
	return &generic32
}

// Generic64 returns the pure Go float64 kernels regardless of UseGeneric.
func Generic64() *Ops[float64] {
	return &generic64
}

// Info describes the CPU features available to the accelerated kernels.
func Info() string {
	if forceGeneric.Load() {
		return "generic (SIMD disabled)"
	}
	return cpu.Info()
}
