package simdops

import (
	"testing"

	"github.com/tphakala/simd/f32"
)

func benchInputs(n int) (a, c, dst []float32) {
	a = make([]float32, n)
	c = make([]float32, n)
	dst = make([]float32, n)
	for i := range a {
		a[i] = float32(i) * 0.01
		c[i] = float32(i)*0.02 + 1
	}
	return a, c, dst
}

// BenchmarkDirectF32Add measures direct SIMD call overhead.
func BenchmarkDirectF32Add(b *testing.B) {
	a, c, dst := benchInputs(64)

	b.ReportAllocs()
	for b.Loop() {
		f32.Add(dst, a, c)
	}
}

// BenchmarkIndirectF32Add measures indirect call through Ops struct.
func BenchmarkIndirectF32Add(b *testing.B) {
	ops := For[float32]()
	a, c, dst := benchInputs(64)

	b.ReportAllocs()
	for b.Loop() {
		ops.Add(dst, a, c)
	}
}

// BenchmarkGenericF32Add measures the pure Go fallback.
func BenchmarkGenericF32Add(b *testing.B) {
	ops := Generic32()
	a, c, dst := benchInputs(64)

	b.ReportAllocs()
	for b.Loop() {
		ops.Add(dst, a, c)
	}
}

// Larger sizes to measure if overhead becomes negligible
func BenchmarkIndirectF32Mul_Large(b *testing.B) {
	ops := For[float32]()
	a, c, dst := benchInputs(16384)

	b.ReportAllocs()
	for b.Loop() {
		ops.Mul(dst, a, c)
	}
}

func BenchmarkGenericF32Mul_Large(b *testing.B) {
	ops := Generic32()
	a, c, dst := benchInputs(16384)

	b.ReportAllocs()
	for b.Loop() {
		ops.Mul(dst, a, c)
	}
}
