package simdops

import "math"

// Pure Go fallback kernels. Each processes len(dst) elements; callers
// guarantee the inputs are at least that long.

func addGeneric[F Float](dst, a, b []F) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subGeneric[F Float](dst, a, b []F) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulGeneric[F Float](dst, a, b []F) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func absGeneric[F Float](dst, a []F) {
	for i := range dst {
		dst[i] = F(math.Abs(float64(a[i])))
	}
}

func scaleGeneric[F Float](dst, a []F, s F) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func dotGeneric[F Float](a, b []F) F {
	var sum F
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}
