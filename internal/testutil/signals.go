package testutil

import "math/rand"

// Step returns length samples that hold before until index at, then after.
func Step(length, at int, before, after float64) []float64 {
	out := make([]float64, length)
	for i := range out {
		if i < at {
			out[i] = before
		} else {
			out[i] = after
		}
	}

	return out
}

// NoisyConstant returns value plus uniform noise in [-amplitude, amplitude],
// drawn from a fixed seed so runs are reproducible. It stands in for a
// stationary sensor reading.
func NoisyConstant(seed int64, value, amplitude float64, length int) []float64 {
	out := make([]float64, length)

	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = value + (rng.Float64()*2-1)*amplitude
	}

	return out
}
