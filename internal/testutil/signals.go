package testutil

import "math/rand"

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Ramp returns the counting sequence [1, 2, ..., n].
func Ramp(n int) []float64 {
	out := make([]float64, max(n, 0))
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}
