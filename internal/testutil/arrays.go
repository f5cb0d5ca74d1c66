package testutil

import "math/rand/v2"

// Ramp returns [0, 1, ..., n-1] as float64 values.
func Ramp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// ReverseRamp returns [n-1, n-2, ..., 0] as float64 values.
func ReverseRamp(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(n - 1 - i)
	}
	return out
}

// Constant returns a slice of length n filled with value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// UniformNoise returns n values drawn uniformly from [min, max) using a
// fixed-seed source, for reproducible sort and format inputs.
func UniformNoise(seed uint64, min, max float64, n int) []float64 {
	rng := rand.New(rand.NewPCG(seed, seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = min + rng.Float64()*(max-min)
	}
	return out
}

// NonDecreasing reports whether values[i] <= values[i+1] for all
// adjacent pairs.
func NonDecreasing(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] > values[i] {
			return false
		}
	}
	return true
}

// NonIncreasing reports whether values[i] >= values[i+1] for all
// adjacent pairs.
func NonIncreasing(values []float64) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] < values[i] {
			return false
		}
	}
	return true
}
