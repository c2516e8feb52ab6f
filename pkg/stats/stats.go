package stats

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Log10 returns the base-10 logarithm of every element (allocates).
// Zero maps to -Inf and negative values to NaN, same as math.Log10.
func Log10(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = math.Log10(v)
	}
	return out
}

// CountNonPositive returns how many values are <= 0 or NaN, i.e. have no real logarithm.
func CountNonPositive(x []float64) int {
	n := 0
	for _, v := range x {
		if !(v > 0) {
			n++
		}
	}
	return n
}

// Finite reports whether every element is neither NaN nor ±Inf.
func Finite(x []float64) bool {
	if floats.HasNaN(x) {
		return false
	}
	for _, v := range x {
		if math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Mean computes the average of a slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	return floats.Sum(x) / float64(len(x))
}
