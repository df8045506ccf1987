package math

import (
	"gonum.org/v1/gonum/floats"
)

// Euclidean returns the L2 distance of two vectors of the same length.
func Euclidean(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// SquaredEuclidean returns the squared L2 distance of two vectors of the same length.
func SquaredEuclidean(a, b []float64) float64 {
	d := Euclidean(a, b)
	return d * d
}

// Mean writes the component-wise mean of the given vectors into dst.
// dst is left untouched if no vectors are given.
func Mean(dst []float64, vectors ...[]float64) {
	if len(vectors) == 0 {
		return
	}
	sum := make([]float64, len(dst))
	for _, v := range vectors {
		floats.Add(sum, v)
	}
	n := float64(len(vectors))
	for i := range sum {
		dst[i] = sum[i] / n
	}
}
