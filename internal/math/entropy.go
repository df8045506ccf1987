package math

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Entropy returns the base-2 Shannon entropy of the distribution given by the counts.
// No counts, or counts summing to zero, have zero entropy.
func Entropy(counts ...int) float64 {
	total := 0
	for _, c := range counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	p := make([]float64, len(counts))
	for i, c := range counts {
		p[i] = float64(c) / float64(total)
	}
	h := stat.Entropy(p) / math.Ln2
	if h <= 0 {
		// a pure distribution yields -0 out of stat.Entropy
		return 0
	}
	return h
}
