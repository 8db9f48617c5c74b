// Package entropy estimates Shannon entropy over frequency tables.
package entropy

import (
	"math"

	"github.com/cognicore/lexstat/pkg/lexstat/freq"
)

// DefaultAlpha is the default additive smoothing constant.
const DefaultAlpha = 1e-5

// Smoothed computes additively smoothed empirical Shannon entropy in
// bits.
//
// For each distinct unit with raw count c:
//
//	p = (c + α) / (total + α·|table|)
//	H = Σ -p·log2(p)
//
// The smoothing denominator includes α·|table|, keeping the smoothed
// probabilities summing close to 1. An empty table carries no
// information and yields 0. α = 0 reduces to the unsmoothed MLE
// estimate, which is well defined here (every observed count is
// positive) but numerically less stable for comparison across runs.
func Smoothed(table *freq.Table, total int64, alpha float64) float64 {
	n := table.Len()
	if n == 0 {
		return 0
	}

	denom := float64(total) + alpha*float64(n)
	if denom <= 0 {
		return 0
	}

	var h float64
	for _, c := range table.Counts() {
		p := (float64(c) + alpha) / denom
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}
