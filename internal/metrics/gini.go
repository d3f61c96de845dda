// Package metrics computes aggregate statistics over entity collections.
package metrics

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNegativeValue is reported by Gini when the input contains a negative
// value. The index formula is only defined for non-negative distributions.
var ErrNegativeValue = errors.New("negative value")

// Gini returns the Gini coefficient of a non-negative distribution.
// Empty and all-zero inputs report 0 (perfect equality). The result is in
// [0, 1) for valid input. The input slice is not modified.
func Gini(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	if sorted[0] < 0 {
		return 0, fmt.Errorf("gini: %w: %v", ErrNegativeValue, sorted[0])
	}

	n := float64(len(sorted))
	var total, weighted float64
	for i, x := range sorted {
		total += x
		weighted += float64(i+1) * x
	}
	if total == 0 {
		return 0, nil
	}

	return (2*weighted)/(n*total) - (n+1)/n, nil
}
