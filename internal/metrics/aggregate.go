package metrics

import (
	"golang.org/x/exp/constraints"

	"github.com/talgya/capsim/internal/agents"
)

// Number covers the numeric field types reduced here.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum adds a slice of numbers.
func Sum[T Number](xs []T) T {
	var total T
	for _, x := range xs {
		total += x
	}
	return total
}

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean[T Number](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	return float64(Sum(xs)) / float64(len(xs))
}

// PercentGain is the percentage change from before to after, 0 when there is
// nothing to compare against.
func PercentGain(before, after float64) float64 {
	if before == 0 {
		return 0
	}
	return (after - before) / before * 100
}

// Incomes extracts resident incomes.
func Incomes(rs []agents.Resident) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.Income
	}
	return out
}

// Rents extracts resident monthly rents.
func Rents(rs []agents.Resident) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.Rent
	}
	return out
}

// Universals extracts accumulated universals per resident.
func Universals(rs []agents.Resident) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.Universals
	}
	return out
}

// WealthBefore extracts resident wealth excluding universals.
func WealthBefore(rs []agents.Resident) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.WealthBefore()
	}
	return out
}

// WealthAfter extracts resident wealth including universals.
func WealthAfter(rs []agents.Resident) []float64 {
	out := make([]float64, len(rs))
	for i, r := range rs {
		out[i] = r.WealthAfter()
	}
	return out
}

// Received extracts universals received per business.
func Received(bs []agents.Business) []float64 {
	out := make([]float64, len(bs))
	for i, b := range bs {
		out[i] = b.UniversalsReceived
	}
	return out
}
