package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/capsim/internal/entropy"
)

func TestGini_Empty(t *testing.T) {
	g, err := Gini(nil)
	require.NoError(t, err)
	assert.Zero(t, g)
}

func TestGini_AllZero(t *testing.T) {
	g, err := Gini([]float64{0, 0, 0})
	require.NoError(t, err)
	assert.Zero(t, g, "a population with no wealth is perfectly equal")
}

func TestGini_Constant(t *testing.T) {
	for _, v := range []float64{1, 5, 250.5} {
		g, err := Gini([]float64{v, v, v, v})
		require.NoError(t, err)
		assert.InDelta(t, 0, g, 1e-12, "repeated constant %v should be perfectly equal", v)
	}
}

func TestGini_SingleValue(t *testing.T) {
	g, err := Gini([]float64{42})
	require.NoError(t, err)
	assert.InDelta(t, 0, g, 1e-12)
}

func TestGini_Known(t *testing.T) {
	// Sorted 1,2,3: (2·14)/(3·6) − 4/3 = 2/9.
	g, err := Gini([]float64{3, 1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 2.0/9.0, g, 1e-9)
}

func TestGini_OutlierMonotonic(t *testing.T) {
	prev := -1.0
	for _, outlier := range []float64{2, 4, 8, 16, 64, 1024} {
		g, err := Gini([]float64{1, 1, 1, 1, outlier})
		require.NoError(t, err)
		assert.Greater(t, g, prev, "inequality should grow with the outlier")
		prev = g
	}
}

func TestGini_RangeProperty(t *testing.T) {
	src := entropy.NewSource(99)

	for trial := 0; trial < 100; trial++ {
		values := make([]float64, src.IntBetween(1, 30))
		for i := range values {
			values[i] = src.Between(0, 100)
		}

		g, err := Gini(values)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, g, 0.0)
		assert.Less(t, g, 1.0)
	}
}

func TestGini_NegativeRejected(t *testing.T) {
	g, err := Gini([]float64{5, -1, 3})
	assert.ErrorIs(t, err, ErrNegativeValue)
	assert.Zero(t, g)
}

func TestGini_DoesNotModifyInput(t *testing.T) {
	values := []float64{3, 1, 2}

	_, err := Gini(values)
	require.NoError(t, err)

	assert.Equal(t, []float64{3, 1, 2}, values)
}
