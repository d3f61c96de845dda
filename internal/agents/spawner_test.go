package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/capsim/internal/entropy"
)

func TestSpawnResidents_Ranges(t *testing.T) {
	s := NewSpawner(entropy.NewSource(42))

	residents := s.SpawnResidents(200)
	require.Len(t, residents, 200)

	for _, r := range residents {
		assert.GreaterOrEqual(t, r.Income, float64(IncomeMin))
		assert.LessOrEqual(t, r.Income, float64(IncomeMax))
		assert.GreaterOrEqual(t, r.Rent, float64(ResidentRentMin))
		assert.LessOrEqual(t, r.Rent, float64(ResidentRentMax))
		assert.GreaterOrEqual(t, r.Capital, 0.0)
		assert.LessOrEqual(t, r.Capital, r.Income*CapitalShareMax)
		assert.GreaterOrEqual(t, r.SpendingRate, SpendingRateMin)
		assert.Less(t, r.SpendingRate, SpendingRateMax)
		assert.GreaterOrEqual(t, r.SpendingPropensity, SpendingPropensityMin)
		assert.Less(t, r.SpendingPropensity, SpendingPropensityMax)
		assert.Zero(t, r.Universals, "residents start with no credits")
	}
}

func TestSpawnBusinesses_Ranges(t *testing.T) {
	s := NewSpawner(entropy.NewSource(42))

	businesses := s.SpawnBusinesses(100)
	require.Len(t, businesses, 100)

	for _, b := range businesses {
		assert.GreaterOrEqual(t, b.AnnualRevenue, float64(RevenueMin))
		assert.LessOrEqual(t, b.AnnualRevenue, float64(RevenueMax))
		assert.GreaterOrEqual(t, b.Capitalization, b.AnnualRevenue*CapitalizationShareMin)
		assert.LessOrEqual(t, b.Capitalization, b.AnnualRevenue*CapitalizationShareMax)
		assert.True(t, b.AcceptsUniversals)
		assert.Zero(t, b.UniversalsReceived)
	}
}

func TestSpawnLandlords_Ranges(t *testing.T) {
	s := NewSpawner(entropy.NewSource(42))

	landlords := s.SpawnLandlords(50)
	require.Len(t, landlords, 50)

	for _, l := range landlords {
		assert.GreaterOrEqual(t, l.ReinvestmentRate, ReinvestmentRateMin)
		assert.Less(t, l.ReinvestmentRate, ReinvestmentRateMax)
		assert.Zero(t, l.TotalRent)
	}
}

func TestSpawner_Deterministic(t *testing.T) {
	a := NewSpawner(entropy.NewSource(7))
	b := NewSpawner(entropy.NewSource(7))

	assert.Equal(t, a.SpawnResidents(25), b.SpawnResidents(25))
	assert.Equal(t, a.SpawnBusinesses(10), b.SpawnBusinesses(10))
	assert.Equal(t, a.SpawnLandlords(5), b.SpawnLandlords(5))
}

func TestSpawner_ZeroCounts(t *testing.T) {
	s := NewSpawner(entropy.NewSource(1))

	assert.Empty(t, s.SpawnResidents(0))
	assert.Empty(t, s.SpawnBusinesses(0))
	assert.Empty(t, s.SpawnLandlords(0))
}
