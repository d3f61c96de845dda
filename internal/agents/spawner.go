// Entity spawning: creates resident, business, and landlord populations by
// sampling within fixed literal ranges.
package agents

import "github.com/talgya/capsim/internal/entropy"

// Sampling ranges for generated entities.
const (
	IncomeMin = 20000
	IncomeMax = 50000

	ResidentRentMin = 800
	ResidentRentMax = 2000

	// Starting capital as a share of income.
	CapitalShareMax = 0.1

	SpendingRateMin = 0.5
	SpendingRateMax = 0.85

	SpendingPropensityMin = 0.4
	SpendingPropensityMax = 0.9

	RevenueMin = 100000
	RevenueMax = 300000

	// Business capitalization as a share of annual revenue.
	CapitalizationShareMin = 0.05
	CapitalizationShareMax = 0.15

	ReinvestmentRateMin = 0.05
	ReinvestmentRateMax = 0.3
)

// Per-step draws made by the engine.
const (
	UniversalIncomeMin = 100
	UniversalIncomeMax = 1000

	MonthlyRentMin = 10000
	MonthlyRentMax = 30000
)

// Spawner generates entity populations from an injected random source.
type Spawner struct {
	src *entropy.Source
}

// NewSpawner creates a spawner sampling from src.
func NewSpawner(src *entropy.Source) *Spawner {
	return &Spawner{src: src}
}

// SpawnResidents creates n residents. Counts must be non-negative
// (validated upstream).
func (s *Spawner) SpawnResidents(n int) []Resident {
	out := make([]Resident, 0, n)
	for i := 0; i < n; i++ {
		income := float64(s.src.IntBetween(IncomeMin, IncomeMax))
		out = append(out, Resident{
			Income:             income,
			Rent:               float64(s.src.IntBetween(ResidentRentMin, ResidentRentMax)),
			Capital:            income * s.src.Between(0, CapitalShareMax),
			SpendingRate:       s.src.Between(SpendingRateMin, SpendingRateMax),
			SpendingPropensity: s.src.Between(SpendingPropensityMin, SpendingPropensityMax),
		})
	}
	return out
}

// SpawnBusinesses creates n businesses.
func (s *Spawner) SpawnBusinesses(n int) []Business {
	out := make([]Business, 0, n)
	for i := 0; i < n; i++ {
		revenue := float64(s.src.IntBetween(RevenueMin, RevenueMax))
		out = append(out, Business{
			AnnualRevenue:     revenue,
			Capitalization:    revenue * s.src.Between(CapitalizationShareMin, CapitalizationShareMax),
			AcceptsUniversals: true,
		})
	}
	return out
}

// SpawnLandlords creates n landlords.
func (s *Spawner) SpawnLandlords(n int) []Landlord {
	out := make([]Landlord, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Landlord{
			ReinvestmentRate: s.src.Between(ReinvestmentRateMin, ReinvestmentRateMax),
		})
	}
	return out
}
