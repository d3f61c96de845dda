// Package engine runs the neighborhood model: spawn populations, apply the
// per-entity step formulas, and recompute aggregates after every step.
package engine

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/capsim/internal/agents"
	"github.com/talgya/capsim/internal/config"
	"github.com/talgya/capsim/internal/entropy"
	"github.com/talgya/capsim/internal/metrics"
)

// Simulation holds the generated populations and the aggregate state.
type Simulation struct {
	RunID      uuid.UUID
	Residents  []agents.Resident
	Businesses []agents.Business
	Landlords  []agents.Landlord
	LastStep   int   // Most recent step applied, 0 before any stepping
	Stats      Stats // Aggregates over the current state

	src *entropy.Source
}

// Stats is the aggregate snapshot recomputed after every step.
type Stats struct {
	TotalUniversals     float64 `json:"total_universals"`
	TotalRent           float64 `json:"total_rent"`
	GiniIncome          float64 `json:"gini_income"`
	GiniWealth          float64 `json:"gini_wealth"`
	AvgBusinessGrowth   float64 `json:"avg_business_growth"`
	WealthBefore        float64 `json:"wealth_before"`
	WealthAfter         float64 `json:"wealth_after"`
	PurchasingPowerGain float64 `json:"purchasing_power_gain"` // Percent
}

// NewSimulation spawns populations for the given parameters. Counts must
// already be validated non-negative.
func NewSimulation(params config.Params, src *entropy.Source) *Simulation {
	spawner := agents.NewSpawner(src)

	sim := &Simulation{
		RunID:      uuid.New(),
		Residents:  spawner.SpawnResidents(params.Residents),
		Businesses: spawner.SpawnBusinesses(params.Businesses),
		Landlords:  spawner.SpawnLandlords(params.Landlords),
		src:        src,
	}
	sim.updateStats()
	return sim
}

// Step applies one monthly update to every entity. Entities are independent;
// iteration order only matters for random draw reproducibility.
func (s *Simulation) Step() {
	s.LastStep++

	for i, r := range s.Residents {
		s.Residents[i] = agents.StepResident(r)
	}
	for i, b := range s.Businesses {
		income := float64(s.src.IntBetween(agents.UniversalIncomeMin, agents.UniversalIncomeMax))
		s.Businesses[i] = agents.StepBusiness(b, income)
	}
	for i, l := range s.Landlords {
		collected := float64(s.src.IntBetween(agents.MonthlyRentMin, agents.MonthlyRentMax))
		s.Landlords[i] = agents.StepLandlord(l, collected)
	}

	s.updateStats()
}

func (s *Simulation) updateStats() {
	before := metrics.Sum(metrics.WealthBefore(s.Residents))
	after := metrics.Sum(metrics.WealthAfter(s.Residents))

	s.Stats = Stats{
		TotalUniversals:     metrics.Sum(metrics.Universals(s.Residents)),
		TotalRent:           metrics.Sum(metrics.Rents(s.Residents)),
		GiniIncome:          s.gini(metrics.Incomes(s.Residents), "income"),
		GiniWealth:          s.gini(metrics.WealthAfter(s.Residents), "wealth"),
		AvgBusinessGrowth:   metrics.Mean(metrics.Received(s.Businesses)),
		WealthBefore:        before,
		WealthAfter:         after,
		PurchasingPowerGain: metrics.PercentGain(before, after),
	}
}

// gini wraps metrics.Gini for series that are non-negative by construction.
func (s *Simulation) gini(values []float64, series string) float64 {
	g, err := metrics.Gini(values)
	if err != nil {
		slog.Warn("gini computation skipped", "series", series, "error", err)
		return 0
	}
	return g
}
