package engine

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/talgya/capsim/internal/agents"
	"github.com/talgya/capsim/internal/config"
	"github.com/talgya/capsim/internal/entropy"
)

// Result is the full outcome of a run: final entity tables, the per-step
// series, and the final aggregates.
type Result struct {
	RunID      uuid.UUID         `json:"run_id"`
	Params     config.Params     `json:"params"`
	Residents  []agents.Resident `json:"residents"`
	Businesses []agents.Business `json:"businesses"`
	Landlords  []agents.Landlord `json:"landlords"`
	Series     []StatsRow        `json:"series"`
	Stats      Stats             `json:"stats"`
}

// Run validates params, spawns populations, applies the requested number of
// steps, and collects aggregates after each.
func Run(params config.Params, src *entropy.Source) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	sim := NewSimulation(params, src)
	slog.Info("populations spawned",
		"run_id", sim.RunID,
		"residents", len(sim.Residents),
		"businesses", len(sim.Businesses),
		"landlords", len(sim.Landlords),
		"seed", src.Seed(),
	)

	collector := &Collector{}
	for step := 0; step < params.Steps; step++ {
		sim.Step()
		collector.Collect(sim)
	}

	slog.Info("run complete",
		"steps", sim.LastStep,
		"total_universals", sim.Stats.TotalUniversals,
		"gini_income", sim.Stats.GiniIncome,
		"gini_wealth", sim.Stats.GiniWealth,
	)

	return &Result{
		RunID:      sim.RunID,
		Params:     params,
		Residents:  sim.Residents,
		Businesses: sim.Businesses,
		Landlords:  sim.Landlords,
		Series:     collector.Rows,
		Stats:      sim.Stats,
	}, nil
}
