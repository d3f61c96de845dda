package engine

// StatsRow is one step's aggregate snapshot, the unit of the time series
// handed to presentation.
type StatsRow struct {
	Step  int   `json:"step"`
	Stats Stats `json:"stats"`
}

// Collector accumulates the per-step aggregate series.
type Collector struct {
	Rows []StatsRow
}

// Collect snapshots the simulation's aggregates for its current step.
func (c *Collector) Collect(s *Simulation) {
	c.Rows = append(c.Rows, StatsRow{Step: s.LastStep, Stats: s.Stats})
}
