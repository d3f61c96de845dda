// Package report renders a run result at the presentation boundary: text
// tables for the terminal, stable JSON for machine consumers. Everything
// here is a plain view over engine data; no computation beyond derived
// columns happens at this layer.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/talgya/capsim/internal/agents"
	"github.com/talgya/capsim/internal/config"
	"github.com/talgya/capsim/internal/engine"
)

// TopResidents caps the text table at the highest universal holders.
const TopResidents = 10

// ResidentRow is a resident with its derived wealth columns.
type ResidentRow struct {
	agents.Resident
	WealthBefore float64 `json:"wealth_before"`
	WealthAfter  float64 `json:"wealth_after"`
}

// LandlordRow is a landlord with its derived net gain column.
type LandlordRow struct {
	agents.Landlord
	NetGain float64 `json:"net_gain"`
}

// Report is the presentation-ready view of a run.
type Report struct {
	RunID      string            `json:"run_id"`
	Params     config.Params     `json:"params"`
	Stats      engine.Stats      `json:"stats"`
	Series     []engine.StatsRow `json:"series"`
	Residents  []ResidentRow     `json:"residents"`
	Businesses []agents.Business `json:"businesses"`
	Landlords  []LandlordRow     `json:"landlords"`
}

// Build assembles a Report from a run result. Residents are ordered by
// universals held, highest first, matching the dashboard's final snapshot.
func Build(res *engine.Result) *Report {
	residents := make([]ResidentRow, len(res.Residents))
	for i, r := range res.Residents {
		residents[i] = ResidentRow{
			Resident:     r,
			WealthBefore: r.WealthBefore(),
			WealthAfter:  r.WealthAfter(),
		}
	}
	sort.SliceStable(residents, func(i, j int) bool {
		return residents[i].Universals > residents[j].Universals
	})

	landlords := make([]LandlordRow, len(res.Landlords))
	for i, l := range res.Landlords {
		landlords[i] = LandlordRow{
			Landlord: l,
			NetGain:  l.NetGain(),
		}
	}

	return &Report{
		RunID:      res.RunID.String(),
		Params:     res.Params,
		Stats:      res.Stats,
		Series:     res.Series,
		Residents:  residents,
		Businesses: res.Businesses,
		Landlords:  landlords,
	}
}

// RenderJSON writes the report as indented JSON.
func (r *Report) RenderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// Render writes the human-readable report.
func (r *Report) Render(w io.Writer) {
	fmt.Fprintf(w, "Universal Capital Simulation (run %s)\n", r.RunID)
	fmt.Fprintf(w, "residents=%d businesses=%d landlords=%d steps=%d seed=%d\n\n",
		r.Params.Residents, r.Params.Businesses, r.Params.Landlords,
		r.Params.Steps, r.Params.Seed)

	fmt.Fprintf(w, "Total universals issued:  %s\n", money(r.Stats.TotalUniversals))
	fmt.Fprintf(w, "Total rent collected:     %s\n", money(r.Stats.TotalRent))
	fmt.Fprintf(w, "Avg business growth:      %s\n", money(r.Stats.AvgBusinessGrowth))
	fmt.Fprintf(w, "Gini income:              %.3f\n", r.Stats.GiniIncome)
	fmt.Fprintf(w, "Gini wealth:              %.3f\n", r.Stats.GiniWealth)
	fmt.Fprintf(w, "Wealth before / after:    %s / %s\n",
		money(r.Stats.WealthBefore), money(r.Stats.WealthAfter))
	fmt.Fprintf(w, "Purchasing power gain:    %.1f%%\n", r.Stats.PurchasingPowerGain)

	r.renderResidents(w)
	r.renderLandlords(w)
	r.renderSeries(w)
}

func (r *Report) renderResidents(w io.Writer) {
	if len(r.Residents) == 0 {
		return
	}

	limit := TopResidents
	if len(r.Residents) < limit {
		limit = len(r.Residents)
	}
	fmt.Fprintf(w, "\nTop %d of %d residents by universals:\n", limit, len(r.Residents))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INCOME\tRENT\tCAPITAL\tUNIVERSALS\tSPENDING\tWEALTH")
	for _, row := range r.Residents[:limit] {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			money(row.Income), money(row.Rent), money(row.Capital),
			money(row.Universals), money(row.Spending), money(row.WealthAfter))
	}
	tw.Flush()
}

func (r *Report) renderLandlords(w io.Writer) {
	if len(r.Landlords) == 0 {
		return
	}

	fmt.Fprintf(w, "\nLandlords (%d):\n", len(r.Landlords))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RENT COLLECTED\tREINVEST RATE\tREINVESTMENT\tNET GAIN")
	for _, row := range r.Landlords {
		fmt.Fprintf(tw, "%s\t%.2f\t%s\t%s\n",
			money(row.TotalRent), row.ReinvestmentRate,
			money(row.Reinvestment), money(row.NetGain))
	}
	tw.Flush()
}

func (r *Report) renderSeries(w io.Writer) {
	if len(r.Series) == 0 {
		return
	}

	fmt.Fprint(w, "\nUniversals over time:\n")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tTOTAL UNIVERSALS\tGINI WEALTH\tAVG BUSINESS GROWTH")
	for _, row := range r.Series {
		fmt.Fprintf(tw, "%d\t%s\t%.3f\t%s\n",
			row.Step, money(row.Stats.TotalUniversals),
			row.Stats.GiniWealth, money(row.Stats.AvgBusinessGrowth))
	}
	tw.Flush()
}

// money formats a currency amount with thousands separators.
func money(v float64) string {
	return "$" + humanize.CommafWithDigits(v, 2)
}
