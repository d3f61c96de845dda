// Package agents defines the three entity kinds of the neighborhood model
// and the closed-form update formulas applied to them each step.
package agents

// Resident is a person receiving universal capital credits.
type Resident struct {
	Income             float64 `json:"income"`              // Annual income
	Rent               float64 `json:"rent"`                // Monthly rent paid
	Capital            float64 `json:"capital"`             // Capital investment held
	Universals         float64 `json:"universals"`          // Accumulated capital credits, never negative
	SpendingRate       float64 `json:"spending_rate"`       // Share of income spent, fixed at creation
	SpendingPropensity float64 `json:"spending_propensity"` // Willingness to spend universals, fixed at creation
	Spending           float64 `json:"spending"`            // Income × spending rate, set on step
	UniversalSpending  float64 `json:"universal_spending"`  // Universals drawn down per step
}

// WealthBefore is the resident's wealth ignoring issued universals.
func (r Resident) WealthBefore() float64 {
	return r.Capital
}

// WealthAfter is capital plus accumulated universals.
func (r Resident) WealthAfter() float64 {
	return r.Capital + r.Universals
}

// Business is a local business accepting universals as payment.
type Business struct {
	AnnualRevenue      float64 `json:"annual_revenue"`
	Capitalization     float64 `json:"capitalization"`
	AcceptsUniversals  bool    `json:"accepts_universals"`
	UniversalsReceived float64 `json:"universals_received"` // Accumulates with step count
}

// Landlord collects rent and reinvests a fixed share of it locally.
type Landlord struct {
	TotalRent        float64 `json:"total_rent"`        // Rent collected this step
	ReinvestmentRate float64 `json:"reinvestment_rate"` // Fixed at creation
	Reinvestment     float64 `json:"reinvestment"`      // TotalRent × ReinvestmentRate
}

// NetGain is rent kept after local reinvestment.
func (l Landlord) NetGain() float64 {
	return l.TotalRent - l.Reinvestment
}
