package agents

import "math"

// Constants of the universal capital mechanism.
const (
	// TargetCapitalRate is the capital-adequacy target as a share of income.
	TargetCapitalRate = 0.25

	// GapFillShare is the fraction of the capital gap issued as universals
	// each step.
	GapFillShare = 0.5

	// UniversalSpendShare scales how much of regular spending draws down
	// universals.
	UniversalSpendShare = 0.2
)

// StepResident applies one monthly update: issue credits for half the
// capital-adequacy gap, then draw credits down by the resident's universal
// spending. Pure; the input record is not mutated.
func StepResident(r Resident) Resident {
	target := r.Income * TargetCapitalRate
	gap := math.Max(0, target-r.Capital)
	r.Universals += gap * GapFillShare

	r.Spending = r.Income * r.SpendingRate
	r.UniversalSpending = r.Spending * r.SpendingPropensity * UniversalSpendShare
	r.Universals = math.Max(0, r.Universals-r.UniversalSpending)
	return r
}

// StepBusiness credits one step of universal income to the business.
func StepBusiness(b Business, universalIncome float64) Business {
	b.UniversalsReceived += universalIncome
	return b
}

// StepLandlord records the rent collected this step and splits it into local
// reinvestment and retained gain.
func StepLandlord(l Landlord, collected float64) Landlord {
	l.TotalRent = collected
	l.Reinvestment = collected * l.ReinvestmentRate
	return l
}
