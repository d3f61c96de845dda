// Package config defines run parameters and their validation.
package config

import "fmt"

// Slider bounds of the original dashboard, kept for reference by front ends.
// Values outside these are accepted; only negative values are rejected.
const (
	MinResidents = 100
	MaxResidents = 1000

	MinBusinesses = 10
	MaxBusinesses = 200

	MinLandlords = 1
	MaxLandlords = 20

	MinSteps = 1
	MaxSteps = 50
)

// Params selects population sizes and the number of monthly steps.
type Params struct {
	Residents  int   `yaml:"residents" json:"residents"`
	Businesses int   `yaml:"businesses" json:"businesses"`
	Landlords  int   `yaml:"landlords" json:"landlords"`
	Steps      int   `yaml:"steps" json:"steps"`
	Seed       int64 `yaml:"seed" json:"seed"` // 0 draws a seed from crypto/rand
}

// Default returns the dashboard's default parameter set.
func Default() Params {
	return Params{
		Residents:  500,
		Businesses: 100,
		Landlords:  10,
		Steps:      12,
	}
}

// InvalidParameterError reports a parameter outside its valid domain.
type InvalidParameterError struct {
	Name   string
	Value  int64
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%d: %s", e.Name, e.Value, e.Reason)
}

// Validate rejects negative counts and step totals. Zero counts are valid:
// an empty population produces zero aggregates, not an error.
func (p Params) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"residents", p.Residents},
		{"businesses", p.Businesses},
		{"landlords", p.Landlords},
		{"steps", p.Steps},
	}
	for _, c := range checks {
		if c.value < 0 {
			return &InvalidParameterError{
				Name:   c.name,
				Value:  int64(c.value),
				Reason: "must be non-negative",
			}
		}
	}
	return nil
}
