package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads parameters from an optional YAML file, applies environment
// overrides, and validates. An empty path means defaults plus environment.
func Load(path string) (Params, error) {
	params := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Params{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &params); err != nil {
			return Params{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	applyEnvironmentOverrides(&params)

	if err := params.Validate(); err != nil {
		return Params{}, err
	}
	return params, nil
}

// applyEnvironmentOverrides lets CAPSIM_* variables take precedence over the
// file contents.
func applyEnvironmentOverrides(p *Params) {
	overrideInt := func(key string, target *int) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*target = n
			}
		}
	}

	overrideInt("CAPSIM_RESIDENTS", &p.Residents)
	overrideInt("CAPSIM_BUSINESSES", &p.Businesses)
	overrideInt("CAPSIM_LANDLORDS", &p.Landlords)
	overrideInt("CAPSIM_STEPS", &p.Steps)

	if v := os.Getenv("CAPSIM_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			p.Seed = n
		}
	}
}
