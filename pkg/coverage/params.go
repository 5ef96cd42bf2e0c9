package coverage

import "fmt"

// ServiceParams tunes one percentage service: how far it reaches and how much
// it contributes at the source. Contribution decays linearly from Strength at
// distance 0 to zero at the range boundary.
type ServiceParams struct {
	Range    int     `yaml:"range" json:"range"`
	Strength float64 `yaml:"strength" json:"strength"`
}

// Params is the per-service parameter table. The exact ranges and decay are
// gameplay tuning, not topology, so they live here rather than as constants
// in the scan.
type Params struct {
	Police    ServiceParams `yaml:"police" json:"police"`
	Fire      ServiceParams `yaml:"fire" json:"fire"`
	Health    ServiceParams `yaml:"health" json:"health"`
	Education ServiceParams `yaml:"education" json:"education"`

	PowerRange int `yaml:"power_range" json:"power_range"`
	WaterRange int `yaml:"water_range" json:"water_range"`
}

// DefaultParams returns the built-in tuning table.
func DefaultParams() Params {
	return Params{
		Police:     ServiceParams{Range: 10, Strength: 100},
		Fire:       ServiceParams{Range: 9, Strength: 100},
		Health:     ServiceParams{Range: 8, Strength: 100},
		Education:  ServiceParams{Range: 8, Strength: 100},
		PowerRange: 12,
		WaterRange: 10,
	}
}

// Validate rejects tables the scan cannot work with.
func (p Params) Validate() error {
	for name, sp := range map[string]ServiceParams{
		"police": p.Police, "fire": p.Fire, "health": p.Health, "education": p.Education,
	} {
		if sp.Range <= 0 {
			return fmt.Errorf("coverage.%s.range must be positive, got %d", name, sp.Range)
		}
		if sp.Strength <= 0 {
			return fmt.Errorf("coverage.%s.strength must be positive, got %g", name, sp.Strength)
		}
	}
	if p.PowerRange <= 0 {
		return fmt.Errorf("coverage.power_range must be positive, got %d", p.PowerRange)
	}
	if p.WaterRange <= 0 {
		return fmt.Errorf("coverage.water_range must be positive, got %d", p.WaterRange)
	}
	return nil
}
