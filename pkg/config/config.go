// Package config loads the simulation tunables file: coverage ranges and the
// bridge tier table. Everything has a built-in default so a project without
// a tunables file still runs.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ericmatamoros/isometric-city-sub000/pkg/bridge"
	"github.com/ericmatamoros/isometric-city-sub000/pkg/coverage"
)

// Tunables is the full tuning table.
type Tunables struct {
	Coverage coverage.Params   `yaml:"coverage" json:"coverage"`
	Bridges  []bridge.TierSpec `yaml:"bridges" json:"bridges"`
}

// Default returns the built-in tuning table.
func Default() *Tunables {
	return &Tunables{
		Coverage: coverage.DefaultParams(),
		Bridges:  bridge.DefaultTiers(),
	}
}

// Validate rejects tables the engine cannot run on.
func (t *Tunables) Validate() error {
	if err := t.Coverage.Validate(); err != nil {
		return err
	}
	if len(t.Bridges) == 0 {
		return fmt.Errorf("bridges: tier table is empty")
	}
	for i, tier := range t.Bridges {
		if tier.MinSpan <= 0 || tier.MaxSpan < tier.MinSpan {
			return fmt.Errorf("bridges[%d] (%s): bad span window [%d,%d]", i, tier.Name, tier.MinSpan, tier.MaxSpan)
		}
		if i > 0 && tier.MinSpan < t.Bridges[i-1].MinSpan {
			return fmt.Errorf("bridges[%d] (%s): tiers must ascend by span", i, tier.Name)
		}
	}
	return nil
}

// Load reads a tunables file from a YAML file.
func Load(path string) (*Tunables, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading tunables file: %w", err)
	}

	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parsing tunables YAML: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadProject loads tunables from a project directory. It looks for
// tunables.yaml in the given directory and falls back to defaults when the
// file does not exist.
func LoadProject(projectDir string) (*Tunables, error) {
	path := filepath.Join(projectDir, "tunables.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
