package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a small synthetic workload: a set of columns, a
// batch of candidate cuts to add to a pool, and one separation pass
// against a given point. It is the YAML shape cutpost-bench loads.
type Scenario struct {
	NumCols int             `yaml:"num_cols"`
	Cuts    []ScenarioCut   `yaml:"cuts"`
	Point   []float64       `yaml:"point"`
	Bounds  ScenarioBounds  `yaml:"bounds"`
	Config  ScenarioOptions `yaml:"config"`
}

// ScenarioCut is one candidate row: sparse indices, matching values, a
// right-hand side, and whether every coefficient and the bound are
// integral.
type ScenarioCut struct {
	Indices  []int32   `yaml:"indices"`
	Values   []float64 `yaml:"values"`
	RHS      float64   `yaml:"rhs"`
	Integral bool      `yaml:"integral"`
}

// ScenarioBounds carries the lower/upper bounds Separate needs to score
// each candidate row's violation.
type ScenarioBounds struct {
	Lower []float64 `yaml:"lower"`
	Upper []float64 `yaml:"upper"`
}

// ScenarioOptions overrides the cut pool's default tolerances.
type ScenarioOptions struct {
	AgeLimit                      *int32   `yaml:"age_limit"`
	DuplicateParallelismThreshold *float64 `yaml:"duplicate_parallelism_threshold"`
	SelectionParallelismThreshold *float64 `yaml:"selection_parallelism_threshold"`
	FeasibilityTolerance          float64  `yaml:"feasibility_tolerance"`
}

// LoadScenario reads and parses a scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cutpost-bench: read scenario: %w", err)
	}
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("cutpost-bench: parse scenario: %w", err)
	}
	return &s, nil
}
