// Package scenario loads filtration parameter sweeps from YAML files.
package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/membranelab/crossflow/sim"
)

// Parameters describes one filtration run of a sweep.
type Parameters struct {
	Name string `yaml:"name"`

	Volume              float64 `yaml:"volume"`
	Concentration       float64 `yaml:"concentration"`
	TMP                 float64 `yaml:"tmp"`
	MembraneArea        float64 `yaml:"membrane_area"`
	MWCO                float64 `yaml:"mwco"`
	ConcentrationFactor float64 `yaml:"concentration_factor"`

	// SoluteMolecularWeight overrides the default solute when positive.
	SoluteMolecularWeight float64 `yaml:"solute_molecular_weight,omitempty"`

	// TimeStepSeconds overrides the default time step when positive.
	TimeStepSeconds float64 `yaml:"time_step_seconds,omitempty"`

	// MaxHours appends a maximum-simulation-time criterion when positive.
	MaxHours float64 `yaml:"max_hours,omitempty"`
}

// A Scenario is a named list of runs.
type Scenario struct {
	Name string       `yaml:"name"`
	Runs []Parameters `yaml:"runs"`
}

// Load reads a scenario from a YAML file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if len(s.Runs) == 0 {
		return nil, fmt.Errorf("scenario %s defines no runs", path)
	}

	for i := range s.Runs {
		if s.Runs[i].Name == "" {
			s.Runs[i].Name = fmt.Sprintf("run-%d", i)
		}
	}

	return &s, nil
}

// Builder converts the parameters into an orchestrator builder. Validation
// happens in Build, not here.
func (p Parameters) Builder() sim.OrchestratorBuilder {
	b := sim.MakeOrchestratorBuilder().
		WithVolume(p.Volume).
		WithConcentration(p.Concentration).
		WithTMP(p.TMP).
		WithMembraneArea(p.MembraneArea).
		WithMWCO(p.MWCO).
		WithConcentrationFactor(p.ConcentrationFactor)

	if p.SoluteMolecularWeight > 0 {
		b = b.WithSoluteMolecularWeight(p.SoluteMolecularWeight)
	}

	if p.MaxHours > 0 {
		b = b.WithTerminationCriteria(sim.NewMaxSimulationTimeCriterion(
			sim.VTimeInSec(p.MaxHours) * sim.OneHour))
	}

	return b
}

// TimeStep returns the configured time step, or the default.
func (p Parameters) TimeStep() sim.VTimeInSec {
	if p.TimeStepSeconds > 0 {
		return sim.VTimeInSec(p.TimeStepSeconds)
	}

	return sim.DefaultTimeStep
}
