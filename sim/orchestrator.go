package sim

import (
	"fmt"
	"math"
)

// CaseinMolecularWeight is the molecular weight of casein in Da, the default
// solute of the process.
const CaseinMolecularWeight = 25107.0

// DefaultMaxSteps is the safety bound on the number of integration steps of
// a single run. Exceeding it fails the run with a NonTerminationError.
const DefaultMaxSteps = 1000000

// litersPerCubicMeter converts the Darcy flow term, computed in m³/h, to the
// L/h the mass balance is tracked in.
const litersPerCubicMeter = 1000.0

// Typical operating ranges of a batch cross-flow process. Values outside
// these ranges are legal but reported as configuration warnings when a run
// starts.
const (
	TypicalMWCOMin = 1000.0
	TypicalMWCOMax = 500000.0

	TypicalTMPMin = 50000.0
	TypicalTMPMax = 700000.0

	TypicalConcentrationFactorMin = 2.0
	TypicalConcentrationFactorMax = 20.0
)

// A FiltrationOrchestrator advances the state of a batch cross-flow
// filtration run. It owns the simulation state exclusively: hooks and
// results only ever see copies. Orchestrators share nothing, so independent
// instances are safe to run in parallel.
type FiltrationOrchestrator struct {
	HookableBase

	initialVolume        float64
	initialConcentration float64
	tmp                  float64
	membraneArea         float64
	mwco                 float64
	concentrationFactor  float64

	resistanceModel ResistanceModel
	viscosityModel  ViscosityModel
	criteria        []TerminationCriterion

	maxSteps int
	warnings []string

	state SimulationState
}

// An OrchestratorBuilder can build FiltrationOrchestrators.
type OrchestratorBuilder struct {
	volume                float64
	concentration         float64
	tmp                   float64
	membraneArea          float64
	mwco                  float64
	concentrationFactor   float64
	soluteMolecularWeight float64

	resistanceModel ResistanceModel
	viscosityModel  ViscosityModel
	extraCriteria   []TerminationCriterion
	maxSteps        int
}

// MakeOrchestratorBuilder creates a builder with the default resistance
// model, viscosity model, solute, and safety bound.
func MakeOrchestratorBuilder() OrchestratorBuilder {
	return OrchestratorBuilder{
		soluteMolecularWeight: CaseinMolecularWeight,
		resistanceModel:       NewSimplifiedResistanceModel(),
		viscosityModel:        NewWaterViscosityModel(),
		maxSteps:              DefaultMaxSteps,
	}
}

// WithVolume sets the initial hold-up volume in L.
func (b OrchestratorBuilder) WithVolume(v float64) OrchestratorBuilder {
	b.volume = v
	return b
}

// WithConcentration sets the initial solute concentration in g/L.
func (b OrchestratorBuilder) WithConcentration(c float64) OrchestratorBuilder {
	b.concentration = c
	return b
}

// WithTMP sets the trans-membrane pressure in Pa.
func (b OrchestratorBuilder) WithTMP(tmp float64) OrchestratorBuilder {
	b.tmp = tmp
	return b
}

// WithMembraneArea sets the membrane area in m².
func (b OrchestratorBuilder) WithMembraneArea(a float64) OrchestratorBuilder {
	b.membraneArea = a
	return b
}

// WithMWCO sets the molecular weight cut-off in Da.
func (b OrchestratorBuilder) WithMWCO(mwco float64) OrchestratorBuilder {
	b.mwco = mwco
	return b
}

// WithConcentrationFactor sets the target concentration factor.
func (b OrchestratorBuilder) WithConcentrationFactor(
	f float64,
) OrchestratorBuilder {
	b.concentrationFactor = f
	return b
}

// WithSoluteMolecularWeight overrides the default solute (casein), in Da.
func (b OrchestratorBuilder) WithSoluteMolecularWeight(
	mw float64,
) OrchestratorBuilder {
	b.soluteMolecularWeight = mw
	return b
}

// WithResistanceModel replaces the default resistance model.
func (b OrchestratorBuilder) WithResistanceModel(
	m ResistanceModel,
) OrchestratorBuilder {
	b.resistanceModel = m
	return b
}

// WithViscosityModel replaces the default viscosity model.
func (b OrchestratorBuilder) WithViscosityModel(
	m ViscosityModel,
) OrchestratorBuilder {
	b.viscosityModel = m
	return b
}

// WithTerminationCriteria appends custom criteria. They are evaluated after
// the default concentration-factor and molecular-weight criteria, in the
// order given.
func (b OrchestratorBuilder) WithTerminationCriteria(
	criteria ...TerminationCriterion,
) OrchestratorBuilder {
	b.extraCriteria = append(b.extraCriteria, criteria...)
	return b
}

// WithMaxSteps overrides the safety bound on the step count.
func (b OrchestratorBuilder) WithMaxSteps(n int) OrchestratorBuilder {
	b.maxSteps = n
	return b
}

// Build validates the parameters and builds the orchestrator. A violated
// constraint returns a ValidationError naming the offending parameter and no
// orchestrator is created.
func (b OrchestratorBuilder) Build() (*FiltrationOrchestrator, error) {
	if err := b.parametersMustBeValid(); err != nil {
		return nil, err
	}

	o := &FiltrationOrchestrator{
		initialVolume:        b.volume,
		initialConcentration: b.concentration,
		tmp:                  b.tmp,
		membraneArea:         b.membraneArea,
		mwco:                 b.mwco,
		concentrationFactor:  b.concentrationFactor,
		resistanceModel:      b.resistanceModel,
		viscosityModel:       b.viscosityModel,
		maxSteps:             b.maxSteps,
	}

	mwCriterion := NewMolecularWeightCriterion(b.soluteMolecularWeight, b.mwco)

	o.criteria = append(o.criteria,
		NewConcentrationFactorCriterion(b.concentration, b.concentrationFactor),
		mwCriterion,
	)
	o.criteria = append(o.criteria, b.extraCriteria...)

	o.warnings = b.collectWarnings(mwCriterion)

	return o, nil
}

func (b OrchestratorBuilder) parametersMustBeValid() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"volume", b.volume},
		{"concentration", b.concentration},
		{"tmp", b.tmp},
		{"membrane area", b.membraneArea},
		{"mwco", b.mwco},
	}

	for _, p := range positive {
		if p.value <= 0 {
			return &ValidationError{
				Param:      p.name,
				Value:      p.value,
				Constraint: "positive",
			}
		}
	}

	if b.concentrationFactor <= 1 {
		return &ValidationError{
			Param:      "concentration factor",
			Value:      b.concentrationFactor,
			Constraint: "greater than 1",
		}
	}

	if b.maxSteps <= 0 {
		return &ValidationError{
			Param:      "max steps",
			Value:      float64(b.maxSteps),
			Constraint: "positive",
		}
	}

	return nil
}

func (b OrchestratorBuilder) collectWarnings(
	mwCriterion *MolecularWeightCriterion,
) []string {
	var warnings []string

	ranges := []struct {
		name     string
		value    float64
		min, max float64
	}{
		{"tmp", b.tmp, TypicalTMPMin, TypicalTMPMax},
		{"mwco", b.mwco, TypicalMWCOMin, TypicalMWCOMax},
		{"concentration factor", b.concentrationFactor,
			TypicalConcentrationFactorMin, TypicalConcentrationFactorMax},
	}

	for _, r := range ranges {
		if r.value < r.min || r.value > r.max {
			warnings = append(warnings, fmt.Sprintf(
				"%s %g is outside the typical range [%g, %g]",
				r.name, r.value, r.min, r.max))
		}
	}

	if !mwCriterion.Consistent() {
		warnings = append(warnings, fmt.Sprintf(
			"solute molecular weight %g Da does not exceed the cut-off %g Da; "+
				"the full-retention mass balance is still applied",
			b.soluteMolecularWeight, b.mwco))
	}

	return warnings
}

// CalculatePermeateFlowRate computes the permeate flow rate in L/h at the
// given elapsed time, following Darcy's law:
// tmp·area/(viscosity·resistance).
func (o *FiltrationOrchestrator) CalculatePermeateFlowRate(
	elapsed VTimeInSec,
) (float64, error) {
	resistance := o.resistanceModel.CalculateResistance(elapsed)
	if resistance <= 0 || math.IsNaN(resistance) || math.IsInf(resistance, 0) {
		return 0, &ComputationError{
			Quantity: "resistance",
			Value:    resistance,
			State:    o.state,
		}
	}

	viscosity := o.viscosityModel.CalculateViscosity()
	if viscosity <= 0 || math.IsNaN(viscosity) || math.IsInf(viscosity, 0) {
		return 0, &ComputationError{
			Quantity: "viscosity",
			Value:    viscosity,
			State:    o.state,
		}
	}

	flowRate := o.tmp * o.membraneArea /
		(viscosity * resistance) * litersPerCubicMeter
	if math.IsNaN(flowRate) || math.IsInf(flowRate, 0) {
		return 0, &ComputationError{
			Quantity: "permeate flow rate",
			Value:    flowRate,
			State:    o.state,
		}
	}

	return flowRate, nil
}

// CalculateFlux computes the permeate flux in L/(h·m²) at the given elapsed
// time.
func (o *FiltrationOrchestrator) CalculateFlux(
	elapsed VTimeInSec,
) (float64, error) {
	flowRate, err := o.CalculatePermeateFlowRate(elapsed)
	if err != nil {
		return 0, err
	}

	return flowRate / o.membraneArea, nil
}

// CurrentConcentration computes the retentate concentration at the given
// hold-up volume from the full-retention mass balance
// c·v = c0·v0. Only defined for positive volumes.
func (o *FiltrationOrchestrator) CurrentConcentration(
	currentVolume float64,
) (float64, error) {
	if currentVolume <= 0 {
		return 0, &ComputationError{
			Quantity: "concentration",
			Value:    currentVolume,
			State:    o.state,
		}
	}

	return o.initialConcentration * o.initialVolume / currentVolume, nil
}

// RunSimulation integrates the mass balance with the given time step until a
// termination criterion fires, a computation fails, or the safety bound on
// the step count is exhausted. It runs to completion before returning.
func (o *FiltrationOrchestrator) RunSimulation(
	timeStep VTimeInSec,
) (CompletedSimulation, error) {
	if timeStep <= 0 {
		return CompletedSimulation{}, &ValidationError{
			Param:      "time step",
			Value:      float64(timeStep),
			Constraint: "positive",
		}
	}

	o.state = SimulationState{
		Volume:        o.initialVolume,
		Concentration: o.initialConcentration,
	}

	o.InvokeHook(HookCtx{
		Domain: o,
		Pos:    HookPosRunStart,
		Item:   o.state,
	})

	for _, w := range o.warnings {
		o.InvokeHook(HookCtx{
			Domain: o,
			Pos:    HookPosConfigWarning,
			Item:   w,
		})
	}

	for step := 0; step < o.maxSteps; step++ {
		flowRate, err := o.step(timeStep)
		if err != nil {
			return CompletedSimulation{}, err
		}

		o.InvokeHook(HookCtx{
			Domain: o,
			Pos:    HookPosStepComplete,
			Item: StepInfo{
				State:    o.state,
				FlowRate: flowRate,
				Flux:     flowRate / o.membraneArea,
			},
		})

		if criterion := o.firstSatisfiedCriterion(); criterion != nil {
			return o.terminate(criterion), nil
		}
	}

	return CompletedSimulation{}, &NonTerminationError{
		Steps: o.maxSteps,
		State: o.state,
	}
}

// step advances the state by one time step and returns the flow rate used.
func (o *FiltrationOrchestrator) step(
	timeStep VTimeInSec,
) (float64, error) {
	flowRate, err := o.CalculatePermeateFlowRate(o.state.ElapsedTime)
	if err != nil {
		return 0, err
	}

	permeateIncrement := flowRate * timeStep.Hours()

	newVolume := o.state.Volume - permeateIncrement
	if newVolume < 0 {
		newVolume = 0
	}

	// Concentration is undefined at zero volume; hold the last value.
	if newVolume > 0 {
		concentration, err := o.CurrentConcentration(newVolume)
		if err != nil {
			return 0, err
		}
		o.state.Concentration = concentration
	}

	o.state.Volume = newVolume
	o.state.ElapsedTime += timeStep

	return flowRate, nil
}

func (o *FiltrationOrchestrator) firstSatisfiedCriterion() TerminationCriterion {
	for _, c := range o.criteria {
		if c.ShouldTerminate(o.state) {
			return c
		}
	}

	return nil
}

func (o *FiltrationOrchestrator) terminate(
	criterion TerminationCriterion,
) CompletedSimulation {
	result := CompletedSimulation{
		FinalPermeateVolume:  o.initialVolume - o.state.Volume,
		FinalRetentateVolume: o.state.Volume,
		FinalConcentration:   o.state.Concentration,
		Time:                 o.state.ElapsedTime,
	}

	o.InvokeHook(HookCtx{
		Domain: o,
		Pos:    HookPosRunTerminate,
		Item: TerminationInfo{
			Reason: criterion.Name(),
			Result: result,
		},
	})

	return result
}

// InitialVolume returns the configured initial hold-up volume in L.
func (o *FiltrationOrchestrator) InitialVolume() float64 {
	return o.initialVolume
}

// InitialConcentration returns the configured initial concentration in g/L.
func (o *FiltrationOrchestrator) InitialConcentration() float64 {
	return o.initialConcentration
}

// ConcentrationFactor returns the configured target concentration factor.
func (o *FiltrationOrchestrator) ConcentrationFactor() float64 {
	return o.concentrationFactor
}

// MembraneArea returns the configured membrane area in m².
func (o *FiltrationOrchestrator) MembraneArea() float64 {
	return o.membraneArea
}
