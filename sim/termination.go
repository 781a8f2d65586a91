package sim

// A TerminationCriterion decides whether a run should stop. The orchestrator
// evaluates its criteria in order after every step; the first satisfied one
// stops the run and its name becomes the recorded stop reason.
type TerminationCriterion interface {
	// Name identifies the criterion in stop reasons and logs.
	Name() string

	// ShouldTerminate reports whether the run must stop at the given state.
	ShouldTerminate(state SimulationState) bool
}

// ConcentrationFactorCriterion stops the run once the retentate has been
// concentrated by the target factor. This is the primary completion target
// of the process.
type ConcentrationFactorCriterion struct {
	initialConcentration float64
	targetFactor         float64
}

// NewConcentrationFactorCriterion creates a criterion that fires when
// concentration/initialConcentration reaches targetFactor.
func NewConcentrationFactorCriterion(
	initialConcentration, targetFactor float64,
) *ConcentrationFactorCriterion {
	return &ConcentrationFactorCriterion{
		initialConcentration: initialConcentration,
		targetFactor:         targetFactor,
	}
}

// Name returns the stop reason this criterion records.
func (c *ConcentrationFactorCriterion) Name() string {
	return "concentration factor reached"
}

// ShouldTerminate checks the concentration ratio against the target factor.
func (c *ConcentrationFactorCriterion) ShouldTerminate(
	state SimulationState,
) bool {
	return state.Concentration/c.initialConcentration >= c.targetFactor
}

// MolecularWeightCriterion checks that the solute's molecular weight exceeds
// the membrane's molecular weight cut-off, i.e. that the full-retention mass
// balance the model assumes is physically consistent. The check does not
// depend on time-varying state, so it never fires as a stop trigger; an
// inconsistent configuration is reported once as a warning when the run
// starts and the model keeps running with full retention.
type MolecularWeightCriterion struct {
	soluteMolecularWeight float64
	mwco                  float64
}

// NewMolecularWeightCriterion creates the consistency check for the given
// solute molecular weight and membrane cut-off, both in Da.
func NewMolecularWeightCriterion(
	soluteMolecularWeight, mwco float64,
) *MolecularWeightCriterion {
	return &MolecularWeightCriterion{
		soluteMolecularWeight: soluteMolecularWeight,
		mwco:                  mwco,
	}
}

// Name returns the stop reason this criterion would record.
func (c *MolecularWeightCriterion) Name() string {
	return "molecular weight cut-off"
}

// ShouldTerminate always reports false. The criterion is a configuration
// consistency signal, not a dynamic stopping condition.
func (c *MolecularWeightCriterion) ShouldTerminate(_ SimulationState) bool {
	return false
}

// Consistent reports whether the solute is fully retained by the membrane.
func (c *MolecularWeightCriterion) Consistent() bool {
	return c.soluteMolecularWeight > c.mwco
}

// MaxSimulationTimeCriterion stops the run once the simulated time reaches a
// bound. Callers append it to put a hard cap on a run that may not hit its
// concentration target.
type MaxSimulationTimeCriterion struct {
	maxTime VTimeInSec
}

// NewMaxSimulationTimeCriterion creates a criterion that fires at maxTime.
func NewMaxSimulationTimeCriterion(
	maxTime VTimeInSec,
) *MaxSimulationTimeCriterion {
	return &MaxSimulationTimeCriterion{maxTime: maxTime}
}

// Name returns the stop reason this criterion records.
func (c *MaxSimulationTimeCriterion) Name() string {
	return "maximum simulation time reached"
}

// ShouldTerminate checks the elapsed time against the bound.
func (c *MaxSimulationTimeCriterion) ShouldTerminate(
	state SimulationState,
) bool {
	return state.ElapsedTime >= c.maxTime
}
