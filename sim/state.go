package sim

// SimulationState is the retentate-side state of a filtration run. It is
// owned by the orchestrator while a run is in progress; hooks receive copies.
type SimulationState struct {
	// Volume is the hold-up (retentate) volume in L. Never negative.
	Volume float64

	// Concentration is the solute concentration in g/L. When the hold-up
	// volume reaches zero the concentration is held at its last defined
	// value.
	Concentration float64

	// ElapsedTime is the simulated time since the run started.
	ElapsedTime VTimeInSec
}

// StepInfo describes one completed integration step. It is delivered to
// hooks at HookPosStepComplete.
type StepInfo struct {
	State SimulationState

	// FlowRate is the permeate flow rate used for the step, in L/h.
	FlowRate float64

	// Flux is the flow rate normalized by membrane area, in L/(h·m²).
	Flux float64
}

// TerminationInfo describes why and where a run stopped. It is delivered to
// hooks at HookPosRunTerminate.
type TerminationInfo struct {
	Reason string
	Result CompletedSimulation
}

// CompletedSimulation is the immutable result of a finished run.
type CompletedSimulation struct {
	// FinalPermeateVolume is the total volume that passed the membrane, in L.
	FinalPermeateVolume float64

	// FinalRetentateVolume is the remaining hold-up volume, in L.
	FinalRetentateVolume float64

	// FinalConcentration is the retentate concentration at termination,
	// in g/L.
	FinalConcentration float64

	// Time is the simulated duration of the run.
	Time VTimeInSec
}
