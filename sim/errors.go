package sim

import "fmt"

// A ValidationError reports a constructor parameter that violates its
// constraint. It is returned by OrchestratorBuilder.Build and never occurs
// mid-run.
type ValidationError struct {
	Param      string
	Value      float64
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must be %s, got %g", e.Param, e.Constraint, e.Value)
}

// A ComputationError reports a derived quantity that came out non-positive,
// undefined, or non-finite during a step. The run aborts immediately; State
// is the last valid simulation state for diagnostics.
type ComputationError struct {
	Quantity string
	Value    float64
	State    SimulationState
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("computed %s is invalid (%g) at t=%.0fs",
		e.Quantity, e.Value, e.State.ElapsedTime)
}

// A NonTerminationError reports that the safety bound on iteration count was
// exhausted without any termination criterion firing. It signals a
// misconfiguration, not a physical result. State is the state at the last
// completed step.
type NonTerminationError struct {
	Steps int
	State SimulationState
}

func (e *NonTerminationError) Error() string {
	return fmt.Sprintf(
		"no termination criterion fired within %d steps (t=%.0fs, volume %g L)",
		e.Steps, e.State.ElapsedTime, e.State.Volume)
}
