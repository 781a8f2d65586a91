package sim

import (
	"log"
)

// LogHookBase provides the common logic for all log hooks.
type LogHookBase struct {
	*log.Logger
}

// A RunLogger is a hook that writes one line per simulation event into a
// logger.
type RunLogger struct {
	LogHookBase
}

// NewRunLogger returns a RunLogger that writes into the given logger.
func NewRunLogger(logger *log.Logger) *RunLogger {
	h := new(RunLogger)
	h.Logger = logger
	return h
}

// Func writes the event information into the logger.
func (h *RunLogger) Func(ctx HookCtx) {
	switch ctx.Pos {
	case HookPosRunStart:
		state, ok := ctx.Item.(SimulationState)
		if !ok {
			return
		}
		h.Printf("run started, volume %.4f L, concentration %.4f g/L",
			state.Volume, state.Concentration)
	case HookPosStepComplete:
		info, ok := ctx.Item.(StepInfo)
		if !ok {
			return
		}
		h.Printf("t %.2f h, volume %.4f L, concentration %.4f g/L, "+
			"flux %.6f L/(h·m²)",
			info.State.ElapsedTime.Hours(), info.State.Volume,
			info.State.Concentration, info.Flux)
	case HookPosRunTerminate:
		info, ok := ctx.Item.(TerminationInfo)
		if !ok {
			return
		}
		h.Printf("run terminated (%s): permeate %.4f L, retentate %.4f L, "+
			"concentration %.4f g/L, t %.2f h",
			info.Reason, info.Result.FinalPermeateVolume,
			info.Result.FinalRetentateVolume, info.Result.FinalConcentration,
			info.Result.Time.Hours())
	case HookPosConfigWarning:
		msg, ok := ctx.Item.(string)
		if !ok {
			return
		}
		h.Printf("warning: %s", msg)
	}
}
