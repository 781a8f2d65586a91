package datarecording

import (
	"sync"

	"github.com/membranelab/crossflow/sim"
	"github.com/rs/xid"
)

// Table names used by the RunRecorder.
const (
	StepTableName = "filtration_steps"
	RunTableName  = "filtration_runs"
)

// StepEntry is one recorded integration step.
type StepEntry struct {
	RunID          string
	ElapsedSeconds float64
	Volume         float64
	Concentration  float64
	FlowRate       float64
	Flux           float64
}

// RunEntry is the recorded summary of one terminated run.
type RunEntry struct {
	RunID                string
	StopReason           string
	FinalPermeateVolume  float64
	FinalRetentateVolume float64
	FinalConcentration   float64
	TimeSeconds          float64
}

// A RunRecorder is a sim.Hook that persists every step and the terminal
// summary of filtration runs. One RunRecorder can serve several
// orchestrators, including concurrently running ones; each run gets its own
// id.
type RunRecorder struct {
	sync.Mutex

	recorder DataRecorder
	runIDs   map[sim.Hookable]string
}

// NewRunRecorder creates a RunRecorder writing into the given recorder and
// creates the step and run tables.
func NewRunRecorder(recorder DataRecorder) *RunRecorder {
	recorder.CreateTable(StepTableName, StepEntry{})
	recorder.CreateTable(RunTableName, RunEntry{})

	return &RunRecorder{
		recorder: recorder,
		runIDs:   make(map[sim.Hookable]string),
	}
}

// Func records the hook event.
func (r *RunRecorder) Func(ctx sim.HookCtx) {
	r.Lock()
	defer r.Unlock()

	switch ctx.Pos {
	case sim.HookPosRunStart:
		r.runIDs[ctx.Domain] = xid.New().String()
	case sim.HookPosStepComplete:
		info, ok := ctx.Item.(sim.StepInfo)
		if !ok {
			return
		}
		r.recorder.InsertData(StepTableName, StepEntry{
			RunID:          r.runIDs[ctx.Domain],
			ElapsedSeconds: float64(info.State.ElapsedTime),
			Volume:         info.State.Volume,
			Concentration:  info.State.Concentration,
			FlowRate:       info.FlowRate,
			Flux:           info.Flux,
		})
	case sim.HookPosRunTerminate:
		info, ok := ctx.Item.(sim.TerminationInfo)
		if !ok {
			return
		}
		r.recorder.InsertData(RunTableName, RunEntry{
			RunID:                r.runIDs[ctx.Domain],
			StopReason:           info.Reason,
			FinalPermeateVolume:  info.Result.FinalPermeateVolume,
			FinalRetentateVolume: info.Result.FinalRetentateVolume,
			FinalConcentration:   info.Result.FinalConcentration,
			TimeSeconds:          float64(info.Result.Time),
		})
		r.recorder.Flush()
		delete(r.runIDs, ctx.Domain)
	}
}
