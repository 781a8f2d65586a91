package monitoring

import (
	"sync"
	"time"
)

// A RunProgress is a tracker of the progress of one filtration run.
type RunProgress struct {
	sync.Mutex
	ID                   string    `json:"id"`
	Name                 string    `json:"name"`
	StartTime            time.Time `json:"start_time"`
	TargetPermeateVolume float64   `json:"target_permeate_volume"`
	PermeateVolume       float64   `json:"permeate_volume"`
	Concentration        float64   `json:"concentration"`
	ElapsedSeconds       float64   `json:"elapsed_seconds"`
	Done                 bool      `json:"done"`
	StopReason           string    `json:"stop_reason,omitempty"`
}

// Start marks the beginning of the run.
func (p *RunProgress) Start() {
	p.Lock()
	defer p.Unlock()

	p.StartTime = time.Now()
	p.PermeateVolume = 0
	p.Concentration = 0
	p.ElapsedSeconds = 0
	p.Done = false
	p.StopReason = ""
}

// Update records the state after a completed step.
func (p *RunProgress) Update(
	permeateVolume, concentration, elapsedSeconds float64,
) {
	p.Lock()
	defer p.Unlock()

	p.PermeateVolume = permeateVolume
	p.Concentration = concentration
	p.ElapsedSeconds = elapsedSeconds
}

// Complete marks the run as terminated with the given stop reason.
func (p *RunProgress) Complete(reason string) {
	p.Lock()
	defer p.Unlock()

	p.Done = true
	p.StopReason = reason
}
