package sim

import "math"

// ResistanceModel computes the hydraulic resistance of the membrane. A model
// must be a pure function of the elapsed time: no side effects, same input,
// same output.
type ResistanceModel interface {
	// CalculateResistance returns the membrane resistance in Pa·s/m at the
	// given elapsed time.
	CalculateResistance(elapsed VTimeInSec) float64
}

// Default coefficients of the SimplifiedResistanceModel.
const (
	// DefaultBaselineResistance is the clean-membrane resistance, in Pa·s/m.
	DefaultBaselineResistance = 0.13e12

	// DefaultFoulingCoefficient scales the time-dependent resistance term,
	// in Pa·s/m per hour^DefaultFoulingExponent.
	DefaultFoulingCoefficient = 1.51e12

	// DefaultFoulingExponent is the exponent applied to elapsed hours.
	DefaultFoulingExponent = 0.4
)

// SimplifiedResistanceModel grows the membrane resistance with elapsed time
// as baseline + coefficient·hours^exponent. The time-scaled term stands in
// for the cumulative resistance increase observed on real membranes without
// modeling the fouling mechanics behind it.
type SimplifiedResistanceModel struct {
	BaselineResistance float64
	FoulingCoefficient float64
	FoulingExponent    float64
}

// NewSimplifiedResistanceModel creates a SimplifiedResistanceModel with the
// default coefficients.
func NewSimplifiedResistanceModel() *SimplifiedResistanceModel {
	return &SimplifiedResistanceModel{
		BaselineResistance: DefaultBaselineResistance,
		FoulingCoefficient: DefaultFoulingCoefficient,
		FoulingExponent:    DefaultFoulingExponent,
	}
}

// CalculateResistance returns the resistance at the given elapsed time.
func (m *SimplifiedResistanceModel) CalculateResistance(
	elapsed VTimeInSec,
) float64 {
	return m.BaselineResistance +
		m.FoulingCoefficient*math.Pow(elapsed.Hours(), m.FoulingExponent)
}
