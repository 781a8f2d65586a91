package sim

// ViscosityModel computes the dynamic viscosity of the process fluid. Models
// must be deterministic; the simplified process treats viscosity as
// independent of concentration.
type ViscosityModel interface {
	// CalculateViscosity returns the fluid viscosity in Pa·s.
	CalculateViscosity() float64
}

// WaterViscosityPaS is the dynamic viscosity of water at reference
// temperature, in Pa·s.
const WaterViscosityPaS = 0.001

// WaterViscosityModel assumes the fluid always has the viscosity of water.
type WaterViscosityModel struct{}

// NewWaterViscosityModel creates a WaterViscosityModel.
func NewWaterViscosityModel() *WaterViscosityModel {
	return &WaterViscosityModel{}
}

// CalculateViscosity returns the constant water viscosity.
func (m *WaterViscosityModel) CalculateViscosity() float64 {
	return WaterViscosityPaS
}
