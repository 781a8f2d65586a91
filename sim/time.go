package sim

// VTimeInSec defines the time in the simulated space in the unit of second
type VTimeInSec float64

// SecondsPerHour converts between the simulated-time unit and hours.
const SecondsPerHour = 3600.0

// OneHour is one hour of simulated time.
const OneHour VTimeInSec = SecondsPerHour

// DefaultTimeStep is the time step used by RunSimulation when the caller has
// no reason to pick another one. Smaller steps integrate the mass balance
// more accurately at the cost of more iterations.
const DefaultTimeStep = OneHour

// Hours returns the time expressed in hours.
func (t VTimeInSec) Hours() float64 {
	return float64(t) / SecondsPerHour
}
