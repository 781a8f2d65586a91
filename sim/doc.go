// Package sim simulates the time evolution of a batch cross-flow membrane
// filtration process. A hold-up tank of solvent and dissolved solute is
// concentrated by forcing permeate through a membrane under pressure while
// the retentate recirculates. The FiltrationOrchestrator advances the tank
// state step by step with pluggable resistance and viscosity models and
// stops at the first satisfied termination criterion.
package sim
