package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics exposes filtration run activity as Prometheus collectors.
type Metrics struct {
	registry *prometheus.Registry

	StepsTotal     prometheus.Counter
	RunsCompleted  *prometheus.CounterVec
	PermeateVolume *prometheus.GaugeVec
	Concentration  *prometheus.GaugeVec
}

// NewMetrics creates the collectors on a dedicated registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		StepsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "crossflow_steps_total",
			Help: "Total number of integration steps across all runs.",
		}),
		RunsCompleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "crossflow_runs_completed_total",
			Help: "Completed runs by stop reason.",
		}, []string{"reason"}),
		PermeateVolume: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "crossflow_permeate_volume_liters",
			Help: "Permeate volume collected so far, per run.",
		}, []string{"run"}),
		Concentration: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "crossflow_retentate_concentration_grams_per_liter",
			Help: "Current retentate concentration, per run.",
		}, []string{"run"}),
	}

	m.registry.MustRegister(
		m.StepsTotal,
		m.RunsCompleted,
		m.PermeateVolume,
		m.Concentration,
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
