package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the prometheus collectors updated by the dispatcher and the
// recorder. A nil *Metrics is valid and records nothing.
type Metrics struct {
	commands  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	recording prometheus.Gauge
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "uibridge_commands_total",
			Help: "Commands dispatched, by command name and outcome.",
		}, []string{"command", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "uibridge_command_duration_seconds",
			Help:    "Time spent executing a command.",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5, 30},
		}, []string{"command"}),
		recording: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "uibridge_recording_active",
			Help: "1 while a workflow recording is in progress.",
		}),
	}
	reg.MustRegister(m.commands, m.duration, m.recording)
	return m
}

// ObserveCommand records one dispatched command.
func (m *Metrics) ObserveCommand(name string, success bool, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	m.commands.WithLabelValues(name, outcome).Inc()
	m.duration.WithLabelValues(name).Observe(d.Seconds())
}

// SetRecording flips the recording gauge.
func (m *Metrics) SetRecording(active bool) {
	if m == nil {
		return
	}
	if active {
		m.recording.Set(1)
	} else {
		m.recording.Set(0)
	}
}
