// Package metrics provides Prometheus instrumentation for gogate components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gogate components.
type Registry struct {
	// Admission Gate Metrics
	GateActive      *prometheus.GaugeVec
	GatePending     *prometheus.GaugeVec
	GateSubmissions *prometheus.CounterVec
	GateAdmitted    *prometheus.CounterVec
	GateRejected    *prometheus.CounterVec
	GateRunDuration *prometheus.HistogramVec

	// Idle Synchronization Metrics
	IdleWaits *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by gogate components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		GateActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gogate",
				Subsystem: "gate",
				Name:      "active",
				Help:      "Number of tasks currently admitted and running",
			},
			[]string{"gate_name"},
		),

		GatePending: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gogate",
				Subsystem: "gate",
				Name:      "pending",
				Help:      "Number of submissions waiting in the queue",
			},
			[]string{"gate_name"},
		),

		GateSubmissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gogate",
				Subsystem: "gate",
				Name:      "submissions_total",
				Help:      "Total number of task submissions",
			},
			[]string{"gate_name"},
		),

		GateAdmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gogate",
				Subsystem: "gate",
				Name:      "admitted_total",
				Help:      "Total number of submissions admitted to run",
			},
			[]string{"gate_name"},
		),

		GateRejected: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gogate",
				Subsystem: "gate",
				Name:      "rejected_total",
				Help:      "Total number of submissions rejected before admission",
			},
			[]string{"gate_name", "reason"},
		),

		GateRunDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gogate",
				Subsystem: "gate",
				Name:      "run_duration_seconds",
				Help:      "Time from submission to task completion, including queue wait",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"gate_name"},
		),

		IdleWaits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gogate",
				Subsystem: "idle",
				Name:      "waits_total",
				Help:      "Total number of idle waits by outcome",
			},
			[]string{"gate_name", "outcome"},
		),
	}
}
