package gate

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
	"github.com/vnykmshr/gogate/pkg/metrics"
)

// MetricsGate wraps a Gate with Prometheus metrics collection.
type MetricsGate struct {
	gate     Gate
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new gate with metrics enabled.
func NewWithMetrics(limit int, name string) Gate {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(Config{Limit: limit}, name, config)
}

// NewWithConfigAndMetrics creates a new gate with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) Gate {
	baseGate, err := NewWithConfigSafe(config)
	if err != nil {
		panic("invalid gate configuration: " + err.Error())
	}

	if !metricsConfig.Enabled {
		return baseGate
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	mg := &MetricsGate{
		gate:     baseGate,
		name:     name,
		registry: registry,
		enabled:  true,
	}

	mg.updateMetrics()

	return mg
}

// updateMetrics updates the current state gauges.
func (mg *MetricsGate) updateMetrics() {
	if !mg.enabled {
		return
	}

	mg.registry.GateActive.WithLabelValues(mg.name).Set(float64(mg.gate.ActiveCount()))
	mg.registry.GatePending.WithLabelValues(mg.name).Set(float64(mg.gate.PendingCount()))
}

// rejectionReason classifies a gate-level failure for the rejected counter.
// Task errors and successes return an empty string.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, ggerrors.ErrQueueOverflow):
		return "overflow"
	case errors.Is(err, ggerrors.ErrQueueTimeout):
		return "queue_timeout"
	case errors.Is(err, ggerrors.ErrAborted):
		return "aborted"
	case errors.Is(err, ggerrors.ErrClosed):
		return "closed"
	case errors.Is(err, ggerrors.ErrInvalidConfiguration):
		return "invalid_option"
	default:
		return ""
	}
}

func (mg *MetricsGate) observeRun(start time.Time, err error) {
	if !mg.enabled {
		return
	}

	mg.registry.GateSubmissions.WithLabelValues(mg.name).Inc()
	if reason := rejectionReason(err); reason != "" {
		mg.registry.GateRejected.WithLabelValues(mg.name, reason).Inc()
	} else {
		mg.registry.GateAdmitted.WithLabelValues(mg.name).Inc()
		mg.registry.GateRunDuration.WithLabelValues(mg.name).Observe(time.Since(start).Seconds())
	}
	mg.updateMetrics()
}

// Run submits a task and records submission, admission, and duration metrics.
func (mg *MetricsGate) Run(ctx context.Context, task Task) error {
	start := time.Now()
	err := mg.gate.Run(ctx, task)
	mg.observeRun(start, err)
	return err
}

// RunWithTimeout submits a task with a per-call queue-wait timeout.
func (mg *MetricsGate) RunWithTimeout(ctx context.Context, task Task, queueWait time.Duration) error {
	start := time.Now()
	err := mg.gate.RunWithTimeout(ctx, task, queueWait)
	mg.observeRun(start, err)
	return err
}

// TryRun submits a task without queueing.
func (mg *MetricsGate) TryRun(ctx context.Context, task Task) error {
	start := time.Now()
	err := mg.gate.TryRun(ctx, task)
	mg.observeRun(start, err)
	return err
}

// AwaitIdle blocks until the gate is idle.
func (mg *MetricsGate) AwaitIdle(ctx context.Context) error {
	return mg.observeIdle(mg.gate.AwaitIdle(ctx))
}

// AwaitIdleTimeout blocks until the gate is idle or the timeout elapses.
func (mg *MetricsGate) AwaitIdleTimeout(ctx context.Context, timeout time.Duration) error {
	return mg.observeIdle(mg.gate.AwaitIdleTimeout(ctx, timeout))
}

func (mg *MetricsGate) observeIdle(err error) error {
	if mg.enabled {
		outcome := "idle"
		switch {
		case errors.Is(err, ggerrors.ErrIdleTimeout):
			outcome = "timeout"
		case errors.Is(err, ggerrors.ErrAborted):
			outcome = "aborted"
		case err != nil:
			outcome = "error"
		}
		mg.registry.IdleWaits.WithLabelValues(mg.name, outcome).Inc()
	}
	return err
}

// ActiveCount returns the number of tasks currently running.
func (mg *MetricsGate) ActiveCount() int {
	active := mg.gate.ActiveCount()

	if mg.enabled {
		mg.registry.GateActive.WithLabelValues(mg.name).Set(float64(active))
	}

	return active
}

// PendingCount returns the number of submissions waiting in the queue.
func (mg *MetricsGate) PendingCount() int {
	pending := mg.gate.PendingCount()

	if mg.enabled {
		mg.registry.GatePending.WithLabelValues(mg.name).Set(float64(pending))
	}

	return pending
}

// Limit returns the configured concurrency limit.
func (mg *MetricsGate) Limit() int {
	return mg.gate.Limit()
}

// Close closes the underlying gate.
func (mg *MetricsGate) Close() {
	mg.gate.Close()

	if mg.enabled {
		mg.updateMetrics()
	}
}

// EnableMetrics enables metrics collection.
func (mg *MetricsGate) EnableMetrics(config metrics.Config) error {
	mg.enabled = config.Enabled

	if config.Registry != nil {
		mg.registry = metrics.NewRegistry(config.Registry)
	}

	if mg.enabled {
		mg.updateMetrics()
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (mg *MetricsGate) DisableMetrics() {
	mg.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (mg *MetricsGate) MetricsEnabled() bool {
	return mg.enabled
}
