package gate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gogate/internal/testutil"
	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
	"github.com/vnykmshr/gogate/pkg/metrics"
)

func newMetricsGate(t *testing.T, config Config) *MetricsGate {
	t.Helper()
	g := NewWithConfigAndMetrics(config, "test", metrics.Config{
		Enabled:  true,
		Registry: prometheus.NewRegistry(),
	})
	mg, ok := g.(*MetricsGate)
	if !ok {
		t.Fatal("expected a MetricsGate")
	}
	return mg
}

func TestNewWithMetrics(t *testing.T) {
	g := NewWithMetrics(2, "metered")

	testutil.AssertNoError(t, g.Run(context.Background(), noopTask))
	testutil.AssertEqual(t, g.Limit(), 2)
	testutil.AssertEqual(t, g.ActiveCount(), 0)
	testutil.AssertEqual(t, g.PendingCount(), 0)
}

func TestNewWithConfigAndMetricsDisabled(t *testing.T) {
	g := NewWithConfigAndMetrics(Config{Limit: 1}, "plain", metrics.Config{Enabled: false})

	// With metrics disabled the undecorated gate is returned.
	if _, ok := g.(*MetricsGate); ok {
		t.Error("expected the bare gate when metrics are disabled")
	}
}

func TestNewWithConfigAndMetricsInvalidConfig(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid configuration")
		}
	}()
	NewWithConfigAndMetrics(Config{Limit: 0}, "bad", metrics.DefaultConfig())
}

func TestMetricsGatePassthrough(t *testing.T) {
	mg := newMetricsGate(t, Config{Limit: 1, MaxQueue: -1})

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	firstDone := make(chan error, 1)

	go func() {
		firstDone <- mg.Run(context.Background(), blockingTask(started, release))
	}()
	<-started

	testutil.AssertEqual(t, mg.ActiveCount(), 1)
	testutil.AssertErrorIs(t, mg.Run(context.Background(), noopTask), ErrQueueOverflow)
	testutil.AssertErrorIs(t, mg.TryRun(context.Background(), noopTask), ErrQueueOverflow)

	close(release)
	testutil.AssertNoError(t, <-firstDone)

	testutil.AssertNoError(t, mg.AwaitIdle(context.Background()))
	testutil.AssertNoError(t, mg.AwaitIdleTimeout(context.Background(), time.Second))
}

func TestMetricsGateClose(t *testing.T) {
	mg := newMetricsGate(t, Config{Limit: 1})

	mg.Close()
	testutil.AssertErrorIs(t, mg.Run(context.Background(), noopTask), ErrClosed)
}

func TestMetricsGateInstrumentable(t *testing.T) {
	mg := newMetricsGate(t, Config{Limit: 1})

	var _ metrics.Instrumentable = mg

	if !mg.MetricsEnabled() {
		t.Error("metrics should start enabled")
	}

	mg.DisableMetrics()
	if mg.MetricsEnabled() {
		t.Error("metrics should be disabled")
	}

	testutil.AssertNoError(t, mg.EnableMetrics(metrics.Config{
		Enabled:  true,
		Registry: prometheus.NewRegistry(),
	}))
	if !mg.MetricsEnabled() {
		t.Error("metrics should be re-enabled")
	}
}

func TestRejectionReason(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"overflow", ggerrors.ErrQueueOverflow, "overflow"},
		{"queue timeout", queueTimeoutError(time.Second), "queue_timeout"},
		{"aborted", abortedError(context.Canceled), "aborted"},
		{"closed", ggerrors.ErrClosed, "closed"},
		{"invalid option", ggerrors.NewValidationError("gate", "queueWait", -1, "negative"), "invalid_option"},
		{"task error", errors.New("task blew up"), ""},
		{"success", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertEqual(t, rejectionReason(tt.err), tt.want)
		})
	}
}
