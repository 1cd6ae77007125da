/*
Package gogate provides a bounded-concurrency admission gate for Go applications.

A gate admits at most N tasks at a time, queues the rest in arrival order,
and lets callers wait for the whole system to drain.

Admission Gate (pkg/gate):
  - Run: submit a task; runs immediately when a slot is free, queues otherwise
  - TryRun: non-blocking admission; fails fast when the gate is saturated
  - AwaitIdle: block until no task is running and none is queued
  - Bounded or unbounded wait queues with per-call and per-gate wait timeouts
  - Prometheus instrumentation via a metrics decorator

Supporting packages:
  - pkg/common/errors: failure taxonomy shared across the library
  - pkg/common/validation: configuration validation helpers
  - pkg/metrics: Prometheus registry for gate metrics

Example usage:

	import "github.com/vnykmshr/gogate/pkg/gate"

	g, _ := gate.NewSafe(4) // at most 4 tasks at a time

	err := g.Run(ctx, gate.TaskFunc(func(ctx context.Context) error {
		return doWork(ctx)
	}))

	// Wait for everything submitted so far to finish.
	_ = g.AwaitIdle(ctx)
*/
package gogate
