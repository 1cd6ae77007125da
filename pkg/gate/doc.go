/*
Package gate provides a bounded-concurrency admission gate for Go applications.

A gate admits at most a fixed number of tasks at a time. Submissions beyond
the limit wait in a FIFO queue until a running task finishes and hands its
slot off, and callers can block until the gate is fully drained.

Basic usage:

	g, err := gate.NewSafe(4) // at most 4 concurrent tasks
	if err != nil {
		log.Fatal(err)
	}

	err = g.Run(ctx, gate.TaskFunc(func(ctx context.Context) error {
		return doWork(ctx)
	}))

Key Features:

The admission gate provides:
  - Strict FIFO admission among waiting submissions
  - Bounded or unbounded wait queues
  - Per-gate and per-call queue-wait timeouts
  - Context-based cancellation of queued submissions
  - Idle synchronization: wait until nothing runs and nothing is queued
  - Non-blocking admission via TryRun
  - Prometheus instrumentation via a metrics decorator

Use Cases:

Admission gating is ideal for:
  - Limiting concurrent outbound requests to a fragile dependency
  - Bounding concurrent handler work in HTTP servers
  - Batch jobs that must cap parallelism and wait for full drain
  - Protecting connection pools and other fixed-size resources

Queue Bounds:

	cfg := gate.Config{
		Limit:    2,
		MaxQueue: 100, // at most 100 submissions may wait
	}
	g, err := gate.NewWithConfigSafe(cfg)

A MaxQueue of 0 leaves the queue unbounded. A MaxQueue of -1 disables
queueing entirely: a submission that cannot start immediately fails with
ErrQueueOverflow, which turns the gate into a fail-fast admission check.

Timeouts and Cancellation:

	// Fail a submission that waits more than a second for a slot.
	err := g.RunWithTimeout(ctx, task, time.Second)
	if errors.Is(err, gate.ErrQueueTimeout) {
		// slot never freed in time; the task never started
	}

	// Cancel a queued submission through its context.
	ctx, cancel := context.WithCancel(context.Background())
	go func() { ... cancel() ... }()
	err = g.Run(ctx, task)
	if errors.Is(err, gate.ErrAborted) {
		// canceled while waiting; the task never started
	}

Cancellation and timeouts act only while a submission waits. Once a task
has been admitted the gate never interrupts it; the task sees its own
context and decides how to react. A canceled or timed-out submission never
delays the admission of submissions queued behind it.

Idle Synchronization:

	// Block until every admitted task finished and the queue is empty.
	if err := g.AwaitIdle(ctx); err != nil {
		log.Printf("drain interrupted: %v", err)
	}

	// Or give up after a bound.
	err := g.AwaitIdleTimeout(ctx, 30*time.Second)
	if errors.Is(err, gate.ErrIdleTimeout) {
		// the system never drained in time
	}

All idle waiters registered at the moment the gate drains are released
together. Calling AwaitIdle on an idle gate returns immediately.

Error Handling:

Gate-level failures are distinguishable with errors.Is:
  - ErrQueueOverflow: the wait queue was full at submission time
  - ErrQueueTimeout: a queued submission waited too long for a slot
  - ErrAborted: a queued submission or idle wait was canceled
  - ErrIdleTimeout: an idle wait expired before the gate drained
  - ErrClosed: the gate was closed

Errors returned by a task itself propagate to the Run caller unchanged;
the gate's bookkeeping runs on every exit path, including task panics,
which are recovered and reported as errors.

Thread Safety:

All operations are safe for concurrent use. A single mutex guards the
admission state; tasks run outside the lock with whatever internal
concurrency they like.

Metrics:

	g := gate.NewWithMetrics(4, "db_writes")

wraps the gate with Prometheus gauges for active and pending counts,
counters for submissions, admissions, and rejections by reason, and a
histogram of run durations. See the pkg/metrics package.
*/
package gate
