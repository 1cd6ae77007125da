package gate

import (
	"context"
	"sync"
	"time"

	"github.com/vnykmshr/gogate/pkg/common/validation"
)

const moduleName = "gate"

// Task represents a unit of work submitted to a gate.
type Task interface {
	// Execute runs the task with the given context.
	// It should respect context cancellation and return any error encountered.
	Execute(ctx context.Context) error
}

// TaskFunc is a function type that implements the Task interface.
type TaskFunc func(ctx context.Context) error

// Execute implements the Task interface for TaskFunc.
func (f TaskFunc) Execute(ctx context.Context) error {
	return f(ctx)
}

// Gate is a bounded-concurrency admission controller. It admits at most
// Limit tasks at a time, queues the rest in arrival order, and lets callers
// wait for full drain.
type Gate interface {
	// Run submits a task. If a slot is free the task runs immediately;
	// otherwise the call suspends in the wait queue until a slot is handed
	// off, the context is canceled, or the gate's queue-wait timeout elapses.
	// Errors from the task itself propagate to the caller unchanged.
	Run(ctx context.Context, task Task) error

	// RunWithTimeout is Run with a per-call queue-wait timeout overriding
	// the gate's configured default. A zero timeout waits indefinitely.
	RunWithTimeout(ctx context.Context, task Task, queueWait time.Duration) error

	// TryRun submits a task without queueing. If no slot is free it fails
	// immediately with ErrQueueOverflow.
	TryRun(ctx context.Context, task Task) error

	// AwaitIdle blocks until no task is running and none is queued.
	// It returns immediately when the gate is already idle.
	AwaitIdle(ctx context.Context) error

	// AwaitIdleTimeout is AwaitIdle with a timeout. A zero timeout waits
	// indefinitely; expiry fails with ErrIdleTimeout.
	AwaitIdleTimeout(ctx context.Context, timeout time.Duration) error

	// ActiveCount returns the number of tasks currently running.
	ActiveCount() int

	// PendingCount returns the number of submissions waiting in the queue.
	PendingCount() int

	// Limit returns the maximum number of tasks allowed to run at once.
	Limit() int

	// Close rejects all queued submissions with ErrClosed and refuses new
	// ones. Tasks already running are never canceled and drain naturally.
	Close()
}

// Config holds configuration options for creating a new Gate.
type Config struct {
	// Limit is the maximum number of tasks allowed to run concurrently.
	// Must be greater than 0.
	Limit int

	// MaxQueue bounds the number of submissions allowed to wait.
	// If 0, the queue is unbounded.
	// If -1, no queueing is performed: submissions beyond Limit fail
	// immediately with ErrQueueOverflow.
	MaxQueue int

	// QueueWaitTimeout is the default maximum time a submission may wait
	// for admission. Zero means no timeout. Can be overridden per call
	// with RunWithTimeout.
	QueueWaitTimeout time.Duration
}

// gate implements the Gate interface. A single mutex guards all admission
// state; tasks run outside the lock with arbitrary internal concurrency.
type gate struct {
	mu               sync.Mutex
	limit            int
	maxQueue         int
	queueWaitTimeout time.Duration

	active      int
	queue       waitQueue
	idleWaiters []*deferred
	closed      bool
}

// NewSafe creates a new gate with validation that returns an error instead
// of panicking. This is the recommended way to create gates for production use.
func NewSafe(limit int) (Gate, error) {
	return NewWithConfigSafe(Config{Limit: limit})
}

// NewWithConfigSafe creates a new gate from a full configuration with
// validation that returns an error instead of panicking.
func NewWithConfigSafe(config Config) (Gate, error) {
	if err := validation.ValidatePositive(moduleName, "limit", config.Limit); err != nil {
		return nil, err
	}
	if err := validation.ValidateAtLeast(moduleName, "maxQueue", config.MaxQueue, -1); err != nil {
		return nil, err
	}
	if err := validation.ValidateNonNegativeDuration(moduleName, "queueWaitTimeout", config.QueueWaitTimeout); err != nil {
		return nil, err
	}

	return &gate{
		limit:            config.Limit,
		maxQueue:         config.MaxQueue,
		queueWaitTimeout: config.QueueWaitTimeout,
	}, nil
}

// ActiveCount returns the number of tasks currently running.
func (g *gate) ActiveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}

// PendingCount returns the number of live entries in the wait queue.
func (g *gate) PendingCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.queue.live()
}

// Limit returns the configured concurrency limit.
func (g *gate) Limit() int {
	return g.limit
}

// Close rejects every queued submission with ErrClosed, refuses subsequent
// submissions, and leaves running tasks untouched.
func (g *gate) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return
	}
	g.closed = true

	for {
		e := g.queue.pop()
		if e == nil {
			break
		}
		e.detach()
		e.waiter.reject(ErrClosed)
	}
	g.notifyIdleLocked()
}
