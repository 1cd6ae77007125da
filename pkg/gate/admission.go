package gate

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
	"github.com/vnykmshr/gogate/pkg/common/validation"
)

// Run submits a task with the gate's configured queue-wait timeout.
func (g *gate) Run(ctx context.Context, task Task) error {
	return g.run(ctx, task, g.queueWaitTimeout)
}

// RunWithTimeout submits a task with a per-call queue-wait timeout.
func (g *gate) RunWithTimeout(ctx context.Context, task Task, queueWait time.Duration) error {
	if err := validation.ValidateNonNegativeDuration(moduleName, "queueWait", queueWait); err != nil {
		return err
	}
	return g.run(ctx, task, queueWait)
}

// TryRun submits a task without queueing: it either starts immediately or
// fails with ErrQueueOverflow, regardless of the configured MaxQueue.
func (g *gate) TryRun(ctx context.Context, task Task) error {
	if err := validation.ValidateNotNil(moduleName, "task", task); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return abortedError(err)
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrClosed
	}
	if g.active >= g.limit {
		g.mu.Unlock()
		return ErrQueueOverflow
	}
	g.active++
	g.mu.Unlock()

	return g.execute(ctx, task)
}

func (g *gate) run(ctx context.Context, task Task, queueWait time.Duration) error {
	if err := validation.ValidateNotNil(moduleName, "task", task); err != nil {
		return err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// A context canceled before submission never creates a queue entry.
	if err := ctx.Err(); err != nil {
		return abortedError(err)
	}

	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return ErrClosed
	}

	if g.active < g.limit {
		g.active++
		g.mu.Unlock()
		return g.execute(ctx, task)
	}

	if g.maxQueue == -1 || (g.maxQueue > 0 && g.queue.live() >= g.maxQueue) {
		g.mu.Unlock()
		return ErrQueueOverflow
	}

	e := newQueueEntry()
	var timerC <-chan time.Time
	if queueWait > 0 {
		timer := time.NewTimer(queueWait)
		timerC = timer.C
		e.cleanups = append(e.cleanups, func() { timer.Stop() })
	}
	g.queue.push(e)
	g.mu.Unlock()

	select {
	case <-e.waiter.done:
	case <-ctx.Done():
		g.settleRemoved(e, abortedError(ctx.Err()))
	case <-timerC:
		g.settleRemoved(e, queueTimeoutError(queueWait))
	}

	// The waiter's settlement is authoritative: if handoff resolved it
	// before the abort or timeout took effect, the slot is ours and the
	// task runs even though a trigger fired.
	if err := e.waiter.wait(); err != nil {
		return err
	}
	return g.execute(ctx, task)
}

// settleRemoved rejects a waiting entry after its abort or timeout trigger
// fired. If release-handoff (or Close) already removed the entry, the call
// is a no-op and the caller observes the earlier settlement instead.
func (g *gate) settleRemoved(e *queueEntry, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.queue.remove(e) {
		return
	}
	e.detach()
	e.waiter.reject(err)
	g.notifyIdleLocked()
}

// execute runs an admitted task. The slot is already accounted to the
// caller; bookkeeping via release runs on every exit path, including panic.
func (g *gate) execute(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v\nStack trace:\n%s", r, debug.Stack())
		}
		g.release()
	}()

	return task.Execute(ctx)
}

// release runs the handoff loop after a task finishes: the freed slot goes
// to the next live queued entry, or the active count drops and the idle
// check runs. Retrying on a failed resolve guarantees a freed slot is never
// stranded by a waiter that settled concurrently.
func (g *gate) release() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for {
		e := g.queue.pop()
		if e == nil {
			g.active--
			g.notifyIdleLocked()
			return
		}
		e.detach()
		if e.waiter.resolve() {
			// Slot handed off; active count stays the same.
			return
		}
		// Lost the settlement race with an abort or timeout;
		// promote the next live entry instead.
	}
}

func abortedError(cause error) error {
	return fmt.Errorf("%w: %v", ggerrors.ErrAborted, cause)
}

func queueTimeoutError(queueWait time.Duration) error {
	return fmt.Errorf("%w after %v", ggerrors.ErrQueueTimeout, queueWait)
}
