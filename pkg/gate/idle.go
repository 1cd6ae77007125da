package gate

import (
	"context"
	"time"

	"github.com/vnykmshr/gogate/pkg/common/validation"
)

// AwaitIdle blocks until the gate is idle: no task running, none queued.
func (g *gate) AwaitIdle(ctx context.Context) error {
	return g.awaitIdle(ctx, 0)
}

// AwaitIdleTimeout blocks until the gate is idle or the timeout elapses.
// A zero timeout waits indefinitely.
func (g *gate) AwaitIdleTimeout(ctx context.Context, timeout time.Duration) error {
	if err := validation.ValidateNonNegativeDuration(moduleName, "timeout", timeout); err != nil {
		return err
	}
	return g.awaitIdle(ctx, timeout)
}

func (g *gate) awaitIdle(ctx context.Context, timeout time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return abortedError(err)
	}

	g.mu.Lock()
	if g.active == 0 && g.queue.live() == 0 {
		// Already idle; nothing is registered.
		g.mu.Unlock()
		return nil
	}
	w := newDeferred()
	g.idleWaiters = append(g.idleWaiters, w)
	g.mu.Unlock()

	var timerC <-chan time.Time
	if timeout > 0 {
		timer := time.NewTimer(timeout)
		defer timer.Stop()
		timerC = timer.C
	}

	select {
	case <-w.done:
	case <-ctx.Done():
		g.dropIdleWaiter(w, abortedError(ctx.Err()))
	case <-timerC:
		g.dropIdleWaiter(w, ErrIdleTimeout)
	}

	// If the idle broadcast won the settlement race, the gate was idle at
	// resolution time and the late trigger is a no-op.
	return w.wait()
}

// dropIdleWaiter deregisters a waiter whose abort or timeout trigger fired
// and rejects it, unless the idle broadcast already resolved it.
func (g *gate) dropIdleWaiter(w *deferred, err error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i, cand := range g.idleWaiters {
		if cand == w {
			g.idleWaiters = append(g.idleWaiters[:i], g.idleWaiters[i+1:]...)
			break
		}
	}
	w.reject(err)
}

// notifyIdleLocked resolves every registered idle waiter when both the
// active count and the live queue length are zero. All waiters fire
// together. Must be called with g.mu held.
func (g *gate) notifyIdleLocked() {
	if g.active != 0 || g.queue.live() != 0 {
		return
	}
	for _, w := range g.idleWaiters {
		w.resolve()
	}
	g.idleWaiters = nil
}
