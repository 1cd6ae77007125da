package gate

import "sync"

// deferred is a one-shot settlement cell. It settles at most once, via
// resolve or reject, and reports through the boolean return whether the
// call caused settlement. Callers rely on a false return to detect that
// they lost a settlement race and should treat their trigger as a no-op.
type deferred struct {
	mu      sync.Mutex
	settled bool
	err     error
	done    chan struct{}
}

func newDeferred() *deferred {
	return &deferred{done: make(chan struct{})}
}

// resolve settles the cell successfully.
// Returns false if the cell was already settled.
func (d *deferred) resolve() bool {
	return d.settle(nil)
}

// reject settles the cell with err.
// Returns false if the cell was already settled.
func (d *deferred) reject(err error) bool {
	return d.settle(err)
}

func (d *deferred) settle(err error) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.settled {
		return false
	}
	d.settled = true
	d.err = err
	close(d.done)
	return true
}

// wait blocks until settlement and returns the outcome error, nil on resolve.
func (d *deferred) wait() error {
	<-d.done
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.err
}
