package gate

// queueEntry is one waiting submission. It is owned by the wait queue until
// popped or removed. The removed flag is monotonic: once set it never clears,
// and a removed entry still occupying a queue slot is a tombstone that pop
// skips over.
type queueEntry struct {
	waiter   *deferred
	removed  bool
	cleanups []func()
}

func newQueueEntry() *queueEntry {
	return &queueEntry{waiter: newDeferred()}
}

// detach runs the entry's cleanup actions exactly once. Cleanup actions
// release resources attached while the entry waited (its queue-wait timer),
// so they must run on every removal path.
func (e *queueEntry) detach() {
	for _, fn := range e.cleanups {
		fn()
	}
	e.cleanups = nil
}

// waitQueue holds submissions awaiting admission in arrival order.
// All methods must be called with the owning gate's mutex held.
type waitQueue struct {
	entries []*queueEntry
	// liveCount tracks non-removed entries; tombstones left behind by pop
	// or removal races do not count.
	liveCount int
}

// push appends an entry at the tail.
func (q *waitQueue) push(e *queueEntry) {
	q.entries = append(q.entries, e)
	q.liveCount++
}

// pop dequeues and returns the next live entry in arrival order, discarding
// any tombstones in front of it. The returned entry is marked removed; the
// caller owns its settlement. Returns nil when no live entry remains.
func (q *waitQueue) pop() *queueEntry {
	for len(q.entries) > 0 {
		e := q.entries[0]
		q.entries[0] = nil
		q.entries = q.entries[1:]
		if e.removed {
			continue
		}
		e.removed = true
		q.liveCount--
		return e
	}
	return nil
}

// remove tombstones an entry out of order and splices it from the backing
// slice so abandoned waiters do not accumulate. Returns false if the entry
// was already removed; removal is idempotent.
func (q *waitQueue) remove(e *queueEntry) bool {
	if e.removed {
		return false
	}
	e.removed = true
	q.liveCount--
	for i, cand := range q.entries {
		if cand == e {
			copy(q.entries[i:], q.entries[i+1:])
			q.entries[len(q.entries)-1] = nil
			q.entries = q.entries[:len(q.entries)-1]
			break
		}
	}
	return true
}

// live returns the number of non-removed entries.
func (q *waitQueue) live() int {
	return q.liveCount
}
