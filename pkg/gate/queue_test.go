package gate

import (
	"testing"

	"github.com/vnykmshr/gogate/internal/testutil"
)

func TestQueuePushPopOrder(t *testing.T) {
	var q waitQueue

	entries := []*queueEntry{newQueueEntry(), newQueueEntry(), newQueueEntry()}
	for _, e := range entries {
		q.push(e)
	}
	testutil.AssertEqual(t, q.live(), 3)

	for i, want := range entries {
		got := q.pop()
		if got != want {
			t.Fatalf("pop %d returned wrong entry", i)
		}
		if !got.removed {
			t.Fatal("popped entry should be marked removed")
		}
	}
	testutil.AssertEqual(t, q.live(), 0)

	if q.pop() != nil {
		t.Error("pop on empty queue should return nil")
	}
}

func TestQueuePopSkipsTombstones(t *testing.T) {
	var q waitQueue

	first := newQueueEntry()
	second := newQueueEntry()
	third := newQueueEntry()
	q.push(first)
	q.push(second)
	q.push(third)

	// Tombstone the head out of band: pop must skip straight past it.
	first.removed = true
	q.liveCount--

	if got := q.pop(); got != second {
		t.Fatal("pop should skip tombstoned head")
	}
	if got := q.pop(); got != third {
		t.Fatal("pop should return entries in arrival order")
	}
}

func TestQueueRemove(t *testing.T) {
	var q waitQueue

	first := newQueueEntry()
	second := newQueueEntry()
	third := newQueueEntry()
	q.push(first)
	q.push(second)
	q.push(third)

	// Out-of-order removal splices immediately.
	testutil.AssertEqual(t, q.remove(second), true)
	testutil.AssertEqual(t, q.live(), 2)
	testutil.AssertEqual(t, len(q.entries), 2)

	// Removal is idempotent.
	testutil.AssertEqual(t, q.remove(second), false)
	testutil.AssertEqual(t, q.live(), 2)

	// Remaining entries keep their order.
	if got := q.pop(); got != first {
		t.Fatal("expected first entry")
	}
	if got := q.pop(); got != third {
		t.Fatal("expected third entry")
	}
}

func TestQueueRemoveAfterPop(t *testing.T) {
	var q waitQueue

	e := newQueueEntry()
	q.push(e)

	if q.pop() != e {
		t.Fatal("expected pushed entry")
	}

	// Removing a popped entry is a no-op.
	testutil.AssertEqual(t, q.remove(e), false)
	testutil.AssertEqual(t, q.live(), 0)
}

func TestQueueEntryDetachRunsCleanupsOnce(t *testing.T) {
	tracker := testutil.NewCallbackTracker()

	e := newQueueEntry()
	e.cleanups = append(e.cleanups, func() { tracker.Mark("timer") })
	e.cleanups = append(e.cleanups, func() { tracker.Mark("listener") })

	e.detach()
	tracker.AssertCallCount(t, 2)

	// A second detach must not re-run cleanup actions.
	e.detach()
	tracker.AssertCallCount(t, 2)
}
