package testutil

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// TestTimeout is the default timeout for tests
const TestTimeout = 5 * time.Second

// WithTimeout creates a context with the default test timeout
func WithTimeout(t *testing.T) (context.Context, context.CancelFunc) {
	t.Helper()
	return context.WithTimeout(context.Background(), TestTimeout)
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// AssertErrorIs fails the test if err does not match target per errors.Is
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error %v does not match %v", err, target)
	}
}

// AssertEqual fails the test if got != want
func AssertEqual[T comparable](t *testing.T, got, want T) {
	t.Helper()
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// AssertNotEqual fails the test if got == notWant
func AssertNotEqual[T comparable](t *testing.T, got, notWant T) {
	t.Helper()
	if got == notWant {
		t.Fatalf("got %v, want anything else", got)
	}
}

// Eventually polls the condition until it holds or the timeout elapses
func Eventually(t *testing.T, condition func() bool, timeout, interval time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return
		}
		time.Sleep(interval)
	}
	t.Fatalf("condition not met within %v", timeout)
}

// WaitForInt32 polls an atomic int32 until it reaches want or the timeout elapses
func WaitForInt32(t *testing.T, value *int32, want int32, timeout time.Duration) {
	t.Helper()
	Eventually(t, func() bool {
		return atomic.LoadInt32(value) == want
	}, timeout, time.Millisecond)
}

// CallbackTracker records callback invocations for tests that need to verify
// callbacks fire the expected number of times.
type CallbackTracker struct {
	mu    sync.Mutex
	count int
	value interface{}
}

// NewCallbackTracker creates a new CallbackTracker.
func NewCallbackTracker() *CallbackTracker {
	return &CallbackTracker{}
}

// Mark records one invocation, optionally with a value.
func (c *CallbackTracker) Mark(value ...interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count++
	if len(value) > 0 {
		c.value = value[len(value)-1]
	}
}

// Called reports whether Mark has been called at least once.
func (c *CallbackTracker) Called() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count > 0
}

// CallCount returns the number of recorded invocations.
func (c *CallbackTracker) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Value returns the last value passed to Mark, or nil.
func (c *CallbackTracker) Value() interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Reset clears all recorded invocations.
func (c *CallbackTracker) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = 0
	c.value = nil
}

// AssertCallCount fails the test if the recorded count differs from want.
func (c *CallbackTracker) AssertCallCount(t *testing.T, want int) {
	t.Helper()
	if got := c.CallCount(); got != want {
		t.Fatalf("call count = %d, want %d", got, want)
	}
}
