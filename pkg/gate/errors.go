package gate

import (
	ggerrors "github.com/vnykmshr/gogate/pkg/common/errors"
)

// Failure kinds returned by gate operations, re-exported from the shared
// errors package so callers can match with errors.Is without a second import.
var (
	// ErrClosed is returned for submissions and queued waiters after Close.
	ErrClosed = ggerrors.ErrClosed

	// ErrQueueOverflow is returned when a submission arrives while the wait
	// queue is at its configured capacity, and by TryRun when no slot is free.
	ErrQueueOverflow = ggerrors.ErrQueueOverflow

	// ErrQueueTimeout is returned when a queued submission exceeds its
	// wait timeout before admission.
	ErrQueueTimeout = ggerrors.ErrQueueTimeout

	// ErrAborted is returned when a pending submission's or idle wait's
	// context is canceled before completion.
	ErrAborted = ggerrors.ErrAborted

	// ErrIdleTimeout is returned when an idle wait exceeds its timeout
	// before the gate drains.
	ErrIdleTimeout = ggerrors.ErrIdleTimeout
)
