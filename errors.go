package memocell

import (
	"errors"
	"fmt"
)

var (
	// ErrDisposed is returned by any read or mutation attempted after Dispose.
	ErrDisposed = errors.New("memocell: cell is disposed")

	// ErrBusy is returned when a caller needs a value right now, a computation
	// is in flight, and no placeholder is configured.
	ErrBusy = errors.New("memocell: computation in flight and no placeholder configured")

	// ErrLocked is returned by Use when an exclusive region is already active.
	// It is a rejection, not a wait; callers retry.
	ErrLocked = errors.New("memocell: exclusive region already active")

	// ErrNullResult is returned by Value when the most recent computation
	// produced no value and no placeholder is configured.
	ErrNullResult = errors.New("memocell: last computation produced no value; configure a placeholder")
)

// ProducerError wraps a failure (returned error or recovered panic) of the
// caller-supplied producer, together with the stack of the producing
// goroutine. It never propagates out of a detached computation; it is held in
// the errored state and reported through the Error event.
type ProducerError struct {
	Err   error
	Stack []byte
}

func (e *ProducerError) Error() string {
	return fmt.Sprintf("memocell: producer failed: %v", e.Err)
}

func (e *ProducerError) Unwrap() error { return e.Err }
