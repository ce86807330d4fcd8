package memocell

import "time"

// Kind discriminates what a cell currently holds. Exactly one kind is active
// at any instant; the zero value is KindEmpty.
type Kind uint8

const (
	// KindEmpty - nothing computed, not computing, not disposed.
	KindEmpty Kind = iota
	// KindComputing - a producer invocation is in flight; no value available.
	KindComputing
	// KindValue - a successfully computed value and the instant it was installed.
	KindValue
	// KindNullResult - the producer completed but returned no value. Distinct
	// from KindEmpty so diagnostics can tell "never computed" from "computed
	// nothing".
	KindNullResult
	// KindErrored - the most recent attempt failed; the error is remembered
	// until the next successful computation overwrites it.
	KindErrored
	// KindDisposed - terminal; no further computation permitted.
	KindDisposed
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindComputing:
		return "computing"
	case KindValue:
		return "value"
	case KindNullResult:
		return "null_result"
	case KindErrored:
		return "errored"
	case KindDisposed:
		return "disposed"
	default:
		return "unknown"
	}
}

// State is an immutable snapshot of a cell's tagged state. Payload accessors
// report ok=false when the payload is not meaningful for the current kind, so
// impossible combinations ("computing" with a value) cannot be observed.
type State[V any] struct {
	kind Kind
	val  V
	at   time.Time
	err  error
}

func emptyState[V any]() State[V]     { return State[V]{kind: KindEmpty} }
func computingState[V any]() State[V] { return State[V]{kind: KindComputing} }
func disposedState[V any]() State[V]  { return State[V]{kind: KindDisposed} }

func valueState[V any](v V, at time.Time) State[V] {
	return State[V]{kind: KindValue, val: v, at: at}
}

func nullState[V any](at time.Time) State[V] {
	return State[V]{kind: KindNullResult, at: at}
}

func erroredState[V any](err error) State[V] {
	return State[V]{kind: KindErrored, err: err}
}

// Kind returns the active tag.
func (s State[V]) Kind() Kind { return s.kind }

// Value returns the held value; ok is true only for KindValue.
func (s State[V]) Value() (v V, ok bool) {
	if s.kind != KindValue {
		var zero V
		return zero, false
	}
	return s.val, true
}

// ComputedAt returns when the last result was installed; ok is true for
// KindValue and KindNullResult.
func (s State[V]) ComputedAt() (at time.Time, ok bool) {
	if s.kind != KindValue && s.kind != KindNullResult {
		return time.Time{}, false
	}
	return s.at, true
}

// Err returns the captured producer failure for KindErrored, nil otherwise.
// The error is a *ProducerError carrying the producer's stack trace.
func (s State[V]) Err() error {
	if s.kind != KindErrored {
		return nil
	}
	return s.err
}
