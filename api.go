package memocell

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
)

// Producer computes the value to cache. ok=false reports a null result: the
// computation succeeded but there is no value (distinct from err != nil).
// A producer is invoked at most once at a time per cell, possibly on a
// detached goroutine; it must not assume the caller's goroutine.
type Producer[V any] func(ctx context.Context) (v V, ok bool, err error)

// Options tune a Cell. Only Producer is required; everything else has a
// sensible default.
type Options[V any] struct {
	// Required
	Producer Producer[V]

	// Placeholder supplies a safe default served while no real value is
	// available (computing, null result, or errored). nil => no fallback.
	Placeholder func() V

	// Disposer is invoked by Dispose with the state being discarded.
	Disposer func(last State[V])

	Events Events // if nil, NopEvents is used
	Logger Logger // if nil, NopLogger is used

	// TTL expires an installed value; the zero TTL disables expiry.
	TTL TTL

	// Clock drives the TTL timer. nil => the system clock. Tests inject
	// clock.NewMock().
	Clock clock.Clock

	// Runner dispatches detached producer runs. nil => one goroutine per run.
	Runner Runner

	// EarlyCompute kicks off a detached computation at construction instead
	// of waiting for the first read.
	EarlyCompute bool
}

// New builds a Cell from opts.
func New[V any](opts Options[V]) (*Cell[V], error) {
	if opts.Producer == nil {
		return nil, fmt.Errorf("memocell: producer is required")
	}

	c := &Cell[V]{
		producer:    opts.Producer,
		placeholder: opts.Placeholder,
		disposer:    opts.Disposer,
		ttl:         opts.TTL,
		state:       emptyState[V](),
	}

	// defaults
	c.events = coalesce[Events](opts.Events, NopEvents{})
	c.log = coalesce[Logger](opts.Logger, NopLogger{})
	c.runner = coalesce[Runner](opts.Runner, goroutineRunner{})

	clk := opts.Clock
	if clk == nil {
		clk = clock.New()
	}
	c.clk = clk
	c.sched = newSchedule(clk)

	if opts.EarlyCompute {
		_ = c.ComputeSync(context.Background(), false)
	}
	return c, nil
}
