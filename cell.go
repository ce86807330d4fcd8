package memocell

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/benbjohnson/clock"
)

// Cell is a single-slot cache: it memoizes one producer result, serves a
// placeholder while computing, expires the result after the configured TTL,
// and grants exclusive access through Use. All methods are safe for
// concurrent use.
type Cell[V any] struct {
	mu    sync.Mutex
	state State[V]

	producer    Producer[V]
	placeholder func() V
	disposer    func(State[V])

	events Events
	log    Logger
	ttl    TTL
	clk    clock.Clock
	sched  *schedule
	runner Runner
	lock   lockGuard
}

// beginResult is the outcome of attempting to enter the computing state.
type beginResult int

const (
	beginStarted beginResult = iota // transitioned to computing; caller runs the producer
	beginHit                        // a fresh value is already installed
	beginBusy                       // computing and a placeholder covers the caller
)

// begin applies the transition rules shared by Compute and ComputeSync.
// On beginStarted the cell is left in the computing state with the TTL timer
// disarmed (a timer is armed only while a value is installed).
func (c *Cell[V]) begin(force bool) (beginResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.state.kind {
	case KindDisposed:
		return 0, ErrDisposed
	case KindComputing:
		if c.placeholder != nil {
			return beginBusy, nil
		}
		return 0, ErrBusy
	case KindValue:
		if !force {
			return beginHit, nil
		}
	}

	c.sched.disarm()
	c.state = computingState[V]()
	return beginStarted, nil
}

// produce runs the producer with an error guard: a returned error or a panic
// is captured as a *ProducerError with the producing goroutine's stack and
// never propagates further.
func (c *Cell[V]) produce(ctx context.Context) (v V, ok bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			err = &ProducerError{
				Err:   fmt.Errorf("panic: %v", r),
				Stack: debug.Stack(),
			}
		}
	}()
	v, ok, perr := c.producer(ctx)
	if perr != nil {
		return v, false, &ProducerError{Err: perr, Stack: debug.Stack()}
	}
	return v, ok, nil
}

// finish installs a completed result. The disposed check is atomic with the
// install: a result completing after Dispose is discarded, never written into
// a disposed cell. A result completing after Invalidate overwrites the empty
// state (last writer wins). Returns true when a non-null value was installed.
func (c *Cell[V]) finish(v V, ok bool, perr error) bool {
	now := c.clk.Now()

	c.mu.Lock()
	if c.state.kind == KindDisposed {
		c.mu.Unlock()
		c.log.Debug("discarded result completed after dispose", Fields{"had_value": ok})
		return false
	}

	installed := false
	switch {
	case perr != nil:
		c.state = erroredState[V](perr)
	case ok:
		c.state = valueState(v, now)
		if c.ttl.Enabled() {
			c.sched.arm(c.ttl.Duration(), c.expire)
		}
		installed = true
	default:
		c.state = nullState[V](now)
	}
	c.mu.Unlock()

	if perr != nil {
		c.log.Error("producer failed", Fields{"err": perr})
		c.events.Error(perr)
	}
	c.events.Computed(installed)
	return installed
}

// dispatch runs one producer invocation detached from the caller. The context
// is detached too: cancelling the caller does not cancel the producer ("cancel"
// only ever means the result is discarded on completion).
func (c *Cell[V]) dispatch(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)
	c.runner.Go(func() {
		v, ok, err := c.produce(ctx)
		c.finish(v, ok, err)
	})
}

// Compute produces the value on the calling goroutine and reports whether a
// non-null value is installed when it returns.
//
// Rules: ErrDisposed after Dispose. While computing: false if a placeholder
// is configured (use the placeholder), ErrBusy otherwise - concurrent calls
// are never queued or coalesced into the in-flight run. A fresh value without
// force is a hit: true, producer not re-invoked. Otherwise the producer runs;
// its failure is captured into the errored state and reported via the Error
// event, never returned here.
func (c *Cell[V]) Compute(ctx context.Context, force bool) (bool, error) {
	res, err := c.begin(force)
	if err != nil {
		return false, err
	}
	switch res {
	case beginHit:
		return true, nil
	case beginBusy:
		return false, nil
	}

	c.events.Computing()
	v, ok, perr := c.produce(ctx)
	return c.finish(v, ok, perr), nil
}

// ComputeSync follows the same transition rules as Compute but never waits on
// the producer: the run is dispatched detached and the call returns
// immediately, leaving the cell computing until the detached run completes.
// Detached failures surface only via the Error event and the logger.
func (c *Cell[V]) ComputeSync(ctx context.Context, force bool) error {
	res, err := c.begin(force)
	if err != nil {
		return err
	}
	if res != beginStarted {
		return nil
	}

	c.events.Computing()
	c.dispatch(ctx)
	return nil
}

// Value returns the cached value without ever blocking on the producer.
//
// On an empty cell it first triggers a detached computation (lazy
// trigger-on-read; idempotent under concurrent first reads - the transition
// to computing happens under the cell mutex, so only one run is spawned).
// While computing it serves the placeholder, or fails with ErrBusy. A null
// result serves the placeholder, or fails with ErrNullResult. An errored cell
// serves the placeholder when configured, otherwise returns the captured
// producer error - a deliberate, uniform policy.
func (c *Cell[V]) Value() (V, error) {
	var zero V

	c.mu.Lock()
	switch c.state.kind {
	case KindDisposed:
		c.mu.Unlock()
		return zero, ErrDisposed
	case KindEmpty:
		c.state = computingState[V]()
		c.mu.Unlock()
		c.events.Computing()
		c.dispatch(context.Background())
		c.mu.Lock()
	}
	st := c.state
	c.mu.Unlock()

	switch st.kind {
	case KindValue:
		return st.val, nil
	case KindComputing:
		if c.placeholder != nil {
			return c.placeholder(), nil
		}
		return zero, ErrBusy
	case KindNullResult:
		if c.placeholder != nil {
			return c.placeholder(), nil
		}
		return zero, ErrNullResult
	case KindErrored:
		if c.placeholder != nil {
			return c.placeholder(), nil
		}
		return zero, st.err
	case KindDisposed: // disposed in the window between trigger and read
		return zero, ErrDisposed
	default: // emptied again by a concurrent invalidate; the run may still land
		if c.placeholder != nil {
			return c.placeholder(), nil
		}
		return zero, ErrBusy
	}
}

// Get is an alias for Value.
func (c *Cell[V]) Get() (V, error) { return c.Value() }

// Invalidate discards whatever the cell holds (value, null result, or error),
// disarms any pending TTL timer first, and leaves the cell empty. Callable
// while computing: the in-flight run will later overwrite the empty state
// with its own result.
func (c *Cell[V]) Invalidate() error {
	c.mu.Lock()
	if c.state.kind == KindDisposed {
		c.mu.Unlock()
		return ErrDisposed
	}
	c.sched.disarm()
	c.state = emptyState[V]()
	c.mu.Unlock()

	c.events.Invalidated()
	c.log.Debug("invalidated", nil)
	return nil
}

// expire is the armed TTL timer's callback.
func (c *Cell[V]) expire() {
	if err := c.Invalidate(); err != nil {
		// disposed between firing and invalidation; nothing to do
		return
	}
	c.log.Debug("ttl expired", Fields{"ttl": c.ttl.String()})
}

// Dispose tears the cell down: disarms the TTL timer, hands the discarded
// state to the disposer, and enters the terminal disposed state. Every later
// operation, including a second Dispose, fails with ErrDisposed; the disposer
// and the Disposed event run at most once.
func (c *Cell[V]) Dispose() error {
	c.mu.Lock()
	if c.state.kind == KindDisposed {
		c.mu.Unlock()
		return ErrDisposed
	}
	c.sched.disarm()
	last := c.state
	c.state = disposedState[V]()
	c.mu.Unlock()

	if c.disposer != nil {
		c.disposer(last)
	}
	c.events.Disposed()
	c.log.Debug("disposed", Fields{"last": last.kind.String()})
	return nil
}

// Unschedule disarms a pending TTL timer without touching the state: the
// current value simply stops expiring. Safe to call at any time.
func (c *Cell[V]) Unschedule() {
	c.sched.disarm()
}

// State returns an atomic snapshot of the cell's current state.
func (c *Cell[V]) State() State[V] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Computed reports whether a non-null value is currently installed.
func (c *Cell[V]) Computed() bool { return c.State().kind == KindValue }

// Computing reports whether a producer invocation is in flight.
func (c *Cell[V]) Computing() bool { return c.State().kind == KindComputing }

// Disposed reports whether the cell has been disposed.
func (c *Cell[V]) Disposed() bool { return c.State().kind == KindDisposed }

// Scheduled reports whether a TTL expiry is pending.
func (c *Cell[V]) Scheduled() bool { return c.sched.armed() }
